// This file is part of emu6502.
//
// emu6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// emu6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with emu6502.  If not, see <https://www.gnu.org/licenses/>.

package commandline

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// TabCompletion keeps track of the most recent tab completion attempt.
// Repeated calls to Complete() with the previous completion cycle through
// the available options.
type TabCompletion struct {
	cmds *Commands

	matches []string
	match   int
	prefix  string

	// the string most recently returned by Complete()
	last string
}

// NewTabCompletion initialises a new TabCompletion instance.
func NewTabCompletion(cmds *Commands) *TabCompletion {
	tc := &TabCompletion{cmds: cmds}
	tc.Reset()
	return tc
}

// Reset forgets the previous completion attempt. The next call to Complete()
// will start afresh.
func (tc *TabCompletion) Reset() {
	tc.matches = tc.matches[:0]
	tc.match = -1
	tc.prefix = ""
	tc.last = ""
}

// Complete returns the input with the final token completed. If the input is
// the same as the last completion then the next option is returned instead.
// The input is returned unchanged if there are no options.
func (tc *TabCompletion) Complete(input string) string {
	if len(tc.matches) > 0 && input == tc.last {
		tc.match = (tc.match + 1) % len(tc.matches)
		tc.last = tc.prefix + tc.matches[tc.match]
		return tc.last
	}

	tc.Reset()

	tokens := TokeniseInput(input)

	var partial string
	words := tokens.tokens
	if !tokens.endsInSpace() && len(words) > 0 {
		partial = words[len(words)-1]
		words = words[:len(words)-1]
	}

	if len(words) == 0 {
		for _, c := range tc.cmds.cmds {
			if strings.HasPrefix(c.tag, strings.ToUpper(partial)) {
				tc.matches = append(tc.matches, c.tag+" ")
			}
		}
	} else {
		cmd, ok := tc.cmds.index[strings.ToUpper(words[0])]
		if !ok {
			return input
		}

		p := len(words) - 1
		if p >= len(cmd.args) {
			return input
		}

		arg := cmd.args[p]
		for _, k := range arg.keywords() {
			if strings.HasPrefix(k, strings.ToUpper(partial)) {
				tc.matches = append(tc.matches, k+" ")
			}
		}

		for _, o := range arg.options {
			if o == placeholderFilename {
				tc.matches = append(tc.matches, completeFilename(partial)...)
			}
		}
	}

	if len(tc.matches) == 0 {
		return input
	}

	if len(words) > 0 {
		tc.prefix = strings.Join(words, " ") + " "
	}

	tc.match = 0
	tc.last = tc.prefix + tc.matches[0]
	return tc.last
}

// completeFilename returns the files and directories that begin with
// partial. directory entries end with a path separator and so can be
// completed further.
func completeFilename(partial string) []string {
	entries, err := filepath.Glob(partial + "*")
	if err != nil {
		return nil
	}
	sort.Strings(entries)

	var matches []string
	for _, e := range entries {
		if fi, err := os.Stat(e); err == nil && fi.IsDir() {
			matches = append(matches, e+string(filepath.Separator))
		} else {
			matches = append(matches, e+" ")
		}
	}
	return matches
}
