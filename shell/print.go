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

package shell

import (
	"fmt"
	"strings"

	"github.com/emu6502/emu6502/shell/terminal"
)

// printLine prints a single line of output to the terminal. the string is
// only treated as a format string for styles other than StyleHelp.
func (sh *Shell) printLine(sty terminal.Style, s string, a ...any) {
	if sty != terminal.StyleHelp {
		s = fmt.Sprintf(s, a...)
	}
	sh.printRaw(sty, s)
}

// printRaw prints the string to the terminal without formatting.
func (sh *Shell) printRaw(sty terminal.Style, s string) {
	// remove all trailing newlines, and return if the resulting string is empty
	s = strings.TrimRight(s, "\n")
	if len(s) == 0 {
		return
	}

	sh.term.TermPrintLine(sty, s)
}

// styleWriter implements the io.Writer interface. Every line written is sent
// to the terminal with the same style.
type styleWriter struct {
	sh    *Shell
	style terminal.Style
}

func (sh *Shell) printStyle(sty terminal.Style) *styleWriter {
	return &styleWriter{
		sh:    sh,
		style: sty,
	}
}

func (wrt styleWriter) Write(p []byte) (n int, err error) {
	for _, l := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		wrt.sh.printRaw(wrt.style, l)
	}
	return len(p), nil
}
