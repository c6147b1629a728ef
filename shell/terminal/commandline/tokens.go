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
	"strings"
)

// Tokens represents tokenised input. This can be used to walk through the
// input string (using Get()) for eas(ier) parsing.
type Tokens struct {
	input  string
	tokens []string
	curr   int
}

func (tk Tokens) String() string {
	return strings.Join(tk.tokens, " ")
}

// TokeniseInput creates and returns a new Tokens instance. Tokens are
// separated by white space. A double quoted string is a single token with the
// quotes removed.
func TokeniseInput(input string) *Tokens {
	tk := &Tokens{input: input}

	var s strings.Builder
	var quoted bool
	var inToken bool

	for _, r := range input {
		switch {
		case r == '"':
			quoted = !quoted
			inToken = true
		case !quoted && (r == ' ' || r == '\t' || r == '\n' || r == '\r'):
			if inToken {
				tk.tokens = append(tk.tokens, s.String())
				s.Reset()
				inToken = false
			}
		default:
			s.WriteRune(r)
			inToken = true
		}
	}

	if inToken {
		tk.tokens = append(tk.tokens, s.String())
	}

	return tk
}

// Reset begins the token traversal process from the beginning.
func (tk *Tokens) Reset() {
	tk.curr = 0
}

// Len returns the number of tokens in total.
func (tk Tokens) Len() int {
	return len(tk.tokens)
}

// Remaining returns the number of tokens remaining.
func (tk Tokens) Remaining() int {
	return len(tk.tokens) - tk.curr
}

// Get returns the next token in the list and a success flag. False if there
// are no more tokens.
func (tk *Tokens) Get() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	tk.curr++
	return tk.tokens[tk.curr-1], true
}

// Unget moves the traversal back one position.
func (tk *Tokens) Unget() {
	if tk.curr > 0 {
		tk.curr--
	}
}

// Peek returns the next token in the list without advancing the traversal.
func (tk Tokens) Peek() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	return tk.tokens[tk.curr], true
}

// Remainder returns the remaining tokens joined by a single space. The
// traversal is moved to the end of the list.
func (tk *Tokens) Remainder() string {
	if tk.curr >= len(tk.tokens) {
		return ""
	}
	s := strings.Join(tk.tokens[tk.curr:], " ")
	tk.curr = len(tk.tokens)
	return s
}

// endsInSpace is true if the original input ends with white space. used by
// tab completion to decide whether the final token is complete.
func (tk Tokens) endsInSpace() bool {
	return len(tk.input) > 0 && strings.ContainsAny(tk.input[len(tk.input)-1:], " \t")
}
