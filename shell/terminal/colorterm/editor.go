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

package colorterm

import (
	"bufio"
	"io"

	"github.com/emu6502/emu6502/curated"
	"github.com/emu6502/emu6502/shell/terminal"
	"github.com/emu6502/emu6502/shell/terminal/colorterm/ansi"
)

// editor reads a line of input one key at a time from a terminal in cbreak
// mode. Input is echoed by the editor because the terminal does not.
type editor struct {
	in  *bufio.Reader
	out io.Writer

	history []string

	tabCompletion terminal.TabCompletion

	buf    []byte
	cursor int
	prompt string
}

func newEditor(in io.Reader, out io.Writer) *editor {
	return &editor{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// redraw the entire line and place the cursor at the correct position.
func (ed *editor) redraw() {
	io.WriteString(ed.out, ansi.ClearLine)
	io.WriteString(ed.out, ed.prompt)
	ed.out.Write(ed.buf)
	io.WriteString(ed.out, ansi.CursorMove(ed.cursor-len(ed.buf)))
}

func (ed *editor) set(s string) {
	ed.buf = append(ed.buf[:0], s...)
	ed.cursor = len(ed.buf)
}

func (ed *editor) insert(b byte) {
	ed.buf = append(ed.buf, 0)
	copy(ed.buf[ed.cursor+1:], ed.buf[ed.cursor:])
	ed.buf[ed.cursor] = b
	ed.cursor++
}

func (ed *editor) remove(idx int) {
	if idx < 0 || idx >= len(ed.buf) {
		return
	}
	ed.buf = append(ed.buf[:idx], ed.buf[idx+1:]...)
	if ed.cursor > idx {
		ed.cursor--
	}
}

// read a single line of input. The line is added to the history if it is
// not empty and is not the same as the most recent history entry.
func (ed *editor) read(prompt string) (string, error) {
	ed.prompt = prompt
	ed.buf = ed.buf[:0]
	ed.cursor = 0

	// index into history. equal to len(history) when editing a new line
	hist := len(ed.history)

	// the line being edited before moving through history
	var pending string

	if ed.tabCompletion != nil {
		ed.tabCompletion.Reset()
	}

	ed.redraw()

	for {
		b, err := ed.in.ReadByte()
		if err != nil {
			return "", err
		}

		if b != keyTab && ed.tabCompletion != nil {
			ed.tabCompletion.Reset()
		}

		switch b {
		case keyCarriageReturn, keyLineFeed:
			io.WriteString(ed.out, "\r\n")
			s := string(ed.buf)
			if s != "" && (len(ed.history) == 0 || ed.history[len(ed.history)-1] != s) {
				ed.history = append(ed.history, s)
			}
			return s, nil

		case keyInterrupt:
			io.WriteString(ed.out, "^C\r\n")
			return "", curated.Errorf(terminal.UserInterrupt)

		case keyEOF:
			if len(ed.buf) == 0 {
				io.WriteString(ed.out, "\r\n")
				return "", io.EOF
			}
			ed.remove(ed.cursor)

		case keyTab:
			if ed.tabCompletion != nil {
				ed.set(ed.tabCompletion.Complete(string(ed.buf)))
			}

		case keyBackspace, keyDelete:
			ed.remove(ed.cursor - 1)

		case keyEsc:
			e, err := ed.in.ReadByte()
			if err != nil {
				return "", err
			}
			if e != escCursor {
				break
			}

			c, err := ed.in.ReadByte()
			if err != nil {
				return "", err
			}

			switch c {
			case cursorUp:
				if hist > 0 {
					if hist == len(ed.history) {
						pending = string(ed.buf)
					}
					hist--
					ed.set(ed.history[hist])
				}
			case cursorDown:
				if hist < len(ed.history) {
					hist++
					if hist == len(ed.history) {
						ed.set(pending)
					} else {
						ed.set(ed.history[hist])
					}
				}
			case cursorForward:
				if ed.cursor < len(ed.buf) {
					ed.cursor++
				}
			case cursorBackward:
				if ed.cursor > 0 {
					ed.cursor--
				}
			case escHome:
				ed.cursor = 0
			case escEnd:
				ed.cursor = len(ed.buf)
			case escDelete:
				// delete key sequence is terminated by a tilde
				if t, err := ed.in.ReadByte(); err == nil && t != '~' {
					ed.in.UnreadByte()
				}
				ed.remove(ed.cursor)
			}

		default:
			if b >= ' ' && b < keyDelete {
				ed.insert(b)
			}
		}

		ed.redraw()
	}
}
