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
	"io"

	"github.com/emu6502/emu6502/shell/terminal"
	"github.com/emu6502/emu6502/shell/terminal/colorterm/ansi"
)

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	if ct.silenced && style != terminal.StyleError {
		return
	}

	// input has already been echoed by the line editor
	if style == terminal.StyleEcho {
		return
	}

	io.WriteString(ct.out, "\r")

	switch style {
	case terminal.StyleHelp:
		io.WriteString(ct.out, ansi.DimPens["white"])
	case terminal.StyleFeedback:
		io.WriteString(ct.out, ansi.DimPens["white"])
	case terminal.StyleCPUStep:
		io.WriteString(ct.out, ansi.Pens["yellow"])
	case terminal.StyleDisasm:
		io.WriteString(ct.out, ansi.Pens["cyan"])
	case terminal.StyleLog:
		io.WriteString(ct.out, ansi.DimPens["green"])
	case terminal.StyleError:
		io.WriteString(ct.out, ansi.Pens["red"])
		io.WriteString(ct.out, "* ")
	}

	io.WriteString(ct.out, s)
	io.WriteString(ct.out, ansi.NormalPen)
	io.WriteString(ct.out, "\n")
}
