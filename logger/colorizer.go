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

package logger

import (
	"io"
	"strings"

	"github.com/emu6502/emu6502/shell/terminal/colorterm/ansi"
)

// Colorizer applies basic coloring rules to logging output. The tag is
// written in the normal pen and the detail in a dim pen.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (n int, err error) {
	s := string(p)

	tag, detail, found := strings.Cut(s, ": ")
	if !found {
		return c.out.Write(p)
	}

	var b strings.Builder
	b.WriteString(ansi.Pens["cyan"])
	b.WriteString(tag)
	b.WriteString(ansi.NormalPen)
	b.WriteString(": ")
	b.WriteString(ansi.DimPens["white"])
	b.WriteString(strings.TrimSuffix(detail, "\n"))
	b.WriteString(ansi.NormalPen)
	b.WriteString("\n")

	_, err = c.out.Write([]byte(b.String()))
	if err != nil {
		return 0, err
	}

	return len(p), nil
}
