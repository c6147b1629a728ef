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

package plainterm_test

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/emu6502/emu6502/curated"
	"github.com/emu6502/emu6502/shell/terminal"
	"github.com/emu6502/emu6502/shell/terminal/plainterm"
	"github.com/emu6502/emu6502/test"
)

func TestRead(t *testing.T) {
	pt := plainterm.NewPlainTerminal(strings.NewReader("step\r\nshow accu\nreset"), io.Discard)
	test.DemandSuccess(t, pt.Initialise())
	defer pt.CleanUp()

	test.ExpectFailure(t, pt.IsInteractive())

	var p terminal.Prompt

	s, err := pt.TermRead(p, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "step")

	s, err = pt.TermRead(p, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "show accu")

	// final line without a terminator
	s, err = pt.TermRead(p, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "reset")

	_, err = pt.TermRead(p, nil)
	test.ExpectEquality(t, err, io.EOF)
}

func TestRead_interrupt(t *testing.T) {
	pt := plainterm.NewPlainTerminal(strings.NewReader("run\n"), io.Discard)

	events := &terminal.ReadEvents{IntEvents: make(chan os.Signal, 1)}
	events.IntEvents <- os.Interrupt

	_, err := pt.TermRead(terminal.Prompt{}, events)
	test.ExpectSuccess(t, curated.Is(err, terminal.UserInterrupt))
}

func TestPrintLine(t *testing.T) {
	var out strings.Builder
	pt := plainterm.NewPlainTerminal(strings.NewReader(""), &out)

	pt.TermPrintLine(terminal.StyleEcho, "step")
	pt.TermPrintLine(terminal.StyleFeedback, "A=$00")
	pt.TermPrintLine(terminal.StyleError, "unrecognised command (foo)")

	pt.Silence(true)
	pt.TermPrintLine(terminal.StyleFeedback, "silenced")
	pt.TermPrintLine(terminal.StyleError, "not silenced")

	test.ExpectEquality(t, out.String(), "A=$00\n* unrecognised command (foo)\n* not silenced\n")
}
