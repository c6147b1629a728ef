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

// Package colorterm implements the Terminal interface for the emu6502 shell.
// It supports color output, history and tab completion.
//
// The terminal is put into cbreak mode for the duration of the session and
// line editing is performed by the package.
package colorterm

import (
	"io"

	"github.com/emu6502/emu6502/curated"
	"github.com/emu6502/emu6502/shell/terminal"
	"github.com/emu6502/emu6502/shell/terminal/colorterm/ansi"
)

// device is the terminal device opened by Initialise().
type device interface {
	io.ReadWriter
	Restore() error
	Close() error
}

// ColorTerminal implements the shell's terminal interface with a basic ANSI
// terminal.
type ColorTerminal struct {
	dev device
	ed  *editor
	out io.Writer

	tabCompletion terminal.TabCompletion

	silenced bool
}

// Initialise perfoms any setting up required for the terminal.
func (ct *ColorTerminal) Initialise() error {
	dev, err := openDevice()
	if err != nil {
		return err
	}

	ct.dev = dev
	ct.out = dev
	ct.ed = newEditor(dev, dev)
	ct.ed.tabCompletion = ct.tabCompletion

	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (ct *ColorTerminal) CleanUp() {
	if ct.dev == nil {
		return
	}
	io.WriteString(ct.dev, ansi.NormalPen)
	_ = ct.dev.Restore()
	_ = ct.dev.Close()
	ct.dev = nil
}

// RegisterTabCompletion adds an implementation of TabCompletion to the
// ColorTerminal.
func (ct *ColorTerminal) RegisterTabCompletion(tc terminal.TabCompletion) {
	ct.tabCompletion = tc
	if ct.ed != nil {
		ct.ed.tabCompletion = tc
	}
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// Silence implements the terminal.Terminal interface.
func (ct *ColorTerminal) Silence(silenced bool) {
	ct.silenced = silenced
}

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt, events *terminal.ReadEvents) (string, error) {
	s, err := ct.ed.read(ansi.PenStyles["bold"] + prompt.String() + ansi.NormalPen)
	if err != nil {
		return "", err
	}

	if events != nil {
		select {
		case <-events.IntEvents:
			return "", curated.Errorf(terminal.UserInterrupt)
		default:
		}
	}

	return s, nil
}
