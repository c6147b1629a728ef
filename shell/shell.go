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
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/emu6502/emu6502/curated"
	"github.com/emu6502/emu6502/hardware/cpu"
	"github.com/emu6502/emu6502/logger"
	"github.com/emu6502/emu6502/prefs"
	"github.com/emu6502/emu6502/romloader"
	"github.com/emu6502/emu6502/shell/terminal"
	"github.com/emu6502/emu6502/shell/terminal/commandline"
	"github.com/emu6502/emu6502/version"
)

// Shell is the interactive command line for a single CPU instance.
type Shell struct {
	cpu    *cpu.CPU
	loader romloader.Loader

	term  terminal.Terminal
	Prefs *Preferences

	commands      *commandline.Commands
	tabCompletion *commandline.TabCompletion

	// the shell will exit the input loop when running is false
	running bool

	// signals from the operating system are forwarded to this channel while
	// the input loop is active
	events terminal.ReadEvents
}

// NewShell is the preferred method of initialisation for the Shell type. The
// loader will be loaded if it has not been already.
func NewShell(term terminal.Terminal, loader romloader.Loader, p *Preferences) (*Shell, error) {
	if !loader.HasLoaded() {
		if err := loader.Load(); err != nil {
			return nil, err
		}
	}

	sh := &Shell{
		cpu:    cpu.NewCPU(loader.Data),
		loader: loader,
		term:   term,
		Prefs:  p,
	}

	sh.cpu.SetHaltOnBRK(p.HaltOnBRK.Get().(bool))
	p.HaltOnBRK.SetHookPost(func(v prefs.Value) error {
		sh.cpu.SetHaltOnBRK(v.(bool))
		return nil
	})

	var err error
	sh.commands, err = commandline.ParseCommandTemplate(commandTemplate)
	if err != nil {
		return nil, curated.Errorf("shell: %v", err)
	}
	err = sh.commands.AddHelp(cmdHelp, helps)
	if err != nil {
		return nil, curated.Errorf("shell: %v", err)
	}
	sh.tabCompletion = commandline.NewTabCompletion(sh.commands)

	logger.Logf(logger.Allow, "shell", "%s: %d bytes (sha1 %s)", loader.ShortName(), len(loader.Data), loader.Hash)

	return sh, nil
}

// CPU returns the CPU instance operated on by the shell.
func (sh *Shell) CPU() *cpu.CPU {
	return sh.cpu
}

// Start the input loop. Returns when the EXIT command is entered, when the
// terminal input is exhausted or when the context is cancelled.
func (sh *Shell) Start(ctx context.Context) error {
	if err := sh.term.Initialise(); err != nil {
		return curated.Errorf("shell: %v", err)
	}
	defer sh.term.CleanUp()

	sh.term.RegisterTabCompletion(sh.tabCompletion)

	sh.events.IntEvents = make(chan os.Signal, 1)
	signal.Notify(sh.events.IntEvents, os.Interrupt)
	defer signal.Stop(sh.events.IntEvents)

	sh.printLine(terminal.StyleFeedback, "%s: emulator, disassembler and debugger", version.Banner())

	sh.running = true
	for sh.running {
		if err := ctx.Err(); err != nil {
			return err
		}

		input, err := sh.term.TermRead(sh.prompt(), &sh.events)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			if curated.Is(err, terminal.UserInterrupt) {
				sh.printLine(terminal.StyleFeedback, "interrupted. use EXIT to quit")
				continue
			}
			return curated.Errorf("shell: %v", err)
		}

		sh.printRaw(terminal.StyleEcho, input)

		if err := sh.parseCommand(ctx, input); err != nil {
			sh.printRaw(terminal.StyleError, err.Error())
		}
	}

	return nil
}

func (sh *Shell) prompt() terminal.Prompt {
	if sh.cpu.Halted() {
		return terminal.Prompt{Content: "halted"}
	}
	return terminal.Prompt{Content: fmt.Sprintf("$%04x", sh.cpu.PC())}
}

// run the CPU until it halts or until the run limit is reached. an interrupt
// signal stops the CPU.
func (sh *Shell) run(ctx context.Context, limit int) (int, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if sh.events.IntEvents != nil {
		done := make(chan struct{})
		defer close(done)

		go func() {
			select {
			case <-sh.events.IntEvents:
				cancel()
			case <-done:
			}
		}()
	}

	return sh.cpu.Run(ctx, limit)
}
