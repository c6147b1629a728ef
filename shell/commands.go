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
	"errors"
	"strings"

	"github.com/emu6502/emu6502/curated"
	"github.com/emu6502/emu6502/disassembly"
	"github.com/emu6502/emu6502/hardware/cpu"
	"github.com/emu6502/emu6502/logger"
	"github.com/emu6502/emu6502/shell/terminal"
	"github.com/emu6502/emu6502/shell/terminal/commandline"
)

// shell keywords.
const (
	cmdHelp = "HELP"
	cmdExit = "EXIT"

	cmdDisassemble = "DISASSEMBLE"
	cmdRun         = "RUN"
	cmdStep        = "STEP"
	cmdReset       = "RESET"
	cmdShow        = "SHOW"
	cmdLast        = "LAST"

	cmdPeek   = "PEEK"
	cmdPoke   = "POKE"
	cmdMemory = "MEMORY"

	cmdScript = "SCRIPT"
	cmdMemViz = "MEMVIZ"
	cmdLog    = "LOG"
	cmdPrefs  = "PREFS"
)

var commandTemplate = []string{
	cmdExit,
	cmdDisassemble,
	cmdRun + " (%N)",
	cmdStep + " (%N)",
	cmdReset,
	cmdShow + " (ACCU|FLAGS)",
	cmdLast,
	cmdPeek + " %N",
	cmdPoke + " %N %N",
	cmdMemory,
	cmdScript + " %F",
	cmdMemViz + " (%F)",
	cmdLog + " (%N)",
	cmdPrefs + " (LIST|SET|LOAD|SAVE|DEFAULTS) (%S) (%S)",
}

var helps = map[string]string{
	cmdHelp:        "Lists commands and provides help for individual commands",
	cmdExit:        "Exits the shell",
	cmdDisassemble: "Print the disassembly of the entire program",
	cmdRun:         "Run the CPU until it halts. The number of instructions is limited by the shell.runlimit preference or by the argument",
	cmdStep:        "Execute the next instruction. An argument specifies the number of instructions to execute",
	cmdReset:       "Reset the CPU to its initial state. The program is not reloaded",
	cmdShow:        "Display the state of the CPU. ACCU and FLAGS display the accumulator or status register only",
	cmdLast:        "Prints the result of the last instruction executed",
	cmdPeek:        "Inspect an individual memory address",
	cmdPoke:        "Modify an individual memory address",
	cmdMemory:      "Display every memory address that has been written to",
	cmdScript:      "Run a Lua script against the CPU",
	cmdMemViz:      "Write a graphviz representation of the CPU to a file",
	cmdLog:         "Print the most recent log entries. The argument specifies the number of entries",
	cmdPrefs:       "List, change, load or save the shell preferences. Use SET to change a value, eg. PREFS SET shell.runlimit 1000",
}

// parseCommand scans user input for a valid command and acts upon it. empty
// input is ignored.
func (sh *Shell) parseCommand(ctx context.Context, input string) error {
	tokens := commandline.TokeniseInput(input)

	if err := sh.commands.ValidateTokens(tokens); err != nil {
		if curated.Is(err, commandline.ErrNoInput) {
			return nil
		}
		return err
	}

	command, _ := tokens.Get()
	command = strings.ToUpper(command)

	switch command {
	case cmdHelp:
		keyword, ok := tokens.Get()
		if ok {
			sh.printRaw(terminal.StyleHelp, sh.commands.Help(keyword))
		} else {
			sh.printRaw(terminal.StyleHelp, sh.commands.HelpOverview())
		}

	case cmdExit:
		sh.running = false

	case cmdDisassemble:
		s, err := disassembly.Disassemble(sh.cpu.ROM(), sh.Prefs.LineNumbers.Get().(bool))
		sh.printRaw(terminal.StyleDisasm, s)
		if err != nil {
			return err
		}

	case cmdRun:
		limit := sh.Prefs.runLimit()
		if arg, ok := tokens.Get(); ok {
			var err error
			limit, err = parseCount(cmdRun, arg)
			if err != nil {
				return err
			}
		}

		steps, err := sh.run(ctx, limit)
		if err != nil {
			switch {
			case curated.Is(err, cpu.ErrStepLimit):
				sh.printRaw(terminal.StyleError, err.Error())
			case errors.Is(err, context.Canceled):
				sh.printLine(terminal.StyleFeedback, "run interrupted")
			default:
				return err
			}
		}

		sh.printLine(terminal.StyleFeedback, "%d instructions executed", steps)
		sh.printRaw(terminal.StyleCPUStep, sh.cpu.String())

	case cmdStep:
		n := 1
		if arg, ok := tokens.Get(); ok {
			var err error
			n, err = parseCount(cmdStep, arg)
			if err != nil {
				return err
			}
		}

		for i := 0; i < n; i++ {
			r, err := sh.cpu.Step()
			if err != nil {
				return err
			}
			sh.printRaw(terminal.StyleCPUStep, r.String())
			if r.Halted {
				break
			}
		}

	case cmdReset:
		sh.cpu.Reset()
		sh.printLine(terminal.StyleFeedback, "cpu reset")

	case cmdShow:
		arg, _ := tokens.Get()
		switch strings.ToUpper(arg) {
		case "ACCU":
			sh.printLine(terminal.StyleFeedback, "A=$%02x", sh.cpu.A())
		case "FLAGS":
			f := sh.cpu.Flags()
			sh.printLine(terminal.StyleFeedback, "%s=%s", f.Label(), f.String())
		default:
			sh.printRaw(terminal.StyleFeedback, sh.cpu.String())
			sh.printLine(terminal.StyleFeedback, "%d cycles, %s", sh.cpu.Cycles(), sh.cpu.State())
			if err := sh.cpu.Fault(); err != nil {
				sh.printRaw(terminal.StyleFeedback, err.Error())
			}
		}

	case cmdLast:
		sh.printRaw(terminal.StyleCPUStep, sh.cpu.LastResult().String())

	case cmdPeek:
		arg, _ := tokens.Get()
		address, err := parseAddress(arg)
		if err != nil {
			return err
		}
		sh.printLine(terminal.StyleFeedback, "$%04x = $%02x", address, sh.cpu.Peek(address))

	case cmdPoke:
		arg, _ := tokens.Get()
		address, err := parseAddress(arg)
		if err != nil {
			return err
		}

		arg, _ = tokens.Get()
		v, err := commandline.ParseNumber(arg)
		if err != nil {
			return curated.Errorf("%s: %v", cmdPoke, err)
		}
		if v < 0 || v > 0xff {
			return curated.Errorf("POKE: value out of range (%s)", arg)
		}

		sh.cpu.Poke(address, uint8(v))
		sh.printLine(terminal.StyleFeedback, "$%04x = $%02x", address, v)

	case cmdMemory:
		if len(sh.cpu.Memory()) == 0 {
			sh.printLine(terminal.StyleFeedback, "no memory has been written")
		} else {
			sh.printRaw(terminal.StyleFeedback, sh.cpu.MemoryString())
		}

	case cmdScript:
		filename, _ := tokens.Get()
		return sh.runScript(ctx, filename)

	case cmdMemViz:
		filename, _ := tokens.Get()
		return sh.memviz(filename)

	case cmdLog:
		if arg, ok := tokens.Get(); ok {
			n, err := parseCount(cmdLog, arg)
			if err != nil {
				return err
			}
			logger.Tail(sh.printStyle(terminal.StyleLog), n)
		} else {
			logger.Write(sh.printStyle(terminal.StyleLog))
		}

	case cmdPrefs:
		return sh.parsePrefs(tokens)

	default:
		return curated.Errorf("%s is not yet implemented", command)
	}

	return nil
}

func (sh *Shell) parsePrefs(tokens *commandline.Tokens) error {
	option, _ := tokens.Get()

	switch strings.ToUpper(option) {
	case "", "LIST":
		sh.printRaw(terminal.StyleFeedback, sh.Prefs.String())

	case "SET":
		key, ok := tokens.Get()
		if !ok {
			return curated.Errorf("PREFS: SET requires a key and a value")
		}
		value, ok := tokens.Get()
		if !ok {
			return curated.Errorf("PREFS: SET requires a key and a value")
		}
		if err := sh.Prefs.Set(key, value); err != nil {
			return err
		}
		v, _ := sh.Prefs.dsk.Value(key)
		sh.printLine(terminal.StyleFeedback, "%s set to %s", key, v)

	case "LOAD":
		if err := sh.Prefs.Load(); err != nil {
			return err
		}
		sh.printLine(terminal.StyleFeedback, "preferences loaded")

	case "SAVE":
		if err := sh.Prefs.Save(); err != nil {
			return err
		}
		sh.printLine(terminal.StyleFeedback, "preferences saved")

	case "DEFAULTS":
		sh.Prefs.SetDefaults()
		sh.printLine(terminal.StyleFeedback, "preferences set to default values")
	}

	return nil
}

// parseCount converts a numeric argument to a count of zero or more.
func parseCount(cmd string, arg string) (int, error) {
	n, err := commandline.ParseNumber(arg)
	if err != nil {
		return 0, curated.Errorf("%s: %v", cmd, err)
	}
	if n < 0 {
		return 0, curated.Errorf("%s: count cannot be negative (%s)", cmd, arg)
	}
	return n, nil
}

// parseAddress converts a numeric argument to a 16 bit address.
func parseAddress(arg string) (uint16, error) {
	a, err := commandline.ParseNumber(arg)
	if err != nil {
		return 0, err
	}
	if a < 0 || a > 0xffff {
		return 0, curated.Errorf("address out of range (%s)", arg)
	}
	return uint16(a), nil
}
