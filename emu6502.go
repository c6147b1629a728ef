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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/emu6502/emu6502/curated"
	"github.com/emu6502/emu6502/disassembly"
	"github.com/emu6502/emu6502/hardware/cpu"
	"github.com/emu6502/emu6502/logger"
	"github.com/emu6502/emu6502/modalflag"
	"github.com/emu6502/emu6502/performance"
	"github.com/emu6502/emu6502/prefs"
	"github.com/emu6502/emu6502/romloader"
	"github.com/emu6502/emu6502/shell"
	"github.com/emu6502/emu6502/shell/terminal"
	"github.com/emu6502/emu6502/shell/terminal/colorterm"
	"github.com/emu6502/emu6502/shell/terminal/plainterm"
	"github.com/emu6502/emu6502/statsview"
	"github.com/emu6502/emu6502/version"
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch the application with the arguments. returns the value to use with
// os.Exit().
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("SHELL", "RUN", "DISASM", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "SHELL":
		err = shellMode(md, output)

	case "RUN":
		err = runMode(md, output)

	case "DISASM":
		err = disasmMode(md, output)

	case "PERFORMANCE":
		err = perfMode(md, output)

	case "VERSION":
		err = versionMode(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return 20
	}

	return 0
}

// the program argument is optional for all modes. the built-in program is used
// if there is no argument.
func newLoader(md *modalflag.Modes, pad int, hash string) (romloader.Loader, error) {
	if len(md.RemainingArgs()) > 1 {
		return romloader.Loader{}, curated.Errorf("too many arguments for %s mode", md)
	}

	ld := romloader.NewLoader(md.GetArg(0))
	ld.Pad = pad
	ld.Hash = hash

	if err := ld.Load(); err != nil {
		return romloader.Loader{}, err
	}

	if !ld.IsBuiltin() && !ld.HasRecognisedExtension() {
		logger.Logf(logger.Allow, "emu6502", "unrecognised file extension for %s", ld.Filename)
	}

	return ld, nil
}

func setEcho(log bool, output io.Writer, color bool) {
	switch {
	case !log:
		logger.SetEcho(nil)
	case color:
		logger.SetEcho(logger.NewColorizer(output))
	default:
		logger.SetEcho(output)
	}
}

func shellMode(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	termType := md.AddString("term", "", "terminal type to use: COLOR, PLAIN (default from shell.colorterm preference)")
	limit := md.AddInt("limit", 0, "maximum number of instructions executed by the RUN command")
	haltOnBRK := md.AddBool("haltonbrk", false, "halt the CPU on BRK instructions")
	lineNumbers := md.AddBool("linenumbers", true, "line numbers in disassembly")
	log := md.AddBool("log", false, "echo debugging log to stderr")
	prefsOverride := md.AddString("prefs", "", "preferences for this session only. eg. \"shell.runlimit::1000; cpu.haltonbrk::true\"")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	pad := md.AddInt("pad", 0, "pad program with zero bytes to this length")
	hash := md.AddString("hash", "", "expected SHA-1 hash of program")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ld, err := newLoader(md, *pad, *hash)
	if err != nil {
		return err
	}

	prefs.PushCommandLineStack(*prefsOverride)
	pref, err := shell.NewPreferences("")
	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, "emu6502", "unused preferences: %s", unused)
	}
	if err != nil {
		return err
	}

	// flags that were set explicitly take priority over the preferences
	md.Visit(func(flag string) {
		if err != nil {
			return
		}
		switch flag {
		case "limit":
			err = pref.RunLimit.Set(*limit)
		case "haltonbrk":
			err = pref.HaltOnBRK.Set(*haltOnBRK)
		case "linenumbers":
			err = pref.LineNumbers.Set(*lineNumbers)
		}
	})
	if err != nil {
		return err
	}

	if *termType == "" {
		*termType = "PLAIN"
		if pref.ColorTerm.Get().(bool) {
			*termType = "COLOR"
		}
	}

	var term terminal.Terminal
	switch strings.ToUpper(*termType) {
	default:
		fmt.Fprintf(output, "! unknown terminal type (%s) defaulting to plain\n", *termType)
		fallthrough
	case "PLAIN":
		term = plainterm.NewPlainTerminal(os.Stdin, output)
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	}

	setEcho(*log, os.Stderr, strings.EqualFold(*termType, "COLOR"))

	if *stats {
		if statsview.Available() {
			statsview.Launch(output)
		} else {
			fmt.Fprintln(output, "! stats server not available in this build")
		}
	}

	sh, err := shell.NewShell(term, ld, pref)
	if err != nil {
		return err
	}

	return sh.Start(context.Background())
}

func runMode(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	limit := md.AddInt("limit", 1000000, "maximum number of instructions to execute. zero for no limit")
	haltOnBRK := md.AddBool("haltonbrk", false, "halt the CPU on BRK instructions")
	trace := md.AddBool("trace", false, "print the result of every instruction")
	log := md.AddBool("log", false, "echo debugging log to stderr")
	pad := md.AddInt("pad", 0, "pad program with zero bytes to this length")
	hash := md.AddString("hash", "", "expected SHA-1 hash of program")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ld, err := newLoader(md, *pad, *hash)
	if err != nil {
		return err
	}

	setEcho(*log, os.Stderr, false)

	mc := cpu.NewCPU(ld.Data)
	mc.SetHaltOnBRK(*haltOnBRK)

	var steps int
	if *trace {
		for !mc.Halted() {
			if *limit > 0 && steps >= *limit {
				err = curated.Errorf(cpu.ErrStepLimit, *limit)
				break // for loop
			}

			r, stepErr := mc.Step()
			if stepErr != nil {
				err = stepErr
				break // for loop
			}
			if !r.Halted {
				fmt.Fprintln(output, r.String())
				steps++
			}
		}
	} else {
		steps, err = mc.Run(context.Background(), *limit)
	}

	fmt.Fprintf(output, "%d instructions, %d cycles\n", steps, mc.Cycles())
	fmt.Fprintln(output, mc.String())

	return err
}

func disasmMode(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	lineNumbers := md.AddBool("linenumbers", true, "include line numbers in disassembly")
	address := md.AddBool("address", false, "include address in disassembly")
	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	summary := md.AddBool("summary", false, "print instruction count after disassembly")
	pad := md.AddInt("pad", 0, "pad program with zero bytes to this length")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ld, err := newLoader(md, *pad, "")
	if err != nil {
		return err
	}

	attr := disassembly.WriteAttr{
		LineNumbers: *lineNumbers,
		Address:     *address,
		ByteCode:    *bytecode,
	}

	// a truncated program is still disassembled up to the truncation
	dsm, dsmErr := disassembly.FromProgram(ld.Data)
	if err := dsm.Write(output, attr); err != nil {
		return err
	}

	if *summary {
		count, unknown, _ := ld.Validate()
		fmt.Fprintf(output, "%d instructions (%d unknown) in %d bytes. sha1 %s\n", count, unknown, len(ld.Data), ld.Hash)
	}

	return dsmErr
}

func perfMode(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration (note that there is a small overhead to the run)")
	haltOnBRK := md.AddBool("haltonbrk", false, "halt the CPU on BRK instructions")
	profile := md.AddBool("profile", false, "write cpu.profile and mem.profile to the current directory")
	log := md.AddBool("log", false, "echo debugging log to stderr")
	pad := md.AddInt("pad", 0, "pad program with zero bytes to this length")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	d, err := time.ParseDuration(*duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	ld, err := newLoader(md, *pad, "")
	if err != nil {
		return err
	}

	setEcho(*log, os.Stderr, false)

	mc := cpu.NewCPU(ld.Data)
	mc.SetHaltOnBRK(*haltOnBRK)
	mc.SetQuiet(true)

	fmt.Fprintf(output, "running %s for %s\n", ld.ShortName(), d)
	_, err = performance.Check(context.Background(), output, mc, d, *profile)

	return err
}

func versionMode(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	revision := md.AddBool("v", false, "display revision information (if available)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fmt.Fprintln(output, version.Banner())

	if *revision {
		v, r, numbered := version.Version()
		fmt.Fprintf(output, "version: %s\nrevision: %s\nnumbered release: %v\n", v, r, numbered)
	}

	return nil
}
