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
	"strings"

	"github.com/emu6502/emu6502/curated"
	"github.com/emu6502/emu6502/logger"
	"github.com/emu6502/emu6502/shell/terminal"
	lua "github.com/yuin/gopher-lua"
)

// Sentinal error patterns.
const (
	ErrScript = "script: %v"
)

// runScript executes the Lua script in the named file. The script has access
// to the functions listed in the package documentation.
func (sh *Shell) runScript(ctx context.Context, filename string) error {
	L := lua.NewState()
	defer L.Close()
	L.SetContext(ctx)

	for name, fn := range map[string]lua.LGFunction{
		"step":   sh.luaStep,
		"run":    sh.luaRun,
		"reset":  sh.luaReset,
		"peek":   sh.luaPeek,
		"poke":   sh.luaPoke,
		"reg":    sh.luaReg,
		"flags":  sh.luaFlags,
		"halted": sh.luaHalted,
		"print":  sh.luaPrint,
	} {
		L.SetGlobal(name, L.NewFunction(fn))
	}

	logger.Logf(logger.Allow, "shell", "running script %s", filename)

	if err := L.DoFile(filename); err != nil {
		return curated.Errorf(ErrScript, err)
	}

	return nil
}

func (sh *Shell) luaStep(L *lua.LState) int {
	n := L.OptInt(1, 1)

	var cycles int
	for i := 0; i < n; i++ {
		r, err := sh.cpu.Step()
		if err != nil {
			L.RaiseError("%v", err)
			return 0
		}
		if r.Halted {
			break
		}
		cycles = r.Cycles
	}

	L.Push(lua.LNumber(cycles))
	return 1
}

func (sh *Shell) luaRun(L *lua.LState) int {
	limit := L.OptInt(1, sh.Prefs.runLimit())

	steps, err := sh.run(L.Context(), limit)
	if err != nil {
		L.RaiseError("%v", err)
		return 0
	}

	L.Push(lua.LNumber(steps))
	return 1
}

func (sh *Shell) luaReset(L *lua.LState) int {
	sh.cpu.Reset()
	return 0
}

func (sh *Shell) luaPeek(L *lua.LState) int {
	address := L.CheckInt(1)
	if address < 0 || address > 0xffff {
		L.ArgError(1, "address out of range")
		return 0
	}
	L.Push(lua.LNumber(sh.cpu.Peek(uint16(address))))
	return 1
}

func (sh *Shell) luaPoke(L *lua.LState) int {
	address := L.CheckInt(1)
	if address < 0 || address > 0xffff {
		L.ArgError(1, "address out of range")
		return 0
	}
	v := L.CheckInt(2)
	if v < 0 || v > 0xff {
		L.ArgError(2, "value out of range")
		return 0
	}
	sh.cpu.Poke(uint16(address), uint8(v))
	return 0
}

func (sh *Shell) luaReg(L *lua.LState) int {
	var v int

	reg := L.CheckString(1)
	switch strings.ToUpper(reg) {
	case "A":
		v = int(sh.cpu.A())
	case "X":
		v = int(sh.cpu.X())
	case "Y":
		v = int(sh.cpu.Y())
	case "PC":
		v = int(sh.cpu.PC())
	case "SP":
		v = int(sh.cpu.SP())
	case "CYCLES":
		v = sh.cpu.Cycles()
	default:
		L.ArgError(1, "unknown register "+reg)
		return 0
	}

	L.Push(lua.LNumber(v))
	return 1
}

func (sh *Shell) luaFlags(L *lua.LState) int {
	L.Push(lua.LString(sh.cpu.Flags().String()))
	return 1
}

func (sh *Shell) luaHalted(L *lua.LState) int {
	L.Push(lua.LBool(sh.cpu.Halted()))
	return 1
}

func (sh *Shell) luaPrint(L *lua.LState) int {
	s := make([]string, 0, L.GetTop())
	for i := 1; i <= L.GetTop(); i++ {
		s = append(s, L.ToStringMeta(L.Get(i)).String())
	}
	sh.printRaw(terminal.StyleFeedback, strings.Join(s, "\t"))
	return 0
}
