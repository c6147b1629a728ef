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

package cpu

import (
	"context"
	"fmt"

	"github.com/emu6502/emu6502/curated"
	"github.com/emu6502/emu6502/hardware/cpu/execution"
	"github.com/emu6502/emu6502/hardware/cpu/instructions"
	"github.com/emu6502/emu6502/hardware/cpu/registers"
	"github.com/emu6502/emu6502/hardware/memory"
	"github.com/emu6502/emu6502/logger"
)

// Sentinal error patterns.
const (
	ErrStepLimit = "cpu: step limit of %d reached"
	ErrHalted    = "cpu: halted: %v"
)

// State of the CPU.
type State int

// List of valid CPU states.
const (
	Running State = iota
	Halted
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Halted:
		return "halted"
	}
	return "unknown state"
}

// CPU implements the 6502. Register logic is implemented by the types in
// the registers sub-package.
type CPU struct {
	pc     registers.ProgramCounter
	a      registers.Register
	x      registers.Register
	y      registers.Register
	sp     registers.StackPointer
	status registers.Flags

	// some operations only need an accumulator
	acc8 registers.Register

	// mem is the backing store for bus. the CPU reads and writes through the
	// bus and inspects memory through mem
	mem     *memory.Memory
	bus     memory.Bus
	program []uint8

	cycles int
	state  State

	// the reason the CPU halted, if it halted because of a fault
	fault error

	// last result. not defined if the CPU has just been reset
	lastResult execution.Result

	// halt the CPU after a BRK instruction rather than following the IRQ
	// vector
	haltOnBRK bool

	// suppress log entries
	quiet bool

	// the most recent instruction changed the program counter to something
	// other than the address of the following instruction
	jumped bool
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// program is copied and the CPU is reset.
func NewCPU(program []uint8) *CPU {
	mc := &CPU{
		program: append([]uint8(nil), program...),
		mem:     memory.NewMemory(),
		a:       registers.NewRegister(0, "A"),
		x:       registers.NewRegister(0, "X"),
		y:       registers.NewRegister(0, "Y"),
		acc8:    registers.NewRegister(0, "accumulator"),
	}
	mc.bus = mc.mem
	mc.Reset()
	return mc
}

// Snapshot creates a copy of the CPU in its current state. The copy shares
// nothing with the original.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	n.mem = mc.mem.Clone()
	n.bus = n.mem
	return &n
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s %s %s %s=%s %s=%s",
		mc.pc.Label(), mc.pc, mc.a, mc.x, mc.y,
		mc.sp.Label(), mc.sp, mc.status.Label(), mc.status)
}

// Reset reinitialises all registers, flags and memory. The cycle count is
// reset to zero. The program is retained.
//
// The CPU is Running after a reset unless the program is empty.
func (mc *CPU) Reset() {
	mc.pc.Load(0)
	mc.a.Load(0)
	mc.x.Load(0)
	mc.y.Load(0)
	mc.sp.Load(0xff)
	mc.status.Reset()
	mc.mem.Reset()
	mc.cycles = 0
	mc.fault = nil
	mc.lastResult = execution.Result{}
	mc.jumped = false

	mc.state = Running
	if len(mc.program) == 0 {
		mc.state = Halted
	}
}

// AllowLogging implements the logger.Permission interface.
func (mc *CPU) AllowLogging() bool {
	return !mc.quiet
}

// SetQuiet suppresses log entries made by the CPU.
func (mc *CPU) SetQuiet(quiet bool) {
	mc.quiet = quiet
}

// SetHaltOnBRK changes how the BRK instruction is handled. When set, the CPU
// halts after the BRK instruction has been executed rather than continuing
// from the address in the IRQ vector.
func (mc *CPU) SetHaltOnBRK(halt bool) {
	mc.haltOnBRK = halt
}

// A returns the value of the accumulator.
func (mc *CPU) A() uint8 {
	return mc.a.Value()
}

// X returns the value of the X register.
func (mc *CPU) X() uint8 {
	return mc.x.Value()
}

// Y returns the value of the Y register.
func (mc *CPU) Y() uint8 {
	return mc.y.Value()
}

// PC returns the value of the program counter.
func (mc *CPU) PC() uint16 {
	return mc.pc.Address()
}

// SP returns the address in page one the stack pointer is pointing to.
func (mc *CPU) SP() uint16 {
	return mc.sp.Address()
}

// Flags returns a copy of the status flags.
func (mc *CPU) Flags() registers.Flags {
	return mc.status
}

// Cycles returns the number of cycles executed since the last reset.
func (mc *CPU) Cycles() int {
	return mc.cycles
}

// Memory returns every written memory location in address order.
func (mc *CPU) Memory() []memory.Cell {
	return mc.mem.Snapshot()
}

// MemoryString returns a hex dump of written memory.
func (mc *CPU) MemoryString() string {
	return mc.mem.String()
}

// Peek returns the value in memory at the address without affecting the
// state of the CPU.
func (mc *CPU) Peek(address uint16) uint8 {
	return mc.mem.Peek(address)
}

// Poke changes the value in memory at the address.
func (mc *CPU) Poke(address uint16, data uint8) {
	mc.mem.Poke(address, data)
}

// Program returns a copy of the program being executed.
func (mc *CPU) Program() []uint8 {
	return append([]uint8(nil), mc.program...)
}

// ROM is an alias for Program().
func (mc *CPU) ROM() []uint8 {
	return mc.Program()
}

// State returns the current state of the CPU.
func (mc *CPU) State() State {
	return mc.state
}

// Halted returns true if the CPU is halted.
func (mc *CPU) Halted() bool {
	return mc.state == Halted
}

// Fault returns the error that caused the CPU to halt. Returns nil if the CPU
// is running or if it halted because the program counter reached the end of
// the program.
func (mc *CPU) Fault() error {
	return mc.fault
}

// LastResult returns the result of the most recent call to Step().
func (mc *CPU) LastResult() execution.Result {
	return mc.lastResult
}

func (mc *CPU) halt(fault error) {
	mc.state = Halted
	mc.fault = fault
	if fault != nil {
		logger.Log(mc, "cpu", fault)
	} else {
		logger.Logf(mc, "cpu", "halted at %s after %d cycles", mc.pc, mc.cycles)
	}
}

// Step executes the instruction at the program counter.
//
// If the CPU is halted, or if the program counter is outside the program, no
// instruction is executed and the result has the Halted field set. This is
// not an error.
//
// If the instruction at the program counter is truncated by the end of the
// program, the CPU is halted with the fault and the error is returned.
// Nothing else about the state of the CPU is changed.
func (mc *CPU) Step() (execution.Result, error) {
	if mc.state == Halted {
		mc.lastResult = execution.Result{Address: mc.pc.Address(), Halted: true}
		return mc.lastResult, nil
	}

	if int(mc.pc.Address()) >= len(mc.program) {
		mc.halt(nil)
		mc.lastResult = execution.Result{Address: mc.pc.Address(), Halted: true}
		return mc.lastResult, nil
	}

	ins, next, err := instructions.Decode(mc.program, int(mc.pc.Address()))
	if err != nil {
		mc.halt(curated.Errorf(ErrHalted, err))
		mc.lastResult = execution.Result{Address: mc.pc.Address(), Halted: true}
		return mc.lastResult, mc.fault
	}

	result := mc.execute(ins, uint16(next))
	mc.cycles += result.Cycles
	mc.lastResult = result

	// the program counter wraps at 0xffff so an instruction that ends at the
	// top of the address space is detected with the unwrapped address
	if mc.state == Running {
		if (!mc.jumped && next >= len(mc.program)) || int(mc.pc.Address()) >= len(mc.program) {
			mc.halt(nil)
		}
	}

	return result, nil
}

// Run steps the CPU until it is halted. Returns the number of instructions
// executed.
//
// If limit is greater than zero then no more than limit instructions will be
// executed. If the limit is reached before the CPU halts then an ErrStepLimit
// error is returned. Running also stops if the context is cancelled, in which
// case the context's error is returned.
func (mc *CPU) Run(ctx context.Context, limit int) (int, error) {
	var steps int

	for mc.state == Running {
		if limit > 0 && steps >= limit {
			return steps, curated.Errorf(ErrStepLimit, limit)
		}

		if err := ctx.Err(); err != nil {
			return steps, err
		}

		if _, err := mc.Step(); err != nil {
			return steps, err
		}
		steps++
	}

	return steps, nil
}
