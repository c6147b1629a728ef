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

package cpu_test

import (
	"context"
	"testing"

	"github.com/emu6502/emu6502/hardware/cpu"
	"github.com/emu6502/emu6502/hardware/cpu/execution"
	"github.com/emu6502/emu6502/test"
)

// the number of steps allowed by runCPU() before a test is failed
const stepLimit = 10000

// newCPU creates a CPU for the program with logging disabled.
func newCPU(program ...uint8) *cpu.CPU {
	mc := cpu.NewCPU(program)
	mc.SetQuiet(true)
	return mc
}

// step the CPU once. the result must be valid.
func step(t *testing.T, mc *cpu.CPU) execution.Result {
	t.Helper()
	r, err := mc.Step()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, r.IsValid(), r)
	return r
}

// runCPU steps the CPU until it halts. every result must be valid. returns
// the number of steps taken.
func runCPU(t *testing.T, mc *cpu.CPU) int {
	t.Helper()
	var steps int
	for !mc.Halted() {
		if steps >= stepLimit {
			t.Fatalf("program did not halt after %d steps", stepLimit)
		}
		step(t, mc)
		steps++
	}
	return steps
}

// runProgram creates a CPU for the program and runs it to completion.
func runProgram(t *testing.T, program ...uint8) *cpu.CPU {
	t.Helper()
	mc := newCPU(program...)
	runCPU(t, mc)
	return mc
}

// run with the Run() function rather than by stepping.
func runContext(t *testing.T, mc *cpu.CPU, limit int) (int, error) {
	t.Helper()
	return mc.Run(context.Background(), limit)
}
