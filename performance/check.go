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

package performance

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/emu6502/emu6502/curated"
	"github.com/emu6502/emu6502/hardware/cpu"
)

// Result of a call to Check().
type Result struct {
	Instructions int
	Cycles       int
	Resets       int
	Duration     time.Duration
}

// IPS returns the number of instructions executed per second.
func (r Result) IPS() float64 {
	if r.Duration <= 0 {
		return 0
	}
	return float64(r.Instructions) / r.Duration.Seconds()
}

// MHz returns the equivalent clock speed of the emulation. Cycles per second
// in millions.
func (r Result) MHz() float64 {
	if r.Duration <= 0 {
		return 0
	}
	return float64(r.Cycles) / r.Duration.Seconds() / 1000000
}

func (r Result) String() string {
	return fmt.Sprintf("%d instructions in %.2f seconds (%.2f MIPS, %.2f MHz equivalent, %d resets)",
		r.Instructions, r.Duration.Seconds(), r.IPS()/1000000, r.MHz(), r.Resets)
}

// the number of instructions executed between checks of the clock.
const checkInterval = 1000

// Check runs the CPU for the duration. The CPU is reset whenever it halts so
// that short programs can be measured. If profile is true then CPU and memory
// profiles are written to the current directory.
//
// The result is written to output.
func Check(ctx context.Context, output io.Writer, mc *cpu.CPU, duration time.Duration, profile bool) (Result, error) {
	var r Result

	if len(mc.Program()) == 0 {
		return r, curated.Errorf("performance: program is empty")
	}

	ctx, cancel := context.WithTimeout(ctx, duration)
	defer cancel()

	run := func() error {
		start := time.Now()
		defer func() {
			r.Duration = time.Since(start)
		}()

		for {
			for i := 0; i < checkInterval; i++ {
				if mc.Halted() {
					if err := mc.Fault(); err != nil {
						return err
					}
					r.Cycles += mc.Cycles()
					mc.Reset()
					r.Resets++
				}

				if _, err := mc.Step(); err != nil {
					return err
				}
				r.Instructions++
			}

			if ctx.Err() != nil {
				return nil
			}
		}
	}

	var err error
	if profile {
		err = ProfileCPU("cpu.profile", run)
	} else {
		err = run()
	}
	r.Cycles += mc.Cycles()

	if err != nil {
		return r, curated.Errorf("performance: %v", err)
	}

	if profile {
		if err := ProfileMem("mem.profile"); err != nil {
			return r, err
		}
	}

	fmt.Fprintln(output, r.String())

	return r, nil
}
