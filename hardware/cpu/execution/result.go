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

package execution

import (
	"fmt"
	"strings"

	"github.com/emu6502/emu6502/disassembly"
	"github.com/emu6502/emu6502/hardware/cpu/instructions"
)

// Result records the execution of a single instruction.
type Result struct {
	// the address of the instruction in the program
	Address uint16

	// the instruction that was executed. not defined if Halted is true
	Instruction instructions.Instruction

	// the number of cycles taken by the instruction. usually the same as the
	// number of cycles in the definition but page faults and branches can
	// change that
	Cycles int

	// whether an extra cycle was required because the effective address was
	// on a different page to the base address
	PageFault bool

	// whether a branch instruction branched
	BranchTaken bool

	// whether a known buggy code path was triggered
	CPUBug Bug

	// no instruction was executed because the CPU is halted
	Halted bool

	// whether this data has been finalised. a result is final once the
	// instruction has been executed completely
	Final bool
}

func (r Result) String() string {
	if r.Halted {
		return "halted"
	}

	if !r.Final || r.Instruction.Defn == nil {
		return "unfinalised execution result"
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("$%04x %s [%d]", r.Address, disassembly.FormatInstruction(r.Instruction), r.Cycles))

	if r.BranchTaken {
		s.WriteString(" branched")
	}
	if r.PageFault {
		s.WriteString(" page-fault")
	}
	if r.CPUBug != NoBug {
		s.WriteString(fmt.Sprintf(" * %s *", r.CPUBug))
	}

	return s.String()
}
