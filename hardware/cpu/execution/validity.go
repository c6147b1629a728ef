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
	"github.com/emu6502/emu6502/curated"
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if r.Halted {
		if r.Cycles != 0 {
			return curated.Errorf("execution: halted result with %d cycles", r.Cycles)
		}
		return nil
	}

	if !r.Final {
		return curated.Errorf("execution: result not finalised")
	}

	defn := r.Instruction.Defn
	if defn == nil {
		return curated.Errorf("execution: result has no instruction definition")
	}

	if r.Instruction.Address != r.Address {
		return curated.Errorf("execution: instruction address (%#04x) differs from result address (%#04x)", r.Instruction.Address, r.Address)
	}

	// is PageFault valid given content of Defn
	if !defn.PageSensitive && r.PageFault {
		return curated.Errorf("execution: unexpected page fault for opcode %#02x [%s]", defn.OpCode, defn.Operator)
	}

	if !defn.IsBranch() && r.BranchTaken {
		return curated.Errorf("execution: unexpected branch for opcode %#02x [%s]", defn.OpCode, defn.Operator)
	}

	// a page fault on a branch can only happen when the branch is taken
	if defn.IsBranch() && r.PageFault && !r.BranchTaken {
		return curated.Errorf("execution: page fault on untaken branch for opcode %#02x [%s]", defn.OpCode, defn.Operator)
	}

	expected := defn.Cycles
	if r.BranchTaken {
		expected++
	}
	if r.PageFault {
		expected++
	}

	if r.Cycles != expected {
		return curated.Errorf("execution: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
			defn.OpCode, defn.Operator, r.Cycles, expected)
	}

	return nil
}
