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

package instructions

// Category is the classification of an operator by the type of work it does.
type Category int

// List of operator categories.
const (
	LoadStore Category = iota
	Register
	Stack
	Logical
	Arithmetic
	IncDec
	Shifts
	JumpCall
	Branch
	StatusControl
	SystemFunction
	Unimplemented
)

func (c Category) String() string {
	switch c {
	case LoadStore:
		return "Load/Store"
	case Register:
		return "Register"
	case Stack:
		return "Stack"
	case Logical:
		return "Logical"
	case Arithmetic:
		return "Arithmetic"
	case IncDec:
		return "Inc/Dec"
	case Shifts:
		return "Shifts"
	case JumpCall:
		return "Jump/Call"
	case Branch:
		return "Branch"
	case StatusControl:
		return "Status Control"
	case SystemFunction:
		return "System Function"
	case Unimplemented:
		return "Unimplemented"
	}
	return "unknown category"
}

// EffectCategory categorises an instruction by the effect it has on memory
// and on the program counter.
type EffectCategory int

// List of effect categories.
const (
	Read EffectCategory = iota
	Write
	RMW

	// the following three effects have a variable effect on the program
	// counter, depending on the instruction's precise operand.

	// flow consists of the Branch and JMP instructions. Branch instructions
	// specifically can be distinguished by the AddressingMode.
	Flow

	Subroutine
	Interrupt
)

func (e EffectCategory) String() string {
	switch e {
	case Read:
		return "Read"
	case Write:
		return "Write"
	case RMW:
		return "RMW"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Interrupt:
		return "Interrupt"
	}
	return "unknown effect"
}
