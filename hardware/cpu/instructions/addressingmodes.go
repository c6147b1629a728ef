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

// AddressingMode describes how the operand of an instruction is located.
type AddressingMode int

// List of supported addressing modes. None is used only by the definition of
// unknown opcodes.
const (
	None AddressingMode = iota
	Implied
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Relative // relative addressing is used for branch instructions
	IndirectX
	IndirectY
	Indirect // indirect addressing (with no indexing) is only used by JMP
	Absolute
	AbsoluteX
	AbsoluteY
)

// NumAddressingModes is the number of values in the AddressingMode
// enumeration.
const NumAddressingModes = 14

func (m AddressingMode) String() string {
	switch m {
	case None:
		return "None"
	case Implied:
		return "Implied"
	case Accumulator:
		return "Accumulator"
	case Immediate:
		return "Immediate"
	case ZeroPage:
		return "ZeroPage"
	case ZeroPageX:
		return "ZeroPageX"
	case ZeroPageY:
		return "ZeroPageY"
	case Relative:
		return "Relative"
	case IndirectX:
		return "IndirectX"
	case IndirectY:
		return "IndirectY"
	case Indirect:
		return "Indirect"
	case Absolute:
		return "Absolute"
	case AbsoluteX:
		return "AbsoluteX"
	case AbsoluteY:
		return "AbsoluteY"
	}
	return "unknown addressing mode"
}

// Bytes returns the total length in bytes of an instruction using the
// addressing mode, including the opcode. The None mode has a length of zero.
func (m AddressingMode) Bytes() int {
	switch m {
	case Implied, Accumulator:
		return 1
	case Immediate, ZeroPage, ZeroPageX, ZeroPageY, Relative, IndirectX, IndirectY:
		return 2
	case Indirect, Absolute, AbsoluteX, AbsoluteY:
		return 3
	}
	return 0
}

// OperandBytes returns the number of bytes that follow the opcode.
func (m AddressingMode) OperandBytes() int {
	if m == None {
		return 0
	}
	return m.Bytes() - 1
}

// Indicator returns the prefix used when the operand is rendered as text.
// Only the Immediate mode has an indicator.
func (m AddressingMode) Indicator() string {
	if m == Immediate {
		return "#"
	}
	return ""
}

// IsIndexed returns true if the effective address is calculated by adding
// an index register.
func (m AddressingMode) IsIndexed() bool {
	switch m {
	case ZeroPageX, ZeroPageY, IndirectX, IndirectY, AbsoluteX, AbsoluteY:
		return true
	}
	return false
}
