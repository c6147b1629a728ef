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

import (
	"fmt"

	"github.com/emu6502/emu6502/curated"
	"github.com/emu6502/emu6502/hardware/cpu/registers"
)

// Sentinal error patterns returned by Decode().
const (
	ErrTruncated  = "decode: truncated instruction: %s at %#04x needs %d bytes but only %d remain"
	ErrOutOfRange = "decode: position %d is outside the program (length %d)"
)

// Instruction is a single decoded instruction. It is a value type and is
// never changed once it has been returned by Decode().
type Instruction struct {
	Defn *Definition

	// the address of the opcode in the program
	Address uint16

	// operand bytes in the order they appear in the program. only the first
	// Defn.AddressingMode.OperandBytes() entries are meaningful
	operand [2]uint8
}

// NewInstruction creates an instruction from a definition and operand bytes.
// Operand bytes beyond those used by the addressing mode are ignored.
func NewInstruction(defn *Definition, address uint16, operand ...uint8) Instruction {
	ins := Instruction{
		Defn:    defn,
		Address: address,
	}
	copy(ins.operand[:defn.AddressingMode.OperandBytes()], operand)
	return ins
}

func (ins Instruction) String() string {
	return fmt.Sprintf("%s %s", ins.Defn.Operator, ins.Defn.AddressingMode)
}

// Operator returns the instruction's operator.
func (ins Instruction) Operator() Operator {
	return ins.Defn.Operator
}

// Mode returns the instruction's addressing mode.
func (ins Instruction) Mode() AddressingMode {
	return ins.Defn.AddressingMode
}

// Category returns the classification of the instruction's operator.
func (ins Instruction) Category() Category {
	return ins.Defn.Category()
}

// Affects returns the set of flags the instruction may change.
func (ins Instruction) Affects() registers.Flags {
	return ins.Defn.Affects()
}

// Description returns a short human readable description of the instruction.
func (ins Instruction) Description() string {
	return ins.Defn.Description()
}

// Cycles returns the base cycle count of the instruction.
func (ins Instruction) Cycles() int {
	return ins.Defn.Cycles
}

// Operands returns a copy of the operand bytes. The length of the slice is
// the number of operand bytes used by the addressing mode.
func (ins Instruction) Operands() []uint8 {
	n := ins.Defn.AddressingMode.OperandBytes()
	o := make([]uint8, n)
	copy(o, ins.operand[:n])
	return o
}

// Operand8 returns the first operand byte.
func (ins Instruction) Operand8() uint8 {
	return ins.operand[0]
}

// Operand16 returns the operand bytes as a little-endian 16bit value.
func (ins Instruction) Operand16() uint16 {
	return uint16(ins.operand[0]) | uint16(ins.operand[1])<<8
}

// Length returns the number of program bytes occupied by the instruction.
// Unknown opcodes occupy one byte even though the addressing mode has a
// length of zero.
func (ins Instruction) Length() int {
	return 1 + ins.Defn.AddressingMode.OperandBytes()
}

// Decode the instruction at the cursor position in the program. Returns the
// instruction and the position of the next instruction.
//
// Returns an ErrOutOfRange error if cursor is not inside the program and an
// ErrTruncated error if the program ends before the instruction's operand is
// complete.
func Decode(program []uint8, cursor int) (Instruction, int, error) {
	if cursor < 0 || cursor >= len(program) {
		return Instruction{}, cursor, curated.Errorf(ErrOutOfRange, cursor, len(program))
	}

	defn := Lookup(program[cursor])
	n := defn.AddressingMode.OperandBytes()

	if cursor+1+n > len(program) {
		return Instruction{}, cursor, curated.Errorf(ErrTruncated, defn.Operator, cursor, 1+n, len(program)-cursor)
	}

	ins := NewInstruction(defn, uint16(cursor), program[cursor+1:cursor+1+n]...)

	return ins, cursor + ins.Length(), nil
}
