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

	"github.com/emu6502/emu6502/hardware/cpu/registers"
)

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	AddressingMode AddressingMode

	// the number of cycles the instruction takes when no page boundary is
	// crossed and, for branches, when the branch is not taken
	Cycles int

	// page sensitive instructions take an additional cycle when the
	// effective address is on a different page to the base address
	PageSensitive bool

	Effect EffectCategory
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s pagesens=%t effect=%s]",
		defn.OpCode, defn.Operator, defn.Bytes(), defn.Cycles, defn.AddressingMode, defn.PageSensitive, defn.Effect)
}

// Bytes returns the length of the instruction. Unknown opcodes have a length
// of zero.
func (defn Definition) Bytes() int {
	return defn.AddressingMode.Bytes()
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}

// IsUnknown returns true if the opcode is not part of the documented
// instruction set.
func (defn Definition) IsUnknown() bool {
	return defn.Operator == Ukn
}

// Category returns the classification of the instruction's operator.
func (defn Definition) Category() Category {
	return defn.Operator.Category()
}

// Affects returns the set of flags the instruction may change.
func (defn Definition) Affects() registers.Flags {
	return defn.Operator.Affects()
}

// Description returns a short human readable description of the instruction.
func (defn Definition) Description() string {
	return defn.Operator.Description()
}

// every entry in the table is a documented opcode. Cycles is the base cycle
// count.
var table = []Definition{
	{0x69, Adc, Immediate, 2, false, Read},
	{0x65, Adc, ZeroPage, 3, false, Read},
	{0x75, Adc, ZeroPageX, 4, false, Read},
	{0x6d, Adc, Absolute, 4, false, Read},
	{0x7d, Adc, AbsoluteX, 4, true, Read},
	{0x79, Adc, AbsoluteY, 4, true, Read},
	{0x61, Adc, IndirectX, 6, false, Read},
	{0x71, Adc, IndirectY, 5, true, Read},

	{0x29, And, Immediate, 2, false, Read},
	{0x25, And, ZeroPage, 3, false, Read},
	{0x35, And, ZeroPageX, 4, false, Read},
	{0x2d, And, Absolute, 4, false, Read},
	{0x3d, And, AbsoluteX, 4, true, Read},
	{0x39, And, AbsoluteY, 4, true, Read},
	{0x21, And, IndirectX, 6, false, Read},
	{0x31, And, IndirectY, 5, true, Read},

	{0x0a, Asl, Accumulator, 2, false, RMW},
	{0x06, Asl, ZeroPage, 5, false, RMW},
	{0x16, Asl, ZeroPageX, 6, false, RMW},
	{0x0e, Asl, Absolute, 6, false, RMW},
	{0x1e, Asl, AbsoluteX, 7, false, RMW},

	{0x90, Bcc, Relative, 2, true, Flow},
	{0xb0, Bcs, Relative, 2, true, Flow},
	{0xf0, Beq, Relative, 2, true, Flow},
	{0x30, Bmi, Relative, 2, true, Flow},
	{0xd0, Bne, Relative, 2, true, Flow},
	{0x10, Bpl, Relative, 2, true, Flow},
	{0x50, Bvc, Relative, 2, true, Flow},
	{0x70, Bvs, Relative, 2, true, Flow},

	{0x24, Bit, ZeroPage, 3, false, Read},
	{0x2c, Bit, Absolute, 4, false, Read},

	{0x00, Brk, Implied, 7, false, Interrupt},

	{0x18, Clc, Implied, 2, false, Read},
	{0xd8, Cld, Implied, 2, false, Read},
	{0x58, Cli, Implied, 2, false, Read},
	{0xb8, Clv, Implied, 2, false, Read},

	{0xc9, Cmp, Immediate, 2, false, Read},
	{0xc5, Cmp, ZeroPage, 3, false, Read},
	{0xd5, Cmp, ZeroPageX, 4, false, Read},
	{0xcd, Cmp, Absolute, 4, false, Read},
	{0xdd, Cmp, AbsoluteX, 4, true, Read},
	{0xd9, Cmp, AbsoluteY, 4, true, Read},
	{0xc1, Cmp, IndirectX, 6, false, Read},
	{0xd1, Cmp, IndirectY, 5, true, Read},

	{0xe0, Cpx, Immediate, 2, false, Read},
	{0xe4, Cpx, ZeroPage, 3, false, Read},
	{0xec, Cpx, Absolute, 4, false, Read},

	{0xc0, Cpy, Immediate, 2, false, Read},
	{0xc4, Cpy, ZeroPage, 3, false, Read},
	{0xcc, Cpy, Absolute, 4, false, Read},

	{0xc6, Dec, ZeroPage, 5, false, RMW},
	{0xd6, Dec, ZeroPageX, 6, false, RMW},
	{0xce, Dec, Absolute, 6, false, RMW},
	{0xde, Dec, AbsoluteX, 7, false, RMW},

	{0xca, Dex, Implied, 2, false, Read},
	{0x88, Dey, Implied, 2, false, Read},

	{0x49, Eor, Immediate, 2, false, Read},
	{0x45, Eor, ZeroPage, 3, false, Read},
	{0x55, Eor, ZeroPageX, 4, false, Read},
	{0x4d, Eor, Absolute, 4, false, Read},
	{0x5d, Eor, AbsoluteX, 4, true, Read},
	{0x59, Eor, AbsoluteY, 4, true, Read},
	{0x41, Eor, IndirectX, 6, false, Read},
	{0x51, Eor, IndirectY, 5, true, Read},

	{0xe6, Inc, ZeroPage, 5, false, RMW},
	{0xf6, Inc, ZeroPageX, 6, false, RMW},
	{0xee, Inc, Absolute, 6, false, RMW},
	{0xfe, Inc, AbsoluteX, 7, false, RMW},

	{0xe8, Inx, Implied, 2, false, Read},
	{0xc8, Iny, Implied, 2, false, Read},

	{0x4c, Jmp, Absolute, 3, false, Flow},
	{0x6c, Jmp, Indirect, 5, false, Flow},

	{0x20, Jsr, Absolute, 6, false, Subroutine},

	{0xa9, Lda, Immediate, 2, false, Read},
	{0xa5, Lda, ZeroPage, 3, false, Read},
	{0xb5, Lda, ZeroPageX, 4, false, Read},
	{0xad, Lda, Absolute, 4, false, Read},
	{0xbd, Lda, AbsoluteX, 4, true, Read},
	{0xb9, Lda, AbsoluteY, 4, true, Read},
	{0xa1, Lda, IndirectX, 6, false, Read},
	{0xb1, Lda, IndirectY, 5, true, Read},

	{0xa2, Ldx, Immediate, 2, false, Read},
	{0xa6, Ldx, ZeroPage, 3, false, Read},
	{0xb6, Ldx, ZeroPageY, 4, false, Read},
	{0xae, Ldx, Absolute, 4, false, Read},
	{0xbe, Ldx, AbsoluteY, 4, true, Read},

	{0xa0, Ldy, Immediate, 2, false, Read},
	{0xa4, Ldy, ZeroPage, 3, false, Read},
	{0xb4, Ldy, ZeroPageX, 4, false, Read},
	{0xac, Ldy, Absolute, 4, false, Read},
	{0xbc, Ldy, AbsoluteX, 4, true, Read},

	{0x4a, Lsr, Accumulator, 2, false, RMW},
	{0x46, Lsr, ZeroPage, 5, false, RMW},
	{0x56, Lsr, ZeroPageX, 6, false, RMW},
	{0x4e, Lsr, Absolute, 6, false, RMW},
	{0x5e, Lsr, AbsoluteX, 7, false, RMW},

	{0xea, Nop, Implied, 2, false, Read},

	{0x09, Ora, Immediate, 2, false, Read},
	{0x05, Ora, ZeroPage, 3, false, Read},
	{0x15, Ora, ZeroPageX, 4, false, Read},
	{0x0d, Ora, Absolute, 4, false, Read},
	{0x1d, Ora, AbsoluteX, 4, true, Read},
	{0x19, Ora, AbsoluteY, 4, true, Read},
	{0x01, Ora, IndirectX, 6, false, Read},
	{0x11, Ora, IndirectY, 5, true, Read},

	{0x48, Pha, Implied, 3, false, Write},
	{0x08, Php, Implied, 3, false, Write},
	{0x68, Pla, Implied, 4, false, Read},
	{0x28, Plp, Implied, 4, false, Read},

	{0x2a, Rol, Accumulator, 2, false, RMW},
	{0x26, Rol, ZeroPage, 5, false, RMW},
	{0x36, Rol, ZeroPageX, 6, false, RMW},
	{0x2e, Rol, Absolute, 6, false, RMW},
	{0x3e, Rol, AbsoluteX, 7, false, RMW},

	{0x6a, Ror, Accumulator, 2, false, RMW},
	{0x66, Ror, ZeroPage, 5, false, RMW},
	{0x76, Ror, ZeroPageX, 6, false, RMW},
	{0x6e, Ror, Absolute, 6, false, RMW},
	{0x7e, Ror, AbsoluteX, 7, false, RMW},

	{0x40, Rti, Implied, 6, false, Interrupt},
	{0x60, Rts, Implied, 6, false, Subroutine},

	{0xe9, Sbc, Immediate, 2, false, Read},
	{0xe5, Sbc, ZeroPage, 3, false, Read},
	{0xf5, Sbc, ZeroPageX, 4, false, Read},
	{0xed, Sbc, Absolute, 4, false, Read},
	{0xfd, Sbc, AbsoluteX, 4, true, Read},
	{0xf9, Sbc, AbsoluteY, 4, true, Read},
	{0xe1, Sbc, IndirectX, 6, false, Read},
	{0xf1, Sbc, IndirectY, 5, true, Read},

	{0x38, Sec, Implied, 2, false, Read},
	{0xf8, Sed, Implied, 2, false, Read},
	{0x78, Sei, Implied, 2, false, Read},

	{0x85, Sta, ZeroPage, 3, false, Write},
	{0x95, Sta, ZeroPageX, 4, false, Write},
	{0x8d, Sta, Absolute, 4, false, Write},
	{0x9d, Sta, AbsoluteX, 5, false, Write},
	{0x99, Sta, AbsoluteY, 5, false, Write},
	{0x81, Sta, IndirectX, 6, false, Write},
	{0x91, Sta, IndirectY, 6, false, Write},

	{0x86, Stx, ZeroPage, 3, false, Write},
	{0x96, Stx, ZeroPageY, 4, false, Write},
	{0x8e, Stx, Absolute, 4, false, Write},

	{0x84, Sty, ZeroPage, 3, false, Write},
	{0x94, Sty, ZeroPageX, 4, false, Write},
	{0x8c, Sty, Absolute, 4, false, Write},

	{0xaa, Tax, Implied, 2, false, Read},
	{0xa8, Tay, Implied, 2, false, Read},
	{0xba, Tsx, Implied, 2, false, Read},
	{0x8a, Txa, Implied, 2, false, Read},
	{0x9a, Txs, Implied, 2, false, Read},
	{0x98, Tya, Implied, 2, false, Read},
}

// NumDocumented is the number of opcodes in the documented instruction set.
const NumDocumented = 151

// definitions is indexed by opcode. every entry is non-nil.
var definitions [256]*Definition

func init() {
	for i := range table {
		d := &table[i]
		if definitions[d.OpCode] != nil {
			panic(fmt.Sprintf("instructions: duplicate definition for opcode %#02x", d.OpCode))
		}
		definitions[d.OpCode] = d
	}

	for i := range definitions {
		if definitions[i] == nil {
			definitions[i] = &Definition{
				OpCode:         uint8(i),
				Operator:       Ukn,
				AddressingMode: None,
			}
		}
	}
}

// Lookup returns the definition for the opcode. Opcodes that are not in the
// documented instruction set return a definition with the Ukn operator.
func Lookup(opcode uint8) *Definition {
	return definitions[opcode]
}

// Documented returns every definition in the documented instruction set, in
// opcode order.
func Documented() []*Definition {
	d := make([]*Definition, 0, NumDocumented)
	for _, defn := range definitions {
		if !defn.IsUnknown() {
			d = append(d, defn)
		}
	}
	return d
}
