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
	"github.com/emu6502/emu6502/hardware/cpu/registers"
)

// Operator is the operation performed by an instruction. Each operator has a
// three letter mnemonic.
type Operator int

// List of operators. Ukn is the operator of every opcode that is not part of
// the documented instruction set.
const (
	Ukn Operator = iota
	Adc
	And
	Asl
	Bcc
	Bcs
	Beq
	Bit
	Bmi
	Bne
	Bpl
	Brk
	Bvc
	Bvs
	Clc
	Cld
	Cli
	Clv
	Cmp
	Cpx
	Cpy
	Dec
	Dex
	Dey
	Eor
	Inc
	Inx
	Iny
	Jmp
	Jsr
	Lda
	Ldx
	Ldy
	Lsr
	Nop
	Ora
	Pha
	Php
	Pla
	Plp
	Rol
	Ror
	Rti
	Rts
	Sbc
	Sec
	Sed
	Sei
	Sta
	Stx
	Sty
	Tax
	Tay
	Tsx
	Txa
	Txs
	Tya

	NumOperators
)

type operatorInfo struct {
	mnemonic    string
	description string
	category    Category
	affects     registers.Flags
}

var operators = [NumOperators]operatorInfo{
	Ukn: {"UKN", "unknown opcode", Unimplemented, registers.FlagsOf("")},

	Lda: {"LDA", "load accumulator", LoadStore, registers.FlagsOf("NZ")},
	Ldx: {"LDX", "load X register", LoadStore, registers.FlagsOf("NZ")},
	Ldy: {"LDY", "load Y register", LoadStore, registers.FlagsOf("NZ")},
	Sta: {"STA", "store accumulator", LoadStore, registers.FlagsOf("")},
	Stx: {"STX", "store X register", LoadStore, registers.FlagsOf("")},
	Sty: {"STY", "store Y register", LoadStore, registers.FlagsOf("")},

	Tax: {"TAX", "transfer accumulator to X", Register, registers.FlagsOf("NZ")},
	Tay: {"TAY", "transfer accumulator to Y", Register, registers.FlagsOf("NZ")},
	Txa: {"TXA", "transfer X to accumulator", Register, registers.FlagsOf("NZ")},
	Tya: {"TYA", "transfer Y to accumulator", Register, registers.FlagsOf("NZ")},

	Tsx: {"TSX", "transfer stack pointer to X", Stack, registers.FlagsOf("NZ")},
	Txs: {"TXS", "transfer X to stack pointer", Stack, registers.FlagsOf("")},
	Pha: {"PHA", "push accumulator on stack", Stack, registers.FlagsOf("")},
	Php: {"PHP", "push processor status on stack", Stack, registers.FlagsOf("")},
	Pla: {"PLA", "pull accumulator from stack", Stack, registers.FlagsOf("NZ")},
	Plp: {"PLP", "pull processor status from stack", Stack, registers.AllFlags()},

	And: {"AND", "logical AND", Logical, registers.FlagsOf("NZ")},
	Eor: {"EOR", "exclusive OR", Logical, registers.FlagsOf("NZ")},
	Ora: {"ORA", "logical inclusive OR", Logical, registers.FlagsOf("NZ")},
	Bit: {"BIT", "bit test", Logical, registers.FlagsOf("NVZ")},

	Adc: {"ADC", "add with carry", Arithmetic, registers.FlagsOf("NVZC")},
	Sbc: {"SBC", "subtract with carry", Arithmetic, registers.FlagsOf("NVZC")},
	Cmp: {"CMP", "compare accumulator", Arithmetic, registers.FlagsOf("NZC")},
	Cpx: {"CPX", "compare X register", Arithmetic, registers.FlagsOf("NZC")},
	Cpy: {"CPY", "compare Y register", Arithmetic, registers.FlagsOf("NZC")},

	Inc: {"INC", "increment a memory location", IncDec, registers.FlagsOf("NZ")},
	Inx: {"INX", "increment the X register", IncDec, registers.FlagsOf("NZ")},
	Iny: {"INY", "increment the Y register", IncDec, registers.FlagsOf("NZ")},
	Dec: {"DEC", "decrement a memory location", IncDec, registers.FlagsOf("NZ")},
	Dex: {"DEX", "decrement the X register", IncDec, registers.FlagsOf("NZ")},
	Dey: {"DEY", "decrement the Y register", IncDec, registers.FlagsOf("NZ")},

	Asl: {"ASL", "arithmetic shift left", Shifts, registers.FlagsOf("NZC")},
	Lsr: {"LSR", "logical shift right", Shifts, registers.FlagsOf("NZC")},
	Rol: {"ROL", "rotate left", Shifts, registers.FlagsOf("NZC")},
	Ror: {"ROR", "rotate right", Shifts, registers.FlagsOf("NZC")},

	Jmp: {"JMP", "jump to another location", JumpCall, registers.FlagsOf("")},
	Jsr: {"JSR", "jump to a subroutine", JumpCall, registers.FlagsOf("")},
	Rts: {"RTS", "return from subroutine", JumpCall, registers.FlagsOf("")},

	Bcc: {"BCC", "branch if carry flag clear", Branch, registers.FlagsOf("")},
	Bcs: {"BCS", "branch if carry flag set", Branch, registers.FlagsOf("")},
	Beq: {"BEQ", "branch if zero flag set", Branch, registers.FlagsOf("")},
	Bmi: {"BMI", "branch if negative flag set", Branch, registers.FlagsOf("")},
	Bne: {"BNE", "branch if zero flag clear", Branch, registers.FlagsOf("")},
	Bpl: {"BPL", "branch if negative flag clear", Branch, registers.FlagsOf("")},
	Bvc: {"BVC", "branch if overflow flag clear", Branch, registers.FlagsOf("")},
	Bvs: {"BVS", "branch if overflow flag set", Branch, registers.FlagsOf("")},

	Clc: {"CLC", "clear carry flag", StatusControl, registers.FlagsOf("C")},
	Cld: {"CLD", "clear decimal mode flag", StatusControl, registers.FlagsOf("D")},
	Cli: {"CLI", "clear interrupt disable flag", StatusControl, registers.FlagsOf("I")},
	Clv: {"CLV", "clear overflow flag", StatusControl, registers.FlagsOf("V")},
	Sec: {"SEC", "set carry flag", StatusControl, registers.FlagsOf("C")},
	Sed: {"SED", "set decimal mode flag", StatusControl, registers.FlagsOf("D")},
	Sei: {"SEI", "set interrupt disable flag", StatusControl, registers.FlagsOf("I")},

	Brk: {"BRK", "force an interrupt", SystemFunction, registers.FlagsOf("BI")},
	Nop: {"NOP", "no operation", SystemFunction, registers.FlagsOf("")},
	Rti: {"RTI", "return from interrupt", SystemFunction, registers.AllFlags()},
}

func (o Operator) String() string {
	if o < 0 || o >= NumOperators {
		return operators[Ukn].mnemonic
	}
	return operators[o].mnemonic
}

// Description returns a short human readable description of the operator.
func (o Operator) Description() string {
	if o < 0 || o >= NumOperators {
		return operators[Ukn].description
	}
	return operators[o].description
}

// Category returns the classification of the operator.
func (o Operator) Category() Category {
	if o < 0 || o >= NumOperators {
		return Unimplemented
	}
	return operators[o].category
}

// Affects returns the set of flags that the operator may change. Flags not in
// the set are never changed by the operator.
func (o Operator) Affects() registers.Flags {
	if o < 0 || o >= NumOperators {
		return registers.NewFlags()
	}
	return operators[o].affects
}

// OperatorFromMnemonic returns the Operator with the mnemonic. The mnemonic
// must be in uppercase. Returns false if there is no such operator.
func OperatorFromMnemonic(mnemonic string) (Operator, bool) {
	for o, info := range operators {
		if info.mnemonic == mnemonic {
			return Operator(o), true
		}
	}
	return Ukn, false
}
