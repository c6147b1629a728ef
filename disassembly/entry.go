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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/emu6502/emu6502/hardware/cpu/instructions"
)

// Entry is a single disassembled instruction.
type Entry struct {
	// the line number of the entry, counting from one
	Line int

	Instruction instructions.Instruction

	// string representations of the instruction
	Address  string
	Bytecode string
	Operator string
	Operand  string
}

func newEntry(line int, ins instructions.Instruction) *Entry {
	e := &Entry{
		Line:        line,
		Instruction: ins,
		Address:     fmt.Sprintf("$%04x", ins.Address),
		Operator:    ins.Operator().String(),
		Operand:     FormatOperand(ins),
	}

	b := strings.Builder{}
	fmt.Fprintf(&b, "%02x", ins.Defn.OpCode)
	for _, o := range ins.Operands() {
		fmt.Fprintf(&b, " %02x", o)
	}
	e.Bytecode = b.String()

	return e
}

// String returns the operator and operand of the entry in the standard
// disassembly format.
func (e *Entry) String() string {
	if e.Operand == "" {
		return e.Operator
	}
	return fmt.Sprintf("%s %s", e.Operator, e.Operand)
}

// FormatOperand returns the operand of the instruction in the standard
// disassembly format. Instructions with no operand return the empty string.
func FormatOperand(ins instructions.Instruction) string {
	mode := ins.Mode()
	switch mode.OperandBytes() {
	case 1:
		return fmt.Sprintf("%s$%02x", mode.Indicator(), ins.Operand8())
	case 2:
		return fmt.Sprintf("%s$%04x", mode.Indicator(), ins.Operand16())
	}
	return ""
}

// FormatInstruction returns the instruction in the standard disassembly
// format. For example:
//
//	ADC #$ff
//	STA $0200
//	UKN
func FormatInstruction(ins instructions.Instruction) string {
	return newEntry(0, ins).String()
}
