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

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/emu6502/emu6502/curated"
	"github.com/emu6502/emu6502/disassembly"
	"github.com/emu6502/emu6502/hardware/cpu/instructions"
	"github.com/emu6502/emu6502/test"
)

func TestDisassemble(t *testing.T) {
	program := []uint8{0x69, 0xff, 0x69, 0x0a, 0x85, 0x0a}

	s, err := disassembly.Disassemble(program, false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "ADC #$ff\nADC #$0a\nSTA $0a\n")

	s, err = disassembly.Disassemble(program, true)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "  1: ADC #$ff\n  2: ADC #$0a\n  3: STA $0a\n")
}

func TestAbsoluteOperands(t *testing.T) {
	// STA $0200; LDA $0200,X; JMP ($1234)
	program := []uint8{0x8d, 0x00, 0x02, 0xbd, 0x00, 0x02, 0x6c, 0x34, 0x12}

	s, err := disassembly.Disassemble(program, false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "STA $0200\nLDA $0200\nJMP $1234\n")
}

func TestImpliedAndUnknown(t *testing.T) {
	program := []uint8{0xea, 0xff, 0x0a, 0x02}

	s, err := disassembly.Disassemble(program, false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "NOP\nUKN\nASL\nUKN\n")
}

func TestFormatInstruction(t *testing.T) {
	ins := instructions.NewInstruction(instructions.Lookup(0xff), 0)
	test.ExpectEquality(t, disassembly.FormatInstruction(ins), "UKN")

	ins = instructions.NewInstruction(instructions.Lookup(0xf0), 0, 0x05)
	test.ExpectEquality(t, disassembly.FormatInstruction(ins), "BEQ $05")

	ins = instructions.NewInstruction(instructions.Lookup(0xa9), 0, 0x0f)
	test.ExpectEquality(t, disassembly.FormatInstruction(ins), "LDA #$0f")
}

func TestTruncated(t *testing.T) {
	program := []uint8{0xea, 0x8d, 0x00}

	dsm, err := disassembly.FromProgram(program)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Has(err, instructions.ErrTruncated), true)
	test.DemandEquality(t, len(dsm.Entries), 1)
	test.ExpectEquality(t, dsm.Entries[0].String(), "NOP")

	s, err := disassembly.Disassemble(program, true)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, s, "  1: NOP\n")
}

func TestWriteAttributes(t *testing.T) {
	program := []uint8{0xa9, 0x01, 0x8d, 0x00, 0x02}

	dsm, err := disassembly.FromProgram(program)
	test.DemandSuccess(t, err)

	w := &strings.Builder{}
	err = dsm.Write(w, disassembly.WriteAttr{Address: true, ByteCode: true})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w.String(), "$0000  a9 01     LDA #$01\n$0002  8d 00 02  STA $0200\n")

	e, ok := dsm.GetEntryByAddress(0x0002)
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, e.Line, 2)

	_, ok = dsm.GetEntryByAddress(0x0001)
	test.ExpectEquality(t, ok, false)
}
