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

package instructions_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/emu6502/emu6502/curated"
	"github.com/emu6502/emu6502/hardware/cpu/instructions"
	"github.com/emu6502/emu6502/test"
)

// the documented instruction set as it appears in the MOS programming
// manual. each entry is an opcode followed by an abbreviated addressing mode
var documented = map[string]string{
	"ADC": "69:imm 65:zp 75:zpx 6d:abs 7d:absx 79:absy 61:indx 71:indy",
	"AND": "29:imm 25:zp 35:zpx 2d:abs 3d:absx 39:absy 21:indx 31:indy",
	"ASL": "0a:acc 06:zp 16:zpx 0e:abs 1e:absx",
	"BCC": "90:rel",
	"BCS": "b0:rel",
	"BEQ": "f0:rel",
	"BIT": "24:zp 2c:abs",
	"BMI": "30:rel",
	"BNE": "d0:rel",
	"BPL": "10:rel",
	"BRK": "00:imp",
	"BVC": "50:rel",
	"BVS": "70:rel",
	"CLC": "18:imp",
	"CLD": "d8:imp",
	"CLI": "58:imp",
	"CLV": "b8:imp",
	"CMP": "c9:imm c5:zp d5:zpx cd:abs dd:absx d9:absy c1:indx d1:indy",
	"CPX": "e0:imm e4:zp ec:abs",
	"CPY": "c0:imm c4:zp cc:abs",
	"DEC": "c6:zp d6:zpx ce:abs de:absx",
	"DEX": "ca:imp",
	"DEY": "88:imp",
	"EOR": "49:imm 45:zp 55:zpx 4d:abs 5d:absx 59:absy 41:indx 51:indy",
	"INC": "e6:zp f6:zpx ee:abs fe:absx",
	"INX": "e8:imp",
	"INY": "c8:imp",
	"JMP": "4c:abs 6c:ind",
	"JSR": "20:abs",
	"LDA": "a9:imm a5:zp b5:zpx ad:abs bd:absx b9:absy a1:indx b1:indy",
	"LDX": "a2:imm a6:zp b6:zpy ae:abs be:absy",
	"LDY": "a0:imm a4:zp b4:zpx ac:abs bc:absx",
	"LSR": "4a:acc 46:zp 56:zpx 4e:abs 5e:absx",
	"NOP": "ea:imp",
	"ORA": "09:imm 05:zp 15:zpx 0d:abs 1d:absx 19:absy 01:indx 11:indy",
	"PHA": "48:imp",
	"PHP": "08:imp",
	"PLA": "68:imp",
	"PLP": "28:imp",
	"ROL": "2a:acc 26:zp 36:zpx 2e:abs 3e:absx",
	"ROR": "6a:acc 66:zp 76:zpx 6e:abs 7e:absx",
	"RTI": "40:imp",
	"RTS": "60:imp",
	"SBC": "e9:imm e5:zp f5:zpx ed:abs fd:absx f9:absy e1:indx f1:indy",
	"SEC": "38:imp",
	"SED": "f8:imp",
	"SEI": "78:imp",
	"STA": "85:zp 95:zpx 8d:abs 9d:absx 99:absy 81:indx 91:indy",
	"STX": "86:zp 96:zpy 8e:abs",
	"STY": "84:zp 94:zpx 8c:abs",
	"TAX": "aa:imp",
	"TAY": "a8:imp",
	"TSX": "ba:imp",
	"TXA": "8a:imp",
	"TXS": "9a:imp",
	"TYA": "98:imp",
}

var modeAbbreviations = map[string]instructions.AddressingMode{
	"imp":  instructions.Implied,
	"acc":  instructions.Accumulator,
	"imm":  instructions.Immediate,
	"zp":   instructions.ZeroPage,
	"zpx":  instructions.ZeroPageX,
	"zpy":  instructions.ZeroPageY,
	"rel":  instructions.Relative,
	"indx": instructions.IndirectX,
	"indy": instructions.IndirectY,
	"ind":  instructions.Indirect,
	"abs":  instructions.Absolute,
	"absx": instructions.AbsoluteX,
	"absy": instructions.AbsoluteY,
}

func TestDocumentedOpcodes(t *testing.T) {
	seen := make(map[uint8]bool)

	for mnemonic, encodings := range documented {
		for _, enc := range strings.Fields(encodings) {
			var opcode uint8
			var abbrev string
			_, err := fmt.Sscanf(strings.Replace(enc, ":", " ", 1), "%x %s", &opcode, &abbrev)
			test.DemandSuccess(t, err, enc)

			mode, ok := modeAbbreviations[abbrev]
			test.DemandEquality(t, ok, true, enc)

			defn := instructions.Lookup(opcode)
			test.ExpectEquality(t, defn.OpCode, opcode, enc)
			test.ExpectEquality(t, defn.Operator.String(), mnemonic, enc)
			test.ExpectEquality(t, defn.AddressingMode, mode, enc)
			test.ExpectEquality(t, defn.IsUnknown(), false, enc)
			test.ExpectInequality(t, defn.Cycles, 0, enc)

			seen[opcode] = true
		}
	}

	test.ExpectEquality(t, len(seen), instructions.NumDocumented)
	test.ExpectEquality(t, len(instructions.Documented()), instructions.NumDocumented)

	// every other opcode is unknown
	for i := 0; i < 256; i++ {
		opcode := uint8(i)
		if seen[opcode] {
			continue
		}
		defn := instructions.Lookup(opcode)
		test.ExpectEquality(t, defn.IsUnknown(), true, opcode)
		test.ExpectEquality(t, defn.AddressingMode, instructions.None, opcode)
		test.ExpectEquality(t, defn.Category(), instructions.Unimplemented, opcode)
		test.ExpectEquality(t, defn.Affects().Mask(), 0, opcode)
		test.ExpectEquality(t, defn.Bytes(), 0, opcode)
	}
}

func TestDecodeEveryOpcode(t *testing.T) {
	for i := 0; i < 256; i++ {
		opcode := uint8(i)
		program := []uint8{opcode, 0x34, 0x12}

		ins, next, err := instructions.Decode(program, 0)
		test.DemandSuccess(t, err, opcode)

		defn := instructions.Lookup(opcode)
		test.ExpectEquality(t, ins.Defn, defn, opcode)
		test.ExpectEquality(t, len(ins.Operands()), defn.AddressingMode.OperandBytes(), opcode)

		if defn.IsUnknown() {
			test.ExpectEquality(t, next, 1, opcode)
		} else {
			test.ExpectEquality(t, next, defn.AddressingMode.Bytes(), opcode)
		}

		switch defn.AddressingMode.OperandBytes() {
		case 1:
			test.ExpectEquality(t, ins.Operand8(), 0x34, opcode)
		case 2:
			test.ExpectEquality(t, ins.Operand16(), 0x1234, opcode)
		}
	}
}

func TestDecodeSequence(t *testing.T) {
	// LDA #$01; STA $0200; BEQ +5; NOP
	program := []uint8{0xa9, 0x01, 0x8d, 0x00, 0x02, 0xf0, 0x05, 0xea}

	var ops []string
	cursor := 0
	for cursor < len(program) {
		ins, next, err := instructions.Decode(program, cursor)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, ins.Address, uint16(cursor))
		ops = append(ops, ins.Operator().String())
		cursor = next
	}

	test.ExpectEquality(t, strings.Join(ops, " "), "LDA STA BEQ NOP")
	test.ExpectEquality(t, cursor, len(program))
}

func TestDecodeIsPure(t *testing.T) {
	program := []uint8{0x6d, 0x00, 0x02}

	a, na, err := instructions.Decode(program, 0)
	test.DemandSuccess(t, err)
	b, nb, err := instructions.Decode(program, 0)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, a, b)
	test.ExpectEquality(t, na, nb)

	// changing the returned operand slice does not change the instruction
	o := a.Operands()
	o[0] = 0xff
	test.ExpectEquality(t, a.Operand16(), 0x0200)
}

func TestDecodeUnknown(t *testing.T) {
	ins, next, err := instructions.Decode([]uint8{0xff}, 0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ins.Operator(), instructions.Ukn)
	test.ExpectEquality(t, ins.Operator().String(), "UKN")
	test.ExpectEquality(t, ins.Mode(), instructions.None)
	test.ExpectEquality(t, ins.Category(), instructions.Unimplemented)
	test.ExpectEquality(t, len(ins.Operands()), 0)
	test.ExpectEquality(t, ins.Length(), 1)
	test.ExpectEquality(t, next, 1)
}

func TestDecodeErrors(t *testing.T) {
	// absolute addressing needs three bytes
	_, next, err := instructions.Decode([]uint8{0xea, 0x8d, 0x00}, 1)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, instructions.ErrTruncated), true)
	test.ExpectEquality(t, next, 1)

	_, _, err = instructions.Decode([]uint8{0xa9}, 0)
	test.ExpectEquality(t, curated.Is(err, instructions.ErrTruncated), true)

	_, _, err = instructions.Decode([]uint8{0xea}, 1)
	test.ExpectEquality(t, curated.Is(err, instructions.ErrOutOfRange), true)

	_, _, err = instructions.Decode([]uint8{0xea}, -1)
	test.ExpectEquality(t, curated.Is(err, instructions.ErrOutOfRange), true)

	_, _, err = instructions.Decode(nil, 0)
	test.ExpectEquality(t, curated.Is(err, instructions.ErrOutOfRange), true)
}

func TestAddressingModes(t *testing.T) {
	expected := []struct {
		mode      instructions.AddressingMode
		bytes     int
		indicator string
	}{
		{instructions.None, 0, ""},
		{instructions.Implied, 1, ""},
		{instructions.Accumulator, 1, ""},
		{instructions.Immediate, 2, "#"},
		{instructions.ZeroPage, 2, ""},
		{instructions.ZeroPageX, 2, ""},
		{instructions.ZeroPageY, 2, ""},
		{instructions.Relative, 2, ""},
		{instructions.IndirectX, 2, ""},
		{instructions.IndirectY, 2, ""},
		{instructions.Indirect, 3, ""},
		{instructions.Absolute, 3, ""},
		{instructions.AbsoluteX, 3, ""},
		{instructions.AbsoluteY, 3, ""},
	}

	test.DemandEquality(t, len(expected), instructions.NumAddressingModes)

	for _, e := range expected {
		test.ExpectEquality(t, e.mode.Bytes(), e.bytes, e.mode)
		test.ExpectEquality(t, e.mode.Indicator(), e.indicator, e.mode)
		test.ExpectInequality(t, e.mode.String(), "unknown addressing mode", e.mode)
		if e.mode == instructions.None {
			test.ExpectEquality(t, e.mode.OperandBytes(), 0)
		} else {
			test.ExpectEquality(t, e.mode.OperandBytes(), e.bytes-1, e.mode)
		}
	}
}

func TestCategories(t *testing.T) {
	test.ExpectEquality(t, instructions.LoadStore.String(), "Load/Store")
	test.ExpectEquality(t, instructions.IncDec.String(), "Inc/Dec")
	test.ExpectEquality(t, instructions.JumpCall.String(), "Jump/Call")
	test.ExpectEquality(t, instructions.StatusControl.String(), "Status Control")
	test.ExpectEquality(t, instructions.SystemFunction.String(), "System Function")

	test.ExpectEquality(t, instructions.Lookup(0xa9).Category(), instructions.LoadStore)
	test.ExpectEquality(t, instructions.Lookup(0xaa).Category(), instructions.Register)
	test.ExpectEquality(t, instructions.Lookup(0xba).Category(), instructions.Stack)
	test.ExpectEquality(t, instructions.Lookup(0x24).Category(), instructions.Logical)
	test.ExpectEquality(t, instructions.Lookup(0xc9).Category(), instructions.Arithmetic)
	test.ExpectEquality(t, instructions.Lookup(0xe8).Category(), instructions.IncDec)
	test.ExpectEquality(t, instructions.Lookup(0x6a).Category(), instructions.Shifts)
	test.ExpectEquality(t, instructions.Lookup(0x20).Category(), instructions.JumpCall)
	test.ExpectEquality(t, instructions.Lookup(0xf0).Category(), instructions.Branch)
	test.ExpectEquality(t, instructions.Lookup(0x78).Category(), instructions.StatusControl)
	test.ExpectEquality(t, instructions.Lookup(0xea).Category(), instructions.SystemFunction)
}

func TestAffectedFlags(t *testing.T) {
	test.ExpectEquality(t, instructions.Lookup(0x69).Affects().Letters(), "NVZC")
	test.ExpectEquality(t, instructions.Lookup(0xa9).Affects().Letters(), "NZ")
	test.ExpectEquality(t, instructions.Lookup(0x85).Affects().Letters(), "")
	test.ExpectEquality(t, instructions.Lookup(0x24).Affects().Letters(), "NVZ")
	test.ExpectEquality(t, instructions.Lookup(0xc9).Affects().Letters(), "NZC")
	test.ExpectEquality(t, instructions.Lookup(0x0a).Affects().Letters(), "NZC")
	test.ExpectEquality(t, instructions.Lookup(0x18).Affects().Letters(), "C")
	test.ExpectEquality(t, instructions.Lookup(0x00).Affects().Letters(), "BI")
	test.ExpectEquality(t, instructions.Lookup(0x28).Affects().Letters(), "NVBDIZC")
	test.ExpectEquality(t, instructions.Lookup(0x40).Affects().Letters(), "NVBDIZC")
	test.ExpectEquality(t, instructions.Lookup(0xf0).Affects().Letters(), "")
}

func TestOperatorFromMnemonic(t *testing.T) {
	o, ok := instructions.OperatorFromMnemonic("LDA")
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, o, instructions.Lda)

	_, ok = instructions.OperatorFromMnemonic("XYZ")
	test.ExpectEquality(t, ok, false)

	for o := instructions.Operator(0); o < instructions.NumOperators; o++ {
		test.ExpectInequality(t, o.String(), "", o)
		test.ExpectInequality(t, o.Description(), "", o)
	}
}
