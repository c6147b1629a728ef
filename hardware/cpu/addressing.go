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

package cpu

import (
	"github.com/emu6502/emu6502/hardware/cpu/execution"
	"github.com/emu6502/emu6502/hardware/cpu/instructions"
)

// effective address of an instruction and the side effects of calculating
// it.
type effective struct {
	address uint16

	// the effective address is on a different page to the base address
	pageFault bool

	bug execution.Bug
}

// read16Bit reads a little-endian 16bit value from memory. The high byte is
// read from hiAddress, which is normally address+1.
func (mc *CPU) read16Bit(address uint16, hiAddress uint16) uint16 {
	lo := mc.bus.Read(address)
	hi := mc.bus.Read(hiAddress)
	return uint16(hi)<<8 | uint16(lo)
}

// indexed adds index to base and notes whether a page boundary was crossed.
func indexed(base uint16, index uint8) effective {
	address := base + uint16(index)
	return effective{
		address:   address,
		pageFault: base&0xff00 != address&0xff00,
	}
}

// effectiveAddress resolves the memory address used by the instruction.
// Implied, Accumulator, Immediate and Relative addressing do not use a memory
// address and the zero value is returned.
//
// Zero page indexing wraps within page zero. Absolute indexing wraps at the
// end of the address space.
//
// The NMOS 6502 bugs in indirect addressing are reproduced. The zero page
// pointer used by (ind,X) and (ind),Y addressing wraps within page zero, so a
// pointer at $ff takes its high byte from $00. A JMP indirect pointer at the
// end of a page takes its high byte from the start of the same page.
func (mc *CPU) effectiveAddress(ins instructions.Instruction) effective {
	switch ins.Mode() {
	case instructions.ZeroPage:
		return effective{address: uint16(ins.Operand8())}

	case instructions.ZeroPageX:
		return effective{address: uint16(ins.Operand8() + mc.x.Value())}

	case instructions.ZeroPageY:
		return effective{address: uint16(ins.Operand8() + mc.y.Value())}

	case instructions.Absolute:
		return effective{address: ins.Operand16()}

	case instructions.AbsoluteX:
		return indexed(ins.Operand16(), mc.x.Value())

	case instructions.AbsoluteY:
		return indexed(ins.Operand16(), mc.y.Value())

	case instructions.IndirectX:
		ptr := ins.Operand8() + mc.x.Value()
		e := effective{address: mc.read16Bit(uint16(ptr), uint16(ptr+1))}
		if ptr == 0xff {
			e.bug = execution.ZeroPagePointerBug
		}
		return e

	case instructions.IndirectY:
		ptr := ins.Operand8()
		e := indexed(mc.read16Bit(uint16(ptr), uint16(ptr+1)), mc.y.Value())
		if ptr == 0xff {
			e.bug = execution.ZeroPagePointerBug
		}
		return e

	case instructions.Indirect:
		ptr := ins.Operand16()
		hiPtr := ptr&0xff00 | uint16(uint8(ptr)+1)
		e := effective{address: mc.read16Bit(ptr, hiPtr)}
		if ptr&0x00ff == 0x00ff {
			e.bug = execution.JmpIndirectAddressingBug
		}
		return e
	}

	return effective{}
}

// usesMemory returns true if the addressing mode locates the operand in
// memory.
func usesMemory(mode instructions.AddressingMode) bool {
	switch mode {
	case instructions.None, instructions.Implied, instructions.Accumulator,
		instructions.Immediate, instructions.Relative:
		return false
	}
	return true
}
