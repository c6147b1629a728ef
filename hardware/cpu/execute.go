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
	"github.com/emu6502/emu6502/hardware/cpu/registers"
	"github.com/emu6502/emu6502/hardware/memory"
	"github.com/emu6502/emu6502/logger"
)

func (mc *CPU) push(data uint8) {
	mc.bus.Write(mc.sp.Push(), data)
}

func (mc *CPU) pull() uint8 {
	return mc.bus.Read(mc.sp.Pull())
}

// branch to the relative offset if cond is true. the result is updated with
// the cycle cost of the branch.
// jump changes the program counter to an address other than that of the next
// instruction.
func (mc *CPU) jump(address uint16) {
	mc.pc.Load(address)
	mc.jumped = true
}

func (mc *CPU) branch(cond bool, offset uint8, result *execution.Result) {
	if !cond {
		return
	}
	result.BranchTaken = true
	result.Cycles++
	mc.jumped = true
	if mc.pc.Branch(offset) {
		result.PageFault = true
		result.Cycles++
	}
}

// execute the decoded instruction. next is the address of the instruction
// immediately following. The returned result is final.
func (mc *CPU) execute(ins instructions.Instruction, next uint16) execution.Result {
	defn := ins.Defn
	mc.jumped = false

	result := execution.Result{
		Address:     ins.Address,
		Instruction: ins,
		Cycles:      defn.Cycles,
		Final:       true,
	}

	if defn.IsUnknown() {
		logger.Logf(mc, "cpu", "unknown opcode %#02x at %s", defn.OpCode, mc.pc)
		mc.pc.Load(next)
		return result
	}

	// resolve the effective address
	var address uint16
	if usesMemory(defn.AddressingMode) {
		e := mc.effectiveAddress(ins)
		address = e.address
		result.CPUBug = e.bug
		if e.pageFault && defn.PageSensitive {
			result.PageFault = true
			result.Cycles++
		}
	}

	// fetch the value the instruction operates on
	var value uint8
	switch defn.AddressingMode {
	case instructions.Immediate:
		value = ins.Operand8()
	case instructions.Accumulator:
		value = mc.a.Value()
	default:
		if usesMemory(defn.AddressingMode) && (defn.Effect == instructions.Read || defn.Effect == instructions.RMW) {
			value = mc.bus.Read(address)
		}
	}

	// the program counter moves on before the instruction is executed.
	// branches and jumps change it again
	mc.pc.Load(next)

	// read-modify-write instructions work on a copy of the value unless the
	// accumulator is the operand
	var r *registers.Register
	if defn.Effect == instructions.RMW {
		if defn.AddressingMode == instructions.Accumulator {
			r = &mc.a
		} else {
			r = &mc.acc8
			r.Load(value)
		}
	}

	switch defn.Operator {
	case instructions.Nop:
		// does nothing

	case instructions.Clc:
		mc.status.SetCarryIf(false)

	case instructions.Cld:
		mc.status.SetDecimalIf(false)

	case instructions.Cli:
		mc.status.SetInterruptIf(false)

	case instructions.Clv:
		mc.status.SetOverflowIf(false)

	case instructions.Sec:
		mc.status.SetCarryIf(true)

	case instructions.Sed:
		mc.status.SetDecimalIf(true)

	case instructions.Sei:
		mc.status.SetInterruptIf(true)

	case instructions.Pha:
		mc.push(mc.a.Value())

	case instructions.Pla:
		mc.a.Load(mc.pull())
		mc.status.SetZeroIf(mc.a.IsZero())
		mc.status.SetNegativeIf(mc.a.IsNegative())

	case instructions.Php:
		mc.push(mc.status.Value() | 0x10)

	case instructions.Plp:
		mc.status.Load(mc.pull())

	case instructions.Txa:
		mc.a.Load(mc.x.Value())
		mc.status.SetZeroIf(mc.a.IsZero())
		mc.status.SetNegativeIf(mc.a.IsNegative())

	case instructions.Tax:
		mc.x.Load(mc.a.Value())
		mc.status.SetZeroIf(mc.x.IsZero())
		mc.status.SetNegativeIf(mc.x.IsNegative())

	case instructions.Tay:
		mc.y.Load(mc.a.Value())
		mc.status.SetZeroIf(mc.y.IsZero())
		mc.status.SetNegativeIf(mc.y.IsNegative())

	case instructions.Tya:
		mc.a.Load(mc.y.Value())
		mc.status.SetZeroIf(mc.a.IsZero())
		mc.status.SetNegativeIf(mc.a.IsNegative())

	case instructions.Tsx:
		mc.x.Load(mc.sp.Value())
		mc.status.SetZeroIf(mc.x.IsZero())
		mc.status.SetNegativeIf(mc.x.IsNegative())

	case instructions.Txs:
		mc.sp.Load(mc.x.Value())

	case instructions.Eor:
		mc.a.EOR(value)
		mc.status.SetZeroIf(mc.a.IsZero())
		mc.status.SetNegativeIf(mc.a.IsNegative())

	case instructions.Ora:
		mc.a.ORA(value)
		mc.status.SetZeroIf(mc.a.IsZero())
		mc.status.SetNegativeIf(mc.a.IsNegative())

	case instructions.And:
		mc.a.AND(value)
		mc.status.SetZeroIf(mc.a.IsZero())
		mc.status.SetNegativeIf(mc.a.IsNegative())

	case instructions.Lda:
		mc.a.Load(value)
		mc.status.SetZeroIf(mc.a.IsZero())
		mc.status.SetNegativeIf(mc.a.IsNegative())

	case instructions.Ldx:
		mc.x.Load(value)
		mc.status.SetZeroIf(mc.x.IsZero())
		mc.status.SetNegativeIf(mc.x.IsNegative())

	case instructions.Ldy:
		mc.y.Load(value)
		mc.status.SetZeroIf(mc.y.IsZero())
		mc.status.SetNegativeIf(mc.y.IsNegative())

	case instructions.Sta:
		mc.bus.Write(address, mc.a.Value())

	case instructions.Stx:
		mc.bus.Write(address, mc.x.Value())

	case instructions.Sty:
		mc.bus.Write(address, mc.y.Value())

	case instructions.Inx:
		mc.x.Increment()
		mc.status.SetZeroIf(mc.x.IsZero())
		mc.status.SetNegativeIf(mc.x.IsNegative())

	case instructions.Iny:
		mc.y.Increment()
		mc.status.SetZeroIf(mc.y.IsZero())
		mc.status.SetNegativeIf(mc.y.IsNegative())

	case instructions.Dex:
		mc.x.Decrement()
		mc.status.SetZeroIf(mc.x.IsZero())
		mc.status.SetNegativeIf(mc.x.IsNegative())

	case instructions.Dey:
		mc.y.Decrement()
		mc.status.SetZeroIf(mc.y.IsZero())
		mc.status.SetNegativeIf(mc.y.IsNegative())

	case instructions.Asl:
		mc.status.SetCarryIf(r.ASL())
		mc.status.SetZeroIf(r.IsZero())
		mc.status.SetNegativeIf(r.IsNegative())

	case instructions.Lsr:
		mc.status.SetCarryIf(r.LSR())
		mc.status.SetZeroIf(r.IsZero())
		mc.status.SetNegativeIf(r.IsNegative())

	case instructions.Rol:
		mc.status.SetCarryIf(r.ROL(mc.status.Carry))
		mc.status.SetZeroIf(r.IsZero())
		mc.status.SetNegativeIf(r.IsNegative())

	case instructions.Ror:
		mc.status.SetCarryIf(r.ROR(mc.status.Carry))
		mc.status.SetZeroIf(r.IsZero())
		mc.status.SetNegativeIf(r.IsNegative())

	case instructions.Inc:
		r.Increment()
		mc.status.SetZeroIf(r.IsZero())
		mc.status.SetNegativeIf(r.IsNegative())

	case instructions.Dec:
		r.Decrement()
		mc.status.SetZeroIf(r.IsZero())
		mc.status.SetNegativeIf(r.IsNegative())

	case instructions.Adc:
		if mc.status.DecimalMode {
			mc.status.Carry,
				mc.status.Zero,
				mc.status.Overflow,
				mc.status.Negative = mc.a.AddDecimal(value, mc.status.Carry)
		} else {
			carry, overflow := mc.a.Add(value, mc.status.Carry)
			mc.status.SetCarryIf(carry)
			mc.status.SetOverflowIf(overflow)
			mc.status.SetZeroIf(mc.a.IsZero())
			mc.status.SetNegativeIf(mc.a.IsNegative())
		}

	case instructions.Sbc:
		if mc.status.DecimalMode {
			mc.status.Carry,
				mc.status.Zero,
				mc.status.Overflow,
				mc.status.Negative = mc.a.SubtractDecimal(value, mc.status.Carry)
		} else {
			carry, overflow := mc.a.Subtract(value, mc.status.Carry)
			mc.status.SetCarryIf(carry)
			mc.status.SetOverflowIf(overflow)
			mc.status.SetZeroIf(mc.a.IsZero())
			mc.status.SetNegativeIf(mc.a.IsNegative())
		}

	case instructions.Cmp:
		mc.compare(mc.a, value)

	case instructions.Cpx:
		mc.compare(mc.x, value)

	case instructions.Cpy:
		mc.compare(mc.y, value)

	case instructions.Bit:
		mc.status.SetZeroIf(mc.a.Value()&value == 0)
		mc.status.SetNegativeIf(value&0x80 == 0x80)
		mc.status.SetOverflowIf(value&0x40 == 0x40)

	case instructions.Jmp:
		mc.jump(address)

	case instructions.Bcc:
		mc.branch(!mc.status.Carry, ins.Operand8(), &result)

	case instructions.Bcs:
		mc.branch(mc.status.Carry, ins.Operand8(), &result)

	case instructions.Beq:
		mc.branch(mc.status.Zero, ins.Operand8(), &result)

	case instructions.Bmi:
		mc.branch(mc.status.Negative, ins.Operand8(), &result)

	case instructions.Bne:
		mc.branch(!mc.status.Zero, ins.Operand8(), &result)

	case instructions.Bpl:
		mc.branch(!mc.status.Negative, ins.Operand8(), &result)

	case instructions.Bvc:
		mc.branch(!mc.status.Overflow, ins.Operand8(), &result)

	case instructions.Bvs:
		mc.branch(mc.status.Overflow, ins.Operand8(), &result)

	case instructions.Jsr:
		// the address pushed is the address of the last byte of the JSR
		// instruction
		ret := next - 1
		mc.push(uint8(ret >> 8))
		mc.push(uint8(ret))
		mc.jump(address)

	case instructions.Rts:
		lo := mc.pull()
		hi := mc.pull()
		mc.jump((uint16(hi)<<8 | uint16(lo)) + 1)

	case instructions.Brk:
		// the return address skips the padding byte that follows BRK
		ret := ins.Address + 2
		mc.push(uint8(ret >> 8))
		mc.push(uint8(ret))
		mc.push(mc.status.Value() | 0x10)
		mc.status.SetBreakIf(true)
		mc.status.SetInterruptIf(true)
		mc.jump(mc.read16Bit(memory.IRQ, memory.IRQ+1))
		if mc.haltOnBRK {
			mc.halt(nil)
		}

	case instructions.Rti:
		mc.status.Load(mc.pull())
		lo := mc.pull()
		hi := mc.pull()
		mc.jump(uint16(hi)<<8 | uint16(lo))
	}

	// write back the result of read-modify-write instructions
	if r == &mc.acc8 {
		mc.bus.Write(address, r.Value())
	}

	return result
}

func (mc *CPU) compare(r registers.Register, value uint8) {
	carry, zero, negative := r.Compare(value)
	mc.status.SetCarryIf(carry)
	mc.status.SetZeroIf(zero)
	mc.status.SetNegativeIf(negative)
}
