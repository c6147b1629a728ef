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

package registers_test

import (
	"testing"

	"github.com/emu6502/emu6502/hardware/cpu/registers"
	rtest "github.com/emu6502/emu6502/hardware/cpu/registers/test"
	"github.com/emu6502/emu6502/test"
)

func TestRegister(t *testing.T) {
	var carry, overflow bool

	r8 := registers.NewRegister(0, "test")
	test.ExpectEquality(t, r8.IsZero(), true)
	rtest.ExpectRegister(t, r8, 0)
	test.ExpectEquality(t, r8.String(), "test=$00")

	// loading & addition
	r8.Load(127)
	rtest.ExpectRegister(t, r8, 127)
	carry, overflow = r8.Add(2, false)
	rtest.ExpectRegister(t, r8, 129)
	test.ExpectEquality(t, carry, false)
	test.ExpectEquality(t, overflow, true)

	// addition boundary
	r8.Load(255)
	test.ExpectEquality(t, r8.IsNegative(), true)
	carry, overflow = r8.Add(1, false)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, overflow, false)
	test.ExpectEquality(t, r8.IsZero(), true)
	rtest.ExpectRegister(t, r8, 0)

	// addition boundary with carry
	r8.Load(254)
	carry, overflow = r8.Add(1, true)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, overflow, false)
	test.ExpectEquality(t, r8.IsZero(), true)

	r8.Load(255)
	carry, overflow = r8.Add(1, true)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, overflow, false)
	rtest.ExpectRegister(t, r8, 1)

	// adding 255 with carry leaves the value unchanged and sets carry
	r8.Load(0x10)
	carry, _ = r8.Add(0xff, true)
	test.ExpectEquality(t, carry, true)
	rtest.ExpectRegister(t, r8, 0x10)

	// negative plus negative overflows into a positive
	r8.Load(0x80)
	carry, overflow = r8.Add(0xff, false)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, overflow, true)
	rtest.ExpectRegister(t, r8, 0x7f)

	// subtraction
	r8.Load(11)
	r8.Subtract(1, true)
	rtest.ExpectRegister(t, r8, 10)

	r8.Load(12)
	r8.Subtract(1, false)
	rtest.ExpectRegister(t, r8, 10)

	r8.Load(0x01)
	carry, _ = r8.Subtract(0x06, true)
	rtest.ExpectRegister(t, r8, 0xfb)
	test.ExpectEquality(t, carry, false)

	// subtract on boundary
	r8.Load(0)
	r8.Subtract(1, true)
	rtest.ExpectRegister(t, r8, 255)
	r8.Load(1)
	r8.Subtract(1, false)
	rtest.ExpectRegister(t, r8, 255)

	// signed overflow on subtraction
	r8.Load(0x80)
	_, overflow = r8.Subtract(0x01, true)
	test.ExpectEquality(t, overflow, true)
	rtest.ExpectRegister(t, r8, 0x7f)

	// logical operators
	r8.Load(0x21)
	r8.AND(0x01)
	rtest.ExpectRegister(t, r8, 0x01)
	r8.EOR(0xff)
	rtest.ExpectRegister(t, r8, 0xfe)
	r8.ORA(0x1)
	rtest.ExpectRegister(t, r8, 0xff)

	// shifts
	carry = r8.ASL()
	rtest.ExpectRegister(t, r8, 0xfe)
	test.ExpectEquality(t, carry, true)
	carry = r8.LSR()
	rtest.ExpectRegister(t, r8, 0x7f)
	test.ExpectEquality(t, carry, false)
	carry = r8.LSR()
	test.ExpectEquality(t, carry, true)

	// rotation
	r8.Load(0xff)
	carry = r8.ROL(false)
	rtest.ExpectRegister(t, r8, 0xfe)
	test.ExpectEquality(t, carry, true)
	carry = r8.ROR(true)
	rtest.ExpectRegister(t, r8, 0xff)
	test.ExpectEquality(t, carry, false)

	// increment and decrement wrap
	r8.Load(0xff)
	r8.Increment()
	rtest.ExpectRegister(t, r8, 0x00)
	r8.Decrement()
	rtest.ExpectRegister(t, r8, 0xff)
	test.ExpectEquality(t, r8.IsBitV(), true)
}

func TestCompare(t *testing.T) {
	r8 := registers.NewRegister(0x40, "A")

	carry, zero, negative := r8.Compare(0x40)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, zero, true)
	test.ExpectEquality(t, negative, false)

	carry, zero, negative = r8.Compare(0x41)
	test.ExpectEquality(t, carry, false)
	test.ExpectEquality(t, zero, false)
	test.ExpectEquality(t, negative, true)

	carry, zero, negative = r8.Compare(0x01)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, zero, false)
	test.ExpectEquality(t, negative, false)

	// register is unchanged
	rtest.ExpectRegister(t, r8, 0x40)
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0)
	test.ExpectEquality(t, pc.Address(), 0)

	pc.Add(2)
	test.ExpectEquality(t, pc.Address(), 2)
	test.ExpectEquality(t, pc.String(), "$0002")

	pc.Load(0xffff)
	test.ExpectEquality(t, pc.Add(1), true)
	test.ExpectEquality(t, pc.Address(), 0)

	// branching forwards and backwards
	pc.Load(0x0010)
	test.ExpectEquality(t, pc.Branch(0x05), false)
	test.ExpectEquality(t, pc.Address(), 0x0015)
	test.ExpectEquality(t, pc.Branch(0xfb), false)
	test.ExpectEquality(t, pc.Address(), 0x0010)

	// branching over a page boundary
	pc.Load(0x00fe)
	test.ExpectEquality(t, pc.Branch(0x04), true)
	test.ExpectEquality(t, pc.Address(), 0x0102)
	test.ExpectEquality(t, pc.Branch(0x80), true)
	test.ExpectEquality(t, pc.Address(), 0x0082)
}

func TestStackPointer(t *testing.T) {
	sp := registers.NewStackPointer(0xff)
	test.ExpectEquality(t, sp.Address(), 0x01ff)

	test.ExpectEquality(t, sp.Push(), 0x01ff)
	test.ExpectEquality(t, sp.Value(), 0xfe)
	test.ExpectEquality(t, sp.Pull(), 0x01ff)
	test.ExpectEquality(t, sp.Value(), 0xff)

	// the pointer wraps within page one
	test.ExpectEquality(t, sp.Pull(), 0x0100)
	test.ExpectEquality(t, sp.Push(), 0x0100)
	test.ExpectEquality(t, sp.Value(), 0xff)
}
