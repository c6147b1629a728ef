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

package registers

// AddDecimal adds value to register as though both are packed binary coded
// decimal numbers. Returns new carry state and the zero, overflow and sign
// conditions as the NMOS 6502 produces them.
//
// The zero condition is taken from the binary sum. The overflow and sign
// conditions are taken after the units have been adjusted but before the
// tens are adjusted.
func (r *Register) AddDecimal(val uint8, carry bool) (rcarry, zero, overflow, sign bool) {
	var c int
	if carry {
		c = 1
	}

	a := int(r.value)
	b := int(val)

	zero = uint8(a+b+c) == 0

	units := (a & 0x0f) + (b & 0x0f) + c
	if units >= 0x0a {
		units = ((units + 0x06) & 0x0f) + 0x10
	}

	sum := (a & 0xf0) + (b & 0xf0) + units

	// the sum as a signed value, before the tens are adjusted
	signed := int(int8(uint8(a&0xf0))) + int(int8(uint8(b&0xf0))) + units
	overflow = signed < -128 || signed > 127
	sign = sum&0x80 == 0x80

	if sum >= 0xa0 {
		sum += 0x60
	}
	rcarry = sum >= 0x100

	r.value = uint8(sum)

	return rcarry, zero, overflow, sign
}

// SubtractDecimal subtracts value from register as though both are packed
// binary coded decimal numbers. The carry argument is the state of the carry
// flag. Returns new carry state and the zero, overflow and sign conditions.
//
// On the NMOS 6502 the carry, zero, overflow and sign conditions are the
// same as they would be for a binary subtraction.
func (r *Register) SubtractDecimal(val uint8, carry bool) (rcarry, zero, overflow, sign bool) {
	bin := *r
	rcarry, overflow = bin.Subtract(val, carry)
	zero = bin.IsZero()
	sign = bin.IsNegative()

	var c int
	if carry {
		c = 1
	}

	a := int(r.value)
	b := int(val)

	units := (a & 0x0f) - (b & 0x0f) + c - 1
	if units < 0 {
		units = ((units - 0x06) & 0x0f) - 0x10
	}

	diff := (a & 0xf0) - (b & 0xf0) + units
	if diff < 0 {
		diff -= 0x60
	}

	r.value = uint8(diff)

	return rcarry, zero, overflow, sign
}
