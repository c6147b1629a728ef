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

import (
	"fmt"
	"strings"
)

// Flags is the status register of the CPU. Each of the seven flags is stored
// independently of the others.
//
// Flags is also used to describe which flags an instruction affects. In that
// context, a set flag means that the instruction may change that flag.
type Flags struct {
	Negative         bool
	Overflow         bool
	Break            bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// bit positions of each flag in the status byte.
const (
	maskNegative         = uint8(0x80)
	maskOverflow         = uint8(0x40)
	maskUnused           = uint8(0x20)
	maskBreak            = uint8(0x10)
	maskDecimalMode      = uint8(0x08)
	maskInterruptDisable = uint8(0x04)
	maskZero             = uint8(0x02)
	maskCarry            = uint8(0x01)
)

// the order in which flags are presented in the String() function. the
// unused bit is represented with a hyphen.
const flagLetters = "NV-BDIZC"

// NewFlags returns a Flags instance with every flag cleared.
func NewFlags() Flags {
	return Flags{}
}

// AllFlags returns a Flags instance with every flag set.
func AllFlags() Flags {
	var f Flags
	f.Load(0xff)
	return f
}

// FlagsOf returns a Flags instance with the flags named in letters set. The
// letters are those used by the String() function and are not case
// sensitive. The function panics if letters contains anything other than a
// flag letter. It is intended for use with constant strings.
func FlagsOf(letters string) Flags {
	var f Flags
	for _, r := range strings.ToUpper(letters) {
		m, ok := letterMask(r)
		if !ok {
			panic(fmt.Sprintf("registers: unknown flag letter %q", r))
		}
		f.Load(f.Mask() | m)
	}
	return f
}

func letterMask(r rune) (uint8, bool) {
	switch r {
	case 'N':
		return maskNegative, true
	case 'V':
		return maskOverflow, true
	case 'B':
		return maskBreak, true
	case 'D':
		return maskDecimalMode, true
	case 'I':
		return maskInterruptDisable, true
	case 'Z':
		return maskZero, true
	case 'C':
		return maskCarry, true
	}
	return 0, false
}

// Label returns the canonical name for the status register.
func (f Flags) Label() string {
	return "SR"
}

// String returns the flags in the form "NV-BDIZC". Clear flags are shown in
// lowercase.
func (f Flags) String() string {
	s := strings.Builder{}
	m := f.Mask()
	for i, r := range flagLetters {
		bit := uint8(0x80) >> i
		switch {
		case bit == maskUnused:
			s.WriteRune('-')
		case m&bit == bit:
			s.WriteRune(r)
		default:
			s.WriteRune(r + ('a' - 'A'))
		}
	}
	return s.String()
}

// Letters returns the letters of the flags that are set, in the order used
// by String(). An empty Flags returns the empty string.
func (f Flags) Letters() string {
	s := strings.Builder{}
	m := f.Mask()
	for i, r := range flagLetters {
		bit := uint8(0x80) >> i
		if bit != maskUnused && m&bit == bit {
			s.WriteRune(r)
		}
	}
	return s.String()
}

// Contains returns true if the flag named by letter is set.
func (f Flags) Contains(letter rune) bool {
	m, ok := letterMask(letter)
	if !ok {
		m, ok = letterMask(letter - ('a' - 'A'))
		if !ok {
			return false
		}
	}
	return f.Mask()&m == m
}

// Mask returns the flags as a bit mask in the same layout as the status byte
// but without the unused bit.
func (f Flags) Mask() uint8 {
	var v uint8
	if f.Negative {
		v |= maskNegative
	}
	if f.Overflow {
		v |= maskOverflow
	}
	if f.Break {
		v |= maskBreak
	}
	if f.DecimalMode {
		v |= maskDecimalMode
	}
	if f.InterruptDisable {
		v |= maskInterruptDisable
	}
	if f.Zero {
		v |= maskZero
	}
	if f.Carry {
		v |= maskCarry
	}
	return v
}

// Value converts the flags into a value suitable for pushing onto the stack.
// The unused bit is always set.
func (f Flags) Value() uint8 {
	return f.Mask() | maskUnused
}

// Load sets the flags from an 8 bit value (taken from the stack, for
// example). The unused bit is ignored.
func (f *Flags) Load(v uint8) {
	f.Negative = v&maskNegative == maskNegative
	f.Overflow = v&maskOverflow == maskOverflow
	f.Break = v&maskBreak == maskBreak
	f.DecimalMode = v&maskDecimalMode == maskDecimalMode
	f.InterruptDisable = v&maskInterruptDisable == maskInterruptDisable
	f.Zero = v&maskZero == maskZero
	f.Carry = v&maskCarry == maskCarry
}

// Reset clears every flag.
func (f *Flags) Reset() {
	*f = Flags{}
}

// SetCarryIf sets the carry flag if cond is true and clears it otherwise.
func (f *Flags) SetCarryIf(cond bool) {
	f.Carry = cond
}

// SetZeroIf sets the zero flag if cond is true and clears it otherwise.
func (f *Flags) SetZeroIf(cond bool) {
	f.Zero = cond
}

// SetInterruptIf sets the interrupt disable flag if cond is true and clears
// it otherwise.
func (f *Flags) SetInterruptIf(cond bool) {
	f.InterruptDisable = cond
}

// SetDecimalIf sets the decimal mode flag if cond is true and clears it
// otherwise.
func (f *Flags) SetDecimalIf(cond bool) {
	f.DecimalMode = cond
}

// SetBreakIf sets the break flag if cond is true and clears it otherwise.
func (f *Flags) SetBreakIf(cond bool) {
	f.Break = cond
}

// SetOverflowIf sets the overflow flag if cond is true and clears it
// otherwise.
func (f *Flags) SetOverflowIf(cond bool) {
	f.Overflow = cond
}

// SetNegativeIf sets the negative flag if cond is true and clears it
// otherwise.
func (f *Flags) SetNegativeIf(cond bool) {
	f.Negative = cond
}
