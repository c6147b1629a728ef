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

// Package test contains helper functions for testing the registers package
// and the packages that use registers.
package test

import (
	"testing"

	"github.com/emu6502/emu6502/hardware/cpu/registers"
)

// ExpectRegister tests the value of a register against an expected value.
func ExpectRegister(t *testing.T, r registers.Register, expected uint8) {
	t.Helper()
	if r.Value() != expected {
		t.Errorf("unexpected register value (%s): got $%02x, wanted $%02x", r.Label(), r.Value(), expected)
	}
}

// ExpectFlags tests the status flags against a string in the same form as
// that produced by Flags.String().
func ExpectFlags(t *testing.T, f registers.Flags, expected string) {
	t.Helper()
	if f.String() != expected {
		t.Errorf("unexpected flags: got %s, wanted %s", f.String(), expected)
	}
}
