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
)

// the stack pointer is an offset into page one.
const stackPage = uint16(0x0100)

// StackPointer is the 8bit stack pointer. Values pushed onto the stack are
// written to page one of memory at the address indicated by the pointer.
// The stack grows downwards and the pointer wraps within page one.
type StackPointer struct {
	value uint8
}

// NewStackPointer is the preferred method of initialisation for StackPointer.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{value: val}
}

// Label returns an identifying string for the SP.
func (sp StackPointer) Label() string {
	return "SP"
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("$%02x", sp.value)
}

// Value returns the 8bit offset of the stack pointer.
func (sp StackPointer) Value() uint8 {
	return sp.value
}

// Address returns the 16bit address the stack pointer points to.
func (sp StackPointer) Address() uint16 {
	return stackPage | uint16(sp.value)
}

// Load a value into the SP.
func (sp *StackPointer) Load(val uint8) {
	sp.value = val
}

// Push returns the address to write the pushed value to and moves the
// pointer down.
func (sp *StackPointer) Push() uint16 {
	a := sp.Address()
	sp.value--
	return a
}

// Pull moves the pointer up and returns the address to read the pulled
// value from.
func (sp *StackPointer) Pull() uint16 {
	sp.value++
	return sp.Address()
}
