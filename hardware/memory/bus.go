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

package memory

// Bus defines the operations for the memory system when accessed from the
// CPU. Every address in the 16bit range is valid and accesses can not fail.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// Addresses with special meaning to the CPU.
const (
	// the stack occupies page one. the stack pointer is an offset into this
	// page
	StackOrigin = uint16(0x0100)

	// the address from which the BRK instruction takes its new program counter
	IRQ = uint16(0xfffe)
)
