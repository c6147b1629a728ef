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

package execution

// Bug describes a known bug in the NMOS 6502 that was triggered by an
// instruction.
type Bug string

// List of known bugs. All of them are reproduced by the emulation.
const (
	NoBug Bug = ""

	// JMP indirect with a pointer at the end of a page reads the high byte of
	// the destination from the start of the same page
	JmpIndirectAddressingBug Bug = "indirect addressing bug"

	// the zero page pointer used by (ind,X) and (ind),Y addressing wraps
	// within page zero when the pointer is at $ff
	ZeroPagePointerBug Bug = "zero page pointer bug"
)
