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

// Package memory implements the data memory of the emulated 6502 system.
//
// The Bus interface is how the CPU accesses memory. Any type implementing
// Read() and Write() can be connected to the CPU. The Memory type is the
// default implementation. It is a sparse memory covering the entire 16bit
// address space. Locations that have never been written read as zero.
//
// Memory does not hold the program being executed. The CPU fetches
// instructions from a separate read-only program image.
package memory
