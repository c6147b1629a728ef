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

// Package instructions defines the 6502 instruction set and decodes program
// bytes into instructions.
//
// There is one Definition for every opcode value. Opcodes that are not part
// of the documented instruction set map to a definition with the UKN
// operator and the None addressing mode. The definitions are found with the
// Lookup() function.
//
// The Decode() function reads the instruction at a position in the program
// and returns it along with the position of the next instruction. Decoding
// has no side effects and the same input always produces the same result.
package instructions
