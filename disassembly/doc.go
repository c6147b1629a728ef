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

// Package disassembly produces human readable listings of 6502 programs.
//
// For quick disassemblies the Disassemble() function returns the listing of
// an entire program as a string. The FromProgram() function creates a
// Disassembly instance, which keeps the decoded entries for later use by the
// shell and which can be written with different attributes.
//
// Disassembly is linear. Every instruction is decoded starting from the
// first byte of the program and continuing with the byte following the
// previous instruction. Unknown opcodes are rendered as UKN and occupy a
// single byte.
//
// The operand of each instruction is shown as a dollar sign followed by two
// lower case hexadecimal digits per byte. Two byte operands are shown as a
// single value, most significant byte first. Immediate operands are preceded
// by a hash.
package disassembly
