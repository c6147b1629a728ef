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

// Package registers implements the registers of the 6502 CPU. There are three
// types of register: the 8bit data registers (A, X and Y), the 16bit program
// counter and the 8bit stack pointer. The status flags are implemented by the
// Flags type.
//
// The data register type provides the arithmetic, logical and shift
// operations used by the CPU. All arithmetic wraps modulo 256 and never
// fails. The operations return the carry and overflow conditions they
// produce. Updating the status flags is the responsibility of the CPU. For
// instance, in the CPU, we might have this sequence of function calls:
//
//	a.Load(10)
//	a.Subtract(11, true)
//	flags.SetZeroIf(a.IsZero())
//
// In this case, the zero flag will be cleared.
package registers
