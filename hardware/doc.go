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

// Package hardware is the base package for the emulated 6502 system. The
// system is made up of a CPU and the memory the CPU reads and writes.
//
// The CPU is found in the cpu sub-package and the memory model in the memory
// sub-package. The program being executed is not part of memory. It is held
// in a separate read-only area, indexed by the CPU's program counter.
package hardware
