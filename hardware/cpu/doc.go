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

// Package cpu emulates the 6502 microprocessor. Like all 8-bit processors of
// the era, the 6502 executes instructions according to the single byte value
// read from the location pointed to by the program counter. This single byte
// is the opcode and is looked up in the instruction table. The instruction
// definition for that opcode is then used to move execution of the program
// forward.
//
// The program is a slice of bytes and is not part of memory. The program
// counter is an index into the program. Memory is a separate 64KB address
// space used by the load, store and stack instructions.
//
//	mc := cpu.NewCPU(program)
//
//	for !mc.Halted() {
//		r, err := mc.Step()
//		if err != nil {
//			return err
//		}
//		fmt.Println(r)
//	}
//
// The CPU is halted once the program counter reaches the end of the program.
// The Run() function steps the CPU until it is halted, until a step limit is
// reached or until the context is cancelled. A program can loop forever so
// callers should always provide one or the other.
//
// Unknown opcodes are executed as a single byte instruction that does
// nothing and takes no cycles. An instruction that is cut short by the end
// of the program is a fault. The CPU is halted and the error is returned by
// Step().
//
// The state of the CPU is only accessible through methods. Registers can not
// be changed except by executing instructions or by calling Reset().
package cpu
