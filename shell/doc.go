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

// Package shell implements the interactive command line for the emulator.
// The shell owns a single CPU instance and every command operates against
// it.
//
// Commands are case-insensitive. The HELP command lists the available
// commands and describes each one. Input and output is handled by an
// implementation of the terminal.Terminal interface, see the plainterm and
// colorterm packages.
//
// Preferences for the shell are stored on disk and can be changed with the
// PREFS command.
//
// Lua scripts can drive the CPU with the SCRIPT command. The following
// functions are available to a script:
//
//	step([n])         step the CPU n times (default 1). returns the cycles
//	                  taken by the last instruction
//	run([limit])      run the CPU until it halts. returns the number of
//	                  instructions executed
//	reset()           reset the CPU
//	peek(address)     returns the value in memory at address
//	poke(address, v)  writes v to memory at address
//	reg(name)         returns the value of register A, X, Y, PC, SP or CYCLES
//	flags()           returns the status register as a string
//	halted()          returns true if the CPU is halted
//	print(...)        prints to the terminal
package shell
