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

// Package terminal defines the operations required for command-line
// interaction with the emulator shell.
//
// Terminal interaction happens through the Terminal interface. There are two
// implementations of this interface: the PlainTerminal and the
// ColorTerminal, found respectively in the plainterm and colorterm
// sub-packages.
//
// History is not handled by this package. An implementation must provide
// history itself if it wants it. The ColorTerminal provides an example.
//
// Tab completion is handled by the commandline package.
package terminal
