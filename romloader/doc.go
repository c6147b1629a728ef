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

// Package romloader is used to specify the program that is to be executed by
// the emulated CPU.
//
// When the program is ready to be loaded, the Load() function should be used.
// The Load() function handles loading of data from different sources.
// Currently local files and data over HTTP are supported.
//
// The simplest instance of the Loader type:
//
//	ld := romloader.Loader{
//		Filename: "roms/demo.bin",
//	}
//
// It is preferred however that the NewLoader() function is used. A Loader
// with an empty filename loads the built-in demonstration program.
//
// Once loaded, the Validate() function decodes the program from start to end
// and reports a truncated final instruction.
package romloader
