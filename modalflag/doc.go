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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// Unlike flag.FlagSet, where Parse() is given the arguments, the arguments
// are first given to NewArgs() and Parse() is then called with no arguments.
// This allows the same argument list to be parsed in several layers, one
// layer per mode:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("SHELL", "RUN", "DISASM", "VERSION")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// The first sub-mode in the list is the default mode. After a successful
// Parse() the Mode() function returns the selected mode and flags for that
// mode can be added and parsed in the same way:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		limit := md.AddInt("limit", 0, "maximum number of instructions")
//		p, err := md.Parse()
//		...
//		run(md.GetArg(0), *limit)
//	}
//
// Sub-mode comparisons are case insensitive. Non-flag arguments that are not
// a sub-mode are returned by RemainingArgs() and GetArg().
//
// Help is handled automatically. The -help flag prints the flags and
// sub-modes for the current mode, along with any text given to
// AdditionalHelp(), and Parse() returns ParseHelp.
package modalflag
