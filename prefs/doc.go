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

// Package prefs facilitates the storage of preferential values in the
// emu6502 system. It is a layer on top of the file system that allows values
// to be saved and loaded by name.
//
// The Bool, Int and String types hold a single preference value. They are
// safe to read and write from more than one goroutine. Callback functions
// can be attached to each value and will be called before and after a new
// value is set.
//
// A value is associated with a name and a file with the Disk type:
//
//	dsk, err := prefs.NewDisk(pth)
//	var limit prefs.Int
//	err = dsk.Add("shell.runlimit", &limit)
//	err = dsk.Load()
//
// The preferences file is a text file with one "key :: value" entry per
// line, preceded by a warning that the file should not be edited by hand.
// Entries in the file that have not been added to the Disk are preserved
// when the Disk is saved.
//
// Values can also be specified on the command line with the -prefs flag. The
// argument is a list of "key::value" entries separated by semi-colons. These
// values are pushed onto a stack with PushCommandLineStack() and take
// priority over values loaded from disk.
package prefs
