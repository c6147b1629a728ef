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

// Package logger is the central log repository for emu6502. Log entries are
// made with the Log() and Logf() functions. Entries are grouped by tag, a
// short string identifying the area of the emulator making the entry.
//
//	logger.Log(logger.Allow, "cpu", "halted")
//	logger.Logf(logger.Allow, "cpu", "unknown opcode %#02x", opcode)
//
// The detail argument of Log() can be a string, an error, a fmt.Stringer or
// any other type. Errors and Stringers are converted with the Error() and
// String() functions. Anything else is formatted with the %v verb.
//
// Consecutive entries with the same tag and detail are collapsed into a single
// entry with a repeat count.
//
// The Permission argument allows the caller to decide whether logging should
// be allowed in the current context. For example, a CPU instance used to
// decode a program speculatively may not want to add entries to the log.
// logger.Allow is a good default.
//
// The central log is limited in size. When the limit is reached the oldest
// entries are dropped. Instances of Logger other than the central log can be
// created with NewLogger().
package logger
