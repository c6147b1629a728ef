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

// Package commandline facilitates parsing of command line input. Given a
// command template, it can be used to tokenise and validate user input. It
// also functions as a tab-completion engine, implementing the
// terminal.TabCompletion interface.
//
// The Commands type is the base product of the package. To create an instance
// of Commands, use ParseCommandTemplate() with a suitable template. An example
// template would be:
//
//	template := []string{
//		"RESET",
//		"PEEK %N",
//		"SHOW (ACCU|FLAGS)",
//		"SCRIPT %F",
//	}
//
// Each entry is a command keyword followed by zero or more arguments. An
// argument is either a placeholder, a group of alternatives in square
// brackets (required) or a group of alternatives in parentheses (optional).
// Alternatives are separated by the pipe symbol. The placeholders are:
//
//	%N	numeric argument. decimal, or hexadecimal with a 0x or $ prefix
//	%S	string argument
//	%F	filename argument
//
// Optional arguments can not be followed by required arguments.
//
// Once parsed, the resulting Commands instance can be used to validate input:
//
//	cmds, _ := ParseCommandTemplate(template)
//	toks := TokeniseInput("peek $0200")
//	err := cmds.ValidateTokens(toks)
//
// All validation is case-insensitive. Once validated the tokens can be acted
// upon knowing that they match the template.
//
// The TabCompletion type transforms input such that it more closely
// resembles a valid command. Given more than one possible completion, repeated
// calls to Complete() cycle through the options. A tab completion session is
// ended with a call to Reset().
package commandline
