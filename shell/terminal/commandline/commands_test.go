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

package commandline_test

import (
	"strings"
	"testing"

	"github.com/emu6502/emu6502/curated"
	"github.com/emu6502/emu6502/shell/terminal/commandline"
	"github.com/emu6502/emu6502/test"
)

var template = []string{
	"PEEK %N",
	"POKE %N %N",
	"SHOW [ACCU|FLAGS]",
	"LOG (%N)",
	"SCRIPT %F",
	"EXIT",
}

func validate(t *testing.T, cmds *commandline.Commands, input string) error {
	t.Helper()
	return cmds.ValidateTokens(commandline.TokeniseInput(input))
}

func TestParseTemplate(t *testing.T) {
	cmds, err := commandline.ParseCommandTemplate(template)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cmds.Len(), len(template))
	test.ExpectEquality(t, cmds.String(), "EXIT\nLOG (%N)\nPEEK %N\nPOKE %N %N\nSCRIPT %F\nSHOW [ACCU|FLAGS]")
}

func TestParseTemplate_errors(t *testing.T) {
	var err error

	_, err = commandline.ParseCommandTemplate([]string{"FOO (a) [b|c]"})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, commandline.ErrTemplate))

	_, err = commandline.ParseCommandTemplate([]string{"FOO %X"})
	test.ExpectFailure(t, err)

	_, err = commandline.ParseCommandTemplate([]string{"FOO [a|b"})
	test.ExpectFailure(t, err)

	_, err = commandline.ParseCommandTemplate([]string{"FOO", "foo"})
	test.ExpectFailure(t, err)

	_, err = commandline.ParseCommandTemplate([]string{""})
	test.ExpectFailure(t, err)

	_, err = commandline.ParseCommandTemplate([]string{"FOO [a||b]"})
	test.ExpectFailure(t, err)
}

func TestValidation(t *testing.T) {
	cmds, err := commandline.ParseCommandTemplate(template)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, validate(t, cmds, "peek 10"))
	test.ExpectSuccess(t, validate(t, cmds, "PEEK $ff"))
	test.ExpectSuccess(t, validate(t, cmds, "peek 0x100"))
	test.ExpectSuccess(t, validate(t, cmds, "poke 1 2"))
	test.ExpectSuccess(t, validate(t, cmds, "show flags"))
	test.ExpectSuccess(t, validate(t, cmds, "show Accu"))
	test.ExpectSuccess(t, validate(t, cmds, "log"))
	test.ExpectSuccess(t, validate(t, cmds, "log 5"))
	test.ExpectSuccess(t, validate(t, cmds, `script "a b.lua"`))
	test.ExpectSuccess(t, validate(t, cmds, "exit"))

	err = validate(t, cmds, "")
	test.ExpectSuccess(t, curated.Is(err, commandline.ErrNoInput))

	err = validate(t, cmds, "jump")
	test.ExpectSuccess(t, curated.Is(err, commandline.ErrUnrecognised))

	err = validate(t, cmds, "peek")
	test.ExpectSuccess(t, curated.Is(err, commandline.ErrMissingArgs))
	test.ExpectEquality(t, err.Error(), "PEEK: missing argument (numeric argument)")

	err = validate(t, cmds, "peek foo")
	test.ExpectSuccess(t, curated.Is(err, commandline.ErrInvalidArgs))

	err = validate(t, cmds, "show regs")
	test.ExpectSuccess(t, curated.Is(err, commandline.ErrInvalidArgs))

	err = validate(t, cmds, "exit now please")
	test.ExpectSuccess(t, curated.Is(err, commandline.ErrTooManyArgs))
	test.ExpectEquality(t, err.Error(), "EXIT: too many arguments (now please)")
}

func TestValidation_resetsTokens(t *testing.T) {
	cmds, err := commandline.ParseCommandTemplate(template)
	test.DemandSuccess(t, err)

	tk := commandline.TokeniseInput("poke 1 2")
	test.DemandSuccess(t, cmds.ValidateTokens(tk))
	test.ExpectEquality(t, tk.Remaining(), 3)
}

func TestHelp(t *testing.T) {
	cmds, err := commandline.ParseCommandTemplate(template)
	test.DemandSuccess(t, err)

	err = cmds.AddHelp("help", map[string]string{
		"PEEK": "read a memory location",
	})
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, validate(t, cmds, "help"))
	test.ExpectSuccess(t, validate(t, cmds, "help peek"))
	test.ExpectFailure(t, validate(t, cmds, "help jump"))

	test.ExpectEquality(t, cmds.Help("peek"), "read a memory location\n\n  Usage: PEEK %N")
	test.ExpectSuccess(t, strings.HasPrefix(cmds.Help("poke"), "no help for POKE"))

	overview := cmds.HelpOverview()
	for _, k := range []string{"EXIT", "HELP", "LOG", "PEEK", "POKE", "SCRIPT", "SHOW"} {
		test.ExpectSuccess(t, strings.Contains(overview, k))
	}
	for _, l := range strings.Split(overview, "\n") {
		test.ExpectEquality(t, l, strings.TrimRight(l, " "))
	}

	err = cmds.AddHelp("HELP", nil)
	test.ExpectSuccess(t, curated.Is(err, commandline.ErrHelpDuplicated))
}

func TestParseNumber(t *testing.T) {
	n, err := commandline.ParseNumber("255")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 255)

	n, err = commandline.ParseNumber("$ff")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 255)

	n, err = commandline.ParseNumber("0x1FF")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 511)

	_, err = commandline.ParseNumber("ff")
	test.ExpectFailure(t, err)

	_, err = commandline.ParseNumber("")
	test.ExpectFailure(t, err)
}
