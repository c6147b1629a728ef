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
	"os"
	"path/filepath"
	"testing"

	"github.com/emu6502/emu6502/shell/terminal/commandline"
	"github.com/emu6502/emu6502/test"
)

func TestTabCompletion(t *testing.T) {
	cmds, err := commandline.ParseCommandTemplate([]string{
		"TEST [arg]",
		"TEST1 [arg]",
		"FOO [bar|baz] wibble",
	})
	test.DemandSuccess(t, err)

	tc := commandline.NewTabCompletion(cmds)

	completion := tc.Complete("TE")
	test.ExpectEquality(t, completion, "TEST ")

	// next completion option
	completion = tc.Complete(completion)
	test.ExpectEquality(t, completion, "TEST1 ")

	// cycle back to the first option
	completion = tc.Complete(completion)
	test.ExpectEquality(t, completion, "TEST ")

	tc.Reset()
	completion = tc.Complete("TEST a")
	test.ExpectEquality(t, completion, "TEST ARG ")

	tc.Reset()
	completion = tc.Complete("FOO ba")
	test.ExpectEquality(t, completion, "FOO BAR ")
	completion = tc.Complete(completion)
	test.ExpectEquality(t, completion, "FOO BAZ ")

	// white space between tokens is normalised
	tc.Reset()
	completion = tc.Complete("FOO   bar     wib")
	test.ExpectEquality(t, completion, "FOO bar WIBBLE ")

	// input ending in a space completes the next argument
	tc.Reset()
	completion = tc.Complete("foo ")
	test.ExpectEquality(t, completion, "foo BAR ")

	// nothing to complete
	tc.Reset()
	test.ExpectEquality(t, tc.Complete("XYZ"), "XYZ")
	test.ExpectEquality(t, tc.Complete("XYZ a"), "XYZ a")
	test.ExpectEquality(t, tc.Complete("FOO bar wibble "), "FOO bar wibble ")
}

func TestTabCompletion_changedInput(t *testing.T) {
	cmds, err := commandline.ParseCommandTemplate([]string{
		"PEEK %N",
		"POKE %N %N",
		"PREFS",
	})
	test.DemandSuccess(t, err)

	tc := commandline.NewTabCompletion(cmds)
	test.ExpectEquality(t, tc.Complete("p"), "PEEK ")

	// input no longer matches the previous completion so the completion
	// starts again
	test.ExpectEquality(t, tc.Complete("pr"), "PREFS ")
}

func TestTabCompletion_filenames(t *testing.T) {
	dir := t.TempDir()
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "prog.bin"), []byte{0xea}, 0o644))
	test.DemandSuccess(t, os.Mkdir(filepath.Join(dir, "progs"), 0o755))

	cmds, err := commandline.ParseCommandTemplate([]string{
		"SCRIPT %F",
	})
	test.DemandSuccess(t, err)

	tc := commandline.NewTabCompletion(cmds)

	partial := filepath.Join(dir, "pro")
	completion := tc.Complete("SCRIPT " + partial)
	test.ExpectEquality(t, completion, "SCRIPT "+filepath.Join(dir, "prog.bin")+" ")

	completion = tc.Complete(completion)
	test.ExpectEquality(t, completion, "SCRIPT "+filepath.Join(dir, "progs")+string(filepath.Separator))
}
