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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/emu6502/emu6502/test"
)

func TestVersionMode(t *testing.T) {
	var out strings.Builder
	test.ExpectEquality(t, launch([]string{"version"}, &out), 0)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "emu6502 "))
}

func TestHelp(t *testing.T) {
	var out strings.Builder
	test.ExpectEquality(t, launch([]string{"-help"}, &out), 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "available modes: SHELL, RUN, DISASM, PERFORMANCE, VERSION"))
}

func TestDisasmMode(t *testing.T) {
	var out strings.Builder
	test.ExpectEquality(t, launch([]string{"disasm"}, &out), 0)
	test.ExpectEquality(t, out.String(), "  1: ADC #$ff\n  2: ADC #$0a\n  3: STA $0a\n")

	out.Reset()
	test.ExpectEquality(t, launch([]string{"DISASM", "-linenumbers=false", "-summary", "builtin"}, &out), 0)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "ADC #$ff\nADC #$0a\nSTA $0a\n3 instructions (0 unknown) in 6 bytes. sha1 "))
}

func TestDisasmMode_file(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prog.bin")
	test.DemandSuccess(t, os.WriteFile(fn, []uint8{0x6c, 0xff, 0x02, 0xea}, 0o644))

	var out strings.Builder
	test.ExpectEquality(t, launch([]string{"disasm", fn}, &out), 0)
	test.ExpectEquality(t, out.String(), "  1: JMP $02ff\n  2: NOP\n")

	// truncated program is disassembled as far as possible
	test.DemandSuccess(t, os.WriteFile(fn, []uint8{0xea, 0x6c, 0xff}, 0o644))
	out.Reset()
	test.ExpectEquality(t, launch([]string{"disasm", fn}, &out), 20)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "  1: NOP\n* error in DISASM mode: "))
}

func TestRunMode(t *testing.T) {
	var out strings.Builder
	test.ExpectEquality(t, launch([]string{"run"}, &out), 0)
	test.ExpectEquality(t, out.String(), "3 instructions, 7 cycles\nPC=$0006 A=$09 X=$00 Y=$00 SP=$ff SR=nv-bdizC\n")

	out.Reset()
	test.ExpectEquality(t, launch([]string{"run", "-trace"}, &out), 0)
	test.ExpectEquality(t, out.String(), "$0000 ADC #$ff [2]\n$0002 ADC #$0a [2]\n$0004 STA $0a [3]\n"+
		"3 instructions, 7 cycles\nPC=$0006 A=$09 X=$00 Y=$00 SP=$ff SR=nv-bdizC\n")
}

func TestRunMode_limit(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "loop.bin")
	test.DemandSuccess(t, os.WriteFile(fn, []uint8{0x4c, 0x00, 0x00}, 0o644))

	var out strings.Builder
	test.ExpectEquality(t, launch([]string{"run", "-limit", "2", fn}, &out), 20)
	test.ExpectSuccess(t, strings.HasSuffix(out.String(), "* error in RUN mode: cpu: step limit of 2 reached\n"))

	out.Reset()
	test.ExpectEquality(t, launch([]string{"run", "-limit", "2", "-trace", fn}, &out), 20)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "$0000 JMP $0000 [3]\n$0000 JMP $0000 [3]\n2 instructions, 6 cycles\n"))
}

func TestArguments(t *testing.T) {
	var out strings.Builder
	test.ExpectEquality(t, launch([]string{"run", "a.bin", "b.bin"}, &out), 20)
	test.ExpectSuccess(t, strings.Contains(out.String(), "too many arguments for RUN mode"))

	out.Reset()
	test.ExpectEquality(t, launch([]string{"disasm", filepath.Join(t.TempDir(), "missing.bin")}, &out), 20)

	out.Reset()
	test.ExpectEquality(t, launch([]string{"run", "-hash", "0000", "builtin"}, &out), 20)
	test.ExpectSuccess(t, strings.Contains(out.String(), "romloader: unexpected hash value"))
}

func TestPerformanceMode(t *testing.T) {
	var out strings.Builder
	test.ExpectEquality(t, launch([]string{"performance", "-duration", "20ms"}, &out), 0)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "running builtin for 20ms\n"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "MHz equivalent"))

	out.Reset()
	test.ExpectEquality(t, launch([]string{"performance", "-duration", "soon"}, &out), 20)
	test.ExpectSuccess(t, strings.Contains(out.String(), "* error in PERFORMANCE mode: performance: "))
}
