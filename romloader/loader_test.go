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

package romloader_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/emu6502/emu6502/curated"
	"github.com/emu6502/emu6502/hardware/cpu/instructions"
	"github.com/emu6502/emu6502/romloader"
	"github.com/emu6502/emu6502/test"
)

func TestBuiltin(t *testing.T) {
	ld := romloader.NewLoader("")
	test.ExpectSuccess(t, ld.IsBuiltin())
	test.ExpectEquality(t, ld.ShortName(), "builtin")
	test.ExpectFailure(t, ld.HasLoaded())

	test.DemandSuccess(t, ld.Load())
	test.ExpectSuccess(t, ld.HasLoaded())
	test.ExpectEquality(t, len(ld.Data), len(romloader.Builtin))
	test.ExpectEquality(t, len(ld.Hash), 40)

	count, unknown, err := ld.Validate()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, count, 3)
	test.ExpectEquality(t, unknown, 0)

	// the built-in program is not shared with the loader
	ld.Data[0] = 0xea
	test.ExpectEquality(t, romloader.Builtin[0], uint8(0x69))

	ld = romloader.NewLoader("BUILTIN")
	test.ExpectSuccess(t, ld.IsBuiltin())
}

func TestFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prog.bin")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{0xa9, 0x01, 0x02, 0xea}, 0o644))

	ld := romloader.NewLoader(fn)
	test.ExpectFailure(t, ld.IsBuiltin())
	test.ExpectEquality(t, ld.ShortName(), "prog")
	test.ExpectSuccess(t, ld.HasRecognisedExtension())

	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, len(ld.Data), 4)
	test.ExpectEquality(t, len(ld.Hash), 40)

	count, unknown, err := ld.Validate()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, count, 3)
	test.ExpectEquality(t, unknown, 1)

	// a second load does not change the data
	test.DemandSuccess(t, os.WriteFile(fn, []byte{0xea}, 0o644))
	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, len(ld.Data), 4)

	// the file has changed so the hash no longer matches
	h := ld.Hash
	ld = romloader.NewLoader(fn)
	ld.Hash = h
	err = ld.Load()
	test.ExpectSuccess(t, curated.Is(err, romloader.ErrHash))
}

func TestMissingFile(t *testing.T) {
	ld := romloader.NewLoader(filepath.Join(t.TempDir(), "missing.bin"))
	test.ExpectFailure(t, ld.Load())
	test.ExpectFailure(t, ld.HasLoaded())
}

func TestEmptyFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "empty.rom")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{}, 0o644))

	ld := romloader.NewLoader(fn)
	err := ld.Load()
	test.ExpectSuccess(t, curated.Is(err, romloader.ErrEmpty))

	_, _, err = ld.Validate()
	test.ExpectSuccess(t, curated.Is(err, romloader.ErrEmpty))
}

func TestTruncated(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "truncated.txt")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{0xea, 0xa9}, 0o644))

	ld := romloader.NewLoader(fn)
	test.ExpectFailure(t, ld.HasRecognisedExtension())
	test.DemandSuccess(t, ld.Load())

	count, _, err := ld.Validate()
	test.ExpectSuccess(t, curated.Is(err, romloader.ErrInvalid))
	test.ExpectSuccess(t, curated.Has(err, instructions.ErrTruncated))
	test.ExpectEquality(t, count, 1)
}

func TestPadding(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "short.bin")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{0xea, 0xa9}, 0o644))

	ld := romloader.NewLoader(fn)
	ld.Pad = 16
	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, len(ld.Data), 16)
	test.ExpectEquality(t, ld.Data[15], uint8(0x00))

	// padding completes the truncated instruction
	_, _, err := ld.Validate()
	test.ExpectSuccess(t, err)

	// padding never shortens a program
	ld = romloader.NewLoader(fn)
	ld.Pad = 1
	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, len(ld.Data), 2)
}

func TestTooLarge(t *testing.T) {
	ld := romloader.NewLoader("")
	ld.Pad = romloader.MaxSize + 1
	err := ld.Load()
	test.ExpectSuccess(t, curated.Is(err, romloader.ErrTooLarge))
}

func TestHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/prog.bin" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte{0x69, 0x01})
	}))
	defer srv.Close()

	ld := romloader.NewLoader(srv.URL + "/prog.bin")
	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, len(ld.Data), 2)

	ld = romloader.NewLoader(srv.URL + "/missing.bin")
	test.ExpectFailure(t, ld.Load())
}

func TestUnsupportedScheme(t *testing.T) {
	ld := romloader.NewLoader("ftp://example.com/prog.bin")
	err := ld.Load()
	test.ExpectSuccess(t, curated.Is(err, romloader.ErrScheme))
}
