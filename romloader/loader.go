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

package romloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/emu6502/emu6502/curated"
	"github.com/emu6502/emu6502/hardware/cpu/instructions"
)

// Sentinal error patterns.
const (
	ErrEmpty    = "romloader: program is empty"
	ErrHash     = "romloader: unexpected hash value"
	ErrTooLarge = "romloader: program is too large (%d bytes)"
	ErrScheme   = "romloader: unsupported URL scheme (%s)"
	ErrInvalid  = "romloader: invalid program: %v"
)

// MaxSize is the largest program that can be addressed by the program
// counter.
const MaxSize = 0x10000

// BuiltinName is the name given to the built-in program.
const BuiltinName = "builtin"

// Builtin is the demonstration program used when no file is specified.
//
//	ADC #$ff
//	ADC #$0a
//	STA $0a
var Builtin = []uint8{0x69, 0xff, 0x69, 0x0a, 0x85, 0x0a}

// Loader is used to specify the program to be executed.
type Loader struct {
	// filename of program to load. can be a http or https URL. the empty
	// string indicates the built-in program
	Filename string

	// expected hash of the loaded program. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// pad the loaded data with zero bytes to this length. a value of zero or
	// less than the length of the data means no padding
	Pad int

	// copy of the loaded data. subsequent calls to Load() will not change
	// this data
	Data []uint8
}

// NewLoader is the preferred method of initialisation for the Loader type.
// An empty filename, or the name "builtin", selects the built-in program.
func NewLoader(filename string) Loader {
	filename = strings.TrimSpace(filename)
	if strings.EqualFold(filename, BuiltinName) {
		filename = ""
	}
	return Loader{
		Filename: filename,
	}
}

// IsBuiltin returns true if the loader refers to the built-in program.
func (ld Loader) IsBuiltin() bool {
	return ld.Filename == ""
}

// ShortName returns a shortened version of the Loader filename.
func (ld Loader) ShortName() string {
	if ld.IsBuiltin() {
		return BuiltinName
	}
	n := path.Base(ld.Filename)
	return strings.TrimSuffix(n, path.Ext(ld.Filename))
}

// HasRecognisedExtension returns true if the filename has one of the
// extensions in the FileExtensions list.
func (ld Loader) HasRecognisedExtension() bool {
	ext := strings.ToUpper(path.Ext(ld.Filename))
	return slices.Contains(FileExtensions[:], ext)
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the program data. Loader filenames with a valid scheme will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (ld *Loader) Load() error {
	if len(ld.Data) > 0 {
		return nil
	}

	var data []uint8

	if ld.IsBuiltin() {
		data = append(data, Builtin...)
	} else {
		scheme := "file"

		u, err := url.Parse(ld.Filename)
		if err == nil && len(u.Scheme) > 1 {
			scheme = u.Scheme
		}

		switch scheme {
		case "http":
			fallthrough
		case "https":
			resp, err := http.Get(ld.Filename)
			if err != nil {
				return curated.Errorf("romloader: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				return curated.Errorf("romloader: %v", resp.Status)
			}

			data, err = io.ReadAll(resp.Body)
			if err != nil {
				return curated.Errorf("romloader: %v", err)
			}

		case "file":
			f, err := os.Open(ld.Filename)
			if err != nil {
				return curated.Errorf("romloader: %v", err)
			}
			defer f.Close()

			data, err = io.ReadAll(f)
			if err != nil {
				return curated.Errorf("romloader: %v", err)
			}

		default:
			return curated.Errorf(ErrScheme, scheme)
		}
	}

	if len(data) == 0 {
		return curated.Errorf(ErrEmpty)
	}

	if ld.Pad > len(data) {
		data = append(data, make([]uint8, ld.Pad-len(data))...)
	}

	if len(data) > MaxSize {
		return curated.Errorf(ErrTooLarge, len(data))
	}

	// generate hash
	hash := fmt.Sprintf("%x", sha1.Sum(data))

	// check for hash consistency
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf(ErrHash)
	}

	ld.Hash = hash
	ld.Data = data

	return nil
}

// Validate decodes the loaded program from start to finish. Returns the number
// of instructions in the program and the number of those that are not in the
// documented instruction set.
//
// An error is returned if the program has not been loaded or if the final
// instruction is truncated. In that case the number of complete instructions
// is still returned.
func (ld Loader) Validate() (count int, unknown int, err error) {
	if len(ld.Data) == 0 {
		return 0, 0, curated.Errorf(ErrEmpty)
	}

	cursor := 0
	for cursor < len(ld.Data) {
		ins, next, err := instructions.Decode(ld.Data, cursor)
		if err != nil {
			return count, unknown, curated.Errorf(ErrInvalid, err)
		}
		count++
		if ins.Defn.IsUnknown() {
			unknown++
		}
		cursor = next
	}

	return count, unknown, nil
}
