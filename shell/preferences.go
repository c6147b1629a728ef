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

package shell

import (
	"github.com/emu6502/emu6502/paths"
	"github.com/emu6502/emu6502/prefs"
)

// DefaultPrefsFile is the name of the preferences file in the resource
// directory.
const DefaultPrefsFile = "preferences"

// list of preference keys.
const (
	prefRunLimit    = "shell.runlimit"
	prefLineNumbers = "shell.linenumbers"
	prefHaltOnBRK   = "cpu.haltonbrk"
	prefColorTerm   = "shell.colorterm"
)

// Preferences defines and collates all the preference values used by the
// shell.
type Preferences struct {
	dsk *prefs.Disk

	// the maximum number of instructions executed by the RUN command. zero
	// means there is no limit
	RunLimit prefs.Int

	// line numbers in the output of the DISASSEMBLE command
	LineNumbers prefs.Bool

	// halt the CPU on a BRK instruction
	HaltOnBRK prefs.Bool

	// use the color terminal by default
	ColorTerm prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. If path is empty then the default preferences file in the
// resource directory is used. Values are loaded from disk if the file exists.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	if path == "" {
		var err error
		path, err = paths.ResourcePath("", DefaultPrefsFile)
		if err != nil {
			return nil, err
		}
	}

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add(prefRunLimit, &p.RunLimit)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add(prefLineNumbers, &p.LineNumbers)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add(prefHaltOnBRK, &p.HaltOnBRK)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add(prefColorTerm, &p.ColorTerm)
	if err != nil {
		return nil, err
	}

	if err := p.dsk.Load(); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.RunLimit.Set(1000000)
	_ = p.LineNumbers.Set(true)
	_ = p.HaltOnBRK.Set(false)
	_ = p.ColorTerm.Set(false)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Set the preference with the key. The value is converted as required.
func (p *Preferences) Set(key string, value string) error {
	return p.dsk.Set(key, value)
}

// runLimit returns the RunLimit preference as an int.
func (p *Preferences) runLimit() int {
	return p.RunLimit.Get().(int)
}
