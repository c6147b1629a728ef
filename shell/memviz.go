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
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/emu6502/emu6502/curated"
	"github.com/emu6502/emu6502/paths"
	"github.com/emu6502/emu6502/shell/terminal"
)

// memviz writes a graphviz representation of the CPU to the named file. If
// filename is empty a unique filename is generated.
func (sh *Shell) memviz(filename string) error {
	if filename == "" {
		filename = paths.UniqueFilename("memviz", sh.loader.ShortName()) + ".dot"
	}

	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("memviz: %v", err)
	}

	memviz.Map(f, sh.cpu)

	if err := f.Close(); err != nil {
		return curated.Errorf("memviz: %v", err)
	}

	sh.printLine(terminal.StyleFeedback, "cpu written to %s", filename)

	return nil
}
