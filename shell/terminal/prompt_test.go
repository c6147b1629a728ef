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

package terminal_test

import (
	"testing"

	"github.com/emu6502/emu6502/shell/terminal"
	"github.com/emu6502/emu6502/test"
)

func TestPrompt(t *testing.T) {
	var p terminal.Prompt
	test.ExpectEquality(t, p.String(), "$(emu6502)> ")

	p.Content = " $0004 "
	test.ExpectEquality(t, p.String(), "$(emu6502 $0004)> ")
}
