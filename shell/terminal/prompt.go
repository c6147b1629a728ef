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

package terminal

import (
	"fmt"
	"strings"
)

// Prompt specifies the prompt text.
type Prompt struct {
	// additional information about the state of the CPU. may be empty
	Content string
}

// String returns the prompt with standard decoration. Good for terminals
// with no graphical capabilities.
func (p Prompt) String() string {
	c := strings.TrimSpace(p.Content)
	if c == "" {
		return "$(emu6502)> "
	}
	return fmt.Sprintf("$(emu6502 %s)> ", c)
}
