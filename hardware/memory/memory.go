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

package memory

import (
	"fmt"
	"slices"
	"strings"
)

// Cell is a single location in memory that has been written to.
type Cell struct {
	Address uint16
	Data    uint8
}

func (c Cell) String() string {
	return fmt.Sprintf("$%04x = $%02x", c.Address, c.Data)
}

// Memory is a sparse implementation of the Bus interface. Only locations
// that have been written to are stored.
type Memory struct {
	cells map[uint16]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	return &Memory{
		cells: make(map[uint16]uint8),
	}
}

// Clone returns a copy of memory that shares nothing with the original.
func (mem *Memory) Clone() *Memory {
	c := NewMemory()
	for a, d := range mem.cells {
		c.cells[a] = d
	}
	return c
}

// Reset clears every location in memory.
func (mem *Memory) Reset() {
	clear(mem.cells)
}

// Read implements the Bus interface. Locations that have never been written
// to return zero.
func (mem *Memory) Read(address uint16) uint8 {
	return mem.cells[address]
}

// Write implements the Bus interface.
func (mem *Memory) Write(address uint16, data uint8) {
	mem.cells[address] = data
}

// Peek returns the value at the address. Used by the shell to inspect memory.
func (mem *Memory) Peek(address uint16) uint8 {
	return mem.Read(address)
}

// Poke changes the value at the address. Used by the shell to modify memory.
func (mem *Memory) Poke(address uint16, data uint8) {
	mem.Write(address, data)
}

// Len returns the number of locations that have been written to.
func (mem *Memory) Len() int {
	return len(mem.cells)
}

// Snapshot returns every written location in address order. The returned
// slice is a copy and can be kept after memory has changed.
func (mem *Memory) Snapshot() []Cell {
	s := make([]Cell, 0, len(mem.cells))
	for a, d := range mem.cells {
		s = append(s, Cell{Address: a, Data: d})
	}
	slices.SortFunc(s, func(a, b Cell) int {
		return int(a.Address) - int(b.Address)
	})
	return s
}

// String returns a hex dump of every sixteen byte row of memory that
// contains at least one written location.
func (mem *Memory) String() string {
	snap := mem.Snapshot()
	if len(snap) == 0 {
		return "memory is empty"
	}

	s := strings.Builder{}
	s.WriteString("        -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("      ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")

	row := -1
	for _, c := range snap {
		r := int(c.Address >> 4)
		if r == row {
			continue
		}
		row = r
		s.WriteString(fmt.Sprintf("%03X- | ", row))
		for x := 0; x < 16; x++ {
			s.WriteString(fmt.Sprintf(" %02x", mem.Read(uint16(row<<4|x))))
		}
		s.WriteString("\n")
	}

	return strings.TrimSuffix(s.String(), "\n")
}
