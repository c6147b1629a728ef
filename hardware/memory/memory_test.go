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

package memory_test

import (
	"strings"
	"testing"

	"github.com/emu6502/emu6502/hardware/memory"
	"github.com/emu6502/emu6502/test"
)

func TestUnwrittenReadsZero(t *testing.T) {
	mem := memory.NewMemory()
	for _, a := range []uint16{0x0000, 0x00ff, 0x0100, 0x0200, 0xfffe, 0xffff} {
		test.ExpectEquality(t, mem.Read(a), 0, a)
	}
	test.ExpectEquality(t, mem.Len(), 0)
}

func TestReadWrite(t *testing.T) {
	mem := memory.NewMemory()

	mem.Write(0x0200, 0x42)
	test.ExpectEquality(t, mem.Read(0x0200), 0x42)

	// neighbouring locations are unaffected
	test.ExpectEquality(t, mem.Read(0x01ff), 0)
	test.ExpectEquality(t, mem.Read(0x0201), 0)

	// overwrite
	mem.Write(0x0200, 0x43)
	test.ExpectEquality(t, mem.Read(0x0200), 0x43)
	test.ExpectEquality(t, mem.Len(), 1)

	// extremes of the address space
	mem.Write(0x0000, 0x01)
	mem.Write(0xffff, 0x02)
	test.ExpectEquality(t, mem.Read(0x0000), 0x01)
	test.ExpectEquality(t, mem.Read(0xffff), 0x02)
}

func TestPeekPoke(t *testing.T) {
	mem := memory.NewMemory()
	mem.Poke(0x1234, 0xab)
	test.ExpectEquality(t, mem.Peek(0x1234), 0xab)

	// the same location is visible through the bus
	var bus memory.Bus = mem
	test.ExpectEquality(t, bus.Read(0x1234), 0xab)
	bus.Write(0x1234, 0xcd)
	test.ExpectEquality(t, mem.Peek(0x1234), 0xcd)
}

func TestReset(t *testing.T) {
	mem := memory.NewMemory()
	mem.Write(0x0010, 0x10)
	mem.Write(0x8000, 0x80)
	mem.Reset()
	test.ExpectEquality(t, mem.Len(), 0)
	test.ExpectEquality(t, mem.Read(0x0010), 0)
	test.ExpectEquality(t, mem.Read(0x8000), 0)
}

func TestSnapshot(t *testing.T) {
	mem := memory.NewMemory()
	mem.Write(0x8000, 0x80)
	mem.Write(0x0010, 0x10)
	mem.Write(0x0200, 0x02)

	snap := mem.Snapshot()
	test.DemandEquality(t, len(snap), 3)
	test.ExpectEquality(t, snap[0], memory.Cell{Address: 0x0010, Data: 0x10})
	test.ExpectEquality(t, snap[1], memory.Cell{Address: 0x0200, Data: 0x02})
	test.ExpectEquality(t, snap[2], memory.Cell{Address: 0x8000, Data: 0x80})
	test.ExpectEquality(t, snap[1].String(), "$0200 = $02")

	// snapshot is a copy
	mem.Write(0x0010, 0xff)
	test.ExpectEquality(t, snap[0].Data, 0x10)
}

func TestString(t *testing.T) {
	mem := memory.NewMemory()
	test.ExpectEquality(t, mem.String(), "memory is empty")

	mem.Write(0x0201, 0xaa)
	mem.Write(0x0202, 0xbb)
	s := mem.String()

	// two header lines and a single row
	lines := strings.Split(s, "\n")
	test.DemandEquality(t, len(lines), 3)
	test.ExpectEquality(t, strings.HasPrefix(lines[2], "020- | "), true)
	test.ExpectEquality(t, strings.Contains(lines[2], " 00 aa bb 00"), true)
}

func TestClone(t *testing.T) {
	mem := memory.NewMemory()
	mem.Write(0x0010, 0x10)

	c := mem.Clone()
	test.ExpectEquality(t, c.Read(0x0010), 0x10)

	c.Write(0x0010, 0x20)
	test.ExpectEquality(t, mem.Read(0x0010), 0x10)
	test.ExpectEquality(t, c.Read(0x0010), 0x20)
}
