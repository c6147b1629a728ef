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

package disassembly

import (
	"fmt"
	"io"
	"strings"

	"github.com/emu6502/emu6502/curated"
	"github.com/emu6502/emu6502/hardware/cpu/instructions"
)

// Disassembly represents the disassembly of a single program.
type Disassembly struct {
	Program []uint8
	Entries []*Entry

	// if the program ends part way through an instruction then the decoding
	// error is stored here. Entries contains every instruction before the
	// truncated instruction
	Truncated error
}

// FromProgram disassembles the program. A program that ends part way through
// an instruction returns the disassembly of the complete instructions along
// with the decoding error.
func FromProgram(program []uint8) (*Disassembly, error) {
	dsm := &Disassembly{
		Program: program,
	}

	cursor := 0
	for cursor < len(program) {
		ins, next, err := instructions.Decode(program, cursor)
		if err != nil {
			dsm.Truncated = curated.Errorf("disassembly: %v", err)
			return dsm, dsm.Truncated
		}
		dsm.Entries = append(dsm.Entries, newEntry(len(dsm.Entries)+1, ins))
		cursor = next
	}

	return dsm, nil
}

// GetEntryByAddress returns the entry for the instruction starting at the
// address. Returns false if no instruction starts at that address.
func (dsm *Disassembly) GetEntryByAddress(address uint16) (*Entry, bool) {
	for _, e := range dsm.Entries {
		if e.Instruction.Address == address {
			return e, true
		}
		if e.Instruction.Address > address {
			break
		}
	}
	return nil, false
}

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	// prefix each line with a right-aligned line number
	LineNumbers bool

	// include the address and raw bytes of each instruction
	Address  bool
	ByteCode bool
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	for _, e := range dsm.Entries {
		if err := dsm.WriteEntry(output, attr, e); err != nil {
			return err
		}
	}
	return nil
}

// WriteEntry writes a single entry to io.Writer.
func (dsm *Disassembly) WriteEntry(output io.Writer, attr WriteAttr, e *Entry) error {
	s := strings.Builder{}
	if attr.LineNumbers {
		s.WriteString(fmt.Sprintf("%3d: ", e.Line))
	}
	if attr.Address {
		s.WriteString(e.Address)
		s.WriteString("  ")
	}
	if attr.ByteCode {
		s.WriteString(fmt.Sprintf("%-8s  ", e.Bytecode))
	}
	s.WriteString(e.String())
	s.WriteString("\n")

	_, err := io.WriteString(output, s.String())
	if err != nil {
		return curated.Errorf("disassembly: %v", err)
	}
	return nil
}

// Disassemble returns the disassembly of the program as a string, one
// instruction per line. If lineNumbers is true each line is prefixed with a
// right-aligned three digit line number and a colon.
func Disassemble(program []uint8, lineNumbers bool) (string, error) {
	dsm, err := FromProgram(program)

	s := strings.Builder{}
	_ = dsm.Write(&s, WriteAttr{LineNumbers: lineNumbers})

	return s.String(), err
}
