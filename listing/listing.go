// This file is part of PhantomKey.
//
// PhantomKey is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// PhantomKey is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with PhantomKey.  If not, see <https://www.gnu.org/licenses/>.

package listing

import (
	"fmt"
	"io"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/phantomkey/phantomkey/compiler"
	"github.com/phantomkey/phantomkey/hid"
	"github.com/phantomkey/phantomkey/instructions"
)

// WriteAttr controls what is printed by the Write() function
type WriteAttr struct {
	// include the report bytes for each instruction
	ByteCode bool

	// title printed above the table. no title if empty
	Title string
}

// Write a table of the program to io.Writer. There is one row for each
// instruction and a footer showing the total size of the compiled output.
//
// Reports are created with an encoder that has no diagnostic sink, so
// untypeable characters are shown as zero reports without comment.
func Write(output io.Writer, prog compiler.Program, attr WriteAttr) error {
	if len(prog.Lines) != len(prog.Instructions) {
		return fmt.Errorf("listing: %d lines but %d instructions", len(prog.Lines), len(prog.Instructions))
	}

	enc := hid.NewEncoder(nil)

	tw := table.NewWriter()
	tw.SetOutputMirror(output)
	if attr.Title != "" {
		tw.SetTitle(attr.Title)
	}

	if attr.ByteCode {
		tw.AppendHeader(table.Row{"Line", "Opcode", "Arguments", "Report", "Size"})
	} else {
		tw.AppendHeader(table.Row{"Line", "Opcode", "Arguments", "Size"})
	}

	var total int
	for i, ins := range prog.Instructions {
		size := hid.ReportSize(ins)
		total += size

		row := table.Row{prog.Lines[i].Num, ins.Opcode().String(), Arguments(ins)}
		if attr.ByteCode {
			row = append(row, fmt.Sprintf("% 02x", enc.Encode(ins)))
		}
		row = append(row, size)
		tw.AppendRow(row)
	}

	if attr.ByteCode {
		tw.AppendFooter(table.Row{"", "", "", "total", total})
	} else {
		tw.AppendFooter(table.Row{"", "", "total", total})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Line", Align: text.AlignRight},
		{Name: "Size", Align: text.AlignRight},
	})

	tw.Render()

	return nil
}

// Arguments returns the canonical form of the instruction's arguments. This
// is the canonical form of the instruction without the opcode.
func Arguments(ins instructions.Instruction) string {
	s := ins.String()
	s = strings.TrimPrefix(s, ins.Opcode().String())
	return strings.TrimSpace(s)
}

// Graph writes a graphviz description of the parsed program to io.Writer.
// Useful for inspecting the instruction list produced by the parser.
func Graph(output io.Writer, prog compiler.Program) {
	memviz.Map(output, &prog)
}
