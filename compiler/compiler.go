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

package compiler

import (
	"fmt"

	"github.com/phantomkey/phantomkey/hid"
	"github.com/phantomkey/phantomkey/instructions"
	"github.com/phantomkey/phantomkey/parser"
	"github.com/phantomkey/phantomkey/script"
)

// Program is a tokenised and parsed script. Lines and Instructions are the
// same length and Instructions[i] was parsed from Lines[i].
type Program struct {
	Lines        []script.Line
	Instructions []instructions.Instruction
}

// Parse tokenises and parses the script text. The error is the first error
// found and is either a script.LexError or one of the parser error types. The
// error is not wrapped so that it can be reported with the name of the stage
// that failed.
//
// On error the returned Program is empty.
func Parse(text string) (Program, error) {
	lines, err := script.Tokenise(text)
	if err != nil {
		return Program{}, err
	}

	prog, err := parser.Parse(lines)
	if err != nil {
		return Program{}, err
	}

	return Program{
		Lines:        lines,
		Instructions: prog,
	}, nil
}

// Compile encodes every instruction in order and returns the concatenated
// reports. Compile never fails. Diagnostics from the encoder are sent to log,
// which may be nil.
func Compile(prog []instructions.Instruction, log hid.Logger) []byte {
	var size int
	for _, ins := range prog {
		size += hid.ReportSize(ins)
	}

	enc := hid.NewEncoder(log)
	out := make([]byte, 0, size)
	for _, ins := range prog {
		out = enc.Append(out, ins)
	}

	return out
}

// CompileScript tokenises, parses and compiles the script text. No bytes are
// returned if the script contains an error.
func CompileScript(text string, log hid.Logger) ([]byte, error) {
	prog, err := Parse(text)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return Compile(prog.Instructions, log), nil
}
