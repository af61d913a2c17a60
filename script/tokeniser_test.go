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

package script_test

import (
	"errors"
	"testing"

	"github.com/phantomkey/phantomkey/script"
	"github.com/phantomkey/phantomkey/test"
)

func TestEmptyScript(t *testing.T) {
	lines, err := script.Tokenise("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(lines), 0)
}

func TestCommentsAndBlankLines(t *testing.T) {
	lines, err := script.Tokenise("\n# a comment\n    \n\t# indented comment\n\n")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(lines), 0)
}

func TestWords(t *testing.T) {
	lines, err := script.Tokenise("STRING  Hello \t World\n  delay 100  \nENTER")
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(lines), 3)

	test.ExpectEquality(t, len(lines[0].Words), 3)
	test.ExpectEquality(t, lines[0].Opcode(), "STRING")
	test.ExpectEquality(t, lines[0].Args()[0], "Hello")
	test.ExpectEquality(t, lines[0].Args()[1], "World")
	test.ExpectEquality(t, lines[0].String(), "STRING Hello World")

	// opcode case is preserved. normalisation is the parser's job
	test.ExpectEquality(t, lines[1].Opcode(), "delay")
	test.ExpectEquality(t, lines[1].Args()[0], "100")

	test.ExpectEquality(t, lines[2].Opcode(), "ENTER")
	test.ExpectEquality(t, len(lines[2].Args()), 0)
}

func TestLineNumbers(t *testing.T) {
	lines, err := script.Tokenise("# header\n\nTAB\n# middle\nESCAPE\n")
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(lines), 2)
	test.ExpectEquality(t, lines[0].Num, 3)
	test.ExpectEquality(t, lines[1].Num, 5)
}

func TestCarriageReturns(t *testing.T) {
	lines, err := script.Tokenise("TAB\r\nSTRING abc\r\n")
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(lines), 2)
	test.ExpectEquality(t, lines[0].String(), "TAB")
	test.ExpectEquality(t, lines[1].String(), "STRING abc")
	test.ExpectEquality(t, lines[1].Num, 2)
}

// a hash that is not the first character of a line is an ordinary word
func TestHashInsideLine(t *testing.T) {
	lines, err := script.Tokenise("STRING #hashtag")
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(lines), 1)
	test.ExpectEquality(t, lines[0].Args()[0], "#hashtag")
}

func TestLexErrorMessage(t *testing.T) {
	var err error = script.LexError{Line: 12}
	test.ExpectEquality(t, err.Error(), "line 12: empty or invalid line")

	var lex script.LexError
	test.ExpectSuccess(t, errors.As(err, &lex))
	test.ExpectEquality(t, lex.Line, 12)
}

func TestDeterminism(t *testing.T) {
	const s = "STRING a b\n#c\nDELAY 1\n"
	a, err := script.Tokenise(s)
	test.DemandSuccess(t, err)
	b, err := script.Tokenise(s)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(a), len(b))
	for i := range a {
		test.ExpectEquality(t, a[i].String(), b[i].String())
		test.ExpectEquality(t, a[i].Num, b[i].Num)
	}
}
