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

package script

import (
	"fmt"
	"strings"
)

// CommentPrefix begins a full-line comment. The prefix is only recognised
// as the first non-whitespace character of a line.
const CommentPrefix = "#"

// Line is a single command line from a script. The first word is the opcode
// and any remaining words are arguments.
type Line struct {
	// the 1-indexed line number in the source text. used for error reporting
	// only
	Num int

	Words []string
}

// Opcode returns the first word of the line exactly as it was written.
func (l Line) Opcode() string {
	if len(l.Words) == 0 {
		return ""
	}
	return l.Words[0]
}

// Args returns the words following the opcode.
func (l Line) Args() []string {
	if len(l.Words) == 0 {
		return nil
	}
	return l.Words[1:]
}

func (l Line) String() string {
	return strings.Join(l.Words, " ")
}

// LexError is returned by Tokenise() when a line cannot be divided into words.
type LexError struct {
	Line int
}

func (e LexError) Error() string {
	return fmt.Sprintf("line %d: empty or invalid line", e.Line)
}

// Tokenise divides script text into command lines. Blank lines and comment
// lines are dropped. Words are separated by runs of white space.
//
// The returned lines are in source order. No partial result is returned on
// error.
func Tokenise(text string) ([]Line, error) {
	var lines []Line

	for i, raw := range splitLines(text) {
		s := strings.TrimSpace(raw)
		if s == "" || strings.HasPrefix(s, CommentPrefix) {
			continue // for loop
		}

		// the trim and empty check above mean that Fields() will always return
		// at least one word. the check is kept in case the rule for skipping
		// lines ever changes
		words := strings.Fields(s)
		if len(words) == 0 {
			return nil, LexError{Line: i + 1}
		}

		lines = append(lines, Line{Num: i + 1, Words: words})
	}

	return lines, nil
}

// splitLines divides text on the newline character. A carriage return at the
// end of a line is removed and a final empty line caused by a trailing newline
// is not returned.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}

	l := strings.Split(text, "\n")
	if l[len(l)-1] == "" {
		l = l[:len(l)-1]
	}
	for i := range l {
		l[i] = strings.TrimSuffix(l[i], "\r")
	}

	return l
}
