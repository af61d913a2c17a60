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

package parser

import (
	"errors"
	"fmt"

	"github.com/phantomkey/phantomkey/instructions"
)

// ErrValidation matches (with errors.Is()) any ArityError or ValueError.
var ErrValidation = errors.New("validation error")

// linePrefix is prepended to error messages when the line number is known
func linePrefix(line int) string {
	if line <= 0 {
		return ""
	}
	return fmt.Sprintf("line %d: ", line)
}

// UnknownCommandError is returned when the first word of a line is not an
// opcode.
type UnknownCommandError struct {
	Line int

	// the offending word exactly as it appears in the script
	Opcode string

	// the opcode that most closely resembles the offending word. empty if
	// nothing is similar enough
	Suggestion string
}

func (e UnknownCommandError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%sunknown command: %s (did you mean %s?)", linePrefix(e.Line), e.Opcode, e.Suggestion)
	}
	return fmt.Sprintf("%sunknown command: %s", linePrefix(e.Line), e.Opcode)
}

// Arity is the number of arguments an opcode accepts.
type Arity struct {
	Min int

	// negative for no upper limit
	Max int
}

// Accepts returns true if n arguments satisfies the arity.
func (a Arity) Accepts(n int) bool {
	return n >= a.Min && (a.Max < 0 || n <= a.Max)
}

func (a Arity) String() string {
	switch {
	case a.Max < 0:
		return fmt.Sprintf("at least %d", a.Min)
	case a.Min == a.Max:
		return fmt.Sprintf("exactly %d", a.Min)
	}
	return fmt.Sprintf("between %d and %d", a.Min, a.Max)
}

// ArityError is returned when an opcode has the wrong number of arguments.
type ArityError struct {
	Line     int
	Opcode   instructions.Opcode
	Expected Arity
	Actual   int
}

func (e ArityError) Error() string {
	return fmt.Sprintf("%s%s requires %s argument(s), found %d", linePrefix(e.Line), e.Opcode, e.Expected, e.Actual)
}

// Is implements the errors.Is() interface.
func (e ArityError) Is(target error) bool {
	return target == ErrValidation
}

// ValueError is returned when an argument cannot be converted to the type
// required by the opcode or when it is not one of a fixed set of values.
type ValueError struct {
	Line     int
	Opcode   instructions.Opcode
	Argument string
	Reason   string
}

func (e ValueError) Error() string {
	return fmt.Sprintf("%s%s: invalid argument (%s): %s", linePrefix(e.Line), e.Opcode, e.Argument, e.Reason)
}

// Is implements the errors.Is() interface.
func (e ValueError) Is(target error) bool {
	return target == ErrValidation
}
