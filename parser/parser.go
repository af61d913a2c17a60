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
	"sort"
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/phantomkey/phantomkey/instructions"
	"github.com/phantomkey/phantomkey/script"
)

// arity of every opcode. indexed by instructions.Opcode
var arities = [instructions.NumOpcodes]Arity{
	instructions.OpString:    {Min: 1, Max: -1},
	instructions.OpType:      {Min: 1, Max: -1},
	instructions.OpDelay:     {Min: 1, Max: 1},
	instructions.OpMoveMouse: {Min: 2, Max: 2},
	instructions.OpClick:     {Min: 1, Max: 1},
	instructions.OpScroll:    {Min: 1, Max: 1},
	instructions.OpEnter:     {Min: 0, Max: 0},
	instructions.OpBackspace: {Min: 0, Max: 0},
	instructions.OpTab:       {Min: 0, Max: 0},
	instructions.OpEscape:    {Min: 0, Max: 0},
	instructions.OpArrow:     {Min: 1, Max: 1},
	instructions.OpHold:      {Min: 1, Max: 1},
	instructions.OpRelease:   {Min: 1, Max: 1},
}

// ArityOf returns the number of arguments accepted by the opcode.
func ArityOf(op instructions.Opcode) Arity {
	return arities[op]
}

// Parse converts tokenised script lines into instructions. There is exactly
// one instruction for each line and the order of lines is preserved.
//
// Parsing stops at the first invalid line. In that case the error is returned
// and no instructions.
func Parse(lines []script.Line) ([]instructions.Instruction, error) {
	prog := make([]instructions.Instruction, 0, len(lines))

	for _, l := range lines {
		ins, err := ParseLine(l)
		if err != nil {
			return nil, err
		}
		prog = append(prog, ins)
	}

	return prog, nil
}

// ParseLine converts a single tokenised line into an instruction.
func ParseLine(l script.Line) (instructions.Instruction, error) {
	op, ok := instructions.LookupOpcode(l.Opcode())
	if !ok {
		return nil, UnknownCommandError{
			Line:       l.Num,
			Opcode:     l.Opcode(),
			Suggestion: suggest(l.Opcode()),
		}
	}

	args := l.Args()

	// argument count is always checked before argument content
	if !arities[op].Accepts(len(args)) {
		return nil, ArityError{
			Line:     l.Num,
			Opcode:   op,
			Expected: arities[op],
			Actual:   len(args),
		}
	}

	valueError := func(arg string, reason string) error {
		return ValueError{
			Line:     l.Num,
			Opcode:   op,
			Argument: arg,
			Reason:   reason,
		}
	}

	switch op {
	case instructions.OpString:
		return instructions.StringLiteral{Text: strings.Join(args, " ")}, nil

	case instructions.OpType:
		return instructions.TypeLiteral{Text: strings.Join(args, " ")}, nil

	case instructions.OpDelay:
		d, err := parseUint64(args[0])
		if err != nil {
			return nil, valueError(args[0], err.Error())
		}
		return instructions.Delay{Duration: d}, nil

	case instructions.OpMoveMouse:
		x, err := parseInt32(args[0])
		if err != nil {
			return nil, valueError(args[0], fmt.Sprintf("x coordinate %v", err))
		}
		y, err := parseInt32(args[1])
		if err != nil {
			return nil, valueError(args[1], fmt.Sprintf("y coordinate %v", err))
		}
		return instructions.MoveMouse{DX: x, DY: y}, nil

	case instructions.OpClick:
		b, ok := instructions.LookupButton(args[0])
		if !ok {
			return nil, valueError(args[0], oneOf(instructions.ButtonNames()))
		}
		return instructions.Click{Button: b}, nil

	case instructions.OpScroll:
		a, err := parseInt32(args[0])
		if err != nil {
			return nil, valueError(args[0], err.Error())
		}
		return instructions.Scroll{Amount: a}, nil

	case instructions.OpEnter:
		return instructions.Enter{}, nil

	case instructions.OpBackspace:
		return instructions.Backspace{}, nil

	case instructions.OpTab:
		return instructions.Tab{}, nil

	case instructions.OpEscape:
		return instructions.Escape{}, nil

	case instructions.OpArrow:
		d, ok := instructions.LookupDirection(args[0])
		if !ok {
			return nil, valueError(args[0], oneOf(instructions.DirectionNames()))
		}
		return instructions.Arrow{Direction: d}, nil

	case instructions.OpHold:
		m, ok := instructions.LookupModifier(args[0])
		if !ok {
			return nil, valueError(args[0], oneOf(instructions.ModifierNames()))
		}
		return instructions.Hold{Key: m}, nil

	case instructions.OpRelease:
		m, ok := instructions.LookupModifier(args[0])
		if !ok {
			return nil, valueError(args[0], oneOf(instructions.ModifierNames()))
		}
		return instructions.Release{Key: m}, nil
	}

	panic(fmt.Sprintf("parser: unhandled opcode %s", op))
}

func oneOf(names []string) string {
	return fmt.Sprintf("must be one of %s", strings.Join(names, ", "))
}

// sentinel reasons used by the number parsing functions
var (
	errNotNumber = errors.New("is not a number")
	errRange     = errors.New("is out of range")
)

// parseUint64 accepts base 10 digits with an optional leading plus sign
func parseUint64(s string) (uint64, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w for an unsigned 64-bit value", errRange)
		}
		return 0, fmt.Errorf("%w (unsigned integer required)", errNotNumber)
	}
	return v, nil
}

// parseInt32 accepts base 10 digits with an optional leading sign
func parseInt32(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w for a signed 32-bit value", errRange)
		}
		return 0, fmt.Errorf("%w (integer required)", errNotNumber)
	}
	return int32(v), nil
}

// suggest returns the opcode name that most closely resembles word, or the
// empty string if there is no reasonable match
func suggest(word string) string {
	ranks := fuzzy.RankFindFold(word, instructions.OpcodeNames())
	if len(ranks) == 0 {
		return ""
	}
	sort.Stable(ranks)
	return ranks[0].Target
}
