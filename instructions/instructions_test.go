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

package instructions_test

import (
	"testing"

	"github.com/phantomkey/phantomkey/instructions"
	"github.com/phantomkey/phantomkey/test"
)

func TestLookupOpcode(t *testing.T) {
	op, ok := instructions.LookupOpcode("move_mouse")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, op, instructions.OpMoveMouse)

	op, ok = instructions.LookupOpcode("Enter")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, op, instructions.OpEnter)

	// no partial matches
	_, ok = instructions.LookupOpcode("STR")
	test.ExpectFailure(t, ok)
	_, ok = instructions.LookupOpcode("STRINGS")
	test.ExpectFailure(t, ok)
	_, ok = instructions.LookupOpcode("")
	test.ExpectFailure(t, ok)
}

func TestOpcodeNames(t *testing.T) {
	n := instructions.OpcodeNames()
	test.DemandEquality(t, len(n), int(instructions.NumOpcodes))
	test.ExpectEquality(t, len(n), 13)

	// every name must look up to its own opcode
	for i, s := range n {
		op, ok := instructions.LookupOpcode(s)
		test.ExpectSuccess(t, ok, s)
		test.ExpectEquality(t, op, instructions.Opcode(i), s)
		test.ExpectEquality(t, op.String(), s)
	}

	// the returned slice is a copy
	n[0] = "changed"
	test.ExpectEquality(t, instructions.OpcodeNames()[0], "STRING")

	test.ExpectEquality(t, instructions.NumOpcodes.String(), "Opcode(13)")
}

func TestArguments(t *testing.T) {
	b, ok := instructions.LookupButton("middle")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, b, instructions.ButtonMiddle)
	_, ok = instructions.LookupButton("UP")
	test.ExpectFailure(t, ok)

	d, ok := instructions.LookupDirection("Right")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, d, instructions.DirectionRight)
	_, ok = instructions.LookupDirection("MIDDLE")
	test.ExpectFailure(t, ok)

	m, ok := instructions.LookupModifier("ctrl")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, m, instructions.ModifierCtrl)
	_, ok = instructions.LookupModifier("META")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, instructions.Button(7).String(), "Button(7)")
	test.ExpectEquality(t, instructions.Direction(-1).String(), "Direction(-1)")
	test.ExpectEquality(t, instructions.Modifier(3).String(), "Modifier(3)")

	test.ExpectEquality(t, len(instructions.ButtonNames()), 3)
	test.ExpectEquality(t, len(instructions.DirectionNames()), 4)
	test.ExpectEquality(t, len(instructions.ModifierNames()), 3)
}

func TestCanonicalForm(t *testing.T) {
	tests := []struct {
		ins      instructions.Instruction
		expected string
		op       instructions.Opcode
	}{
		{instructions.Delay{Duration: 300}, "DELAY 300", instructions.OpDelay},
		{instructions.StringLiteral{Text: "Hello World"}, "STRING Hello World", instructions.OpString},
		{instructions.TypeLiteral{Text: "abc"}, "TYPE abc", instructions.OpType},
		{instructions.MoveMouse{DX: 10, DY: -5}, "MOVE_MOUSE 10 -5", instructions.OpMoveMouse},
		{instructions.Click{Button: instructions.ButtonRight}, "CLICK RIGHT", instructions.OpClick},
		{instructions.Scroll{Amount: -3}, "SCROLL -3", instructions.OpScroll},
		{instructions.Enter{}, "ENTER", instructions.OpEnter},
		{instructions.Backspace{}, "BACKSPACE", instructions.OpBackspace},
		{instructions.Tab{}, "TAB", instructions.OpTab},
		{instructions.Escape{}, "ESCAPE", instructions.OpEscape},
		{instructions.Arrow{Direction: instructions.DirectionUp}, "ARROW UP", instructions.OpArrow},
		{instructions.Hold{Key: instructions.ModifierShift}, "HOLD SHIFT", instructions.OpHold},
		{instructions.Release{Key: instructions.ModifierAlt}, "RELEASE ALT", instructions.OpRelease},
	}

	for _, tt := range tests {
		test.ExpectEquality(t, tt.ins.String(), tt.expected)
		test.ExpectEquality(t, tt.ins.Opcode(), tt.op, tt.expected)
	}
}
