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

package instructions

import "fmt"

// Instruction is implemented by every instruction type in this package and by
// no other type. The String() function returns the canonical script form of
// the instruction.
type Instruction interface {
	fmt.Stringer
	Opcode() Opcode

	// unexported to close the set of implementations
	instruction()
}

// Delay pauses replay for the duration in milliseconds.
type Delay struct {
	Duration uint64
}

// StringLiteral types the text one character at a time.
type StringLiteral struct {
	Text string
}

// TypeLiteral is the same as StringLiteral but retains the TYPE opcode.
type TypeLiteral struct {
	Text string
}

// MoveMouse moves the mouse cursor relative to its current position.
type MoveMouse struct {
	DX int32
	DY int32
}

// Click presses a mouse button.
type Click struct {
	Button Button
}

// Scroll moves the vertical scroll wheel.
type Scroll struct {
	Amount int32
}

// Enter presses the enter key.
type Enter struct{}

// Backspace presses the backspace key.
type Backspace struct{}

// Tab presses the tab key.
type Tab struct{}

// Escape presses the escape key.
type Escape struct{}

// Arrow presses one of the cursor keys.
type Arrow struct {
	Direction Direction
}

// Hold presses a modifier key.
type Hold struct {
	Key Modifier
}

// Release lets go of a modifier key.
type Release struct {
	Key Modifier
}

func (Delay) Opcode() Opcode         { return OpDelay }
func (StringLiteral) Opcode() Opcode { return OpString }
func (TypeLiteral) Opcode() Opcode   { return OpType }
func (MoveMouse) Opcode() Opcode     { return OpMoveMouse }
func (Click) Opcode() Opcode         { return OpClick }
func (Scroll) Opcode() Opcode        { return OpScroll }
func (Enter) Opcode() Opcode         { return OpEnter }
func (Backspace) Opcode() Opcode     { return OpBackspace }
func (Tab) Opcode() Opcode           { return OpTab }
func (Escape) Opcode() Opcode        { return OpEscape }
func (Arrow) Opcode() Opcode         { return OpArrow }
func (Hold) Opcode() Opcode          { return OpHold }
func (Release) Opcode() Opcode       { return OpRelease }

func (ins Delay) String() string {
	return fmt.Sprintf("%s %d", OpDelay, ins.Duration)
}

func (ins StringLiteral) String() string {
	return fmt.Sprintf("%s %s", OpString, ins.Text)
}

func (ins TypeLiteral) String() string {
	return fmt.Sprintf("%s %s", OpType, ins.Text)
}

func (ins MoveMouse) String() string {
	return fmt.Sprintf("%s %d %d", OpMoveMouse, ins.DX, ins.DY)
}

func (ins Click) String() string {
	return fmt.Sprintf("%s %s", OpClick, ins.Button)
}

func (ins Scroll) String() string {
	return fmt.Sprintf("%s %d", OpScroll, ins.Amount)
}

func (Enter) String() string     { return OpEnter.String() }
func (Backspace) String() string { return OpBackspace.String() }
func (Tab) String() string       { return OpTab.String() }
func (Escape) String() string    { return OpEscape.String() }

func (ins Arrow) String() string {
	return fmt.Sprintf("%s %s", OpArrow, ins.Direction)
}

func (ins Hold) String() string {
	return fmt.Sprintf("%s %s", OpHold, ins.Key)
}

func (ins Release) String() string {
	return fmt.Sprintf("%s %s", OpRelease, ins.Key)
}

func (Delay) instruction()         {}
func (StringLiteral) instruction() {}
func (TypeLiteral) instruction()   {}
func (MoveMouse) instruction()     {}
func (Click) instruction()         {}
func (Scroll) instruction()        {}
func (Enter) instruction()         {}
func (Backspace) instruction()     {}
func (Tab) instruction()           {}
func (Escape) instruction()        {}
func (Arrow) instruction()         {}
func (Hold) instruction()          {}
func (Release) instruction()       {}
