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

import (
	"fmt"
	"strings"
)

// Button is the mouse button argument of the CLICK instruction.
type Button int

// List of valid Button values.
const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

var buttonNames = []string{"LEFT", "RIGHT", "MIDDLE"}

func (b Button) String() string {
	if b < 0 || int(b) >= len(buttonNames) {
		return fmt.Sprintf("Button(%d)", int(b))
	}
	return buttonNames[b]
}

// LookupButton returns the Button named by the script word. The match is case
// insensitive.
func LookupButton(word string) (Button, bool) {
	i := indexOf(buttonNames, word)
	return Button(i), i >= 0
}

// ButtonNames returns the script names of every Button.
func ButtonNames() []string {
	return append([]string(nil), buttonNames...)
}

// Direction is the argument of the ARROW instruction.
type Direction int

// List of valid Direction values.
const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

var directionNames = []string{"UP", "DOWN", "LEFT", "RIGHT"}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// LookupDirection returns the Direction named by the script word. The match is
// case insensitive.
func LookupDirection(word string) (Direction, bool) {
	i := indexOf(directionNames, word)
	return Direction(i), i >= 0
}

// DirectionNames returns the script names of every Direction.
func DirectionNames() []string {
	return append([]string(nil), directionNames...)
}

// Modifier is the key argument of the HOLD and RELEASE instructions.
type Modifier int

// List of valid Modifier values.
const (
	ModifierShift Modifier = iota
	ModifierCtrl
	ModifierAlt
)

var modifierNames = []string{"SHIFT", "CTRL", "ALT"}

func (m Modifier) String() string {
	if m < 0 || int(m) >= len(modifierNames) {
		return fmt.Sprintf("Modifier(%d)", int(m))
	}
	return modifierNames[m]
}

// LookupModifier returns the Modifier named by the script word. The match is
// case insensitive.
func LookupModifier(word string) (Modifier, bool) {
	i := indexOf(modifierNames, word)
	return Modifier(i), i >= 0
}

// ModifierNames returns the script names of every Modifier.
func ModifierNames() []string {
	return append([]string(nil), modifierNames...)
}

// indexOf returns the index of the uppercased word in the list of names or -1
// if it is not present
func indexOf(names []string, word string) int {
	w := strings.ToUpper(word)
	for i, n := range names {
		if n == w {
			return i
		}
	}
	return -1
}
