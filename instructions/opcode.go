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

// Opcode identifies the kind of instruction. The set of opcodes is closed.
type Opcode int

// List of valid Opcode values.
const (
	OpString Opcode = iota
	OpType
	OpDelay
	OpMoveMouse
	OpClick
	OpScroll
	OpEnter
	OpBackspace
	OpTab
	OpEscape
	OpArrow
	OpHold
	OpRelease

	// the number of opcodes. not a valid opcode
	NumOpcodes
)

// names as they appear in a script. indexed by Opcode
var opcodeNames = [NumOpcodes]string{
	OpString:    "STRING",
	OpType:      "TYPE",
	OpDelay:     "DELAY",
	OpMoveMouse: "MOVE_MOUSE",
	OpClick:     "CLICK",
	OpScroll:    "SCROLL",
	OpEnter:     "ENTER",
	OpBackspace: "BACKSPACE",
	OpTab:       "TAB",
	OpEscape:    "ESCAPE",
	OpArrow:     "ARROW",
	OpHold:      "HOLD",
	OpRelease:   "RELEASE",
}

var opcodeLookup map[string]Opcode

func init() {
	opcodeLookup = make(map[string]Opcode, NumOpcodes)
	for op, n := range opcodeNames {
		opcodeLookup[n] = Opcode(op)
	}
}

func (op Opcode) String() string {
	if op < 0 || op >= NumOpcodes {
		return fmt.Sprintf("Opcode(%d)", int(op))
	}
	return opcodeNames[op]
}

// LookupOpcode returns the Opcode for the script word. The match is case
// insensitive and must be exact: there is no matching on prefixes.
func LookupOpcode(word string) (Opcode, bool) {
	op, ok := opcodeLookup[strings.ToUpper(word)]
	return op, ok
}

// OpcodeNames returns the script names of every opcode, in Opcode order.
func OpcodeNames() []string {
	n := make([]string, NumOpcodes)
	copy(n, opcodeNames[:])
	return n
}
