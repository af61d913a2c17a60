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

package hid

// modifier byte values. a modifier byte is sent before the scan code in every
// keyboard report
const (
	ModNone  byte = 0x00
	ModCtrl  byte = 0x01
	ModShift byte = 0x02
	ModAlt   byte = 0x04
)

// mouse button bits
const (
	ButtonLeft   byte = 0x01
	ButtonRight  byte = 0x02
	ButtonMiddle byte = 0x04
)

// keyboard scan codes for the keys that have their own instruction. scan
// codes for printable characters are in the keymap
const (
	KeyNone      byte = 0x00
	KeyA         byte = 0x04
	Key1         byte = 0x1e
	Key0         byte = 0x27
	KeyEnter     byte = 0x28
	KeyEscape    byte = 0x29
	KeyBackspace byte = 0x2a
	KeyTab       byte = 0x2b
	KeySpace     byte = 0x2c
	KeyRight     byte = 0x4f
	KeyLeft      byte = 0x50
	KeyDown      byte = 0x51
	KeyUp        byte = 0x52
)

// key is a modifier byte and scan code pair. each character of a STRING
// instruction is encoded as one key
type key struct {
	mod  byte
	code byte
}

// noKey is substituted for any character that is not in the keymap
var noKey = key{mod: ModNone, code: KeyNone}

// keymap is the US keyboard layout for every character that can be typed
var keymap map[rune]key

// punctuation and the shifted digit row. the unshifted and shifted character
// of each physical key share the same scan code
var punctuation = []struct {
	unshifted rune
	shifted   rune
	code      byte
}{
	{'1', '!', 0x1e},
	{'2', '@', 0x1f},
	{'3', '#', 0x20},
	{'4', '$', 0x21},
	{'5', '%', 0x22},
	{'6', '^', 0x23},
	{'7', '&', 0x24},
	{'8', '*', 0x25},
	{'9', '(', 0x26},
	{'0', ')', 0x27},
	{'-', '_', 0x2d},
	{'=', '+', 0x2e},
	{'[', '{', 0x2f},
	{']', '}', 0x30},
	{'\\', '|', 0x31},
	{';', ':', 0x33},
	{'\'', '"', 0x34},
	{',', '<', 0x36},
	{'.', '>', 0x37},
	{'/', '?', 0x38},
}

func init() {
	keymap = make(map[rune]key)

	for c := 'a'; c <= 'z'; c++ {
		keymap[c] = key{mod: ModNone, code: KeyA + byte(c-'a')}
	}
	for c := 'A'; c <= 'Z'; c++ {
		keymap[c] = key{mod: ModShift, code: KeyA + byte(c-'A')}
	}

	keymap[' '] = key{mod: ModNone, code: KeySpace}

	for _, p := range punctuation {
		keymap[p.unshifted] = key{mod: ModNone, code: p.code}
		keymap[p.shifted] = key{mod: ModShift, code: p.code}
	}
}

// Supported returns true if the character can be typed by a STRING or TYPE
// instruction.
func Supported(c rune) bool {
	_, ok := keymap[c]
	return ok
}
