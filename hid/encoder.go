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

import (
	"fmt"

	"github.com/phantomkey/phantomkey/instructions"
	"github.com/phantomkey/phantomkey/logger"
)

// LogTag is the tag used for all diagnostics created by the encoder.
const LogTag = "hid"

// Logger is the diagnostic sink used by the Encoder. Any *logger.Logger
// satisfies the interface.
type Logger interface {
	Log(perm logger.Permission, tag string, detail any)
}

// Encoder converts instructions to device reports. Encoding never fails. Where
// there is no report for part of an instruction a zero report is substituted
// and a diagnostic is sent to the Logger.
type Encoder struct {
	log Logger
}

// NewEncoder is the preferred method of initialisation for the Encoder type.
// The log argument can be nil, in which case diagnostics are discarded.
func NewEncoder(log Logger) *Encoder {
	return &Encoder{log: log}
}

func (enc *Encoder) diagnostic(detail string) {
	if enc.log != nil {
		enc.log.Log(logger.Allow, LogTag, detail)
	}
}

// Encode returns the report bytes for a single instruction.
func (enc *Encoder) Encode(ins instructions.Instruction) []byte {
	return enc.Append(nil, ins)
}

// Append adds the report bytes for the instruction to the end of buf and
// returns the extended buffer.
func (enc *Encoder) Append(buf []byte, ins instructions.Instruction) []byte {
	switch ins := ins.(type) {
	case instructions.Delay:
		// only the low eight bits of the duration are kept
		return append(buf, 0x00, byte(ins.Duration&0xff))

	case instructions.Enter:
		return append(buf, ModNone, KeyEnter)

	case instructions.Backspace:
		return append(buf, ModNone, KeyBackspace)

	case instructions.Tab:
		return append(buf, ModNone, KeyTab)

	case instructions.Escape:
		return append(buf, ModNone, KeyEscape)

	case instructions.Arrow:
		return append(buf, ModNone, arrowCode(ins.Direction))

	case instructions.StringLiteral:
		return enc.appendText(buf, ins.Text)

	case instructions.TypeLiteral:
		return enc.appendText(buf, ins.Text)

	case instructions.MoveMouse:
		// two's complement wraparound to eight bits
		return append(buf, 0x00, byte(ins.DX), byte(ins.DY))

	case instructions.Scroll:
		return append(buf, 0x00, 0x00, byte(ins.Amount))

	case instructions.Click:
		return append(buf, buttonBit(ins.Button), 0x00)

	case instructions.Hold:
		return append(buf, enc.modifierBit(ins.Key), 0x00)

	case instructions.Release:
		return append(buf, enc.modifierBit(ins.Key), 0x00)
	}

	panic(fmt.Sprintf("hid: unhandled instruction type %T", ins))
}

// appendText adds two bytes for every character in the string
func (enc *Encoder) appendText(buf []byte, text string) []byte {
	for _, c := range text {
		k, ok := keymap[c]
		if !ok {
			enc.diagnostic(fmt.Sprintf("unsupported character %q (%U)", c, c))
			k = noKey
		}
		buf = append(buf, k.mod, k.code)
	}
	return buf
}

func arrowCode(d instructions.Direction) byte {
	switch d {
	case instructions.DirectionUp:
		return KeyUp
	case instructions.DirectionDown:
		return KeyDown
	case instructions.DirectionLeft:
		return KeyLeft
	case instructions.DirectionRight:
		return KeyRight
	}
	return KeyNone
}

func buttonBit(b instructions.Button) byte {
	switch b {
	case instructions.ButtonLeft:
		return ButtonLeft
	case instructions.ButtonRight:
		return ButtonRight
	case instructions.ButtonMiddle:
		return ButtonMiddle
	}
	return 0x00
}

func (enc *Encoder) modifierBit(m instructions.Modifier) byte {
	switch m {
	case instructions.ModifierShift:
		return ModShift
	case instructions.ModifierCtrl:
		return ModCtrl
	case instructions.ModifierAlt:
		return ModAlt
	}

	// the parser never creates an instruction with an unknown modifier
	enc.diagnostic(fmt.Sprintf("unsupported key (%s)", m))
	return ModNone
}

// ReportSize returns the number of bytes Encode() will produce for the
// instruction.
func ReportSize(ins instructions.Instruction) int {
	switch ins := ins.(type) {
	case instructions.StringLiteral:
		return 2 * len([]rune(ins.Text))
	case instructions.TypeLiteral:
		return 2 * len([]rune(ins.Text))
	case instructions.MoveMouse, instructions.Scroll:
		return 3
	}
	return 2
}
