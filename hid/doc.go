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

// Package hid encodes instructions as the report fragments understood by the
// injection device. The encoding is the wire protocol and must not change.
//
// Single key instructions are two bytes, a zero modifier byte followed by the
// scan code:
//
//	ENTER      00 28
//	BACKSPACE  00 2a
//	TAB        00 2b
//	ESCAPE     00 29
//	ARROW      00 52 (UP), 00 51 (DOWN), 00 50 (LEFT), 00 4f (RIGHT)
//
// DELAY is two bytes. The second byte is the duration modulo 256, so a delay
// of 300ms is encoded as 00 2c. This is how the device has always read the
// instruction.
//
// Mouse instructions:
//
//	MOVE_MOUSE dx dy   00 dx dy  (each value wrapped to eight bits)
//	SCROLL n           00 00 n   (wrapped to eight bits)
//	CLICK              01 00 (LEFT), 02 00 (RIGHT), 04 00 (MIDDLE)
//
// HOLD and RELEASE are the modifier bit followed by zero: 02 00 (SHIFT),
// 01 00 (CTRL), 04 00 (ALT). Note that HOLD and RELEASE produce the same
// report.
//
// STRING and TYPE produce a modifier and scan code pair for each character
// using the US keyboard layout. Characters that cannot be typed are encoded
// as 00 00 and a diagnostic is logged.
package hid
