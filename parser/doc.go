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

// Package parser validates tokenised script lines and converts them to
// instructions.
//
// The first word of a line is the opcode. Opcodes are case insensitive. The
// complete grammar is:
//
//	STRING <text...>             one or more words, joined with a single space
//	TYPE <text...>               as STRING
//	DELAY <ms>                   unsigned 64-bit integer
//	MOVE_MOUSE <dx> <dy>         signed 32-bit integers
//	CLICK LEFT|RIGHT|MIDDLE
//	SCROLL <amount>              signed 32-bit integer
//	ENTER
//	BACKSPACE
//	TAB
//	ESCAPE
//	ARROW UP|DOWN|LEFT|RIGHT
//	HOLD SHIFT|CTRL|ALT
//	RELEASE SHIFT|CTRL|ALT
//
// Enumerated arguments are also case insensitive. The number of arguments is
// checked before the content of the arguments.
//
// Because a line is divided into words before parsing, the text of a STRING
// or TYPE instruction cannot contain runs of spaces, or leading or trailing
// space. Each gap between words becomes exactly one space.
//
// Errors are one of UnknownCommandError, ArityError or ValueError. The latter
// two also match ErrValidation with errors.Is().
package parser
