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

// Package script is the first stage of the compiler. It divides the text of a
// PhantomKey script into command lines.
//
// The script language is line oriented. Each line holds one instruction and
// the words of an instruction are separated by white space:
//
//	# type a greeting and submit it
//	STRING Hello World
//	DELAY 100
//	ENTER
//
// A line whose first non-whitespace character is # is a comment. Comment
// lines and blank lines are ignored. There is no line continuation and no
// quoting; leading and trailing white space is ignored.
//
// The package knows nothing about opcodes. Validation of the words in a line
// is the job of the parser package.
package script
