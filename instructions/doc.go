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

// Package instructions defines the instruction set of a compiled PhantomKey
// script. There is one type for each instruction and all types implement the
// Instruction interface. The interface cannot be implemented outside of this
// package and so a type switch over the types in this package is exhaustive.
//
// Instructions are plain values. They are created by the parser package, which
// performs all validation of script arguments, and consumed by the hid
// package, which encodes each instruction as a device report.
//
// The Button, Direction and Modifier types are the enumerated arguments of
// the CLICK, ARROW, and HOLD/RELEASE instructions. The Lookup*() functions
// convert script words to these types.
package instructions
