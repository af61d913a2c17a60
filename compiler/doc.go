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

// Package compiler joins the script, parser and hid packages into a single
// pipeline. The stages run strictly one after the other: the whole script is
// tokenised, then the whole script is parsed, stopping at the first error, and
// finally every instruction is encoded.
//
// Encoding cannot fail so a script that parses will always compile. The
// output is the concatenation of the reports for each instruction with no
// framing or padding.
//
// Nothing is shared between calls and all functions are safe to call
// concurrently, provided that the Logger given to Compile() is safe for
// concurrent use. The logger package's Logger is.
package compiler
