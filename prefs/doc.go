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

// Package prefs holds the preferences of a phantomkey run. Preferences are
// given on the command line with the -prefs flag as a list of key/value
// pairs:
//
//	phantomkey -prefs "hid.warnings::false; log.echo::true" in.pk out.bin
//
// Boolean values accept the forms understood by strconv.ParseBool().
package prefs
