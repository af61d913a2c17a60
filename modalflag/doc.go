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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes, with different flags for each mode.
//
// A mode is an argument that puts the program into a different way of
// working. The phantomkey command has the modes COMPILE, CHECK, LIST and
// VERSION. Modes are added with AddSubModes() and are case insensitive. The
// first mode added is the default and is used if the first argument after
// the flags is not a mode:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("COMPILE", "CHECK")
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "CHECK":
//		md.NewMode()
//		prefs := md.AddString("prefs", "", "preferences")
//		p, err = md.Parse()
//		...
//		check(*prefs, md.RemainingArgs())
//	}
//
// Each call to NewMode() discards the flags of the previous mode. Flags for
// the new mode are parsed from the arguments following the selected mode.
package modalflag
