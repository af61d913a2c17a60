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

package prefs

import (
	"fmt"
	"sort"
	"strings"
)

// list of keys recognised by Preferences.
const (
	KeyHIDWarnings     = "hid.warnings"
	KeyListingBytecode = "listing.bytecode"
	KeyLogEcho         = "log.echo"
)

// Preferences for a single run of the program.
type Preferences struct {
	// encoder diagnostics are sent to the log
	HIDWarnings Bool

	// the LIST mode shows the report bytes of each instruction
	ListingBytecode Bool

	// log entries are echoed to stderr as they are created
	LogEcho Bool
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are set to their defaults.
func NewPreferences() *Preferences {
	p := &Preferences{}
	p.SetDefaults()
	return p
}

// SetDefaults reverts all preferences to their default value.
func (p *Preferences) SetDefaults() {
	p.HIDWarnings.Set(true)
	p.ListingBytecode.Set(true)
	p.LogEcho.Set(false)
}

func (p *Preferences) byKey() map[string]*Bool {
	return map[string]*Bool{
		KeyHIDWarnings:     &p.HIDWarnings,
		KeyListingBytecode: &p.ListingBytecode,
		KeyLogEcho:         &p.LogEcho,
	}
}

// ApplyCommandLine sets preferences from a command line preferences string.
// See PushCommandLineStack() for the format. An unrecognised key or an
// invalid value is an error but recognised keys are applied regardless.
func (p *Preferences) ApplyCommandLine(cl string) error {
	PushCommandLineStack(cl)

	var errs []string
	for key, v := range p.byKey() {
		if ok, s := GetCommandLinePref(key); ok {
			if err := v.Set(s); err != nil {
				errs = append(errs, fmt.Sprintf("%s: %v", key, err))
			}
		}
	}

	if unused := PopCommandLineStack(); unused != "" {
		errs = append(errs, fmt.Sprintf("unrecognised preferences: %s", unused))
	}

	if len(errs) > 0 {
		sort.Strings(errs)
		return fmt.Errorf("prefs: %s", strings.Join(errs, ", "))
	}

	return nil
}

func (p *Preferences) String() string {
	return fmt.Sprintf("%s%s%s%s %s%s%s%s %s%s%s",
		KeyHIDWarnings, kvSeparator, p.HIDWarnings.String(), pairSeparator,
		KeyListingBytecode, kvSeparator, p.ListingBytecode.String(), pairSeparator,
		KeyLogEcho, kvSeparator, p.LogEcho.String())
}
