// Package dictionary loads the read-only code tables that the FIPS,
// originator and event translators resolve against: organization
// phrases, event names, county locations and subdivision modifiers.
//
// Dictionaries are process-wide immutable state. Callers load one at
// startup with Load or LoadFile and pass it by reference into the
// translators and decoder rather than reaching for a package-level
// singleton, per the injection guidance in the protocol note.
package dictionary

import (
	"encoding/json"
	"fmt"
	"os"
)

// Dictionary holds the five code tables the codec resolves against.
//
// ORGS maps a 3-letter originator code to an organization phrase that is
// expected to end with a trailing space (e.g. "The Civil Authorities have
// issued "). ORGS2 is an alternative originator table: the header decoder
// resolves originator codes through ORGS while the standalone originator
// translator resolves through ORGS2 — the two tables are deliberately not
// unified, see DESIGN.md.
type Dictionary struct {
	ORGS   map[string]string `json:"ORGS"`
	ORGS2  map[string]string `json:"ORGS2"`
	EVENTS map[string]string `json:"EVENTS"`
	SAME   map[string]string `json:"SAME"`
	SUBDIV map[string]string `json:"SUBDIV"`
}

// Load parses a dictionary artifact from raw JSON bytes.
func Load(data []byte) (*Dictionary, error) {
	var d Dictionary
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("dictionary: parse: %w", err)
	}
	if d.ORGS == nil {
		d.ORGS = map[string]string{}
	}
	if d.ORGS2 == nil {
		d.ORGS2 = map[string]string{}
	}
	if d.EVENTS == nil {
		d.EVENTS = map[string]string{}
	}
	if d.SAME == nil {
		d.SAME = map[string]string{}
	}
	if d.SUBDIV == nil {
		d.SUBDIV = map[string]string{}
	}
	return &d, nil
}

// LoadFile reads and parses a dictionary artifact from disk.
func LoadFile(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dictionary: read %s: %w", path, err)
	}
	return Load(data)
}

// Subdivision returns the subdivision phrase for digit d, falling back to
// "All" for "0" when the table omits it explicitly — the conventional
// default per spec §4.1.
func (d *Dictionary) Subdivision(digit string) (string, bool) {
	if v, ok := d.SUBDIV[digit]; ok {
		return v, true
	}
	if digit == "0" {
		return "All", true
	}
	return "", false
}

// County returns the raw "County, ST" dictionary value for a 5-digit
// county code.
func (d *Dictionary) County(code string) (string, bool) {
	v, ok := d.SAME[code]
	return v, ok
}

// Originator returns the phrase for a 3-letter originator code from the
// given table ("ORGS" or "ORGS2").
func (d *Dictionary) Originator(table, code string) (string, bool) {
	switch table {
	case "ORGS2":
		v, ok := d.ORGS2[code]
		return v, ok
	default:
		v, ok := d.ORGS[code]
		return v, ok
	}
}

// Event returns the phrase for a 3-letter event code.
func (d *Dictionary) Event(code string) (string, bool) {
	v, ok := d.EVENTS[code]
	return v, ok
}
