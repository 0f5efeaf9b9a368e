// Package codes implements the single-code resolvers shared by the
// originator and event translators: both validate a 3-letter code and
// look it up in a dictionary table, differing only in which table and
// which error kind they report.
package codes

import (
	"regexp"
	"strings"

	"github.com/samecodec/sameeas/pkg/dictionary"
	"github.com/samecodec/sameeas/pkg/samerr"
)

var threeLetters = regexp.MustCompile(`^[A-Za-z]{3}$`)

// resolve is the shape both translators share: non-empty, three letters,
// uppercased, looked up. invalidKind names the error reported when the
// code is well-formed but absent from the table.
func resolve(code string, lookup func(string) (string, bool), invalidKind samerr.Kind) (string, error) {
	if code == "" {
		return "", samerr.New(samerr.NoData, "")
	}
	if len(code) != 3 {
		return "", samerr.New(invalidKind, code)
	}
	if !threeLetters.MatchString(code) {
		return "", samerr.New(samerr.InvalidCharacters, code)
	}

	upper := strings.ToUpper(code)
	v, ok := lookup(upper)
	if !ok {
		return "", samerr.New(invalidKind, upper)
	}
	return v, nil
}

// Originator resolves a 3-letter originator code through the ORGS2
// table, per spec §9: the standalone translator deliberately uses ORGS2
// while the header decoder uses ORGS (see DESIGN.md).
func Originator(d *dictionary.Dictionary, code string) (string, error) {
	return resolve(code, func(c string) (string, bool) {
		return d.Originator("ORGS2", c)
	}, samerr.OriginatorInvalid)
}

// Event resolves a 3-letter event code through the EVENTS table.
func Event(d *dictionary.Dictionary, code string) (string, error) {
	return resolve(code, d.Event, samerr.EventInvalid)
}
