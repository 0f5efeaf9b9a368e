// Package fips resolves a 6-digit SAME location code into a structured
// location record: subdivision, county, region and a formatted phrase.
package fips

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/samecodec/sameeas/pkg/dictionary"
	"github.com/samecodec/sameeas/pkg/samerr"
)

var nonDigit = regexp.MustCompile(`[^0-9]`)

// Location is the resolved form of a single SAME location code.
//
// Region is the parsed state abbreviation for county-level codes. For a
// statewide code (county part ending in "000") Region is set to the
// county value itself. It is "none" when the dictionary value carries no
// comma to split a state suffix from.
//
// Formatted carries the subdivision prefix (e.g. "All Cascade, MT") and is
// the presentation translateFips itself returns (spec §6 Scenario 6). Text
// omits the subdivision and is the plain county/region phrase (e.g.
// "Cascade, MT") that the header decoder joins into DecodedAlert.Locations
// (spec §8 Scenario 1) — the two are deliberately different strings.
type Location struct {
	Subdivision string
	County      string
	Region      string
	Formatted   string
	Text        string
}

// Translate resolves a 6-character SAME location code against d.
//
// Validation order mirrors spec §4.1 exactly: empty input, then shape
// (length, then character class), then county lookup, then subdivision
// lookup. Each failure mode carries its own error kind so callers can
// distinguish "this code doesn't exist" from "this code isn't shaped
// like a code".
func Translate(d *dictionary.Dictionary, data string) (*Location, error) {
	if data == "" {
		return nil, samerr.New(samerr.NoData, "")
	}

	if len(data) != 6 {
		return nil, samerr.New(samerr.FipsInvalid, data)
	}
	if nonDigit.MatchString(data) {
		return nil, samerr.New(samerr.InvalidCharacters, data)
	}

	subDigit := data[0:1]
	loc := data[1:6]

	countyRaw, ok := d.County(loc)
	if !ok {
		return nil, samerr.New(samerr.FipsInvalid, loc)
	}

	subdivision, ok := d.Subdivision(subDigit)
	if !ok {
		return nil, samerr.New(samerr.SubdivisionInvalid, subDigit)
	}

	county, region := splitCountyRegion(countyRaw)

	isStatewide := strings.HasSuffix(loc, "000")

	var formatted, text string
	if isStatewide {
		region = county
		formatted = fmt.Sprintf("%s of %s", subdivision, county)
		text = county
	} else {
		formatted = fmt.Sprintf("%s %s, %s", subdivision, county, region)
		text = fmt.Sprintf("%s, %s", county, region)
	}

	return &Location{
		Subdivision: subdivision,
		County:      county,
		Region:      region,
		Formatted:   formatted,
		Text:        text,
	}, nil
}

// splitCountyRegion splits a "County, ST" dictionary value on the first
// comma. If the value carries no comma the whole value is the county and
// the region is reported as "none".
func splitCountyRegion(raw string) (county, region string) {
	idx := strings.Index(raw, ",")
	if idx < 0 {
		return strings.TrimSpace(raw), "none"
	}
	return strings.TrimSpace(raw[:idx]), strings.TrimSpace(raw[idx+1:])
}
