package same

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/samecodec/sameeas/pkg/dictionary"
	"github.com/samecodec/sameeas/pkg/fips"
	"github.com/samecodec/sameeas/pkg/samerr"
)

var threeLetters = regexp.MustCompile(`^[A-Za-z]{3}$`)

// Location is the decoder's per-location output: the resolved fips
// record (an alias of fips.Location).
type Location = fips.Location

// Timing carries the locale-formatted start/end presentation strings for
// a decoded alert.
type Timing struct {
	Start string
	End   string
}

// DecodedAlert is the structured, human-readable result of decoding a
// SAME header.
type DecodedAlert struct {
	Organization string
	Event        string
	Locations    string
	Timing       Timing
	Sender       string
	Formatted    string
}

// nowFunc is overridden in tests to pin the "current year" the decoder
// resolves the Julian day against; production code always uses the real
// process clock.
var nowFunc = time.Now

// Decode parses and resolves a SAME header string per spec §4.3.
//
// The decoder fails fast: it reports the first violation it finds, in
// the order given below, and never accumulates multiple errors.
func Decode(d *dictionary.Dictionary, header string) (*DecodedAlert, error) {
	if header == "" {
		return nil, samerr.New(samerr.NoData, "")
	}

	stripped := strings.TrimSuffix(header, "-")
	segs := strings.Split(stripped, "-")

	if len(segs) < 5 {
		return nil, samerr.New(samerr.InvalidSameHeader, "")
	}
	if segs[0] != "ZCZC" {
		return nil, samerr.New(samerr.ZczcNotFound, segs[0])
	}

	orgPhrase, err := resolveOrg(d, segs[1])
	if err != nil {
		return nil, err
	}
	eventPhrase, err := resolveEvent(d, segs[2])
	if err != nil {
		return nil, err
	}

	locSegs := segs[3:]

	plusIdx := -1
	plusCount := 0
	for i, s := range locSegs {
		if strings.Contains(s, "+") {
			plusCount++
			if plusIdx == -1 {
				plusIdx = i
			}
		}
	}
	if plusCount != 1 {
		return nil, samerr.New(samerr.ExpireTimeInvalid, "")
	}

	lastLocSeg := locSegs[plusIdx]
	parts := strings.SplitN(lastLocSeg, "+", 2)
	finalLoc, offset := parts[0], parts[1]

	if len(offset) != 4 {
		return nil, samerr.New(samerr.ExpireTimeInvalid, offset)
	}

	rawLocations := append(append([]string{}, locSegs[:plusIdx]...), finalLoc)

	remainder := locSegs[plusIdx+1:]
	if len(remainder) < 1 {
		return nil, samerr.New(samerr.DateTimeInvalid, "")
	}
	issueSeg := remainder[0]
	senderSegs := remainder[1:]

	if len(issueSeg) != 7 {
		return nil, samerr.New(samerr.DateTimeInvalid, issueSeg)
	}

	julianDay, err := strconv.Atoi(issueSeg[0:3])
	if err != nil {
		return nil, samerr.New(samerr.DateTimeInvalid, issueSeg)
	}
	hour, err := strconv.Atoi(issueSeg[3:5])
	if err != nil {
		return nil, samerr.New(samerr.DateTimeInvalid, issueSeg)
	}
	minute, err := strconv.Atoi(issueSeg[5:7])
	if err != nil {
		return nil, samerr.New(samerr.DateTimeInvalid, issueSeg)
	}

	year := nowFunc().Year()
	maxDay := 365
	if isLeapYear(year) {
		maxDay = 366
	}
	if julianDay < 1 || julianDay > maxDay {
		return nil, samerr.New(samerr.DateTimeInvalid, issueSeg)
	}

	offsetHours, err := strconv.Atoi(offset[0:2])
	if err != nil {
		return nil, samerr.New(samerr.ExpireTimeInvalid, offset)
	}
	offsetMinutes, err := strconv.Atoi(offset[2:4])
	if err != nil {
		return nil, samerr.New(samerr.ExpireTimeInvalid, offset)
	}

	locPhrases := make([]string, 0, len(rawLocations))
	for _, code := range rawLocations {
		loc, err := fips.Translate(d, code)
		if err != nil {
			return nil, err
		}
		locPhrases = append(locPhrases, loc.Text)
	}

	start, end := resolveTiming(year, julianDay, hour, minute, offsetHours, offsetMinutes)

	sender := strings.Join(senderSegs, "-")

	locationsJoined := strings.Join(locPhrases, "; ")
	formatted := orgPhrase + "a " + eventPhrase + " for " + locationsJoined +
		"; beginning at " + formatTime(start) + " and ending at " + formatTime(end) +
		". Message from " + sender

	return &DecodedAlert{
		Organization: orgPhrase,
		Event:        eventPhrase,
		Locations:    locationsJoined,
		Timing: Timing{
			Start: formatTime(start),
			End:   formatTime(end),
		},
		Sender:    sender,
		Formatted: formatted,
	}, nil
}

// resolveOrg validates and resolves the 3-letter originator segment
// through the ORGS table, as the header decoder always does (the
// standalone codes.Originator translator uses ORGS2 instead — see
// DESIGN.md).
func resolveOrg(d *dictionary.Dictionary, code string) (string, error) {
	if code == "" {
		return "", samerr.New(samerr.NoData, "")
	}
	if len(code) != 3 {
		return "", samerr.New(samerr.OrgCodeInvalid, code)
	}
	if !threeLetters.MatchString(code) {
		return "", samerr.New(samerr.InvalidCharacters, code)
	}
	upper := strings.ToUpper(code)
	phrase, ok := d.Originator("ORGS", upper)
	if !ok {
		return "", samerr.New(samerr.OrgCodeInvalid, upper)
	}
	return phrase, nil
}

// resolveEvent validates and resolves the 3-letter event segment through
// the EVENTS table.
func resolveEvent(d *dictionary.Dictionary, code string) (string, error) {
	if code == "" {
		return "", samerr.New(samerr.NoData, "")
	}
	if len(code) != 3 {
		return "", samerr.New(samerr.EventCodeInvalid, code)
	}
	if !threeLetters.MatchString(code) {
		return "", samerr.New(samerr.InvalidCharacters, code)
	}
	upper := strings.ToUpper(code)
	phrase, ok := d.Event(upper)
	if !ok {
		return "", samerr.New(samerr.EventCodeInvalid, upper)
	}
	return phrase, nil
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// resolveTiming reconstructs the start/end instants for an issue time.
// It deliberately assigns the hour:minute as UTC wall time (per spec
// §4.3) — the calendar-day drift this produces under non-UTC local
// formatting is a known, preserved quirk (see formatTime and DESIGN.md).
func resolveTiming(year, julianDay, hour, minute, offsetHours, offsetMinutes int) (start, end time.Time) {
	base := time.Date(year-1, time.December, 31, 0, 0, 0, 0, time.UTC)
	dateOnly := base.AddDate(0, 0, julianDay)
	start = time.Date(dateOnly.Year(), dateOnly.Month(), dateOnly.Day(), hour, minute, 0, 0, time.UTC)
	end = start.Add(time.Duration(offsetHours*60+offsetMinutes) * time.Minute)
	return start, end
}

// formatTime renders a UTC wall-clock instant using the process's local
// timezone, reproducing the source's mixed UTC/local behavior flagged in
// spec §9: the calendar day in the presentation can drift from the UTC
// day when the process timezone isn't UTC. This is deliberate, not a
// bug to fix.
func formatTime(t time.Time) string {
	return t.Local().Format("3:04 PM on January 2")
}
