// Package samerr defines the single error taxonomy shared by the
// fips, codes, same and assembler packages: a fixed kind
// plus an optional detail string (the offending code, typically).
//
// It is kept as its own leaf package, separate from pkg/same, so that
// pkg/fips and pkg/codes can report these errors without importing the
// decoder package that in turn depends on them.
package samerr

import "fmt"

// Kind identifies one of the fixed SAME decode/translate failure modes.
// Each kind maps to a localized message key supplied externally; the
// codec itself only carries the kind and an optional detail string.
type Kind string

const (
	NoData            Kind = "nodata"
	InvalidSameHeader Kind = "invalidsameheader"
	ZczcNotFound      Kind = "zczcnotfound"
	OrgCodeInvalid    Kind = "orgcodeinvalid"
	EventCodeInvalid  Kind = "eventcodeinvalid"
	FipsInvalid       Kind = "fipsinvalid"
	DateTimeInvalid   Kind = "datetimeinvalid"
	ExpireTimeInvalid Kind = "expiretimeinvalid"
	OriginatorInvalid Kind = "originvalid"
	EventInvalid      Kind = "eventinvalid"
	SubdivisionInvalid Kind = "subdivisioninvalid"
	InvalidCharacters Kind = "invalidcharacters"
	AudioFileNotFound Kind = "audioFileNotFound"
)

// Error is the single taxonomy used across the codec: a kind plus an
// optional detail. It does not accumulate — callers fail fast on the
// first violation they find.
type Error struct {
	Kind   Kind
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// New builds a SAME error of the given kind with an optional detail.
func New(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

// KindOf extracts the Kind from err if it is a *Error. pkg/api uses it to
// map a failure to an HTTP status; translators and the decoder return
// inner errors unchanged rather than re-wrapping them under a different
// kind.
func KindOf(err error) (Kind, bool) {
	se, ok := err.(*Error)
	if !ok {
		return "", false
	}
	return se.Kind, true
}
