// Package pfsutil collects the small, independent pure-function helpers
// named in spec.md §6: time formatting/parsing, the size formatter and
// the filename sanitizer.
package pfsutil

import (
	"time"

	"github.com/vauradkar/pfs/pfserrors"
)

// wireTimeLayout is the exact RFC 3339 shape the wire contract requires:
// millisecond fractional seconds with a literal Z suffix, e.g.
// "2018-01-26T18:30:09.453Z".
const wireTimeLayout = "2006-01-02T15:04:05.000Z"

// FormatTime renders t in the wire contract's millisecond-precision
// RFC 3339 form, always in UTC with a literal "Z" suffix.
func FormatTime(t time.Time) string {
	return t.UTC().Format(wireTimeLayout)
}

// ParseTime parses any valid RFC 3339 timestamp, matching the contract's
// "parsing accepts any RFC 3339 but round-trip emission must use this
// exact shape" rule.
func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, pfserrors.Parsef("mtime", err)
	}
	return t, nil
}
