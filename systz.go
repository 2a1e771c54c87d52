// Package systz reports the operating system's configured local timezone
// as a normalized IANA Time Zone Database identifier.
//
// Resolution is best effort: each platform family probes an ordered chain
// of sources and the first candidate that parses as a known IANA
// identifier wins. Candidates are trimmed and matched case-insensitively;
// sources that are absent or unparsable are skipped silently because no
// single source is authoritative across systems. An exhausted chain
// reports no result rather than an error.
//
// On Windows the final step maps the vendor zone name through the CLDR
// windowsZones dataset embedded by package winzones.
package systz

import (
	"time"

	"github.com/cockroachdb/errors"
)

// Resolve returns the system timezone as an IANA identifier, or false when
// no source yielded a usable value. It is stateless and safe for
// concurrent use.
func Resolve() (string, bool) {
	return resolve()
}

// Location resolves the system timezone and loads it from the timezone
// database. Callers on platforms without an on-disk zoneinfo database
// should import time/tzdata.
func Location() (*time.Location, error) {
	tz, ok := Resolve()
	if !ok {
		return nil, errors.New("system timezone could not be determined")
	}
	loc, err := time.LoadLocation(tz)
	return loc, errors.Wrapf(err, "load %q", tz)
}
