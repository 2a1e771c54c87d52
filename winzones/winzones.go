// Package winzones maps Windows timezone key names to IANA Time Zone
// Database identifiers using the Unicode CLDR windowsZones dataset.
//
// The mapping table lives in zones_gen.go, compiled from the upstream
// dataset by cmd/genzones. It is immutable after package initialization
// and safe for concurrent use without locking.
package winzones

//go:generate go run github.com/systz/systz/cmd/genzones --out zones_gen.go

import (
	"time"

	"github.com/cockroachdb/errors"
)

// ErrUnknownTimezone is returned by FromIANA when an IANA identifier does
// not appear in any record's candidate list.
var ErrUnknownTimezone = errors.New("unknown timezone")

// Zone is one vendor-name to IANA mapping record from the CLDR dataset.
type Zone struct {
	// Name is the Windows timezone key name, e.g. "Romance Standard Time".
	Name string
	// Territory is an ISO region code ("001" for the world default) or
	// empty for the synthetic UTC record.
	Territory string
	// IANA holds the mapped identifiers; the first entry is canonical.
	IANA []string
}

// Canonical returns the record's default IANA identifier.
func (z *Zone) Canonical() string {
	return z.IANA[0]
}

// Get returns the first record whose Name matches zone. When territory is
// non-empty the record's Territory must also match exactly. With an empty
// territory the first record in dataset order wins, which for CLDR data is
// the "001" world default. Returns nil when no record matches.
func Get(zone, territory string) *Zone {
	for i := range zones {
		if zones[i].Name != zone {
			continue
		}
		if territory != "" && zones[i].Territory != territory {
			continue
		}
		return &zones[i]
	}
	return nil
}

// FromIANA returns the first record whose candidate list contains name.
// Returns ErrUnknownTimezone when the identifier is absent from the dataset.
func FromIANA(name string) (*Zone, error) {
	for i := range zones {
		for _, c := range zones[i].IANA {
			if c == name {
				return &zones[i], nil
			}
		}
	}
	return nil, errors.Wrapf(ErrUnknownTimezone, "%q", name)
}

// All returns the full mapping table in dataset order. The returned slice
// must not be modified.
func All() []Zone {
	return zones
}

// Version returns the upstream dataset versions: the windows-name revision
// and the IANA type version.
func Version() (other, typ string) {
	return otherVersion, typeVersion
}

// BuildDate returns when the embedded dataset was compiled.
func BuildDate() time.Time {
	return buildDate
}

// Hash returns the content fingerprint of the embedded dataset, used to
// detect drift between builds.
func Hash() uint64 {
	return datasetHash
}
