// Package cldr compiles the Unicode CLDR windowsZones dataset into the
// static mapping table embedded by package winzones.
//
// The pipeline is strictly linear: Fetch, Parse, Validate, Augment, Hash,
// Emit. Every stage failure is fatal to the build; a stale or partial
// dataset must never reach a compiled binary.
package cldr

import (
	"context"
	"encoding/xml"
	"hash/fnv"
	"io"
	"net/http"
	"strings"
	"time"
	_ "time/tzdata" // full IANA database for candidate validation

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

// DefaultURL is the fixed upstream location of the windowsZones dataset.
const DefaultURL = "https://raw.githubusercontent.com/unicode-org/cldr/main/common/supplemental/windowsZones.xml"

// utcZoneName is the vendor name of the synthetic record appended by
// Augment. The upstream document does not reliably pair it with Etc/UTC,
// and the Windows resolver depends on the pairing being present.
const utcZoneName = "Coordinated Universal Time"

var validate = validator.New()

// MapZone is one raw vendor-name to IANA mapping record.
type MapZone struct {
	Other     string   `validate:"required"`
	Territory string   `validate:"omitempty,len=2|eq=001"`
	IANA      []string `validate:"required,min=1,dive,required"`
}

// Document is the parsed windowsZones dataset.
type Document struct {
	OtherVersion string    `validate:"required"`
	TypeVersion  string    `validate:"required"`
	Zones        []MapZone `validate:"required,min=1,dive"`
}

// xmlSupplementalData mirrors the subset of the CLDR supplementalData
// schema this package consumes.
type xmlSupplementalData struct {
	XMLName      xml.Name `xml:"supplementalData"`
	WindowsZones struct {
		MapTimezones struct {
			OtherVersion string `xml:"otherVersion,attr"`
			TypeVersion  string `xml:"typeVersion,attr"`
			MapZones     []struct {
				Other     string `xml:"other,attr"`
				Territory string `xml:"territory,attr"`
				Type      string `xml:"type,attr"`
			} `xml:"mapZone"`
		} `xml:"mapTimezones"`
	} `xml:"windowsZones"`
}

// Fetch retrieves the dataset document from url. A transport error or a
// non-200 response is an error; there are no retries.
func Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build dataset request")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "fetch %s", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Newf("fetch %s: unexpected status %s", url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read dataset response")
	}
	return data, nil
}

// Parse deserializes the windowsZones XML document. The type attribute of
// each mapZone element is a whitespace-separated list of IANA identifiers.
func Parse(data []byte) (*Document, error) {
	var raw xmlSupplementalData
	if err := xml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "unmarshal windowsZones XML")
	}

	mt := raw.WindowsZones.MapTimezones
	doc := &Document{
		OtherVersion: mt.OtherVersion,
		TypeVersion:  mt.TypeVersion,
		Zones:        make([]MapZone, 0, len(mt.MapZones)),
	}
	for _, mz := range mt.MapZones {
		doc.Zones = append(doc.Zones, MapZone{
			Other:     mz.Other,
			Territory: mz.Territory,
			IANA:      strings.Fields(mz.Type),
		})
	}

	if err := validate.Struct(doc); err != nil {
		return nil, errors.Wrap(err, "windowsZones document validation failed")
	}
	return doc, nil
}

// Validate checks every IANA candidate against the timezone database.
// Any unknown identifier aborts the build; an unvalidated entry must never
// be emitted.
func (d *Document) Validate() error {
	for _, z := range d.Zones {
		for _, name := range z.IANA {
			if _, err := time.LoadLocation(name); err != nil {
				return errors.Wrapf(err, "zone %q territory %q: invalid IANA identifier %q",
					z.Other, z.Territory, name)
			}
		}
	}
	return nil
}

// Augment appends the synthetic UTC record after all upstream records.
func (d *Document) Augment() {
	d.Zones = append(d.Zones, MapZone{
		Other: utcZoneName,
		IANA:  []string{"Etc/UTC"},
	})
}

// Hash returns a deterministic FNV-1a fingerprint over the ordered record
// set and the two source version strings. It changes whenever any single
// mapping changes and is bit-stable for identical input.
func (d *Document) Hash() uint64 {
	h := fnv.New64a()
	for _, z := range d.Zones {
		io.WriteString(h, z.Other)
		h.Write([]byte{0x1f})
		io.WriteString(h, z.Territory)
		h.Write([]byte{0x1f})
		io.WriteString(h, strings.Join(z.IANA, " "))
		h.Write([]byte{0x1e})
	}
	io.WriteString(h, d.OtherVersion)
	h.Write([]byte{0x1f})
	io.WriteString(h, d.TypeVersion)
	return h.Sum64()
}
