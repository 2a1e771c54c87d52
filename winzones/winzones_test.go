package winzones_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/systz/systz/internal/cldr"
	"github.com/systz/systz/winzones"
)

func TestGetWithTerritory(t *testing.T) {
	z := winzones.Get("US Mountain Standard Time", "CA")
	require.NotNil(t, z)
	assert.Equal(t, "America/Creston", z.Canonical())

	z = winzones.Get("US Mountain Standard Time", "")
	require.NotNil(t, z)
	assert.Equal(t, "America/Phoenix", z.Canonical())
}

func TestGetTerritoryMustMatchExactly(t *testing.T) {
	// A name-only match exists, but not for this territory.
	assert.Nil(t, winzones.Get("US Mountain Standard Time", "FR"))
	assert.Nil(t, winzones.Get("No Such Zone", ""))
}

func TestGetIsDeterministic(t *testing.T) {
	first := winzones.Get("W. Europe Standard Time", "")
	require.NotNil(t, first)
	assert.Equal(t, "001", first.Territory)
	for i := 0; i < 3; i++ {
		assert.Same(t, first, winzones.Get("W. Europe Standard Time", ""))
	}
}

func TestGetSyntheticUTC(t *testing.T) {
	z := winzones.Get("Coordinated Universal Time", "")
	require.NotNil(t, z)
	assert.Equal(t, "Etc/UTC", z.Canonical())
	assert.Empty(t, z.Territory)
}

func TestFromIANA(t *testing.T) {
	z, err := winzones.FromIANA("Europe/Vienna")
	require.NoError(t, err)
	assert.Same(t, winzones.Get("W. Europe Standard Time", "AT"), z)
}

func TestFromIANAUnknown(t *testing.T) {
	_, err := winzones.FromIANA("Mars/Olympus_Mons")
	require.Error(t, err)
	assert.ErrorIs(t, err, winzones.ErrUnknownTimezone)
}

func TestFromIANARoundTrip(t *testing.T) {
	z, err := winzones.FromIANA("Europe/Paris")
	require.NoError(t, err)
	assert.Equal(t, "Europe/Paris", z.Canonical())
}

// Every candidate in the dataset reverse-looks-up to a record whose
// canonical identifier is itself stable under another round trip.
func TestRoundTripAllCandidates(t *testing.T) {
	for _, z := range winzones.All() {
		for _, name := range z.IANA {
			rec, err := winzones.FromIANA(name)
			require.NoError(t, err, "candidate %q", name)
			again, err := winzones.FromIANA(rec.Canonical())
			require.NoError(t, err, "canonical %q", rec.Canonical())
			assert.Equal(t, rec.Canonical(), again.Canonical())
		}
	}
}

func TestAllCandidatesAreLoadable(t *testing.T) {
	for _, z := range winzones.All() {
		for _, name := range z.IANA {
			_, err := time.LoadLocation(name)
			assert.NoError(t, err, "zone %q territory %q candidate %q", z.Name, z.Territory, name)
		}
	}
}

func TestVersionMetadata(t *testing.T) {
	other, typ := winzones.Version()
	assert.NotEmpty(t, other)
	assert.NotEmpty(t, typ)
	assert.False(t, winzones.BuildDate().IsZero())
	assert.NotZero(t, winzones.Hash())
}

// The embedded hash constant must match recomputing the fingerprint over
// the embedded records, so dataset drift cannot go unnoticed.
func TestHashMatchesDataset(t *testing.T) {
	other, typ := winzones.Version()
	doc := &cldr.Document{OtherVersion: other, TypeVersion: typ}
	for _, z := range winzones.All() {
		doc.Zones = append(doc.Zones, cldr.MapZone{
			Other:     z.Name,
			Territory: z.Territory,
			IANA:      z.IANA,
		})
	}
	assert.Equal(t, winzones.Hash(), doc.Hash())
}
