package cldr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleXML = `<?xml version="1.0" encoding="UTF-8"?>
<supplementalData>
	<windowsZones>
		<mapTimezones otherVersion="7e11800" typeVersion="2021a">
			<mapZone other="Romance Standard Time" territory="001" type="Europe/Paris"/>
			<mapZone other="Romance Standard Time" territory="ES" type="Europe/Madrid Africa/Ceuta"/>
			<mapZone other="GMT Standard Time" territory="001" type="Europe/London"/>
		</mapTimezones>
	</windowsZones>
</supplementalData>`

func TestParse(t *testing.T) {
	doc, err := Parse([]byte(sampleXML))
	require.NoError(t, err)

	assert.Equal(t, "7e11800", doc.OtherVersion)
	assert.Equal(t, "2021a", doc.TypeVersion)
	require.Len(t, doc.Zones, 3)

	assert.Equal(t, "Romance Standard Time", doc.Zones[0].Other)
	assert.Equal(t, "001", doc.Zones[0].Territory)
	assert.Equal(t, []string{"Europe/Paris"}, doc.Zones[0].IANA)

	// Space-separated type lists split into ordered candidates.
	assert.Equal(t, []string{"Europe/Madrid", "Africa/Ceuta"}, doc.Zones[1].IANA)
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte("<supplementalData><windowsZones>"))
	require.Error(t, err)
}

func TestParseRejectsMissingVersion(t *testing.T) {
	broken := strings.Replace(sampleXML, `otherVersion="7e11800" `, "", 1)
	_, err := Parse([]byte(broken))
	require.Error(t, err)
}

func TestParseRejectsEmptyName(t *testing.T) {
	broken := strings.Replace(sampleXML, `other="GMT Standard Time"`, `other=""`, 1)
	_, err := Parse([]byte(broken))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	doc, err := Parse([]byte(sampleXML))
	require.NoError(t, err)
	assert.NoError(t, doc.Validate())
}

func TestValidateRejectsUnknownZone(t *testing.T) {
	broken := strings.Replace(sampleXML, "Europe/London", "Not/AZone", 1)
	doc, err := Parse([]byte(broken))
	require.NoError(t, err)

	err = doc.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Not/AZone")
}

func TestAugmentAppendsUTC(t *testing.T) {
	doc, err := Parse([]byte(sampleXML))
	require.NoError(t, err)

	doc.Augment()
	last := doc.Zones[len(doc.Zones)-1]
	assert.Equal(t, "Coordinated Universal Time", last.Other)
	assert.Empty(t, last.Territory)
	assert.Equal(t, []string{"Etc/UTC"}, last.IANA)
	assert.NoError(t, doc.Validate())
}

func TestHashStable(t *testing.T) {
	doc, err := Parse([]byte(sampleXML))
	require.NoError(t, err)
	doc.Augment()

	again, err := Parse([]byte(sampleXML))
	require.NoError(t, err)
	again.Augment()

	assert.Equal(t, doc.Hash(), again.Hash())
	assert.Equal(t, doc.Hash(), doc.Hash())
}

func TestHashSensitiveToSingleCandidate(t *testing.T) {
	doc, err := Parse([]byte(sampleXML))
	require.NoError(t, err)

	changed, err := Parse([]byte(strings.Replace(sampleXML, "Africa/Ceuta", "Europe/Andorra", 1)))
	require.NoError(t, err)

	assert.NotEqual(t, doc.Hash(), changed.Hash())
}

func TestHashSensitiveToVersion(t *testing.T) {
	doc, err := Parse([]byte(sampleXML))
	require.NoError(t, err)

	changed, err := Parse([]byte(strings.Replace(sampleXML, "2021a", "2021b", 1)))
	require.NoError(t, err)

	assert.NotEqual(t, doc.Hash(), changed.Hash())
}
