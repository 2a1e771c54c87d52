package cldr

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmit(t *testing.T) {
	doc, err := Parse([]byte(sampleXML))
	require.NoError(t, err)
	doc.Augment()

	var buf bytes.Buffer
	built := time.Date(2026, time.August, 25, 9, 14, 37, 0, time.UTC)
	require.NoError(t, doc.Emit(&buf, DefaultURL, built))

	src := buf.String()
	assert.True(t, strings.HasPrefix(src, "// Code generated by genzones. DO NOT EDIT."))
	assert.Contains(t, src, "package winzones")
	assert.Contains(t, src, `otherVersion = "7e11800"`)
	assert.Contains(t, src, `typeVersion  = "2021a"`)
	assert.Contains(t, src, "time.Date(2026, time.August, 25, 9, 14, 37, 0, time.UTC)")
	assert.Contains(t, src, `{Name: "Romance Standard Time", Territory: "ES", IANA: []string{"Europe/Madrid", "Africa/Ceuta"}},`)
	assert.Contains(t, src, `{Name: "Coordinated Universal Time", Territory: "", IANA: []string{"Etc/UTC"}},`)
}

func TestEmitTimestampNormalizedToUTC(t *testing.T) {
	doc, err := Parse([]byte(sampleXML))
	require.NoError(t, err)

	var buf bytes.Buffer
	local := time.Date(2026, time.August, 25, 11, 14, 37, 0, time.FixedZone("CEST", 2*60*60))
	require.NoError(t, doc.Emit(&buf, DefaultURL, local))
	assert.Contains(t, buf.String(), "time.Date(2026, time.August, 25, 9, 14, 37, 0, time.UTC)")
}
