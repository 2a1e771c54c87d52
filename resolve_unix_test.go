//go:build unix

package systz

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFromEnv(t *testing.T) {
	t.Setenv("TZ", " eUROpe/paris ")
	tz, ok := Resolve()
	require.True(t, ok)
	assert.Equal(t, "Europe/Paris", tz)
}

func TestEnvTZEmpty(t *testing.T) {
	t.Setenv("TZ", "")
	_, ok := envTZ("TZ")
	assert.False(t, ok)
}

func TestFileTZ(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "timezone")
	require.NoError(t, os.WriteFile(path, []byte("america/new_york\n"), 0644))

	tz, ok := fileTZ(path)
	require.True(t, ok)
	assert.Equal(t, "America/New_York", tz)

	_, ok = fileTZ(filepath.Join(dir, "missing"))
	assert.False(t, ok)
}

func TestLinkTZ(t *testing.T) {
	dir := t.TempDir()
	zone := filepath.Join(dir, "zoneinfo", "Europe", "Paris")
	require.NoError(t, os.MkdirAll(filepath.Dir(zone), 0755))
	require.NoError(t, os.WriteFile(zone, []byte("TZif"), 0644))

	link := filepath.Join(dir, "localtime")
	require.NoError(t, os.Symlink(zone, link))

	tz, ok := linkTZ(link)
	require.True(t, ok)
	assert.Equal(t, "Europe/Paris", tz)
}

func TestLinkTZNotSymlink(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "localtime")
	require.NoError(t, os.WriteFile(plain, []byte("TZif"), 0644))

	_, ok := linkTZ(plain)
	assert.False(t, ok)
}

func TestLinkTZOutsideZoneinfo(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "Europe", "Paris")
	require.NoError(t, os.MkdirAll(filepath.Dir(target), 0755))
	require.NoError(t, os.WriteFile(target, []byte("TZif"), 0644))

	link := filepath.Join(dir, "localtime")
	require.NoError(t, os.Symlink(target, link))

	_, ok := linkTZ(link)
	assert.False(t, ok)
}

func TestConfTZ(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clock")
	content := "# system clock configuration\nUTC=true\n  ZONE=\"Europe/Paris\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	tz, ok := confTZ(path, "ZONE", "TIMEZONE")
	require.True(t, ok)
	assert.Equal(t, "Europe/Paris", tz)
}

func TestConfTZKeyPrefixMismatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clock")
	require.NoError(t, os.WriteFile(path, []byte("TIMEZONE=Europe/Paris\n"), 0644))

	_, ok := confTZ(path, "ZONE")
	assert.False(t, ok)
}

func TestConfTZUnparsableValue(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clock")
	require.NoError(t, os.WriteFile(path, []byte("ZONE=Not/AZone\n"), 0644))

	_, ok := confTZ(path, "ZONE")
	assert.False(t, ok)

	_, ok = confTZ(filepath.Join(dir, "missing"), "ZONE")
	assert.False(t, ok)
}
