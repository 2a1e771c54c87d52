package systz

import (
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/systz/systz/winzones"
)

// zoneinfoDirs are the conventional tzdata locations scanned when building
// the case-insensitive name index.
var zoneinfoDirs = []string{
	"/usr/share/zoneinfo",
	"/usr/lib/zoneinfo",
	"/usr/share/lib/zoneinfo",
}

var (
	indexOnce sync.Once
	nameIndex map[string]string // lowercased identifier -> canonical form

	// parsed memoizes successful candidate parses across concurrent callers.
	parsed = xsync.NewMapOf[string, string]()
)

// parseTZ validates a timezone name candidate and returns its canonical
// IANA form. Surrounding whitespace is ignored and matching is
// case-insensitive. Returns false for anything that is not a known
// identifier.
func parseTZ(s string) (string, bool) {
	s = strings.TrimSpace(s)
	// "Local" is accepted by time.LoadLocation but is not an IANA name.
	if s == "" || s == "Local" {
		return "", false
	}
	if name, ok := parsed.Load(s); ok {
		return name, true
	}
	name, ok := lookup(s)
	if ok {
		parsed.Store(s, name)
	}
	return name, ok
}

func lookup(s string) (string, bool) {
	indexOnce.Do(buildIndex)
	if name, ok := nameIndex[strings.ToLower(s)]; ok {
		return name, true
	}
	// Exact-cased names outside the index, e.g. zones added to tzdata
	// after the embedded dataset was compiled.
	if _, err := time.LoadLocation(s); err == nil {
		return s, true
	}
	return "", false
}

// buildIndex collects known IANA names from the embedded windowsZones
// candidates and, where present, the on-disk zoneinfo database. The first
// spelling registered for a name wins.
func buildIndex() {
	nameIndex = make(map[string]string, 1024)
	add := func(name string) {
		key := strings.ToLower(name)
		if _, ok := nameIndex[key]; !ok {
			nameIndex[key] = name
		}
	}
	for _, z := range winzones.All() {
		for _, name := range z.IANA {
			add(name)
		}
	}
	for _, dir := range zoneinfoDirs {
		walkZoneinfo(dir, add)
	}
}

// walkZoneinfo registers every loadable zone file under dir, skipping the
// posix/ and right/ variants. Metadata files such as VERSION or zone.tab
// fail the load check and drop out on their own.
func walkZoneinfo(dir string, add func(string)) {
	prefix := dir + string(filepath.Separator)
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			switch d.Name() {
			case "posix", "right":
				return filepath.SkipDir
			}
			return nil
		}
		name := filepath.ToSlash(strings.TrimPrefix(path, prefix))
		if _, err := time.LoadLocation(name); err == nil {
			add(name)
		}
		return nil
	})
}
