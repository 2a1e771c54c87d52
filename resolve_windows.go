//go:build windows

package systz

import (
	zlog "github.com/rs/zerolog/log"
	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"

	"github.com/systz/systz/winzones"
)

const tzInfoKey = `SYSTEM\CurrentControlSet\Control\TimeZoneInformation`

// resolve maps the Windows timezone to an IANA identifier: first through
// the unlocalized registry key name, then through the StandardName
// reported by GetTimeZoneInformation. Native API failures and names absent
// from the embedded dataset collapse to an absent result.
func resolve() (string, bool) {
	if name, ok := registryKeyName(); ok {
		// Some systems carry an IANA-style value here already.
		if tz, ok := parseTZ(name); ok {
			return tz, true
		}
		if z := winzones.Get(name, ""); z != nil {
			return z.Canonical(), true
		}
		zlog.Debug().Str("source", "TimeZoneKeyName").Str("candidate", name).
			Msg("skipping unparsable timezone candidate")
	}
	if name, ok := standardName(); ok {
		if z := winzones.Get(name, ""); z != nil {
			return z.Canonical(), true
		}
		zlog.Debug().Str("source", "GetTimeZoneInformation").Str("candidate", name).
			Msg("skipping unparsable timezone candidate")
	}
	return "", false
}

// registryKeyName reads the timezone key name maintained by the system,
// which matches the CLDR vendor names exactly and is not localized.
func registryKeyName() (string, bool) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, tzInfoKey, registry.QUERY_VALUE)
	if err != nil {
		return "", false
	}
	defer k.Close()

	name, _, err := k.GetStringValue("TimeZoneKeyName")
	if err != nil || name == "" {
		return "", false
	}
	return name, true
}

// standardName queries GetTimeZoneInformation and decodes the
// NUL-terminated UTF-16 StandardName buffer. The name is localized on
// non-English systems, so a table miss is expected there.
//
// Reference: https://learn.microsoft.com/en-us/windows/win32/api/timezoneapi/nf-timezoneapi-gettimezoneinformation
func standardName() (string, bool) {
	var tzi windows.Timezoneinformation
	if _, err := windows.GetTimeZoneInformation(&tzi); err != nil {
		return "", false
	}
	name := windows.UTF16ToString(tzi.StandardName[:])
	if name == "" {
		return "", false
	}
	return name, true
}
