//go:build unix

package systz

import (
	"os"
	"path/filepath"
	"strings"

	zlog "github.com/rs/zerolog/log"
)

// resolve probes well-known Unix timezone sources in order and returns the
// first candidate that parses.
//
// References:
//   - https://man7.org/linux/man-pages/man5/localtime.5.html
//   - https://www.man7.org/linux/man-pages/man1/timedatectl.1.html
func resolve() (string, bool) {
	if tz, ok := envTZ("TZ"); ok {
		return tz, true
	}
	if tz, ok := fileTZ("/etc/timezone"); ok {
		return tz, true
	}
	// BSD
	if tz, ok := fileTZ("/var/db/zoneinfo"); ok {
		return tz, true
	}
	if tz, ok := linkTZ("/etc/localtime"); ok {
		return tz, true
	}
	if tz, ok := linkTZ("/usr/local/etc/localtime"); ok {
		return tz, true
	}
	// CentOS and OpenSUSE
	if tz, ok := confTZ("/etc/sysconfig/clock", "ZONE", "TIMEZONE"); ok {
		return tz, true
	}
	// Gentoo
	if tz, ok := confTZ("/etc/conf.d/clock", "TIMEZONE"); ok {
		return tz, true
	}
	// Solaris
	if tz, ok := confTZ("/etc/default/init", "TZ"); ok {
		return tz, true
	}
	if tz, ok := confTZ("/usr/local/etc/default/init", "TZ"); ok {
		return tz, true
	}
	return "", false
}

func envTZ(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	return accept("$"+key, v)
}

func fileTZ(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return accept(path, string(data))
}

// linkTZ canonicalizes a localtime symlink and extracts the IANA name as
// the path suffix following the zoneinfo directory marker.
func linkTZ(path string) (string, bool) {
	dest, err := os.Readlink(path)
	if err != nil {
		return "", false
	}
	if !filepath.IsAbs(dest) {
		dest = filepath.Join(filepath.Dir(path), dest)
	}
	dest, err = filepath.EvalSymlinks(dest)
	if err != nil {
		return "", false
	}
	_, name, found := strings.Cut(dest, "/zoneinfo/")
	if !found {
		return "", false
	}
	return accept(path, name)
}

// confTZ scans a line-oriented KEY=value file for the first line whose key
// starts with one of the given prefixes. Values may be quoted.
func confTZ(path string, prefixes ...string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	for _, line := range strings.Split(string(data), "\n") {
		key, value, found := strings.Cut(strings.TrimSpace(line), "=")
		if !found {
			continue
		}
		for _, prefix := range prefixes {
			if strings.HasPrefix(key, prefix) {
				if tz, ok := accept(path, strings.Trim(value, `"'`)); ok {
					return tz, true
				}
			}
		}
	}
	return "", false
}

// accept parses a candidate, logging present-but-unparsable values at
// debug level. Probing stays silent by default since partial availability
// is the normal case.
func accept(source, candidate string) (string, bool) {
	tz, ok := parseTZ(candidate)
	if !ok && strings.TrimSpace(candidate) != "" {
		zlog.Debug().Str("source", source).Str("candidate", strings.TrimSpace(candidate)).
			Msg("skipping unparsable timezone candidate")
	}
	return tz, ok
}
