//go:build js && wasm

package systz

import "syscall/js"

// resolve queries the host Intl API's resolved formatting options. Any
// failure in the JS bridge collapses to an absent result.
//
// Reference: https://developer.mozilla.org/en-US/docs/Web/JavaScript/Reference/Global_Objects/Intl/DateTimeFormat
func resolve() (tz string, ok bool) {
	defer func() {
		if recover() != nil {
			tz, ok = "", false
		}
	}()

	opts := js.Global().Get("Intl").Get("DateTimeFormat").New().Call("resolvedOptions")
	for _, key := range []string{"timeZoneName", "timeZone"} {
		v := opts.Get(key)
		if v.Type() != js.TypeString {
			continue
		}
		if name, found := parseTZ(v.String()); found {
			return name, true
		}
	}
	return "", false
}
