//go:build !unix && !windows && !(js && wasm)

package systz

// resolve has no probing strategy on this platform.
func resolve() (string, bool) {
	return "", false
}
