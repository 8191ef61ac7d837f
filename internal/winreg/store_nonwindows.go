//go:build !windows

package winreg

// Open always fails on non-Windows platforms; use NewMemStore for local
// testing.
func Open(path string, writable bool) (Store, error) {
	return nil, ErrUnsupported
}
