//go:build !windows

package console

import "os"

// EnableColors reports whether ANSI escape codes can be used. On non-Windows
// platforms VT escapes work whenever stdout is a terminal.
func EnableColors(f *os.File) bool {
	return IsTerminal(f)
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// SetTitle is a no-op outside Windows.
func SetTitle(title string) {}
