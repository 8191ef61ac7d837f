//go:build !windows

package elevation

// IsElevated always reports false outside Windows; the registry the tool
// targets does not exist there.
func IsElevated() bool { return false }

// Relaunch is unsupported outside Windows.
func Relaunch(args []string) error { return ErrUnsupported }
