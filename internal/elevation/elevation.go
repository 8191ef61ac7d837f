// Package elevation answers whether the process runs with administrator
// rights and can relaunch the binary elevated via the shell's "runas" verb.
package elevation

import "errors"

var (
	// ErrNotElevated reports that the process lacks administrator rights.
	ErrNotElevated = errors.New("administrator rights are required; re-run from an elevated console")
	// ErrUnsupported reports that elevation handling is Windows-only.
	ErrUnsupported = errors.New("elevation is not supported on this platform")
)
