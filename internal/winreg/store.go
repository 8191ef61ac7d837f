// Package winreg wraps string-value access to a single Windows registry key
// behind a Store so the apply engine can run against the real registry on
// Windows and an in-memory store everywhere else.
package winreg

import "errors"

var (
	// ErrNotExist reports that the requested value is absent under the key.
	ErrNotExist = errors.New("registry value does not exist")
	// ErrUnsupported reports that the Windows registry is not available on
	// this platform.
	ErrUnsupported = errors.New("windows registry is not supported on this platform")
)

// Store reads and writes REG_SZ values under one registry key.
type Store interface {
	GetString(name string) (string, error)
	SetString(name, value string) error
	Close() error
}
