//go:build windows

package winreg

import (
	"errors"

	"golang.org/x/sys/windows/registry"
)

type hklmStore struct {
	key registry.Key
}

// Open opens a key under HKEY_LOCAL_MACHINE. WOW64_64KEY keeps writes in the
// 64-bit view so 32-bit builds do not land in WOW6432Node.
func Open(path string, writable bool) (Store, error) {
	access := uint32(registry.QUERY_VALUE)
	if writable {
		access |= registry.SET_VALUE
	}
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, path, access|registry.WOW64_64KEY)
	if err != nil {
		return nil, err
	}
	return &hklmStore{key: k}, nil
}

func (s *hklmStore) GetString(name string) (string, error) {
	v, _, err := s.key.GetStringValue(name)
	if errors.Is(err, registry.ErrNotExist) {
		return "", ErrNotExist
	}
	if err != nil {
		return "", err
	}
	return v, nil
}

func (s *hklmStore) SetString(name, value string) error {
	return s.key.SetStringValue(name, value)
}

func (s *hklmStore) Close() error {
	return s.key.Close()
}
