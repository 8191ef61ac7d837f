//go:build !windows

package config

// There is no registry to bootstrap from outside Windows.
func applyOSOverrides(c *Config) {}
