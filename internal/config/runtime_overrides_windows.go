//go:build windows

package config

import "golang.org/x/sys/windows/registry"

// Deployment tooling can stage overrides here before the tool first runs.
const bootstrapRegistryPath = `SOFTWARE\Samsoft\Rebrand\Bootstrap`

func applyOSOverrides(c *Config) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, bootstrapRegistryPath, registry.QUERY_VALUE)
	if err != nil {
		return
	}
	defer k.Close()

	if v, _, err := k.GetStringValue("ProfilePath"); err == nil && v != "" {
		c.Apply.ProfilePath = v
	}
	if v, _, err := k.GetStringValue("LogFile"); err == nil && v != "" {
		c.Logging.File = v
	}
}
