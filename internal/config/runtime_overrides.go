package config

import "os"

// ApplyRuntimeOverrides applies environment/OS-specific overrides after YAML
// load and before validation.
func (c *Config) ApplyRuntimeOverrides() {
	applyEnvOverrides(c)
	applyOSOverrides(c)
}

func applyEnvOverrides(c *Config) {
	if v := os.Getenv("REBRAND_PROFILE"); v != "" {
		c.Apply.ProfilePath = v
	}
	if v := os.Getenv("REBRAND_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
}
