package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTestConfig(t *testing.T, dir string) string {
	t.Helper()
	p := filepath.Join(dir, "rebrand.yaml")
	content := "apply:\n" +
		"  profile_path: \"C:/profiles/samsoft.yaml\"\n" +
		"  allow_unelevated: false\n" +
		"console:\n" +
		"  no_color: true\n" +
		"  no_pause: true\n" +
		"logging:\n" +
		"  file: \"C:/logs/rebrand.log\"\n" +
		"  max_size_mb: 2\n" +
		"  max_backups: 4\n"
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

func TestLoadDefaultsWhenPathEmpty(t *testing.T) {
	t.Setenv("REBRAND_PROFILE", "")
	t.Setenv("REBRAND_LOG_FILE", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Logging.File == "" {
		t.Fatal("default logging.file is empty")
	}
	if cfg.Logging.MaxSizeMB != 5 || cfg.Logging.MaxBackups != 3 {
		t.Fatalf("logging defaults=%d/%d, want 5/3", cfg.Logging.MaxSizeMB, cfg.Logging.MaxBackups)
	}
	if cfg.Console.NoColor || cfg.Console.NoPause {
		t.Fatal("console defaults should keep color and pause enabled")
	}
	if cfg.Apply.AllowUnelevated {
		t.Fatal("elevation preflight must be required by default")
	}
}

func TestLoadReadsFile(t *testing.T) {
	t.Setenv("REBRAND_PROFILE", "")
	t.Setenv("REBRAND_LOG_FILE", "")

	cfg, err := Load(writeTestConfig(t, t.TempDir()))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Apply.ProfilePath != "C:/profiles/samsoft.yaml" {
		t.Fatalf("profile_path=%q", cfg.Apply.ProfilePath)
	}
	if !cfg.Console.NoColor || !cfg.Console.NoPause {
		t.Fatal("console overrides not applied")
	}
	if cfg.Logging.MaxSizeMB != 2 || cfg.Logging.MaxBackups != 4 {
		t.Fatalf("logging=%d/%d, want 2/4", cfg.Logging.MaxSizeMB, cfg.Logging.MaxBackups)
	}
}

func TestLoadAppliesEnvOverrides(t *testing.T) {
	t.Setenv("REBRAND_PROFILE", "/tmp/override.yaml")
	t.Setenv("REBRAND_LOG_FILE", "/tmp/override.log")

	cfg, err := Load(writeTestConfig(t, t.TempDir()))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Apply.ProfilePath != "/tmp/override.yaml" {
		t.Fatalf("profile_path=%q, env override lost", cfg.Apply.ProfilePath)
	}
	if cfg.Logging.File != "/tmp/override.log" {
		t.Fatalf("logging.file=%q, env override lost", cfg.Logging.File)
	}
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	t.Setenv("REBRAND_PROFILE", "")
	t.Setenv("REBRAND_LOG_FILE", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Logging.MaxSizeMB != 5 {
		t.Fatalf("max_size_mb=%d, want default 5", cfg.Logging.MaxSizeMB)
	}
}

func TestValidateRejectsBadLogging(t *testing.T) {
	cfg := Default()
	cfg.Logging.MaxSizeMB = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected max_size_mb=0 to be rejected")
	}
}
