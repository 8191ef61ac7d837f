package branding

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// RegistryPath is the CurrentVersion key whose display strings the tool
// rewrites. System-information surfaces (winver, Settings, systeminfo)
// read their branding from here.
const RegistryPath = `SOFTWARE\Microsoft\Windows NT\CurrentVersion`

// Registry value names a profile targets. The set is closed: the tool only
// touches these four values and nothing else under RegistryPath.
const (
	ValueProductName     = "ProductName"
	ValueRegisteredOwner = "RegisteredOwner"
	ValueEditionID       = "EditionID"
	ValueDisplayVersion  = "DisplayVersion"
)

// Profile holds the branding strings written to the registry. All four
// values must be set before an apply starts; entries are independent of
// each other.
type Profile struct {
	ProductName     string `yaml:"product_name"`
	RegisteredOwner string `yaml:"registered_owner"`
	EditionID       string `yaml:"edition_id"`
	DisplayVersion  string `yaml:"display_version"`
}

// Entry is one registry value name together with the string the profile
// assigns to it.
type Entry struct {
	Name  string
	Value string
}

// Default returns the built-in Samsoft branding profile.
func Default() *Profile {
	return &Profile{
		ProductName:     "Samsoft OS NT 11",
		RegisteredOwner: "Samsoft.Glaceon",
		EditionID:       "SamsoftNT11",
		DisplayVersion:  "Samsoft Build 2025.09",
	}
}

// Entries returns the profile in fixed display order so output and logs
// stay stable across runs.
func (p *Profile) Entries() []Entry {
	return []Entry{
		{ValueProductName, p.ProductName},
		{ValueRegisteredOwner, p.RegisteredOwner},
		{ValueEditionID, p.EditionID},
		{ValueDisplayVersion, p.DisplayVersion},
	}
}

func (p *Profile) Validate() error {
	for _, e := range p.Entries() {
		if e.Value == "" {
			return fmt.Errorf("profile value %s is empty", e.Name)
		}
	}
	return nil
}

// Load reads a profile from a YAML file. Unknown fields are rejected so a
// profile cannot silently target values outside the closed set.
func Load(path string) (*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var p Profile
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func Save(path string, p *Profile) error {
	if p == nil {
		return errors.New("profile is nil")
	}
	b, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}

// EnsureExists writes the default profile when the file is missing. It
// never overwrites an existing profile.
func EnsureExists(path string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return Save(path, Default())
}
