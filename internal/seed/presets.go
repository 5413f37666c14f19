package seed

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var presetsYAML []byte

// Preset is a named seeding profile.
type Preset struct {
	Name  string `yaml:"name"`
	Users int    `yaml:"users"`
	Posts int    `yaml:"posts"`
}

type presetFile struct {
	Presets []Preset `yaml:"presets"`
}

// LoadPresets parses the embedded preset definitions.
func LoadPresets() ([]Preset, error) {
	var pf presetFile
	if err := yaml.Unmarshal(presetsYAML, &pf); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}
	return pf.Presets, nil
}

// ApplyPreset runs the full seeding pipeline using the named preset.
func (s *Seeder) ApplyPreset(name string) error {
	presets, err := LoadPresets()
	if err != nil {
		return err
	}

	for _, p := range presets {
		if p.Name != name {
			continue
		}
		users, err := s.SeedCommunity(p.Users)
		if err != nil {
			return fmt.Errorf("preset %s: seed users: %w", name, err)
		}
		if _, err := s.SeedEngagement(users, p.Posts); err != nil {
			return fmt.Errorf("preset %s: seed posts: %w", name, err)
		}
		return nil
	}
	return fmt.Errorf("unknown preset %q", name)
}
