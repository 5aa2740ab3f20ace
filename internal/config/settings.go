package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings is the client-side persisted state. The web UI kept exactly one
// key in browser storage (the language); this file is its stand-in.
type Settings struct {
	Language string `yaml:"language"`
}

// Store reads and writes Settings at a fixed path.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns the persisted settings, or defaults when no file exists yet.
func (s *Store) Load() (Settings, error) {
	settings := Settings{Language: "en"}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{Language: "en"}, fmt.Errorf("parse settings: %w", err)
	}
	if settings.Language == "" {
		settings.Language = "en"
	}
	return settings, nil
}

// Save writes the settings, creating parent directories as needed.
func (s *Store) Save(settings Settings) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
