// Package config persists the local mig configuration: the CircleCI token and the followed project.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultPath is the location of the configuration file when none is given.
const DefaultPath = ".mig.json"

// LocalConfig is the content of the configuration file.
type LocalConfig struct {
	Authorization string `json:"authorization"`
	Project       string `json:"project"`
	Slug          string `json:"slug"`
}

// Manager reads and writes the configuration file at Path.
type Manager struct {
	Path string
}

// NewManager returns a Manager for path, or for DefaultPath if path is empty.
func NewManager(path string) Manager {
	if path == "" {
		path = DefaultPath
	}
	return Manager{Path: path}
}

// Exists reports whether the configuration file is present.
func (m Manager) Exists() bool {
	_, err := os.Stat(m.Path)
	return err == nil
}

// Read loads the configuration file.
func (m Manager) Read() (LocalConfig, error) {
	b, err := os.ReadFile(m.Path)
	if err != nil {
		return LocalConfig{}, fmt.Errorf("failed to open config file: %w", err)
	}

	var c LocalConfig
	if err := json.Unmarshal(b, &c); err != nil {
		return LocalConfig{}, fmt.Errorf("failed to parse config file %s: %w", m.Path, err)
	}

	return c, nil
}

// Write replaces the configuration file with the given values.
// Nothing is merged with a previously stored configuration.
func (m Manager) Write(authorization, project, slug string) error {
	b, err := json.Marshal(LocalConfig{
		Authorization: authorization,
		Project:       project,
		Slug:          slug,
	})
	if err != nil {
		return err
	}

	// The file holds a token.
	if err := os.WriteFile(m.Path, b, 0600); err != nil {
		return fmt.Errorf("unable to write config file: %w", err)
	}
	return nil
}
