// Package session provides the CircleCI token stored in the local configuration file.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/vignesh-tw/migration-analysis/internal/fault"
)

// Session reads the authorization token from the JSON file at ConfigPath.
type Session struct {
	ConfigPath string
}

// New returns a Session backed by the file at configPath.
func New(configPath string) Session {
	return Session{ConfigPath: configPath}
}

// Authorization returns the stored token.
// All failures are of kind fault.ErrNotFound, except unexpected I/O errors.
func (s Session) Authorization() (string, error) {
	b, err := os.ReadFile(s.ConfigPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fault.New(fault.ErrNotFound, "failed to find config")
		}
		return "", fmt.Errorf("failed to open config file: %w", err)
	}

	var c struct {
		Authorization *string `json:"authorization"`
	}
	if err := json.Unmarshal(b, &c); err != nil || c.Authorization == nil {
		return "", fault.Newf(fault.ErrNotFound, "authorization not present in %s", s.ConfigPath)
	}

	if *c.Authorization == "" {
		return "", fault.Newf(fault.ErrNotFound, "authorization not set in %s", s.ConfigPath)
	}

	return *c.Authorization, nil
}
