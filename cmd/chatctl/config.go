package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ircx/chatframe-go/pkg/chatframe"
)

// Profile is a saved control configuration.
type Profile struct {
	Log LogConfig `yaml:"log"`

	// Stub swaps the registered control for in-process stand-ins.
	Stub bool `yaml:"stub"`

	// Watch keeps the process listening for redirects this long.
	Watch time.Duration `yaml:"watch"`

	// Settings and Frame map property names to values; see
	// chatframe.FrameFields for the names.
	Settings map[string]any `yaml:"settings"`
	Frame    map[string]any `yaml:"frame"`
}

// LogConfig selects the zap logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // console or json
}

// LoadProfile reads and validates a YAML profile.
func LoadProfile(path string) (*Profile, error) {
	absPath, err := SecurePath(path)
	if err != nil {
		return nil, fmt.Errorf("secure path: %w", err)
	}
	data, err := os.ReadFile(absPath) // #nosec G304 -- absPath validated by SecurePath
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("unmarshal YAML: %w", err)
	}
	if err := ValidateProfile(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// SecurePath validates that a file path doesn't escape the working directory.
func SecurePath(path string) (string, error) {
	clean := filepath.Clean(path)
	absPath, err := filepath.Abs(clean)
	if err != nil {
		return "", fmt.Errorf("absolute path: %w", err)
	}
	base, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	rel, err := filepath.Rel(base, absPath)
	if err != nil {
		return "", fmt.Errorf("relative path: %w", err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return "", fmt.Errorf("path %q escapes working directory", path)
	}
	return absPath, nil
}

// ValidateProfile checks property names against the control's interfaces
// and rejects unknown log settings. It does not touch the control.
func ValidateProfile(p *Profile) error {
	if p == nil {
		return errors.New("nil profile")
	}
	switch p.Log.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("log.format: unknown format %q", p.Log.Format)
	}
	if p.Watch < 0 {
		return errors.New("watch must not be negative")
	}
	if err := checkNames("frame", p.Frame, chatframe.FrameFields()); err != nil {
		return err
	}
	return checkNames("settings", p.Settings, chatframe.SettingsFields())
}

func checkNames(section string, values map[string]any, fields []chatframe.Field) error {
	known := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		known[f.Name] = struct{}{}
	}
	var errs []error
	for name := range values {
		if _, ok := known[name]; !ok {
			errs = append(errs, fmt.Errorf("%s.%s: %w", section, name, chatframe.ErrUnknownField))
		}
	}
	return errors.Join(errs...)
}
