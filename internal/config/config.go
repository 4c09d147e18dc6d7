// Package config loads pydox.yaml generation settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// MaxInputSize caps config files to prevent memory exhaustion.
const MaxInputSize = 1 << 20

// Field length limits.
const (
	MaxModuleLength = 100  // Python module name
	MaxPathLength   = 2048 // Filesystem paths
	MaxStyleLength  = 50   // Stylesheet name
	MaxUserLength   = 39   // GitHub account name limit
)

// Config holds all settings for documentation generation.
type Config struct {
	Project Project `yaml:"project"`
	Output  Output  `yaml:"output"`
	Render  Render  `yaml:"render"`
}

// Project locates the sources to document.
type Project struct {
	Module     string `yaml:"module"`     // Python module name (empty = derive from manifest)
	Manifest   string `yaml:"manifest"`   // pyproject.toml path (default: "pyproject.toml")
	GitHubUser string `yaml:"githubUser"` // Overrides the account derived from the homepage URL
}

// Output defines where the generated files land.
type Output struct {
	Dir string `yaml:"dir"` // Directory for index.html (default: "docs")
}

// Render toggles optional output sections.
type Render struct {
	Style      string `yaml:"style"`      // Name of style in internal/assets/styles/ (empty = default)
	StyleDir   string `yaml:"styleDir"`   // Directory with custom styles/ (empty = embedded only)
	WithCSS    bool   `yaml:"withCSS"`    // Write the stylesheet next to index.html
	WithReadme bool   `yaml:"withReadme"` // Append the rendered README section
	WithPDF    bool   `yaml:"withPDF"`    // Also export index.pdf
}

// Validate checks field lengths and path shapes.
func (c *Config) Validate() error {
	if err := validateFieldLength("project.module", c.Project.Module, MaxModuleLength); err != nil {
		return err
	}
	if err := validateFieldLength("project.manifest", c.Project.Manifest, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("project.githubUser", c.Project.GitHubUser, MaxUserLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.dir", c.Output.Dir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("render.style", c.Render.Style, MaxStyleLength); err != nil {
		return err
	}
	if err := validateFieldLength("render.styleDir", c.Render.StyleDir, MaxPathLength); err != nil {
		return err
	}
	if strings.ContainsAny(c.Render.Style, "/\\") {
		return fmt.Errorf("render.style: must be a style name, not a path: %q", c.Render.Style)
	}
	return nil
}

func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() *Config {
	return &Config{
		Project: Project{Manifest: "pyproject.toml"},
		Output:  Output{Dir: "docs"},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !isFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if len(data) > MaxInputSize {
		return nil, fmt.Errorf("%w: %s is %d bytes (max %d)", ErrConfigParse, configPath, len(data), MaxInputSize)
	}

	cfg := DefaultConfig()
	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/pydox/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "pydox", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
