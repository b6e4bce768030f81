// Package config provides configuration loading for the server and the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resumeforge/internal/schemas"
	"github.com/jonathan/resumeforge/internal/types"
)

// Config is a candidate profile file used by the generate command.
// All fields are optional; CLI flags fill or override them.
type Config struct {
	Name       string `json:"name,omitempty"`
	Role       string `json:"role,omitempty"`
	Education  string `json:"education,omitempty"`
	Skills     string `json:"skills,omitempty"`
	Projects   string `json:"projects,omitempty"`
	Experience string `json:"experience,omitempty"`
}

// LoadConfig loads a profile file and checks it against the candidate profile schema.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := schemas.ValidateCandidateProfile(data); err != nil {
		return nil, fmt.Errorf("config file %s does not match schema: %w", path, err)
	}

	return &cfg, nil
}

// Validate checks the values a file can get wrong. Missing required fields are
// reported later by the generator, after flags have been merged in.
func (c *Config) Validate() error {
	if c.Role != "" && !types.Role(c.Role).Valid() {
		return fmt.Errorf("config error: unknown role %q", c.Role)
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// The receiver wins, so call it on the flag values with the file as defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Name == "" {
		result.Name = defaults.Name
	}
	if result.Role == "" {
		result.Role = defaults.Role
	}
	if result.Education == "" {
		result.Education = defaults.Education
	}
	if result.Skills == "" {
		result.Skills = defaults.Skills
	}
	if result.Projects == "" {
		result.Projects = defaults.Projects
	}
	if result.Experience == "" {
		result.Experience = defaults.Experience
	}

	return result
}

// Profile converts the config into a normalized candidate profile.
func (c *Config) Profile() types.CandidateProfile {
	return types.CandidateProfile{
		Name:       c.Name,
		Role:       types.Role(c.Role),
		Education:  c.Education,
		Skills:     c.Skills,
		Projects:   c.Projects,
		Experience: c.Experience,
	}.Normalize()
}
