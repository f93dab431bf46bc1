// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Server
	Port        int    `json:"port,omitempty"`         // HTTP listen port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Offline ranking inputs
	CandidatesFile string `json:"candidates_file,omitempty"` // Path to candidates JSON file
	JobsFile       string `json:"jobs_file,omitempty"`       // Path to jobs JSON file

	// Ranking behavior
	Limit          int     `json:"limit,omitempty"`           // Maximum ranked results returned
	SkillsWeight   float64 `json:"skills_weight,omitempty"`   // Weight of the skills dimension
	TitleWeight    float64 `json:"title_weight,omitempty"`    // Weight of the title-vs-description dimension
	YearsWeight    float64 `json:"years_weight,omitempty"`    // Weight of the years-of-experience dimension
	LocationWeight float64 `json:"location_weight,omitempty"` // Weight of the location dimension

	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required fields are checked by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.Limit < 0 {
		return fmt.Errorf("config error: 'limit' must be non-negative")
	}
	if c.SkillsWeight < 0 || c.TitleWeight < 0 || c.YearsWeight < 0 || c.LocationWeight < 0 {
		return fmt.Errorf("config error: dimension weights must be non-negative")
	}

	// Validate file paths exist (if specified)
	if c.CandidatesFile != "" {
		if _, err := os.Stat(c.CandidatesFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: candidates file not found: %s", c.CandidatesFile)
		}
	}
	if c.JobsFile != "" {
		if _, err := os.Stat(c.JobsFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: jobs file not found: %s", c.JobsFile)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.CandidatesFile == "" {
		result.CandidatesFile = defaults.CandidatesFile
	}
	if result.JobsFile == "" {
		result.JobsFile = defaults.JobsFile
	}

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.Limit == 0 {
		result.Limit = defaults.Limit
	}

	if result.SkillsWeight == 0 {
		result.SkillsWeight = defaults.SkillsWeight
	}
	if result.TitleWeight == 0 {
		result.TitleWeight = defaults.TitleWeight
	}
	if result.YearsWeight == 0 {
		result.YearsWeight = defaults.YearsWeight
	}
	if result.LocationWeight == 0 {
		result.LocationWeight = defaults.LocationWeight
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
