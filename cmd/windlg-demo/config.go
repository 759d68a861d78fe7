package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"windlg"
)

// LogConfig is the logging section of the config file
type LogConfig struct {
	MaxSizeMB  int  `json:"max_size_mb,omitempty"`  // Max log file size in MB before rotation (default: 10)
	MaxBackups int  `json:"max_backups,omitempty"`  // Max number of old log files to keep (default: 5)
	MaxAgeDays int  `json:"max_age_days,omitempty"` // Max days to retain old log files (default: 7)
	Compress   bool `json:"compress,omitempty"`     // Compress rotated log files
	ToStdout   bool `json:"to_stdout,omitempty"`    // Also write logs to stdout
}

// Config represents the demo application configuration
type Config struct {
	Prompts   []PromptEntry   `json:"prompts"`
	Questions []QuestionEntry `json:"questions,omitempty"`
	Logging   *LogConfig      `json:"logging,omitempty"`
}

// PromptEntry represents a configured text prompt
type PromptEntry struct {
	Index   int    `json:"index"`             // Numeric index for hotkey access
	Name    string `json:"name"`              // Display name in menu
	Title   string `json:"title"`             // Dialog window title
	Message string `json:"message"`           // Label above the input field
	Default string `json:"default,omitempty"` // Pre-filled input text
	Script  string `json:"script,omitempty"`  // Optional Lua script run with the answer
}

// QuestionEntry represents a configured multi-option message box
type QuestionEntry struct {
	Index   int           `json:"index"`            // Numeric index for ordering/reference
	Name    string        `json:"name"`             // Display name in menu
	Title   string        `json:"title"`            // Dialog window title
	Message string        `json:"message"`          // Text above the buttons
	Options []OptionEntry `json:"options"`          // One button per option
	Script  string        `json:"script,omitempty"` // Optional Lua script run with the selection
}

// OptionEntry is one button of a question
type OptionEntry struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
}

// GetLogConfigWithDefaults returns the library log config, using defaults
// for anything the logging section leaves unset
func (c *Config) GetLogConfigWithDefaults() windlg.LogConfig {
	cfg := windlg.DefaultLogConfig()
	if c == nil || c.Logging == nil {
		return cfg
	}

	if c.Logging.MaxSizeMB > 0 {
		cfg.MaxSizeMB = c.Logging.MaxSizeMB
	}
	if c.Logging.MaxBackups > 0 {
		cfg.MaxBackups = c.Logging.MaxBackups
	}
	if c.Logging.MaxAgeDays > 0 {
		cfg.MaxAgeDays = c.Logging.MaxAgeDays
	}
	// For booleans, only override if the logging section exists
	// This allows users to explicitly set false
	cfg.Compress = c.Logging.Compress
	cfg.ToStdout = c.Logging.ToStdout

	return cfg
}

// ScriptsDir returns the Lua scripts directory path
func ScriptsDir() string {
	return filepath.Join(windlg.ConfigDir(), "scripts")
}

// DefaultConfigPath returns the default configuration file path
func DefaultConfigPath() string {
	return filepath.Join(windlg.ConfigDir(), "windlg.json")
}

// ScriptPath returns the full path for a script filename
func ScriptPath(scriptName string) string {
	return filepath.Join(ScriptsDir(), scriptName)
}

// LoadConfig loads configuration from the specified path
// If path is empty, uses the default path
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SaveConfig saves configuration to the specified path
// If path is empty, uses the default path
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		path = DefaultConfigPath()
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// CreateDefaultConfig creates a default configuration file if it doesn't exist
func CreateDefaultConfig() error {
	path := DefaultConfigPath()
	if _, err := os.Stat(path); err == nil {
		// Config already exists
		return nil
	}

	cfg := &Config{
		Prompts: []PromptEntry{
			{
				Index:   1,
				Name:    "Your name",
				Title:   "Hello",
				Message: "What is your name?",
				Default: os.Getenv("USER"),
			},
		},
		Questions: []QuestionEntry{
			{
				Index:   1,
				Name:    "Coffee or tea",
				Title:   "Beverage",
				Message: "What would you like?",
				Options: []OptionEntry{
					{ID: 1, Label: "Coffee"},
					{ID: 2, Label: "Tea"},
					{ID: 3, Label: "Neither"},
				},
			},
		},
	}

	return SaveConfig(cfg, path)
}
