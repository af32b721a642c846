// Package config provides configuration handling for dockergen.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/dublyo/dockergen/frameworks"
	"github.com/dublyo/dockergen/internal/errors"
)

// Config represents the global dockergen configuration
type Config struct {
	// Default settings
	Defaults DefaultsConfig `yaml:"defaults"`

	// Template override settings
	Templates TemplatesConfig `yaml:"templates"`

	// Clipboard settings
	Clipboard ClipboardConfig `yaml:"clipboard"`

	// Logging settings
	Log LogConfig `yaml:"log"`

	// Additional frameworks registered after the built-ins
	Frameworks []FrameworkConfig `yaml:"frameworks"`

	path string // File the configuration was loaded from, if any
}

// DefaultsConfig contains default generation settings
type DefaultsConfig struct {
	NodeVersion   string `yaml:"node_version"`
	PythonVersion string `yaml:"python_version"`
	Output        string `yaml:"output"`    // Output file, empty for stdout
	Overwrite     bool   `yaml:"overwrite"` // Replace an existing output file
}

// TemplatesConfig contains template override settings
type TemplatesConfig struct {
	Dir string `yaml:"dir"` // Directory of <key>.Dockerfile.tmpl overrides
}

// ClipboardConfig contains clipboard settings
type ClipboardConfig struct {
	Enabled bool `yaml:"enabled"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

// FrameworkConfig declares a framework in the config file
type FrameworkConfig struct {
	Key          string `yaml:"key"`
	Name         string `yaml:"name"`
	Family       string `yaml:"family"` // node or python
	Port         int    `yaml:"port"`
	HostPort     int    `yaml:"host_port"`
	Description  string `yaml:"description"`
	Template     string `yaml:"template"`      // Inline template
	TemplateFile string `yaml:"template_file"` // Relative to the config file
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			NodeVersion:   frameworks.DefaultNodeVersion,
			PythonVersion: frameworks.DefaultPythonVersion,
		},
		Clipboard: ClipboardConfig{
			Enabled: true,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// SearchPaths returns the locations Load checks, in order
func SearchPaths() []string {
	home := os.Getenv("HOME")
	return []string{
		".dockergen.yml",
		".dockergen.yaml",
		filepath.Join(home, ".config", "dockergen", "config.yml"),
		filepath.Join(home, ".dockergen.yml"),
	}
}

// Load loads configuration from the default locations.
// A .env file in the working directory is applied to the environment first.
func Load() (*Config, error) {
	return load(".env", SearchPaths())
}

func load(dotenv string, paths []string) (*Config, error) {
	if err := loadDotEnv(dotenv); err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := cfg.loadFromFile(path); err != nil {
				return nil, err
			}
			break
		}
	}

	if err := cfg.loadFromEnv(); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// LoadFromFile loads configuration from a specific file
func LoadFromFile(path string) (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", errors.ErrConfigNotFound, path)
	}
	if err := cfg.loadFromFile(path); err != nil {
		return nil, err
	}
	if err := cfg.loadFromEnv(); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// Path returns the file the configuration was loaded from, or ""
func (c *Config) Path() string {
	return c.path
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("%w: %s: %v", errors.ErrConfigInvalid, path, err)
	}
	return nil
}

func (c *Config) loadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("%w: %s: %v", errors.ErrConfigInvalid, path, err)
	}
	c.path = path
	return nil
}

func (c *Config) loadFromEnv() error {
	if v := os.Getenv("DOCKERGEN_NODE_VERSION"); v != "" {
		c.Defaults.NodeVersion = v
	}
	if v := os.Getenv("DOCKERGEN_PYTHON_VERSION"); v != "" {
		c.Defaults.PythonVersion = v
	}
	if v := os.Getenv("DOCKERGEN_TEMPLATE_DIR"); v != "" {
		c.Templates.Dir = v
	}
	if v := os.Getenv("DOCKERGEN_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("DOCKERGEN_LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv("DOCKERGEN_NO_CLIPBOARD"); v != "" {
		disabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: DOCKERGEN_NO_CLIPBOARD: %v", errors.ErrConfigInvalid, err)
		}
		c.Clipboard.Enabled = !disabled
	}
	return nil
}

// Validate checks the declared frameworks
func (c *Config) Validate() error {
	seen := make(map[string]struct{})
	for i, fc := range c.Frameworks {
		if fc.Key == "" {
			return fmt.Errorf("%w: frameworks[%d]: key is required", errors.ErrConfigInvalid, i)
		}
		if _, dup := seen[fc.Key]; dup {
			return fmt.Errorf("%w: frameworks[%d]: duplicate key %q", errors.ErrConfigInvalid, i, fc.Key)
		}
		seen[fc.Key] = struct{}{}
		if !frameworks.Family(fc.Family).Valid() {
			return fmt.Errorf("%w: framework %q: family must be node or python", errors.ErrConfigInvalid, fc.Key)
		}
		if (fc.Template == "") == (fc.TemplateFile == "") {
			return fmt.Errorf("%w: framework %q: set exactly one of template or template_file", errors.ErrConfigInvalid, fc.Key)
		}
	}
	return nil
}

// Framework converts the declaration into a catalogue entry
func (c *Config) Framework(fc FrameworkConfig) (frameworks.Framework, error) {
	tmpl := fc.Template
	if fc.TemplateFile != "" {
		path := fc.TemplateFile
		if !filepath.IsAbs(path) && c.path != "" {
			path = filepath.Join(filepath.Dir(c.path), path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return frameworks.Framework{}, fmt.Errorf("%w: %s", errors.ErrTemplateNotFound, path)
		}
		tmpl = string(data)
	}

	name := fc.Name
	if name == "" {
		name = fc.Key
	}
	hostPort := fc.HostPort
	if hostPort == 0 {
		hostPort = fc.Port
	}

	return frameworks.Framework{
		Key:         frameworks.Key(fc.Key),
		Name:        name,
		Label:       name,
		Family:      frameworks.Family(fc.Family),
		Port:        fc.Port,
		HostPort:    hostPort,
		Description: fc.Description,
		Template:    tmpl,
	}, nil
}

// Save writes the configuration to a file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// DefaultVersion returns the configured default version for the family
func (c *Config) DefaultVersion(family frameworks.Family) string {
	switch family {
	case frameworks.FamilyNode:
		return c.Defaults.NodeVersion
	case frameworks.FamilyPython:
		return c.Defaults.PythonVersion
	}
	return ""
}
