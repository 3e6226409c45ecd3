package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/Alp4ka/pagenav"
)

// ErrNotFound is returned by Load when the configuration file does not exist.
var ErrNotFound = errors.New("configuration file not found")

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// Config is the catalog service configuration.
type Config struct {
	// Listen - address the HTTP server binds to.
	Listen string `yaml:"listen"`
	// DSN - sqlite data source name.
	DSN string `yaml:"dsn"`
	// Seed - number of demo products inserted into an empty catalog.
	Seed     int            `yaml:"seed"`
	PageSize PageSizeConfig `yaml:"pageSize"`
	Log      LogConfig      `yaml:"log"`
}

type PageSizeConfig struct {
	Default int   `yaml:"default"`
	Max     int   `yaml:"max"`
	Options []int `yaml:"options"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Default() *Config {
	return &Config{
		Listen: ":8080",
		DSN:    ":memory:",
		Seed:   250,
		PageSize: PageSizeConfig{
			Default: pagenav.DefaultPageSize,
			Max:     pagenav.MaxPageSize,
			Options: append([]int(nil), pagenav.DefaultPageSizeOptions...),
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads the YAML file at path over Default. An empty path yields the
// defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	return LoadFromBytes(data)
}

// LoadFromBytes parses YAML over Default. ${VAR} and ${VAR:-default}
// references are expanded from the environment before parsing.
func LoadFromBytes(data []byte) (*Config, error) {
	cfg := Default()

	if err := yaml.Unmarshal([]byte(expandEnvVars(string(data))), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.DSN == "" {
		return fmt.Errorf("invalid configuration: empty dsn")
	}

	if c.Seed < 0 {
		return fmt.Errorf("invalid configuration: negative seed %d", c.Seed)
	}

	if err := c.PageSize.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	switch c.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("invalid configuration: unknown log format '%s'", c.Log.Format)
	}

	return nil
}

func (c PageSizeConfig) Validate() error {
	if c.Max <= 0 {
		return fmt.Errorf("page size max must be positive, got %d", c.Max)
	}

	if c.Default <= 0 || c.Default > c.Max {
		return fmt.Errorf("page size default %d is out of range [1, %d]", c.Default, c.Max)
	}

	if bad, ok := lo.Find(c.Options, func(option int) bool {
		return option <= 0 || option > c.Max
	}); ok {
		return fmt.Errorf("page size option %d is out of range [1, %d]", bad, c.Max)
	}

	if len(c.Options) > 0 && !lo.Contains(c.Options, c.Default) {
		return fmt.Errorf("page size default %d is not one of the options %v", c.Default, c.Options)
	}

	return nil
}

// SelectorOptions returns the page-size selector options.
func (c PageSizeConfig) SelectorOptions() pagenav.PageSizeOptions {
	return pagenav.PageSizeOptions(lo.Uniq(c.Options))
}

func expandEnvVars(content string) string {
	return envVarRegex.ReplaceAllStringFunc(content, func(match string) string {
		varName := envVarRegex.FindStringSubmatch(match)[1]

		// ${VAR:-default}
		parts := strings.SplitN(varName, ":-", 2)
		varName = parts[0]
		defaultValue := ""
		if len(parts) > 1 {
			defaultValue = parts[1]
		}

		if value := os.Getenv(varName); value != "" {
			return value
		}

		return defaultValue
	})
}
