package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig marks a config file or setting that cannot be used.
var ErrInvalidConfig = errors.New("invalid config")

// Source names accepted for Config.Source.
const (
	SourceJSON   = "json"
	SourceOracle = "oracle"
)

// Environment overrides. They sit between the config file and command-line flags.
const (
	EnvInput  = "OWNERHUNTER_INPUT"
	EnvOutput = "OWNERHUNTER_OUTPUT"
	EnvSource = "OWNERHUNTER_SOURCE"
)

// Default paths relative to the base directory.
var (
	DefaultInput     = filepath.Join("lib", "masterlist.json")
	DefaultOutput    = filepath.Join("lib", "targets_with_links.csv")
	DefaultWatchlist = filepath.Join("lib", "watchlist.txt")
)

// SearchConfig controls how deep links are built.
type SearchConfig struct {
	Endpoint string `yaml:"endpoint"`
	Site     string `yaml:"site"`
	Phrase   string `yaml:"phrase"`
}

// DatabaseConfig selects the Oracle masterlist table. Connection settings come from DB_* env vars.
type DatabaseConfig struct {
	Table string `yaml:"table"`
}

// Config is resolved once at startup and passed down to the pipeline.
type Config struct {
	Input     string         `yaml:"input"`
	Output    string         `yaml:"output"`
	Watchlist string         `yaml:"watchlist"`
	Source    string         `yaml:"source"`
	Search    SearchConfig   `yaml:"search"`
	Database  DatabaseConfig `yaml:"database"`

	// BaseDir anchors relative paths. It is the config file's directory, else the working directory.
	BaseDir string `yaml:"-"`
}

// Default returns the settings the tool runs with when nothing is configured.
func Default() Config {
	return Config{
		Input:     DefaultInput,
		Output:    DefaultOutput,
		Watchlist: DefaultWatchlist,
		Source:    SourceJSON,
		Search: SearchConfig{
			Endpoint: "https://www.google.com/search",
			Site:     "sos.state.mn.us",
			Phrase:   "Registered Agent",
		},
		Database: DatabaseConfig{Table: "MASTERLIST"},
	}
}

// Load reads the YAML file at path on top of the defaults. An empty path skips the file.
// Relative paths are resolved against the config file's directory, or baseDir without one.
func Load(path, baseDir string) (Config, error) {
	cfg := Default()
	cfg.BaseDir = baseDir
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("%w: config load failed (%s): %w", ErrInvalidConfig, path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: config parse failed (%s): %w", ErrInvalidConfig, path, err)
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		cfg.BaseDir = filepath.Dir(abs)
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Input = GetEnvOrDefault(EnvInput, c.Input)
	c.Output = GetEnvOrDefault(EnvOutput, c.Output)
	c.Source = GetEnvOrDefault(EnvSource, c.Source)
}

// Resolve validates the config and makes every path absolute against BaseDir.
func (c Config) Resolve() (Config, error) {
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	c.Input = c.abs(c.Input)
	c.Output = c.abs(c.Output)
	c.Watchlist = c.abs(c.Watchlist)
	return c, nil
}

func (c Config) abs(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.BaseDir, p)
}

var tableName = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_$#]*(\.[A-Za-z][A-Za-z0-9_$#]*)?$`)

// Validate checks the settings that would otherwise fail deep inside a run.
func (c Config) Validate() error {
	switch c.Source {
	case SourceJSON:
		if strings.TrimSpace(c.Input) == "" {
			return fmt.Errorf("%w: input path is required", ErrInvalidConfig)
		}
	case SourceOracle:
		if !tableName.MatchString(c.Database.Table) {
			return fmt.Errorf("%w: database table %q is not a plain identifier", ErrInvalidConfig, c.Database.Table)
		}
	default:
		return fmt.Errorf("%w: unknown source %q (want %s or %s)", ErrInvalidConfig, c.Source, SourceJSON, SourceOracle)
	}
	if strings.TrimSpace(c.Output) == "" {
		return fmt.Errorf("%w: output path is required", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.Search.Endpoint) == "" {
		return fmt.Errorf("%w: search endpoint is required", ErrInvalidConfig)
	}
	return nil
}

// LoadEnvFile reads KEY=value lines from filename into the environment.
// Variables that are already set win over the file.
func LoadEnvFile(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if idx := strings.Index(line, "="); idx > 0 {
			key := strings.TrimSpace(line[:idx])
			value := strings.TrimSpace(line[idx+1:])

			if len(value) >= 2 && (value[0] == '"' && value[len(value)-1] == '"') {
				value = value[1 : len(value)-1]
			}

			if os.Getenv(key) == "" {
				os.Setenv(key, value)
			}
		}
	}

	return scanner.Err()
}

// GetEnvOrDefault returns the environment value for key, or defaultValue when unset or empty.
func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
