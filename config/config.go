// Package config loads the settings shared by the stablematch commands.
//
// Values are resolved in three layers, later layers winning:
//
//	defaults → YAML file (optional) → environment (STABLEMATCH_*)
//
// A .env file in the working directory, when present, is loaded into the
// environment before the last layer is read.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "STABLEMATCH_"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrInvalid reports a configuration value outside its domain.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the trial and output settings.
type Config struct {
	N       int   `yaml:"n"`
	Rounds  int   `yaml:"rounds"`
	Seed    int64 `yaml:"seed"`
	Workers int   `yaml:"workers"`
	// SolverWorkers sizes the concurrent solver's pool; 0 means GOMAXPROCS.
	SolverWorkers int    `yaml:"solver_workers"`
	Concurrent    bool   `yaml:"concurrent"`
	LogLevel      string `yaml:"log_level"`
	Format        string `yaml:"format"`
	StorePath     string `yaml:"store_path"`
}

// Default returns the built-in settings: 100 rounds of size 100.
func Default() Config {
	return Config{
		N:        100,
		Rounds:   100,
		Seed:     1,
		LogLevel: "info",
		Format:   FormatText,
	}
}

// Load resolves the configuration. path may be empty; a missing .env file
// is ignored but a missing YAML file named by path is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	// Load .env file if it exists
	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

// Validate rejects negative sizes and unknown formats or levels.
func (c Config) Validate() error {
	switch {
	case c.N < 0:
		return fmt.Errorf("%w: n=%d", ErrInvalid, c.N)
	case c.Rounds < 0:
		return fmt.Errorf("%w: rounds=%d", ErrInvalid, c.Rounds)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers=%d", ErrInvalid, c.Workers)
	case c.SolverWorkers < 0:
		return fmt.Errorf("%w: solver_workers=%d", ErrInvalid, c.SolverWorkers)
	}
	if c.Format != FormatText && c.Format != FormatJSON {
		return fmt.Errorf("%w: format %q (want %s or %s)", ErrInvalid, c.Format, FormatText, FormatJSON)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}

	return nil
}

func (c *Config) applyEnv() error {
	var err error
	if c.N, err = intEnv("N", c.N); err != nil {
		return err
	}
	if c.Rounds, err = intEnv("ROUNDS", c.Rounds); err != nil {
		return err
	}
	if c.Workers, err = intEnv("WORKERS", c.Workers); err != nil {
		return err
	}
	if c.SolverWorkers, err = intEnv("SOLVER_WORKERS", c.SolverWorkers); err != nil {
		return err
	}
	if v, ok := lookup("SEED"); ok {
		if c.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return fmt.Errorf("%w: %sSEED=%q", ErrInvalid, EnvPrefix, v)
		}
	}
	if v, ok := lookup("CONCURRENT"); ok {
		if c.Concurrent, err = strconv.ParseBool(v); err != nil {
			return fmt.Errorf("%w: %sCONCURRENT=%q", ErrInvalid, EnvPrefix, v)
		}
	}
	c.LogLevel = stringEnv("LOG_LEVEL", c.LogLevel)
	c.Format = stringEnv("FORMAT", c.Format)
	c.StorePath = stringEnv("STORE_PATH", c.StorePath)

	return nil
}

func lookup(key string) (string, bool) {
	v := os.Getenv(EnvPrefix + key)
	return v, v != ""
}

func stringEnv(key, def string) string {
	if v, ok := lookup(key); ok {
		return v
	}
	return def
}

func intEnv(key string, def int) (int, error) {
	v, ok := lookup(key)
	if !ok {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s%s=%q", ErrInvalid, EnvPrefix, key, v)
	}
	return i, nil
}
