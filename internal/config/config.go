// SPDX-License-Identifier: MIT

// Package config resolves campusroute settings.
//
// Precedence, lowest first: built-in defaults, CAMPUSROUTE_* environment
// variables (a .env file in the working directory is loaded into the
// environment first), the YAML file named by -config or CAMPUSROUTE_CONFIG,
// and finally command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/campusroute/route"
)

// Defaults.
const (
	DefaultAddr      = ":8080"
	DefaultLogFormat = "console"
	DefaultLogLevel  = "info"
	DefaultPadding   = 0.0001
	DefaultEnvFile   = ".env"
	envPrefix        = "CAMPUSROUTE_"
)

// ErrInvalid indicates a setting that cannot be used.
var ErrInvalid = errors.New("config: invalid setting")

// Config holds every setting of the campusroute binaries.
type Config struct {
	ConfigFile   string
	Network      string
	Locations    string
	Cache        string
	Addr         string
	LogFormat    string
	LogLevel     string
	Padding      float64
	Algorithm    route.Algorithm
	WalkingSpeed float64

	// Args are the positional arguments left after flag parsing.
	Args []string
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Addr:         DefaultAddr,
		LogFormat:    DefaultLogFormat,
		LogLevel:     DefaultLogLevel,
		Padding:      DefaultPadding,
		Algorithm:    route.Dijkstra,
		WalkingSpeed: route.DefaultWalkingSpeed,
	}
}

// Load reads .env, the environment, an optional YAML file and args, in that
// order of increasing precedence. Flag usage is written to out.
func Load(args []string, out io.Writer) (*Config, error) {
	if err := loadEnvFile(envOrDefault("ENV_FILE", DefaultEnvFile)); err != nil {
		return nil, err
	}

	cfg := Default()
	applyEnv(cfg)

	cfg.ConfigFile = detectConfigPath(args, cfg.ConfigFile)
	if cfg.ConfigFile != "" {
		fc, err := loadFileConfig(cfg.ConfigFile)
		if err != nil {
			return nil, err
		}
		applyFileConfig(cfg, fc)
	}

	fset := flag.NewFlagSet("campusroute", flag.ContinueOnError)
	fset.SetOutput(out)
	algo := string(cfg.Algorithm)
	fset.StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "YAML config file")
	fset.StringVar(&cfg.Network, "network", cfg.Network, "street network file (.json node-link or .gob cache)")
	fset.StringVar(&cfg.Locations, "locations", cfg.Locations, "location table YAML (empty: built-in campus table)")
	fset.StringVar(&cfg.Cache, "cache", cfg.Cache, "gob cache written after loading a JSON network")
	fset.StringVar(&cfg.Addr, "addr", cfg.Addr, "HTTP listen address")
	fset.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: json|console")
	fset.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug|info|warn|error")
	fset.Float64Var(&cfg.Padding, "padding", cfg.Padding, "location probe half-width in degrees")
	fset.StringVar(&algo, "algorithm", algo, "default algorithm: bfs|dfs|dijkstra")
	fset.Float64Var(&cfg.WalkingSpeed, "walking-speed", cfg.WalkingSpeed, "walking speed in m/s")
	if err := fset.Parse(args); err != nil {
		return nil, err
	}
	cfg.Algorithm = route.Algorithm(algo)
	cfg.Args = fset.Args()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the settings that the builder and route options would
// otherwise reject with a panic.
func (c *Config) Validate() error {
	a, err := route.ParseAlgorithm(string(c.Algorithm))
	if err != nil {
		return fmt.Errorf("%w: algorithm: %w", ErrInvalid, err)
	}
	c.Algorithm = a
	if !(c.WalkingSpeed > 0) || math.IsInf(c.WalkingSpeed, 0) {
		return fmt.Errorf("%w: walking speed %v", ErrInvalid, c.WalkingSpeed)
	}
	if !(c.Padding > 0) || math.IsInf(c.Padding, 0) {
		return fmt.Errorf("%w: padding %v", ErrInvalid, c.Padding)
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "console":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalid, c.LogFormat)
	}

	return nil
}

func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	// godotenv never overrides variables already set in the environment.
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: %s: %w", path, err)
	}

	return nil
}

func applyEnv(cfg *Config) {
	cfg.ConfigFile = envOrDefault("CONFIG", cfg.ConfigFile)
	cfg.Network = envOrDefault("NETWORK", cfg.Network)
	cfg.Locations = envOrDefault("LOCATIONS", cfg.Locations)
	cfg.Cache = envOrDefault("CACHE", cfg.Cache)
	cfg.Addr = envOrDefault("ADDR", cfg.Addr)
	cfg.LogFormat = envOrDefault("LOG_FORMAT", cfg.LogFormat)
	cfg.LogLevel = envOrDefault("LOG_LEVEL", cfg.LogLevel)
	cfg.Padding = envOrDefaultFloat("PADDING", cfg.Padding)
	cfg.Algorithm = route.Algorithm(envOrDefault("ALGORITHM", string(cfg.Algorithm)))
	cfg.WalkingSpeed = envOrDefaultFloat("WALKING_SPEED", cfg.WalkingSpeed)
}

func envOrDefault(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(envPrefix + key))
	if value == "" {
		return fallback
	}
	return value
}

func envOrDefaultFloat(key string, fallback float64) float64 {
	value := envOrDefault(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

// detectConfigPath finds -config among the global flags before they are
// parsed, so the file can seed the flag defaults. Every global flag takes a
// value.
func detectConfigPath(args []string, fallback string) string {
	path := fallback
	for i := 0; i < len(args); i++ {
		arg := strings.TrimSpace(args[i])
		if arg == "--" || !strings.HasPrefix(arg, "-") {
			break
		}
		name, value, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if !hasValue {
			if i+1 >= len(args) {
				break
			}
			i++
			value = args[i]
		}
		if name == "config" {
			path = strings.TrimSpace(value)
		}
	}
	return path
}
