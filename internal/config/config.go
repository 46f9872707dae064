// Package config resolves the game settings.
//
// Sources are layered, later ones winning: built-in defaults, the YAML file, a .env file,
// FISH_* environment variables. Command-line flags are applied on top by the CLI.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Default file names looked up in the working directory.
const (
	DefaultFile    = "fishdating.yaml"
	DefaultEnvFile = ".env"
)

// Environment variables.
const (
	EnvPluginsDir = "FISH_PLUGINS_DIR"
	EnvSaveDir    = "FISH_SAVE_DIR"
	EnvProfile    = "FISH_PROFILE"
	EnvLogLevel   = "FISH_LOG_LEVEL"
	EnvLogFile    = "FISH_LOG_FILE"
	EnvOpBudget   = "FISH_OP_BUDGET"
	EnvTimeout    = "FISH_SCRIPT_TIMEOUT"
	EnvRedisAddr  = "FISH_REDIS_ADDR"
	EnvRedisPass  = "FISH_REDIS_PASSWORD"
	EnvRedisDB    = "FISH_REDIS_DB"
	EnvHTTPAddr   = "FISH_HTTP_ADDR"
	EnvSeed       = "FISH_SEED"
)

// Config holds every tunable of the game.
type Config struct {
	PluginsDir    string        `yaml:"plugins_dir"`
	SaveDir       string        `yaml:"save_dir"` // empty = per-user config dir
	Profile       string        `yaml:"profile"`
	LogLevel      string        `yaml:"log_level"`
	LogFile       string        `yaml:"log_file"` // used while the TUI owns the terminal
	OpBudget      int64         `yaml:"op_budget"`
	ScriptTimeout time.Duration `yaml:"script_timeout"`
	RedisAddr     string        `yaml:"redis_addr"` // non-empty switches saves to Redis
	RedisPassword string        `yaml:"redis_password"`
	RedisDB       int           `yaml:"redis_db"`
	HTTPAddr      string        `yaml:"http_addr"`
	Seed          int64         `yaml:"seed"` // 0 = seeded from the clock
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		PluginsDir:    "plugins",
		Profile:       "save",
		LogLevel:      "info",
		OpBudget:      100_000,
		ScriptTimeout: 2 * time.Second,
		HTTPAddr:      "127.0.0.1:8080",
	}
}

// Load layers the sources on top of Default.
// An empty file or envFile means the default name, which may be absent; an explicit path must exist.
func Load(file, envFile string) (Config, error) {
	cfg := Default()

	if err := loadYAML(&cfg, file); err != nil {
		return cfg, err
	}
	if err := loadDotEnv(envFile); err != nil {
		return cfg, err
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadYAML(cfg *Config, file string) error {
	explicit := file != ""
	if !explicit {
		file = DefaultFile
	}

	data, err := os.ReadFile(file)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse %s: %w", file, err)
	}
	return nil
}

// loadDotEnv exports the .env entries that are not already set in the environment.
func loadDotEnv(envFile string) error {
	explicit := envFile != ""
	if !explicit {
		envFile = DefaultEnvFile
	}
	if _, err := os.Stat(envFile); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read env file: %w", err)
	}
	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("failed to parse %s: %w", envFile, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	str := map[string]*string{
		EnvPluginsDir: &cfg.PluginsDir,
		EnvSaveDir:    &cfg.SaveDir,
		EnvProfile:    &cfg.Profile,
		EnvLogLevel:   &cfg.LogLevel,
		EnvLogFile:    &cfg.LogFile,
		EnvRedisAddr:  &cfg.RedisAddr,
		EnvRedisPass:  &cfg.RedisPassword,
		EnvHTTPAddr:   &cfg.HTTPAddr,
	}
	for key, dst := range str {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}

	var errs []error
	if v := os.Getenv(EnvOpBudget); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			errs = append(errs, fmt.Errorf("%s must be a positive integer, got %q", EnvOpBudget, v))
		} else {
			cfg.OpBudget = n
		}
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			errs = append(errs, fmt.Errorf("%s must be a positive duration, got %q", EnvTimeout, v))
		} else {
			cfg.ScriptTimeout = d
		}
	}
	if v := os.Getenv(EnvRedisDB); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s must be an integer, got %q", EnvRedisDB, v))
		} else {
			cfg.RedisDB = n
		}
	}
	if v := os.Getenv(EnvSeed); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s must be an integer, got %q", EnvSeed, v))
		} else {
			cfg.Seed = n
		}
	}
	return errors.Join(errs...)
}
