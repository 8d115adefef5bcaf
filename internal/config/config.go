package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// ErrMissingAPIKey is returned when no catalog API key is configured
var ErrMissingAPIKey = errors.New("TMDB API key not found, set TMDB_API_KEY")

// Backend identifies how the watchlist is persisted
type Backend string

const (
	BackendJSON Backend = "json"
	BackendBolt Backend = "bolt"
)

// Config holds all application configuration
type Config struct {
	TMDB        TMDBConfig        `mapstructure:"tmdb"`
	Storage     StorageConfig     `mapstructure:"storage"`
	Suggestions SuggestionsConfig `mapstructure:"suggestions"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

// TMDBConfig holds movie catalog configuration
type TMDBConfig struct {
	APIKey            string        `mapstructure:"api_key" validate:"required"`
	BaseURL           string        `mapstructure:"base_url" validate:"required,url"`
	Language          string        `mapstructure:"language" validate:"required"`
	Timeout           time.Duration `mapstructure:"timeout" validate:"gt=0"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second" validate:"gt=0"`
}

// StorageConfig holds watchlist persistence configuration
type StorageConfig struct {
	Backend Backend `mapstructure:"backend" validate:"oneof=json bolt"`
	Path    string  `mapstructure:"path" validate:"required"`
}

// SuggestionsConfig tunes the suggestion engine
type SuggestionsConfig struct {
	Limit     int `mapstructure:"limit" validate:"min=1,max=20"`
	TopGenres int `mapstructure:"top_genres" validate:"min=1,max=10"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		TMDB: TMDBConfig{
			BaseURL:           "https://api.themoviedb.org/3",
			Language:          "en-US",
			Timeout:           30 * time.Second,
			RequestsPerSecond: 20,
		},
		Storage: StorageConfig{
			Backend: BackendJSON,
			Path:    filepath.Join(defaultDataPath(), "movies.json"),
		},
		Suggestions: SuggestionsConfig{
			Limit:     5,
			TopGenres: 3,
		},
		Logging: LoggingConfig{
			File:  filepath.Join(defaultDataPath(), "reel.log"),
			Level: "INFO",
		},
	}
}

// defaultDataPath returns the default data directory for the current OS
func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "reel")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "reel")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "reel")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "reel")
	}
}

// LoadConfig loads configuration from file and environment.
// An empty path searches the default config directory and the working directory.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultConfigPath())
		v.AddConfigPath(".")
	}

	// Environment variable overrides (REEL_TMDB_API_KEY, REEL_STORAGE_PATH, ...)
	v.SetEnvPrefix("REEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The catalog's conventional variable is honored too
	if err := v.BindEnv("tmdb.api_key", "REEL_TMDB_API_KEY", "TMDB_API_KEY"); err != nil {
		return nil, fmt.Errorf("error binding env: %w", err)
	}
	bindDefaults(v, cfg)

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	cfg.Storage.Path = expandHome(cfg.Storage.Path)
	cfg.Logging.File = expandHome(cfg.Logging.File)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// bindDefaults registers every key so AutomaticEnv can override keys
// that are absent from the config file
func bindDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("tmdb.base_url", cfg.TMDB.BaseURL)
	v.SetDefault("tmdb.language", cfg.TMDB.Language)
	v.SetDefault("tmdb.timeout", cfg.TMDB.Timeout)
	v.SetDefault("tmdb.requests_per_second", cfg.TMDB.RequestsPerSecond)
	v.SetDefault("storage.backend", string(cfg.Storage.Backend))
	v.SetDefault("storage.path", cfg.Storage.Path)
	v.SetDefault("suggestions.limit", cfg.Suggestions.Limit)
	v.SetDefault("suggestions.top_genres", cfg.Suggestions.TopGenres)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)
}

// Validate checks the configuration. A missing API key is reported as
// ErrMissingAPIKey so callers can exit before touching any state.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.TMDB.APIKey) == "" {
		return ErrMissingAPIKey
	}

	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("invalid config: %s failed %q", verrs[0].Namespace(), verrs[0].Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// expandHome expands a leading ~ in path
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
