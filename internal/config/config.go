package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"schemegrip/internal/domain"
)

// Source kinds
const (
	SourceFile  = "file"
	SourceMongo = "mongo"
)

// Config represents the application configuration
type Config struct {
	Version          int          `toml:"version"`
	Platform         string       `toml:"platform"`
	PageSize         int          `toml:"page_size"`
	SearchDebounceMS int          `toml:"search_debounce_ms"`
	LogLevel         string       `toml:"log_level"`
	LogFile          string       `toml:"log_file"`
	Source           SourceConfig `toml:"source"`
	UISettings       UISettings   `toml:"ui"`
}

// SourceConfig selects and configures the catalog backend
type SourceConfig struct {
	Kind       string `toml:"kind"` // "file" or "mongo"
	File       string `toml:"file"`
	MongoURI   string `toml:"mongo_uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
	TimeoutSec int    `toml:"timeout_sec"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	CardWidth  int  `toml:"card_width"`
	ShowImages bool `toml:"show_images"`
}

// SearchDebounce returns the debounce window for the search box
func (c *Config) SearchDebounce() time.Duration {
	return time.Duration(c.SearchDebounceMS) * time.Millisecond
}

// Timeout returns the catalog query timeout
func (s SourceConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSec) * time.Second
}

// Validate reports configuration that cannot work
func (c *Config) Validate() error {
	if c.PageSize < 1 {
		return fmt.Errorf("page_size must be positive, got %d", c.PageSize)
	}
	if c.SearchDebounceMS < 0 {
		return fmt.Errorf("search_debounce_ms must not be negative, got %d", c.SearchDebounceMS)
	}
	switch c.Source.Kind {
	case SourceFile:
		if c.Source.File == "" {
			return errors.New("source.file is required when source.kind is \"file\"")
		}
	case SourceMongo:
		if c.Source.MongoURI == "" {
			return errors.New("source.mongo_uri (or MONGODB_URI) is required when source.kind is \"mongo\"")
		}
	default:
		return fmt.Errorf("unknown source.kind %q", c.Source.Kind)
	}
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	LoadOrCreate(path string) (*Config, error)
}

// configService is the concrete implementation
type configService struct{}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	return &configService{}
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "schemegrip", "config.toml")
}

// LoadFromPath loads configuration from a specific path.
// Missing keys keep their default values; environment overrides are applied last.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	ApplyEnv(cfg)

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// LoadOrCreate loads the config at path, writing the defaults there first if it doesn't exist
func (cs *configService) LoadOrCreate(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := cs.SaveToPath(cfg, path); err != nil {
			return nil, err
		}
		ApplyEnv(cfg)
		return cfg, nil
	}
	return cs.LoadFromPath(path)
}

// ApplyEnv overlays environment variables (and a .env file in the working directory, if any)
func ApplyEnv(cfg *Config) {
	// Missing .env is fine
	_ = godotenv.Load()

	if uri := firstEnv("SCHEMEGRIP_MONGODB_URI", "MONGODB_URI"); uri != "" {
		cfg.Source.MongoURI = uri
	}
	if db := os.Getenv("SCHEMEGRIP_MONGODB_DB"); db != "" {
		cfg.Source.Database = db
	}
	if platform := os.Getenv("SCHEMEGRIP_PLATFORM"); platform != "" {
		cfg.Platform = platform
	}
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if val := os.Getenv(key); val != "" {
			return val
		}
	}
	return ""
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:          1,
		Platform:         "vim",
		PageSize:         domain.RepositoryCountPerPage,
		SearchDebounceMS: 500,
		LogLevel:         "info",
		LogFile:          "schemegrip.log",
		Source: SourceConfig{
			Kind:       SourceFile,
			File:       "repositories.json",
			Database:   "colorschemes",
			Collection: "repositories",
			TimeoutSec: 10,
		},
		UISettings: UISettings{
			CardWidth:  38,
			ShowImages: true,
		},
	}
}
