package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	MatchStoreSQLite = "sqlite"
	MatchStoreMemory = "memory"
)

type Location struct {
	Enabled   bool          `env:"ENABLED"`
	Latitude  float64       `env:"LATITUDE"`
	Longitude float64       `env:"LONGITUDE"`
	LookupURL string        `env:"LOOKUP_URL"`
	Timeout   time.Duration `env:"TIMEOUT"`
}

type Config struct {
	VaultPath  string
	DataDir    string
	DBPath     string   `env:"EVENTDECK_DB_PATH"`
	LogPath    string   `env:"EVENTDECK_LOG_PATH"`
	LogLevel   string   `env:"EVENTDECK_LOG_LEVEL"`
	MatchStore string   `env:"EVENTDECK_MATCH_STORE"`
	Feeds      []string `env:"EVENTDECK_FEEDS" envSeparator:","`
	Location   Location `envPrefix:"EVENTDECK_LOCATION_"`
}

// New returns the defaults for a vault without reading the environment.
func New(vaultPath string) (Config, error) {
	if vaultPath == "" {
		return Config{}, fmt.Errorf("vault path is required")
	}
	dataDir := filepath.Join(vaultPath, ".eventdeck")
	return Config{
		VaultPath:  vaultPath,
		DataDir:    dataDir,
		DBPath:     filepath.Join(dataDir, "eventdeck.db"),
		LogPath:    filepath.Join(dataDir, "eventdeck.log"),
		LogLevel:   "info",
		MatchStore: MatchStoreSQLite,
		Location: Location{
			Enabled: true,
			Timeout: 3 * time.Second,
		},
	}, nil
}

// Load builds the defaults for vaultPath, then applies <vault>/.env and
// EVENTDECK_* variables on top. Variables already set in the process win
// over the .env file.
func Load(vaultPath string) (Config, error) {
	cfg, err := New(vaultPath)
	if err != nil {
		return Config{}, err
	}
	dotenv := filepath.Join(vaultPath, ".env")
	if _, statErr := os.Stat(dotenv); statErr == nil {
		if err := godotenv.Load(dotenv); err != nil {
			return Config{}, fmt.Errorf("load %s: %w", dotenv, err)
		}
	} else if !errors.Is(statErr, os.ErrNotExist) {
		return Config{}, fmt.Errorf("stat %s: %w", dotenv, statErr)
	}
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func (c Config) Validate() error {
	switch c.MatchStore {
	case MatchStoreSQLite, MatchStoreMemory:
	default:
		return fmt.Errorf("unsupported match store %q", c.MatchStore)
	}
	if c.Location.Latitude < -90 || c.Location.Latitude > 90 {
		return fmt.Errorf("location latitude out of range: %f", c.Location.Latitude)
	}
	if c.Location.Longitude < -180 || c.Location.Longitude > 180 {
		return fmt.Errorf("location longitude out of range: %f", c.Location.Longitude)
	}
	if c.Location.Timeout < 0 {
		return fmt.Errorf("location timeout must be non-negative")
	}
	return nil
}
