package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	DirName      = ".otomai_tracker"
	ProgressFile = "progress.json"
	SettingsFile = "settings.json"
	CatalogFile  = "monsters.json"
	LogFile      = "otomai.log"
)

// Environment variables read by Load. Flags take precedence over them.
const (
	EnvDataDir  = "OTOMAI_DATA_DIR"
	EnvCatalog  = "OTOMAI_CATALOG"
	EnvLogFile  = "OTOMAI_LOG_FILE"
	EnvLogLevel = "OTOMAI_LOG_LEVEL"
)

type Config struct {
	DataDir     string
	CatalogPath string
	// LogFile is a path, or "-" for stderr.
	LogFile  string
	LogLevel string
}

// Paths locates the three JSON documents.
type Paths struct {
	Progress string
	Settings string
	Catalog  string
}

// Load resolves the configuration from overrides (usually flags), the
// environment and an optional .env file, then the defaults. Empty override
// fields are ignored.
func Load(overrides Config) (*Config, error) {
	// A missing .env is the normal case.
	_ = godotenv.Load()

	cfg := &Config{
		DataDir:     first(overrides.DataDir, os.Getenv(EnvDataDir)),
		CatalogPath: first(overrides.CatalogPath, os.Getenv(EnvCatalog)),
		LogFile:     first(overrides.LogFile, os.Getenv(EnvLogFile)),
		LogLevel:    first(overrides.LogLevel, os.Getenv(EnvLogLevel), "info"),
	}

	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		cfg.DataDir = filepath.Join(home, DirName)
	}
	if cfg.CatalogPath == "" {
		cfg.CatalogPath = filepath.Join(cfg.DataDir, CatalogFile)
	}
	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(cfg.DataDir, LogFile)
	}

	return cfg, nil
}

// EnsureDataDir creates the data directory if needed.
func (c *Config) EnsureDataDir() error {
	if err := os.MkdirAll(c.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	return nil
}

func (c *Config) Paths() Paths {
	return Paths{
		Progress: filepath.Join(c.DataDir, ProgressFile),
		Settings: filepath.Join(c.DataDir, SettingsFile),
		Catalog:  c.CatalogPath,
	}
}

func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
