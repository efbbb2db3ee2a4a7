// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"slices"
	"time"
	_ "time/tzdata"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Database types
const (
	DBSQLite   = "sqlite"
	DBPostgres = "postgres"
	DBLevel    = "leveldb"
	DBMemory   = "memory"
)

type Config struct {
	Host            string        `env:"HOST" env-default:"127.0.0.1"`
	Port            int           `env:"PORT" env-default:"3318"`
	DatabaseType    string        `env:"DATABASE_TYPE" env-default:"sqlite"`
	DatabaseURL     string        `env:"DATABASE_URL"`
	DeviceKeySalt   string        `env:"DEVICE_KEY_SALT"`
	LogLevel        string        `env:"LOG_LEVEL" env-default:"info"`
	LogFormat       string        `env:"LOG_FORMAT" env-default:"auto"`
	Timezone        string        `env:"TIMEZONE" env-default:"America/Chicago"`
	ReminderFlowTTL time.Duration `env:"REMINDER_FLOW_TTL" env-default:"30m"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Addr returns host:port for the HTTP listener
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Location loads the time zone election dates are interpreted in
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// ParseFlags builds the configuration. Precedence: CLI flags, then
// environment (including a .env file in the working directory), then
// defaults.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read environment: %w", err)
	}

	fs := flag.NewFlagSet("myballot", flag.ContinueOnError)

	// Network config
	fs.StringVar(&cfg.Host, "host", cfg.Host, "Listen address")
	fs.IntVar(&cfg.Port, "p", cfg.Port, "Server port")

	// Storage
	fs.StringVar(&cfg.DatabaseType, "t", cfg.DatabaseType, "Storage type (sqlite, postgres, leveldb or memory)")
	fs.StringVar(&cfg.DatabaseURL, "d", cfg.DatabaseURL, "Database URL, file or directory")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.DeviceKeySalt, "device-salt", cfg.DeviceKeySalt, "Device key salt (prefer env)")

	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (auto, json or text)")
	fs.StringVar(&cfg.Timezone, "tz", cfg.Timezone, "Time zone for election dates")
	fs.DurationVar(&cfg.ReminderFlowTTL, "flow-ttl", cfg.ReminderFlowTTL, "Idle lifetime of a reminder setup flow")
	fs.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.DatabaseURL == "" {
		switch cfg.DatabaseType {
		case DBSQLite:
			cfg.DatabaseURL = "myballot.db"
		case DBLevel:
			cfg.DatabaseURL = "myballot-leveldb"
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if !slices.Contains([]string{DBSQLite, DBPostgres, DBLevel, DBMemory}, c.DatabaseType) {
		return fmt.Errorf("unsupported database type %q", c.DatabaseType)
	}
	if c.DatabaseType == DBPostgres && c.DatabaseURL == "" {
		return errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
	}

	// Secrets - MUST be provided
	if c.DeviceKeySalt == "" {
		return errors.New("DEVICE_KEY_SALT required")
	}

	if !slices.Contains([]string{"auto", "json", "text"}, c.LogFormat) {
		return fmt.Errorf("unsupported log format %q", c.LogFormat)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if c.ReminderFlowTTL <= 0 {
		return errors.New("reminder flow TTL must be positive")
	}
	return nil
}
