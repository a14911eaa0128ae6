// Package config handles configuration loading and defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/td0m/tickit/internal/logging"
	"github.com/td0m/tickit/pkg/persist"
)

// Default values.
const (
	DefaultBackend   = persist.KindFile
	DefaultRedisAddr = "localhost:6379"
	DefaultLogLevel  = "info"
	AppName          = "tickit"
)

// Config holds the full configuration for tickit.
type Config struct {
	// DataDir holds one file per stored key when Backend is "file"
	DataDir string `toml:"data_dir"`
	Backend string `toml:"backend"`

	Redis RedisConfig `toml:"redis"`
	Log   LogConfig   `toml:"log"`

	// File is the config file that was read, if any
	File string `toml:"-"`
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Prefix   string `toml:"prefix"`
}

type LogConfig struct {
	File   string `toml:"file"`
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

func setDefaults(cfg *Config) {
	cfg.DataDir = defaultDataDir()
	cfg.Backend = DefaultBackend
	cfg.Redis.Addr = DefaultRedisAddr
	cfg.Redis.Prefix = persist.DefaultRedisPrefix
	cfg.Log.Level = DefaultLogLevel
	cfg.Log.Format = "logfmt"
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, AppName, "data")
	}
	return filepath.Join(".", "."+AppName)
}

func defaultConfigFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, "config.toml")
}

// Validate rejects settings the app cannot start with.
func (c *Config) Validate() error {
	switch c.Backend {
	case persist.KindFile:
		if c.DataDir == "" {
			return fmt.Errorf("data dir is required for the %s backend", c.Backend)
		}
	case persist.KindMemory:
	case persist.KindRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("redis address is required for the %s backend", c.Backend)
		}
	default:
		return fmt.Errorf("unknown backend %q (want file, memory or redis)", c.Backend)
	}
	if !logging.ValidLevel(c.Log.Level) {
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	return nil
}

// PersistOptions is what persist.Open needs to build the backend.
func (c *Config) PersistOptions() persist.Options {
	return persist.Options{
		Kind:          c.Backend,
		Dir:           c.DataDir,
		RedisAddr:     c.Redis.Addr,
		RedisPassword: c.Redis.Password,
		RedisDB:       c.Redis.DB,
		RedisPrefix:   c.Redis.Prefix,
	}
}

func (c *Config) LoggingOptions() logging.Options {
	return logging.Options{
		File:   c.Log.File,
		Level:  c.Log.Level,
		Format: c.Log.Format,
		Prefix: AppName,
	}
}

// expandPath expands a leading ~ and environment variables.
func expandPath(p string) string {
	if p == "" {
		return p
	}
	p = os.ExpandEnv(p)
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return p
		}
		return filepath.Join(home, strings.TrimPrefix(p, "~"))
	}
	return p
}
