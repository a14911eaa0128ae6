package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. Config file (-config, $TICKIT_CONFIG or <user config dir>/tickit/config.toml)
// 3. Environment variables
// 4. CLI flags
func Load(fset *flag.FlagSet, args []string) (*Config, error) {
	if fset == nil {
		fset = flag.NewFlagSet(AppName, flag.ContinueOnError)
	}
	flags := defineFlags(fset)
	if err := fset.Parse(args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	cfg := &Config{}

	// 1. Set defaults
	setDefaults(cfg)

	// 2. Config file. Only an explicitly named file has to exist.
	path, explicit := *flags.config, true
	if path == "" {
		path = os.Getenv("TICKIT_CONFIG")
	}
	if path == "" {
		path, explicit = defaultConfigFile(), false
	}
	if path != "" {
		path = expandPath(path)
		err := loadConfigFile(cfg, path)
		switch {
		case err == nil:
			cfg.File = path
		case errors.Is(err, fs.ErrNotExist) && !explicit:
		default:
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	// 3. Override from environment
	if err := loadFromEnv(cfg); err != nil {
		return nil, err
	}

	// 4. Flags that were set override everything
	flags.apply(fset, cfg)

	cfg.DataDir = expandPath(cfg.DataDir)
	cfg.Log.File = expandPath(cfg.Log.File)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadConfigFile loads TOML config from the given file.
func loadConfigFile(cfg *Config, path string) error {
	_, err := toml.DecodeFile(path, cfg)
	return err
}

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) error {
	if v := os.Getenv("TICKIT_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("TICKIT_BACKEND"); v != "" {
		cfg.Backend = v
	}
	if v := os.Getenv("TICKIT_REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("TICKIT_REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("TICKIT_REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TICKIT_REDIS_DB: %w", err)
		}
		cfg.Redis.DB = db
	}
	if v := os.Getenv("TICKIT_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("TICKIT_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	return nil
}

type flagValues struct {
	config   *string
	dataDir  *string
	backend  *string
	redis    *string
	logFile  *string
	logLevel *string
}

func defineFlags(fset *flag.FlagSet) flagValues {
	return flagValues{
		config:   fset.String("config", "", "Path to config file"),
		dataDir:  fset.String("data", "", "Directory the file backend stores data in"),
		backend:  fset.String("backend", "", "Storage backend: file, memory or redis"),
		redis:    fset.String("redis", "", "Redis address for the redis backend"),
		logFile:  fset.String("log", "", "Write logs to this file"),
		logLevel: fset.String("log-level", "", "Log level: debug, info, warn or error"),
	}
}

// apply copies only the flags given on the command line
func (f flagValues) apply(fset *flag.FlagSet, cfg *Config) {
	fset.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "data":
			cfg.DataDir = *f.dataDir
		case "backend":
			cfg.Backend = *f.backend
		case "redis":
			cfg.Redis.Addr = *f.redis
		case "log":
			cfg.Log.File = *f.logFile
		case "log-level":
			cfg.Log.Level = *f.logLevel
		}
	})
}
