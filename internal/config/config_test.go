package config

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
	"github.com/td0m/tickit/pkg/persist"
)

// isolate points every config source at an empty temp dir
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, k := range []string{
		"TICKIT_CONFIG", "TICKIT_DATA_DIR", "TICKIT_BACKEND", "TICKIT_REDIS_ADDR",
		"TICKIT_REDIS_PASSWORD", "TICKIT_REDIS_DB", "TICKIT_LOG_FILE", "TICKIT_LOG_LEVEL",
	} {
		t.Setenv(k, "")
	}
	return dir
}

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestDefaults(t *testing.T) {
	is := is.New(t)
	cfg := &Config{}
	setDefaults(cfg)

	is.Equal(cfg.Backend, persist.KindFile)
	is.Equal(cfg.Redis.Addr, DefaultRedisAddr)
	is.Equal(cfg.Redis.Prefix, persist.DefaultRedisPrefix)
	is.Equal(cfg.Log.Level, "info")
	is.True(cfg.DataDir != "")
	is.NoErr(cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"memory", func(c *Config) { c.Backend = "memory"; c.DataDir = "" }, false},
		{"redis", func(c *Config) { c.Backend = "redis" }, false},
		{"redis without addr", func(c *Config) { c.Backend = "redis"; c.Redis.Addr = "" }, true},
		{"file without dir", func(c *Config) { c.DataDir = "" }, true},
		{"unknown backend", func(c *Config) { c.Backend = "sqlite" }, true},
		{"unknown level", func(c *Config) { c.Log.Level = "loud" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			cfg := &Config{}
			setDefaults(cfg)
			tt.mutate(cfg)
			err := cfg.Validate()
			is.Equal(err != nil, tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("defaults without any file", func(t *testing.T) {
		is := is.New(t)
		isolate(t)
		cfg, err := Load(newFlagSet(), nil)
		is.NoErr(err)
		is.Equal(cfg.Backend, persist.KindFile)
		is.Equal(cfg.File, "")
	})

	t.Run("file, env and flags layer in order", func(t *testing.T) {
		is := is.New(t)
		dir := isolate(t)
		path := filepath.Join(dir, "tickit.toml")
		is.NoErr(os.WriteFile(path, []byte(`
data_dir = "/from/file"
backend = "redis"

[redis]
addr = "file:6379"
db = 2

[log]
level = "debug"
`), 0o644))

		t.Setenv("TICKIT_CONFIG", path)
		t.Setenv("TICKIT_REDIS_ADDR", "env:6379")
		t.Setenv("TICKIT_LOG_LEVEL", "warn")

		cfg, err := Load(newFlagSet(), []string{"-log-level", "error"})
		is.NoErr(err)
		is.Equal(cfg.File, path)
		is.Equal(cfg.DataDir, "/from/file")
		is.Equal(cfg.Backend, "redis")
		is.Equal(cfg.Redis.Addr, "env:6379")
		is.Equal(cfg.Redis.DB, 2)
		is.Equal(cfg.Log.Level, "error")
	})

	t.Run("flag beats env", func(t *testing.T) {
		is := is.New(t)
		isolate(t)
		t.Setenv("TICKIT_BACKEND", "redis")
		cfg, err := Load(newFlagSet(), []string{"-backend", "memory", "-data", "/tmp/x"})
		is.NoErr(err)
		is.Equal(cfg.Backend, "memory")
		is.Equal(cfg.DataDir, "/tmp/x")
	})

	t.Run("missing explicit file", func(t *testing.T) {
		is := is.New(t)
		dir := isolate(t)
		_, err := Load(newFlagSet(), []string{"-config", filepath.Join(dir, "nope.toml")})
		is.True(err != nil)
	})

	t.Run("invalid backend", func(t *testing.T) {
		is := is.New(t)
		isolate(t)
		_, err := Load(newFlagSet(), []string{"-backend", "sqlite"})
		is.True(err != nil)
	})

	t.Run("bad redis db", func(t *testing.T) {
		is := is.New(t)
		isolate(t)
		t.Setenv("TICKIT_REDIS_DB", "two")
		_, err := Load(newFlagSet(), nil)
		is.True(err != nil)
	})

	t.Run("home is expanded", func(t *testing.T) {
		is := is.New(t)
		dir := isolate(t)
		cfg, err := Load(newFlagSet(), []string{"-data", "~/tasks"})
		is.NoErr(err)
		is.Equal(cfg.DataDir, filepath.Join(dir, "tasks"))
	})
}
