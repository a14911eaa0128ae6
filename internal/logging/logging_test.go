package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/matryer/is"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"debug", log.DebugLevel},
		{"info", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"warning", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"", log.InfoLevel},
		{"loud", log.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			is := is.New(t)
			is.Equal(ParseLevel(tt.in), tt.want)
		})
	}
}

func TestValidLevel(t *testing.T) {
	is := is.New(t)
	is.True(ValidLevel("debug"))
	is.True(ValidLevel(""))
	is.True(!ValidLevel("loud"))
}

func TestNew(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	l := New(&buf, Options{Level: "warn"})

	l.Info("hidden")
	l.Warn("shown", "key", "tasks")

	out := buf.String()
	is.True(!strings.Contains(out, "hidden"))
	is.True(strings.Contains(out, "shown"))
	is.True(strings.Contains(out, "key=tasks"))
	is.True(strings.Contains(out, "tickit"))
}

func TestOpen(t *testing.T) {
	t.Run("no file discards", func(t *testing.T) {
		is := is.New(t)
		l, closeFn, err := Open(Options{})
		is.NoErr(err)
		l.Error("nowhere")
		is.NoErr(closeFn())
	})

	t.Run("writes to file", func(t *testing.T) {
		is := is.New(t)
		path := filepath.Join(t.TempDir(), "logs", "tickit.log")
		l, closeFn, err := Open(Options{File: path, Level: "debug"})
		is.NoErr(err)
		l.Debug("stored", "key", "auth")
		is.NoErr(closeFn())

		b, err := os.ReadFile(path)
		is.NoErr(err)
		is.True(strings.Contains(string(b), "stored"))
	})
}
