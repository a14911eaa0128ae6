package persist

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrNotFound   = errors.New("key not found")
	ErrInvalidKey = errors.New("invalid key")
)

// Backend is a flat key-value namespace.
// Each Set replaces the whole value of a key.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

var (
	_ Backend = &Dir{}
	_ Backend = &Memory{}
	_ Backend = &Redis{}
)

// Dir stores every key in its own file inside a directory
type Dir struct {
	dir string
}

// InDir creates the directory if needed
func InDir(dir string) (*Dir, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}
	return &Dir{dir}, nil
}

func (d Dir) Get(_ context.Context, key string) ([]byte, error) {
	file, err := d.path(key)
	if err != nil {
		return nil, err
	}
	bs, err := os.ReadFile(file)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	return bs, err
}

// Set writes to a temporary file first and renames it over the old one,
// so readers see either the old or the new value
func (d Dir) Set(_ context.Context, key string, value []byte) error {
	file, err := d.path(key)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(d.dir, "."+key+"-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), file)
}

func (d Dir) Remove(_ context.Context, key string) error {
	file, err := d.path(key)
	if err != nil {
		return err
	}
	err = os.Remove(file)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (d Dir) path(key string) (string, error) {
	if !validKey(key) {
		return "", ErrInvalidKey
	}
	return filepath.Join(d.dir, key+".json"), nil
}

func validKey(key string) bool {
	if key == "" || key == "." || key == ".." {
		return false
	}
	return !strings.ContainsAny(key, `/\`) && !strings.HasPrefix(key, ".")
}
