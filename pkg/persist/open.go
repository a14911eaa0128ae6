package persist

import (
	"context"
	"fmt"
	"io"

	"github.com/redis/go-redis/v9"
)

const (
	KindFile   = "file"
	KindMemory = "memory"
	KindRedis  = "redis"
)

type Options struct {
	Kind string

	// file
	Dir string

	// redis
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string
}

// Open builds the backend described by opts.
// The returned closer must be closed once the backend is no longer used.
func Open(ctx context.Context, opts Options) (Backend, io.Closer, error) {
	switch opts.Kind {
	case KindFile, "":
		d, err := InDir(opts.Dir)
		if err != nil {
			return nil, nil, fmt.Errorf("open data dir: %w", err)
		}
		return d, nopCloser{}, nil
	case KindMemory:
		return InMemory(), nopCloser{}, nil
	case KindRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     opts.RedisAddr,
			Password: opts.RedisPassword,
			DB:       opts.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("ping redis at %s: %w", opts.RedisAddr, err)
		}
		prefix := opts.RedisPrefix
		if prefix == "" {
			prefix = DefaultRedisPrefix
		}
		r := InRedis(client, prefix)
		return r, r, nil
	}
	return nil, nil, fmt.Errorf("unknown backend %q", opts.Kind)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
