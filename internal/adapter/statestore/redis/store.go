// Package redis persists console preferences in Redis so several consoles
// can share them.
package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

// Store keeps each key as a plain Redis string under a common prefix.
type Store struct {
	rdb    goredis.UniversalClient
	prefix string
}

// New wraps an existing client.
func New(rdb goredis.UniversalClient, prefix string) *Store {
	return &Store{rdb: rdb, prefix: prefix}
}

// Dial connects to addr and pings it so a bad address fails at startup.
func Dial(ctx context.Context, addr, password string, db int, prefix string) (*Store, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("redis: ping %s: %w", addr, err)
	}
	return New(rdb, prefix), nil
}

// Get returns the value for key and whether it was present.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.rdb.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis: get %s: %w", key, err)
	}
	return v, true, nil
}

// Set stores value under key without expiry.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := s.rdb.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis: set %s: %w", key, err)
	}
	return nil
}

// Close closes the underlying client.
func (s *Store) Close() error {
	return s.rdb.Close()
}
