package store

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/malekluka/malek-kanban-portfolio/internal/model"
)

// ErrNotFound is returned by a Backend when no record exists under the key.
var ErrNotFound = errors.New("record not found")

// Backend is a durable key-value record store.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}

// Store persists the whole column collection as a single record under a
// fixed key. Every save overwrites the full collection.
type Store struct {
	backend Backend
	key     string
}

// New wraps a backend so the board is stored under key.
func New(b Backend, key string) *Store {
	if key == "" {
		key = model.DefaultStorageKey
	}
	return &Store{backend: b, key: key}
}

// Open builds the backend selected by cfg.
func Open(ctx context.Context, cfg model.StorageConfig) (*Store, error) {
	switch cfg.Backend {
	case model.BackendSQLite, "":
		b, err := NewSQLiteStore(cfg.Path)
		if err != nil {
			return nil, err
		}
		return New(b, cfg.Key), nil
	case model.BackendRedis:
		b, err := NewRedisStore(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, err
		}
		return New(b, cfg.Key), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// Key returns the record key.
func (s *Store) Key() string { return s.key }

// Load reads and decodes the stored column collection.
func (s *Store) Load(ctx context.Context) ([]model.Column, error) {
	raw, err := s.backend.Get(ctx, s.key)
	if err != nil {
		return nil, err
	}
	cols, err := Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("decoding record %s: %w", s.key, err)
	}
	return cols, nil
}

// Save encodes and overwrites the stored column collection.
func (s *Store) Save(ctx context.Context, cols []model.Column) error {
	raw, err := Encode(cols)
	if err != nil {
		return fmt.Errorf("encoding record %s: %w", s.key, err)
	}
	if err := s.backend.Put(ctx, s.key, raw); err != nil {
		return fmt.Errorf("writing record %s: %w", s.key, err)
	}
	return nil
}

// LoadOrSeed returns the stored collection, or the seed dataset when the
// record is absent, unreadable or corrupt. The second result reports
// whether the seed was used.
func (s *Store) LoadOrSeed(ctx context.Context) ([]model.Column, bool) {
	cols, err := s.Load(ctx)
	if err == nil {
		return cols, false
	}
	if errors.Is(err, ErrNotFound) {
		log.WithField("key", s.key).Info("no stored board, using seed data")
	} else {
		log.WithError(err).WithField("key", s.key).Warn("stored board unusable, using seed data")
	}
	return Seed(), true
}

// Close releases the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}
