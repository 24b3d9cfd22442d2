package redis

import (
	"context"
	"fmt"
)

// Singleton stores at most one instance of a type under a fixed key. Reads
// synthesize the default when nothing has been saved yet, so get-with-default
// never fails on absence; Set unconditionally overwrites.
type Singleton[T any] struct {
	store *Store
	key   string
	def   func() *T
}

// NewSingleton creates a singleton accessor for one fixed key.
func NewSingleton[T any](store *Store, key string, def func() *T) *Singleton[T] {
	return &Singleton[T]{store: store, key: key, def: def}
}

// Get returns the stored value, or the default when none exists.
func (s *Singleton[T]) Get(ctx context.Context) (*T, error) {
	var v T
	ok, err := s.store.getJSON(ctx, s.key, &v)
	if err != nil {
		return nil, err
	}
	if !ok {
		return s.def(), nil
	}
	return &v, nil
}

// Set overwrites the singleton with the caller's value.
func (s *Singleton[T]) Set(ctx context.Context, v *T) error {
	if err := s.store.setJSON(ctx, s.key, v); err != nil {
		return fmt.Errorf("failed to save %s: %w", s.key, err)
	}
	return nil
}
