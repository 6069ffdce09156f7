package store

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Store is the slice of a key-value service the page cache relies on. Every
// operation is atomic per key; nothing spans keys.
type Store interface {
	Incr(ctx context.Context, key string) (int64, error)
	// Get reports found=false for an absent or expired key.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	SetEx(ctx context.Context, key, value string, ttl time.Duration) error
	// TTL returns the remaining lifetime of key with millisecond precision, 0 if it
	// has none or is absent.
	TTL(ctx context.Context, key string) (time.Duration, error)
	Close() error
}

var ErrStoreUnavailable = errors.New("store unavailable")

type StoreError struct {
	Op  string
	Key string
	Err error
}

func (e *StoreError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("store %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("store %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func (e *StoreError) Is(target error) bool { return target == ErrStoreUnavailable }
