// Package kv defines the key-value persistence port used by the cart store and
// its backends: an in-process map, a directory of files, Redis and a SQL table.
package kv

import (
	"context"
	"errors"
)

// ErrClosed is returned by backends used after Close.
var ErrClosed = errors.New("kv: store closed")

// Store is a string-keyed slot store. Get reports ok=false for a missing key;
// that is not an error.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}
