// Package storage provides the durable key-value blob store behind the cart
// and order-history state. State is always written as a whole document with
// last-writer-wins semantics; callers serialize their own mutations.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Read when no blob exists under the key.
var ErrNotFound = errors.New("blob not found")

// BlobStore reads and writes whole JSON documents by key.
type BlobStore interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}
