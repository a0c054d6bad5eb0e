// Package storage provides file storage for uploaded documents.
package storage

import "context"

// FileStore persists uploaded files and returns a URL clients can use to
// retrieve them.
type FileStore interface {
	// Save writes content under key and returns its public URL.
	Save(ctx context.Context, key string, content []byte, contentType string) (string, error)

	// Delete removes the file stored under key. Deleting a missing key is
	// not an error.
	Delete(ctx context.Context, key string) error
}
