package store

import (
	"context"
	"time"
)

// Store is the interface for persisting and querying ingested corpus
// documents. The store feeds token matrices into the engine; computed
// count vectors are never written back.
type Store interface {
	Close() error

	// PutDoc inserts a document, or replaces the existing document
	// with the same URL while keeping its identifier.
	PutDoc(ctx context.Context, d Doc) error
	GetDoc(ctx context.Context, id string) (Doc, error)
	GetDocByURL(ctx context.Context, url string) (Doc, bool, error)

	// ListDocs returns documents in insertion order. A limit of 0
	// means no limit.
	ListDocs(ctx context.Context, limit int) ([]Doc, error)
	CountDocs(ctx context.Context) (int64, error)
}

// Doc represents a stored document
type Doc struct {
	ID        string // ULID minted at ingest time
	URL       string
	Title     string
	FetchedAt time.Time
	Tokens    []string
}
