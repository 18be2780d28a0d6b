package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/kant/landscapemetrics/pkg/landscape/internalerr"
	"github.com/kant/landscapemetrics/pkg/landscape/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite corpus database with WAL mode enabled, creating
// the schema if needed.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS docs (
	id TEXT PRIMARY KEY,
	url TEXT UNIQUE NOT NULL,
	title TEXT,
	fetched_at TEXT NOT NULL,
	tokens TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_docs_url ON docs(url);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// PutDoc implements store.Store. A document with an already-known URL
// is replaced in place and keeps its original identifier.
func (s *sqliteStore) PutDoc(ctx context.Context, d store.Doc) error {
	tokens, err := json.Marshal(d.Tokens)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
INSERT INTO docs (id, url, title, fetched_at, tokens)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(url) DO UPDATE SET
	title = excluded.title,
	fetched_at = excluded.fetched_at,
	tokens = excluded.tokens`,
		d.ID, d.URL, d.Title, d.FetchedAt.UTC().Format(time.RFC3339), string(tokens))
	return err
}

// GetDoc implements store.Store.
func (s *sqliteStore) GetDoc(ctx context.Context, id string) (store.Doc, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, url, title, fetched_at, tokens FROM docs WHERE id = ?`, id)

	doc, err := scanDoc(row)
	if err == sql.ErrNoRows {
		return store.Doc{}, fmt.Errorf("doc %s: %w", id, internalerr.ErrNotFound)
	}
	return doc, err
}

// GetDocByURL implements store.Store.
func (s *sqliteStore) GetDocByURL(ctx context.Context, url string) (store.Doc, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, url, title, fetched_at, tokens FROM docs WHERE url = ?`, url)

	doc, err := scanDoc(row)
	if err == sql.ErrNoRows {
		return store.Doc{}, false, nil
	}
	if err != nil {
		return store.Doc{}, false, err
	}
	return doc, true, nil
}

// ListDocs implements store.Store.
func (s *sqliteStore) ListDocs(ctx context.Context, limit int) ([]store.Doc, error) {
	query := `SELECT id, url, title, fetched_at, tokens FROM docs ORDER BY id`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []store.Doc
	for rows.Next() {
		doc, err := scanDoc(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// CountDocs implements store.Store.
func (s *sqliteStore) CountDocs(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM docs`).Scan(&n)
	return n, err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDoc(r rowScanner) (store.Doc, error) {
	var doc store.Doc
	var fetchedAt, tokens string

	if err := r.Scan(&doc.ID, &doc.URL, &doc.Title, &fetchedAt, &tokens); err != nil {
		return store.Doc{}, err
	}

	t, err := time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		return store.Doc{}, err
	}
	doc.FetchedAt = t

	if err := json.Unmarshal([]byte(tokens), &doc.Tokens); err != nil {
		return store.Doc{}, err
	}

	return doc, nil
}
