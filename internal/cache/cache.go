// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cache memoizes raw scraper output in a SQLite database. Rows
// are keyed by (platform, query) and expire after a TTL; stale rows are
// ignored by reads and removed by Purge. The federated search engine
// never touches this store — it exists for the live-scrape path, which
// caches raw rows, not normalized product cards.
package cache

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/catalog-engine/pkg/types"
)

// DefaultTTL is how long cached rows stay fresh.
const DefaultTTL = 6 * time.Hour

// Row is one raw scraped product as the scrapers emit it.
type Row struct {
	Title  string `json:"title" yaml:"title"`
	Price  string `json:"price" yaml:"price"`
	Rating string `json:"rating" yaml:"rating"`
	Image  string `json:"image" yaml:"image"`
}

// Store manages the scrape cache database.
type Store struct {
	db  *sql.DB
	ttl time.Duration
}

// NewStore opens or creates the cache database at cfg.Path, creating the
// schema if needed.
func NewStore(cfg types.CacheConfig) (*Store, error) {
	path := cfg.Path
	if path == "" {
		path = filepath.Join("cache", "products.db")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	s := &Store{db: db, ttl: ttl}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS products (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			platform TEXT NOT NULL,
			query TEXT NOT NULL,
			title TEXT,
			price TEXT,
			rating TEXT,
			image TEXT,
			fetched_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_products_platform_query ON products(platform, query)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Get returns the fresh cached rows for a platform and query, in insert
// order. Stale rows are ignored. An empty slice means a cache miss.
func (s *Store) Get(ctx context.Context, platform, query string) ([]Row, error) {
	cutoff := time.Now().UTC().Add(-s.ttl).Format(time.RFC3339Nano)

	rows, err := s.db.QueryContext(ctx,
		`SELECT title, price, rating, image FROM products
		 WHERE platform = ? AND query = ? AND fetched_at >= ?
		 ORDER BY id`,
		platform, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("querying cache: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		if err := rows.Scan(&r.Title, &r.Price, &r.Rating, &r.Image); err != nil {
			return nil, fmt.Errorf("scanning cached row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Put replaces the cached rows for a platform and query in one
// transaction.
func (s *Store) Put(ctx context.Context, platform, query string, items []Row) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM products WHERE platform = ? AND query = ?`, platform, query); err != nil {
		return fmt.Errorf("deleting old rows: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO products (platform, query, title, price, rating, image, fetched_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	fetchedAt := time.Now().UTC().Format(time.RFC3339Nano)
	for _, item := range items {
		if _, err := stmt.ExecContext(ctx,
			platform, query, item.Title, item.Price, item.Rating, item.Image, fetchedAt); err != nil {
			return fmt.Errorf("inserting row: %w", err)
		}
	}
	return tx.Commit()
}

// Purge deletes expired rows and returns how many were removed.
func (s *Store) Purge(ctx context.Context) (int64, error) {
	cutoff := time.Now().UTC().Add(-s.ttl).Format(time.RFC3339Nano)

	res, err := s.db.ExecContext(ctx,
		`DELETE FROM products WHERE fetched_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purging cache: %w", err)
	}
	return res.RowsAffected()
}

// Stats summarizes the cache contents.
type Stats struct {
	Rows    int `json:"rows"`
	Queries int `json:"queries"`
	Expired int `json:"expired"`
}

// Stats reports row, distinct-query, and expired-row counts.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	cutoff := time.Now().UTC().Add(-s.ttl).Format(time.RFC3339Nano)

	var st Stats
	if err := s.db.QueryRowContext(ctx,
		`SELECT count(*), count(DISTINCT platform || ':' || query) FROM products`,
	).Scan(&st.Rows, &st.Queries); err != nil {
		return Stats{}, fmt.Errorf("counting cache rows: %w", err)
	}
	if err := s.db.QueryRowContext(ctx,
		`SELECT count(*) FROM products WHERE fetched_at < ?`, cutoff,
	).Scan(&st.Expired); err != nil {
		return Stats{}, fmt.Errorf("counting expired rows: %w", err)
	}
	return st, nil
}
