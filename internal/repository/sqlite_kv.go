package repository

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLiteKV is the local, single file key/value store used for offline work and the CLI.
type SQLiteKV struct {
	db *sql.DB
}

// NewSQLiteKV opens (or creates) the database at path.
func NewSQLiteKV(path string) (*SQLiteKV, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, errors.New("creating store directory error: " + err.Error())
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.New("opening sqlite store error: " + err.Error())
	}
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, errors.New("executing " + p + " error: " + err.Error())
		}
	}
	const ddl = `CREATE TABLE IF NOT EXISTS kv_entries (
		user_id    TEXT NOT NULL,
		key        TEXT NOT NULL,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ','now')),
		PRIMARY KEY (user_id, key)
	)`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, errors.New("creating kv table error: " + err.Error())
	}
	return &SQLiteKV{db: db}, nil
}

// NewMemorySQLiteKV creates an in-memory store.
func NewMemorySQLiteKV() (*SQLiteKV, error) {
	return NewSQLiteKV(":memory:")
}

func (s *SQLiteKV) Close() error {
	return s.db.Close()
}

const sqliteUpsert = `INSERT INTO kv_entries (user_id, key, value) VALUES (?, ?, ?)
ON CONFLICT (user_id, key) DO UPDATE SET value = excluded.value, updated_at = strftime('%Y-%m-%dT%H:%M:%SZ','now')`

func (s *SQLiteKV) Get(ctx context.Context, uid uuid.UUID, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_entries WHERE user_id = ? AND key = ?`, uid.String(), key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.New("getting kv entry error: " + err.Error())
	}
	return value, true, nil
}

func (s *SQLiteKV) Set(ctx context.Context, uid uuid.UUID, key, value string) error {
	if _, err := s.db.ExecContext(ctx, sqliteUpsert, uid.String(), key, value); err != nil {
		return errors.New("setting kv entry error: " + err.Error())
	}
	return nil
}

func (s *SQLiteKV) Delete(ctx context.Context, uid uuid.UUID, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv_entries WHERE user_id = ? AND key = ?`, uid.String(), key); err != nil {
		return errors.New("deleting kv entry error: " + err.Error())
	}
	return nil
}

func (s *SQLiteKV) List(ctx context.Context, uid uuid.UUID, prefix string) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT key, value FROM kv_entries WHERE user_id = ? AND substr(key, 1, length(?)) = ?`,
		uid.String(), prefix, prefix)
	if err != nil {
		return nil, errors.New("listing kv entries error: " + err.Error())
	}
	defer rows.Close()
	entries := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, errors.New("kv row parsing error: " + err.Error())
		}
		entries[key] = value
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected kv rows error: " + err.Error())
	}
	return entries, nil
}

func (s *SQLiteKV) Apply(ctx context.Context, uid uuid.UUID, set map[string]string, del []string) error {
	if len(set) == 0 && len(del) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.New("beginning kv transaction error: " + err.Error())
	}
	defer tx.Rollback()

	for _, key := range sortedKeys(set) {
		if _, err := tx.ExecContext(ctx, sqliteUpsert, uid.String(), key, set[key]); err != nil {
			return errors.New("setting kv entry error: " + err.Error())
		}
	}
	for _, key := range del {
		if _, err := tx.ExecContext(ctx, `DELETE FROM kv_entries WHERE user_id = ? AND key = ?`, uid.String(), key); err != nil {
			return errors.New("deleting kv entry error: " + err.Error())
		}
	}
	if err = tx.Commit(); err != nil {
		return errors.New("committing kv transaction error: " + err.Error())
	}
	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
