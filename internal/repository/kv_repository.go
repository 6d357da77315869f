package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PgKV keeps the key/value space of every user in kv_entries.
type PgKV struct {
	conn PgConnection
}

func NewPgKVWithConn(conn PgConnection) *PgKV {
	mustPing(conn, "kvRepo")
	return &PgKV{
		conn: conn,
	}
}

const upsertKV = `INSERT INTO kv_entries (user_id, key, value) VALUES ($1, $2, $3)
ON CONFLICT (user_id, key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW();`

const deleteKV = `DELETE FROM kv_entries WHERE user_id = $1 AND key = $2;`

func (kv *PgKV) Get(ctx context.Context, uid uuid.UUID, key string) (string, bool, error) {
	var value string
	row := kv.conn.QueryRow(ctx, `SELECT value FROM kv_entries WHERE user_id = $1 AND key = $2;`, uid, key)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, errors.New("getting kv entry error: " + err.Error())
	}
	return value, true, nil
}

func (kv *PgKV) Set(ctx context.Context, uid uuid.UUID, key, value string) error {
	if _, err := kv.conn.Exec(ctx, upsertKV, uid, key, value); err != nil {
		return errors.New("setting kv entry error: " + err.Error())
	}
	return nil
}

func (kv *PgKV) Delete(ctx context.Context, uid uuid.UUID, key string) error {
	if _, err := kv.conn.Exec(ctx, deleteKV, uid, key); err != nil {
		return errors.New("deleting kv entry error: " + err.Error())
	}
	return nil
}

func (kv *PgKV) List(ctx context.Context, uid uuid.UUID, prefix string) (map[string]string, error) {
	rows, err := kv.conn.Query(ctx, `SELECT key, value FROM kv_entries WHERE user_id = $1 AND starts_with(key, $2);`, uid, prefix)
	if err != nil {
		return nil, errors.New("listing kv entries error: " + err.Error())
	}
	defer rows.Close()
	entries := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err = rows.Scan(&key, &value); err != nil {
			return nil, errors.New("kv row parsing error: " + err.Error())
		}
		entries[key] = value
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected kv rows error: " + err.Error())
	}
	return entries, nil
}

func (kv *PgKV) Apply(ctx context.Context, uid uuid.UUID, set map[string]string, del []string) error {
	if len(set) == 0 && len(del) == 0 {
		return nil
	}
	tx, err := kv.conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning kv transaction error: " + err.Error())
	}
	for _, key := range sortedKeys(set) {
		if _, err = tx.Exec(ctx, upsertKV, uid, key, set[key]); err != nil {
			_ = tx.Rollback(ctx)
			return errors.New("setting kv entry error: " + err.Error())
		}
	}
	for _, key := range del {
		if _, err = tx.Exec(ctx, deleteKV, uid, key); err != nil {
			_ = tx.Rollback(ctx)
			return errors.New("deleting kv entry error: " + err.Error())
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing kv transaction error: " + err.Error())
	}
	return nil
}
