package tokens

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/userdesk/userdesk/internal/dbx"
)

const (
	keyAccess  = "access"
	keyRefresh = "refresh"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) get(ctx context.Context, q dbx.DBTX, key string) (string, error) {
	var value string
	err := q.QueryRowContext(ctx, `SELECT value FROM tokens WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get token[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteRepository) set(ctx context.Context, q dbx.DBTX, key, value string) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO tokens (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set token[%s]: %w", key, err)
	}
	return nil
}

// Save replaces the stored pair in a single transaction so a crash can never
// leave a mixed old/new pair behind.
func (r *SQLiteRepository) Save(ctx context.Context, access, refresh string) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := r.set(ctx, tx, keyAccess, access); err != nil {
			return err
		}
		return r.set(ctx, tx, keyRefresh, refresh)
	})
}

// Clear removes both tokens.
func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tokens`)
	if err != nil {
		return fmt.Errorf("failed to clear tokens: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Access(ctx context.Context) (string, error) {
	return r.get(ctx, r.db, keyAccess)
}

func (r *SQLiteRepository) Refresh(ctx context.Context) (string, error) {
	return r.get(ctx, r.db, keyRefresh)
}

func (r *SQLiteRepository) HasAccess(ctx context.Context) (bool, error) {
	access, err := r.Access(ctx)
	if err != nil {
		return false, err
	}
	return access != "", nil
}
