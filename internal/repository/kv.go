package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stpnv0/CinemaDistrict/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type PostgresKVStore struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPostgresKVStore(db *dbpg.DB) *PostgresKVStore {
	return &PostgresKVStore{db: db, strategy: defaultStrategy()}
}

func (s *PostgresKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	row, err := s.db.QueryRowWithRetry(ctx, s.strategy, `SELECT value FROM kv_entries WHERE key=$1`, key)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}

	var value []byte
	if err = row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrKeyNotFound
		}
		return nil, fmt.Errorf("scan %s: %w", key, err)
	}

	return value, nil
}

func (s *PostgresKVStore) Set(ctx context.Context, key string, value []byte) error {
	query := `INSERT INTO kv_entries (key, value, updated_at)
			  VALUES ($1, $2, NOW())
			  ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`

	if _, err := s.db.ExecWithRetry(ctx, s.strategy, query, key, value); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (s *PostgresKVStore) Remove(ctx context.Context, key string) error {
	if _, err := s.db.ExecWithRetry(ctx, s.strategy, `DELETE FROM kv_entries WHERE key=$1`, key); err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}
