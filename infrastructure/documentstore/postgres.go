package documentstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/multiplatform-ads-api/infrastructure/database/postgres"
)

const documentsTable = "advertising_documents"

// PostgresStore grava cada documento como JSONB em advertising_documents
type PostgresStore struct {
	db    postgres.Queryer
	clock Clock
}

func NewPostgresStore(db postgres.Queryer, clock Clock) *PostgresStore {
	if clock == nil {
		clock = time.Now
	}
	return &PostgresStore{db: db, clock: clock}
}

func (s *PostgresStore) Get(ctx context.Context, collection, key string) (*Document, error) {
	query, args, err := squirrel.
		Select("payload", "last_sync").
		From(documentsTable).
		Where(squirrel.Eq{"collection": collection, "doc_key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	doc := &Document{}
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&doc.Payload, &doc.LastSync)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("erro ao escanear documento: %w", err)
	}

	return doc, nil
}

func (s *PostgresStore) Put(ctx context.Context, collection, key string, payload []byte) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(documentsTable).
		Columns("collection", "doc_key", "payload", "last_sync").
		Values(collection, key, payload, s.clock().UTC()).
		Suffix(`
			ON CONFLICT (collection, doc_key) DO UPDATE SET
				payload = EXCLUDED.payload,
				last_sync = EXCLUDED.last_sync
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (s *PostgresStore) Age(ctx context.Context, collection, key string) (time.Duration, error) {
	query, args, err := squirrel.
		Select("last_sync").
		From(documentsTable).
		Where(squirrel.Eq{"collection": collection, "doc_key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var lastSync time.Time
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&lastSync); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("erro ao escanear documento: %w", err)
	}

	return s.clock().Sub(lastSync), nil
}
