package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/vfg2006/multiplatform-ads-api/infrastructure/database/postgres"
	"github.com/vfg2006/multiplatform-ads-api/internal/domain"
	"github.com/vfg2006/multiplatform-ads-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const analyticsHistoryTable = "advertising_analytics_history"

//go:generate mockgen -source=analytics_history.go -destination=mocks/analytics_history.go -package=mocks
type AnalyticsHistoryRepository interface {
	Save(ctx context.Context, snapshot *domain.AnalyticsSnapshot) error
	ListByCompany(ctx context.Context, companyID string, limit uint64) ([]*domain.AnalyticsSnapshot, error)
	DeleteOlderThan(ctx context.Context, days int) (int64, error)
}

type analyticsHistoryRepository struct {
	db  postgres.Queryer
	now func() time.Time
}

func NewAnalyticsHistoryRepository(db postgres.Queryer) AnalyticsHistoryRepository {
	return &analyticsHistoryRepository{
		db:  db,
		now: time.Now,
	}
}

func (r *analyticsHistoryRepository) Save(ctx context.Context, snapshot *domain.AnalyticsSnapshot) error {
	if snapshot.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id do snapshot: %w", err)
		}
		snapshot.ID = id
	}
	if snapshot.Timestamp.IsZero() {
		snapshot.Timestamp = r.now()
	}
	if snapshot.Date.IsZero() {
		snapshot.Date = snapshot.Timestamp
	}

	analyticsJSON, err := json.Marshal(snapshot.Analytics)
	if err != nil {
		return fmt.Errorf("erro ao serializar analytics para JSON: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert(analyticsHistoryTable).
		Columns("id", "company_id", "date", "timestamp", "analytics").
		Values(
			snapshot.ID,
			snapshot.CompanyID,
			snapshot.Date.Format(time.DateOnly),
			snapshot.Timestamp,
			analyticsJSON,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *analyticsHistoryRepository) ListByCompany(ctx context.Context, companyID string, limit uint64) ([]*domain.AnalyticsSnapshot, error) {
	builder := squirrel.
		Select("id", "company_id", "date", "timestamp", "analytics").
		From(analyticsHistoryTable).
		Where(squirrel.Eq{"company_id": companyID}).
		OrderBy("timestamp DESC").
		PlaceholderFormat(squirrel.Dollar)
	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.AnalyticsSnapshot, 0)
	for rows.Next() {
		snapshot, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

func (r *analyticsHistoryRepository) DeleteOlderThan(ctx context.Context, days int) (int64, error) {
	cutoffDate := r.now().AddDate(0, 0, -days).Format(time.DateOnly)

	query, args, err := squirrel.
		Delete(analyticsHistoryTable).
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func scanSnapshot(rows *sql.Rows) (*domain.AnalyticsSnapshot, error) {
	snapshot := &domain.AnalyticsSnapshot{}
	var analyticsJSON []byte

	err := rows.Scan(
		&snapshot.ID,
		&snapshot.CompanyID,
		&snapshot.Date,
		&snapshot.Timestamp,
		&analyticsJSON,
	)
	if err != nil {
		return nil, err
	}

	if analyticsJSON != nil {
		if err := json.Unmarshal(analyticsJSON, &snapshot.Analytics); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de analytics: %w", err)
		}
	}

	return snapshot, nil
}
