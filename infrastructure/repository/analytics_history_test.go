package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/multiplatform-ads-api/internal/domain"
)

func newTestRepository(t *testing.T, now time.Time) (*analyticsHistoryRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &analyticsHistoryRepository{db: db, now: func() time.Time { return now }}, mock
}

func TestAnalyticsHistoryRepository_Save(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	repo, mock := newTestRepository(t, now)

	snapshot := &domain.AnalyticsSnapshot{
		CompanyID: "company-1",
		Analytics: domain.UnifiedAnalytics{Summary: domain.UnifiedMetrics{Cost: 100}},
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO advertising_analytics_history (id,company_id,date,timestamp,analytics)")).
		WithArgs(sqlmock.AnyArg(), "company-1", "2024-05-10", now, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Save(context.Background(), snapshot))
	assert.Len(t, snapshot.ID, 20)
	assert.Equal(t, now, snapshot.Timestamp)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsHistoryRepository_ListByCompany(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	repo, mock := newTestRepository(t, now)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, company_id, date, timestamp, analytics FROM advertising_analytics_history WHERE company_id = $1 ORDER BY timestamp DESC LIMIT 5")).
		WithArgs("company-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "company_id", "date", "timestamp", "analytics"}).
			AddRow("snap1", "company-1", now, now, []byte(`{"summary":{"cost":250,"roas":2}}`)))

	snapshots, err := repo.ListByCompany(context.Background(), "company-1", 5)
	require.NoError(t, err)
	require.Len(t, snapshots, 1)
	assert.Equal(t, "snap1", snapshots[0].ID)
	assert.Equal(t, int64(250), snapshots[0].Analytics.Summary.Cost)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsHistoryRepository_DeleteOlderThan(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	repo, mock := newTestRepository(t, now)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM advertising_analytics_history WHERE date < $1")).
		WithArgs("2024-02-10").
		WillReturnResult(sqlmock.NewResult(0, 7))

	deleted, err := repo.DeleteOlderThan(context.Background(), 90)
	require.NoError(t, err)
	assert.Equal(t, int64(7), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
