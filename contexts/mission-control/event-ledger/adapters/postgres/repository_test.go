package postgresadapter

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{DisableAutomaticPing: true},
	)
	if err != nil {
		t.Fatalf("open gorm over stub connection: %v", err)
	}
	return NewRepository(db, nil), mock
}

func TestSummaryCountsReadsOneSnapshot(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) AS total`).
		WillReturnRows(sqlmock.NewRows([]string{"total", "ok"}).AddRow(3, 2))

	summary, err := repo.SummaryCounts(context.Background())
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if summary.Total != 3 || summary.OK != 2 || summary.Fail != 1 {
		t.Fatalf("expected {3 2 1}, got %+v", summary)
	}
	if summary.Total != summary.OK+summary.Fail {
		t.Fatalf("expected total = ok + fail, got %+v", summary)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("summary must be a single statement: %v", err)
	}
}
