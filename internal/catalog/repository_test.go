package catalog

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func setupCatalogMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() { sqlxDB.Close() }
	return repo, mock, closer
}

func serviceColumns() []string {
	return []string{"id", "name", "description", "duration_minutes", "price_cents", "image_url", "active", "created_at"}
}

func TestListActiveServices(t *testing.T) {
	repo, mock, close := setupCatalogMock(t)
	defer close()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, description, duration_minutes, price_cents, image_url, active, created_at FROM services WHERE active = true ORDER BY name")).
		WillReturnRows(sqlmock.NewRows(serviceColumns()).
			AddRow(1, "Bath", "Bath and brush", 30, 1500, "", true, now).
			AddRow(2, "Full groom", "Bath, cut and nails", 90, 4500, "", true, now))

	services, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, services, 2)
	require.Equal(t, 90, services[1].DurationMinutes)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeactivateService(t *testing.T) {
	repo, mock, close := setupCatalogMock(t)
	defer close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE services SET active = false WHERE id = $1")).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Deactivate(context.Background(), 1)
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE services SET active = false WHERE id = $1")).
		WithArgs(99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Deactivate(context.Background(), 99)
	require.Equal(t, ErrServiceNotFound, err)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIsReferenced(t *testing.T) {
	repo, mock, close := setupCatalogMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM appointments WHERE service_id = $1)")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	referenced, err := repo.IsReferenced(context.Background(), 1)
	require.NoError(t, err)
	require.True(t, referenced)

	require.NoError(t, mock.ExpectationsWereMet())
}
