package notification

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func setupNotificationMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() { sqlxDB.Close() }
	return repo, mock, closer
}

func notificationColumns() []string {
	return []string{"id", "groomer_id", "appointment_id", "type", "message", "read", "created_at"}
}

func TestCreateNotification(t *testing.T) {
	repo, mock, close := setupNotificationMock(t)
	defer close()

	now := time.Now()
	apptID := 7

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO notifications (groomer_id, appointment_id, type, message, read) VALUES ($1, $2, $3, $4, false) RETURNING id, groomer_id, appointment_id, type, message, read, created_at")).
		WithArgs(2, &apptID, TypeNewAppointment, "New appointment booked").
		WillReturnRows(sqlmock.NewRows(notificationColumns()).
			AddRow(1, 2, apptID, TypeNewAppointment, "New appointment booked", false, now))

	n, err := repo.Create(context.Background(), 2, &apptID, TypeNewAppointment, "New appointment booked")
	require.NoError(t, err)
	require.Equal(t, TypeNewAppointment, n.Type)
	require.False(t, n.Read)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountUnread(t *testing.T) {
	repo, mock, close := setupNotificationMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM notifications WHERE groomer_id = $1 AND read = false")).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountUnread(context.Background(), 2)
	require.NoError(t, err)
	require.Equal(t, 3, count)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkRead(t *testing.T) {
	repo, mock, close := setupNotificationMock(t)
	defer close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE notifications SET read = true WHERE id = $1 AND groomer_id = $2")).
		WithArgs(1, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.MarkRead(context.Background(), 1, 2))

	// Чужое уведомление не обновляется
	mock.ExpectExec(regexp.QuoteMeta("UPDATE notifications SET read = true WHERE id = $1 AND groomer_id = $2")).
		WithArgs(1, 9).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkRead(context.Background(), 1, 9)
	require.Equal(t, ErrNotificationNotFound, err)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkAllRead(t *testing.T) {
	repo, mock, close := setupNotificationMock(t)
	defer close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE notifications SET read = true WHERE groomer_id = $1 AND read = false")).
		WithArgs(2).
		WillReturnResult(sqlmock.NewResult(0, 4))

	updated, err := repo.MarkAllRead(context.Background(), 2)
	require.NoError(t, err)
	require.Equal(t, 4, updated)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReminderExists(t *testing.T) {
	repo, mock, close := setupNotificationMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS( SELECT 1 FROM notifications WHERE appointment_id = $1 AND type = 'reminder' )")).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ReminderExists(context.Background(), 7)
	require.NoError(t, err)
	require.True(t, exists)

	require.NoError(t, mock.ExpectationsWereMet())
}
