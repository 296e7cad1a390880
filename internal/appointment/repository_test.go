package appointment

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func setupAppointmentMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() { sqlxDB.Close() }
	return repo, mock, closer
}

func appointmentColumns() []string {
	return []string{"id", "client_id", "pet_id", "groomer_id", "service_id", "date", "start_time", "end_time", "status", "notes", "price_cents", "created_at"}
}

func TestCreateAppointmentRow(t *testing.T) {
	repo, mock, close := setupAppointmentMock(t)
	defer close()

	date := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO appointments (client_id, pet_id, groomer_id, service_id, date, start_time, end_time, status, notes, price_cents) VALUES ($1, $2, $3, $4, $5, $6, $7, 'pending', $8, $9) RETURNING id, client_id, pet_id, groomer_id, service_id, date, start_time, end_time, status, notes, price_cents, created_at")).
		WithArgs(1, 3, 2, 1, date, "11:00", "12:00", "", int64(4500)).
		WillReturnRows(sqlmock.NewRows(appointmentColumns()).
			AddRow(5, 1, 3, 2, 1, date, "11:00", "12:00", StatusPending, "", 4500, now))

	appt, err := repo.Create(context.Background(), NewAppointment{
		ClientID: 1, PetID: 3, GroomerID: 2, ServiceID: 1,
		Date: date, StartTime: "11:00", EndTime: "12:00", PriceCents: 4500,
	})

	require.NoError(t, err)
	require.Equal(t, 5, appt.ID)
	require.Equal(t, StatusPending, appt.Status)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListLiveForGroomerDate(t *testing.T) {
	repo, mock, close := setupAppointmentMock(t)
	defer close()

	date := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, client_id, pet_id, groomer_id, service_id, date, start_time, end_time, status, notes, price_cents, created_at FROM appointments WHERE groomer_id = $1 AND date = $2 AND status = ANY($3) AND id != $4 ORDER BY start_time")).
		WithArgs(2, date, pq.Array(LiveStatuses), 0).
		WillReturnRows(sqlmock.NewRows(appointmentColumns()).
			AddRow(9, 1, 3, 2, 1, date, "10:00", "11:00", StatusConfirmed, "", 3000, now))

	appts, err := repo.ListLiveForGroomerDate(context.Background(), 2, date, 0)

	require.NoError(t, err)
	require.Len(t, appts, 1)
	require.Equal(t, "10:00", appts[0].StartTime)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPetHasLiveOnDate(t *testing.T) {
	repo, mock, close := setupAppointmentMock(t)
	defer close()

	date := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS( SELECT 1 FROM appointments WHERE pet_id = $1 AND date = $2 AND status = ANY($3) AND id != $4 )")).
		WithArgs(3, date, pq.Array(LiveStatuses), 5).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.PetHasLiveOnDate(context.Background(), 3, date, 5)

	require.NoError(t, err)
	require.True(t, exists)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransition(t *testing.T) {
	repo, mock, close := setupAppointmentMock(t)
	defer close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE appointments SET status = $2 WHERE id = $1 AND status = ANY($3)")).
		WithArgs(5, StatusConfirmed, pq.Array([]string{StatusPending})).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Transition(context.Background(), 5, StatusConfirmed, StatusPending)
	require.NoError(t, err)

	// Запись уже не в исходном статусе
	mock.ExpectExec(regexp.QuoteMeta("UPDATE appointments SET status = $2 WHERE id = $1 AND status = ANY($3)")).
		WithArgs(5, StatusCancelled, pq.Array([]string{StatusPending, StatusConfirmed})).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Transition(context.Background(), 5, StatusCancelled, StatusPending, StatusConfirmed)
	require.Equal(t, ErrInvalidTransition, err)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRescheduleRow(t *testing.T) {
	repo, mock, close := setupAppointmentMock(t)
	defer close()

	date := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE appointments SET date = $2, start_time = $3, end_time = $4 WHERE id = $1 AND status = 'pending'")).
		WithArgs(5, date, "12:00", "13:00").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Reschedule(context.Background(), 5, date, "12:00", "13:00")
	require.NoError(t, err)

	// Подтверждённую запись перенести нельзя
	mock.ExpectExec(regexp.QuoteMeta("UPDATE appointments SET date = $2, start_time = $3, end_time = $4 WHERE id = $1 AND status = 'pending'")).
		WithArgs(6, date, "12:00", "13:00").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Reschedule(context.Background(), 6, date, "12:00", "13:00")
	require.Equal(t, ErrInvalidTransition, err)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDetails(t *testing.T) {
	repo, mock, close := setupAppointmentMock(t)
	defer close()

	date := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)
	now := time.Now()
	columns := append(appointmentColumns(),
		"pet_name", "client_name", "client_email", "groomer_name", "service_name", "duration_minutes")

	mock.ExpectQuery("SELECT .+ FROM appointments a JOIN pets p ON a.pet_id = p.id .+ WHERE a.id = \\$1").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(5, 1, 3, 2, 1, date, "11:00", "12:00", StatusPending, "", 4500, now,
				"Rocky", "Maria", "maria@example.com", "Carlos", "Full groom", 60))

	details, err := repo.GetDetails(context.Background(), 5)

	require.NoError(t, err)
	require.Equal(t, "Rocky", details.PetName)
	require.Equal(t, 60, details.DurationMinutes)

	require.NoError(t, mock.ExpectationsWereMet())
}
