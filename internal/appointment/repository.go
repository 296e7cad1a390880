package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidTransition   = errors.New("appointment is not in a valid status for this action")
)

const detailsSelect = `
	SELECT
		a.id,
		a.client_id,
		a.pet_id,
		a.groomer_id,
		a.service_id,
		a.date,
		a.start_time,
		a.end_time,
		a.status,
		a.notes,
		a.price_cents,
		a.created_at,
		p.name AS pet_name,
		c.name AS client_name,
		c.email AS client_email,
		g.name AS groomer_name,
		s.name AS service_name,
		s.duration_minutes AS duration_minutes
	FROM appointments a
	JOIN pets p ON a.pet_id = p.id
	JOIN users c ON a.client_id = c.id
	JOIN users g ON a.groomer_id = g.id
	JOIN services s ON a.service_id = s.id
`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, a NewAppointment) (*Appointment, error) {
	query := `
		INSERT INTO appointments (client_id, pet_id, groomer_id, service_id, date, start_time, end_time, status, notes, price_cents)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 'pending', $8, $9)
		RETURNING id, client_id, pet_id, groomer_id, service_id, date, start_time, end_time, status, notes, price_cents, created_at
	`

	var appt Appointment
	err := r.db.GetContext(ctx, &appt, query,
		a.ClientID, a.PetID, a.GroomerID, a.ServiceID, a.Date, a.StartTime, a.EndTime, a.Notes, a.PriceCents)
	if err != nil {
		return nil, err
	}

	return &appt, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Appointment, error) {
	query := `
		SELECT id, client_id, pet_id, groomer_id, service_id, date, start_time, end_time, status, notes, price_cents, created_at
		FROM appointments
		WHERE id = $1
	`

	var appt Appointment
	err := r.db.GetContext(ctx, &appt, query, id)
	if err != nil {
		return nil, err
	}

	return &appt, nil
}

func (r *repository) GetDetails(ctx context.Context, id int) (*AppointmentWithDetails, error) {
	query := detailsSelect + ` WHERE a.id = $1`

	var appt AppointmentWithDetails
	err := r.db.GetContext(ctx, &appt, query, id)
	if err != nil {
		return nil, err
	}

	return &appt, nil
}

func (r *repository) ListByClient(ctx context.Context, clientID int) ([]AppointmentWithDetails, error) {
	query := detailsSelect + `
		WHERE a.client_id = $1
		ORDER BY a.date DESC, a.start_time DESC
	`

	var appts []AppointmentWithDetails
	err := r.db.SelectContext(ctx, &appts, query, clientID)
	if err != nil {
		return nil, err
	}

	return appts, nil
}

func (r *repository) ListByGroomer(ctx context.Context, groomerID int) ([]AppointmentWithDetails, error) {
	query := detailsSelect + `
		WHERE a.groomer_id = $1
		ORDER BY a.date DESC, a.start_time DESC
	`

	var appts []AppointmentWithDetails
	err := r.db.SelectContext(ctx, &appts, query, groomerID)
	if err != nil {
		return nil, err
	}

	return appts, nil
}

func (r *repository) ListAll(ctx context.Context) ([]AppointmentWithDetails, error) {
	query := detailsSelect + ` ORDER BY a.date DESC, a.start_time DESC`

	var appts []AppointmentWithDetails
	err := r.db.SelectContext(ctx, &appts, query)
	if err != nil {
		return nil, err
	}

	return appts, nil
}

func (r *repository) ListLiveForGroomerDate(ctx context.Context, groomerID int, date time.Time, excludeID int) ([]Appointment, error) {
	query := `
		SELECT id, client_id, pet_id, groomer_id, service_id, date, start_time, end_time, status, notes, price_cents, created_at
		FROM appointments
		WHERE groomer_id = $1
		  AND date = $2
		  AND status = ANY($3)
		  AND id != $4
		ORDER BY start_time
	`

	var appts []Appointment
	err := r.db.SelectContext(ctx, &appts, query, groomerID, date, pq.Array(LiveStatuses), excludeID)
	if err != nil {
		return nil, err
	}

	return appts, nil
}

func (r *repository) PetHasLiveOnDate(ctx context.Context, petID int, date time.Time, excludeID int) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM appointments
			WHERE pet_id = $1
			  AND date = $2
			  AND status = ANY($3)
			  AND id != $4
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, petID, date, pq.Array(LiveStatuses), excludeID)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *repository) ListForGroomerDate(ctx context.Context, groomerID int, date time.Time) ([]AppointmentWithDetails, error) {
	query := detailsSelect + `
		WHERE a.groomer_id = $1 AND a.date = $2
		ORDER BY a.start_time
	`

	var appts []AppointmentWithDetails
	err := r.db.SelectContext(ctx, &appts, query, groomerID, date)
	if err != nil {
		return nil, err
	}

	return appts, nil
}

func (r *repository) ListLiveBetween(ctx context.Context, from, to time.Time) ([]AppointmentWithDetails, error) {
	query := detailsSelect + `
		WHERE a.date BETWEEN $1 AND $2
		  AND a.status = ANY($3)
		ORDER BY a.date, a.start_time
	`

	var appts []AppointmentWithDetails
	err := r.db.SelectContext(ctx, &appts, query, from, to, pq.Array(LiveStatuses))
	if err != nil {
		return nil, err
	}

	return appts, nil
}

func (r *repository) Transition(ctx context.Context, id int, to string, from ...string) error {
	query := `
		UPDATE appointments
		SET status = $2
		WHERE id = $1 AND status = ANY($3)
	`

	result, err := r.db.ExecContext(ctx, query, id, to, pq.Array(from))
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrInvalidTransition
	}

	return nil
}

func (r *repository) Reschedule(ctx context.Context, id int, date time.Time, startTime, endTime string) error {
	query := `
		UPDATE appointments
		SET date = $2, start_time = $3, end_time = $4
		WHERE id = $1 AND status = 'pending'
	`

	result, err := r.db.ExecContext(ctx, query, id, date, startTime, endTime)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrInvalidTransition
	}

	return nil
}
