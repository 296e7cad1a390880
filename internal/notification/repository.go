package notification

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrNotificationNotFound = errors.New("notification not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, groomerID int, appointmentID *int, notifType, message string) (*Notification, error) {
	query := `
		INSERT INTO notifications (groomer_id, appointment_id, type, message, read)
		VALUES ($1, $2, $3, $4, false)
		RETURNING id, groomer_id, appointment_id, type, message, read, created_at
	`

	var n Notification
	err := r.db.GetContext(ctx, &n, query, groomerID, appointmentID, notifType, message)
	if err != nil {
		return nil, err
	}

	return &n, nil
}

func (r *repository) ListByGroomer(ctx context.Context, groomerID int) ([]Notification, error) {
	query := `
		SELECT id, groomer_id, appointment_id, type, message, read, created_at
		FROM notifications
		WHERE groomer_id = $1
		ORDER BY created_at DESC
	`

	var notifications []Notification
	err := r.db.SelectContext(ctx, &notifications, query, groomerID)
	if err != nil {
		return nil, err
	}

	return notifications, nil
}

func (r *repository) ListUnreadByGroomer(ctx context.Context, groomerID int) ([]Notification, error) {
	query := `
		SELECT id, groomer_id, appointment_id, type, message, read, created_at
		FROM notifications
		WHERE groomer_id = $1 AND read = false
		ORDER BY created_at DESC
	`

	var notifications []Notification
	err := r.db.SelectContext(ctx, &notifications, query, groomerID)
	if err != nil {
		return nil, err
	}

	return notifications, nil
}

func (r *repository) CountUnread(ctx context.Context, groomerID int) (int, error) {
	query := `SELECT COUNT(*) FROM notifications WHERE groomer_id = $1 AND read = false`

	var count int
	err := r.db.GetContext(ctx, &count, query, groomerID)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *repository) MarkRead(ctx context.Context, id, groomerID int) error {
	query := `UPDATE notifications SET read = true WHERE id = $1 AND groomer_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, groomerID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

func (r *repository) MarkAllRead(ctx context.Context, groomerID int) (int, error) {
	query := `UPDATE notifications SET read = true WHERE groomer_id = $1 AND read = false`

	result, err := r.db.ExecContext(ctx, query, groomerID)
	if err != nil {
		return 0, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	return int(rowsAffected), nil
}

func (r *repository) ReminderExists(ctx context.Context, appointmentID int) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM notifications
			WHERE appointment_id = $1 AND type = 'reminder'
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, appointmentID)
	if err != nil {
		return false, err
	}

	return exists, nil
}
