package notification

import "context"

type Repository interface {
	Create(ctx context.Context, groomerID int, appointmentID *int, notifType, message string) (*Notification, error)
	ListByGroomer(ctx context.Context, groomerID int) ([]Notification, error)
	ListUnreadByGroomer(ctx context.Context, groomerID int) ([]Notification, error)
	CountUnread(ctx context.Context, groomerID int) (int, error)
	MarkRead(ctx context.Context, id, groomerID int) error
	MarkAllRead(ctx context.Context, groomerID int) (int, error)
	ReminderExists(ctx context.Context, appointmentID int) (bool, error)
}
