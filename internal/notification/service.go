package notification

import (
	"context"

	"groomslot/internal/metrics"
)

type Service interface {
	Notify(ctx context.Context, groomerID int, appointmentID *int, notifType, message string) (*Notification, error)
	List(ctx context.Context, groomerID int) ([]Notification, error)
	ListUnread(ctx context.Context, groomerID int) ([]Notification, error)
	UnreadCount(ctx context.Context, groomerID int) (int, error)
	MarkRead(ctx context.Context, id, groomerID int) error
	MarkAllRead(ctx context.Context, groomerID int) (int, error)
	ReminderExists(ctx context.Context, appointmentID int) (bool, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Notify(ctx context.Context, groomerID int, appointmentID *int, notifType, message string) (*Notification, error) {
	n, err := s.repo.Create(ctx, groomerID, appointmentID, notifType, message)
	if err != nil {
		return nil, err
	}

	metrics.RecordNotification(notifType)
	return n, nil
}

func (s *service) List(ctx context.Context, groomerID int) ([]Notification, error) {
	return s.repo.ListByGroomer(ctx, groomerID)
}

func (s *service) ListUnread(ctx context.Context, groomerID int) ([]Notification, error) {
	return s.repo.ListUnreadByGroomer(ctx, groomerID)
}

func (s *service) UnreadCount(ctx context.Context, groomerID int) (int, error) {
	return s.repo.CountUnread(ctx, groomerID)
}

func (s *service) MarkRead(ctx context.Context, id, groomerID int) error {
	return s.repo.MarkRead(ctx, id, groomerID)
}

func (s *service) MarkAllRead(ctx context.Context, groomerID int) (int, error) {
	return s.repo.MarkAllRead(ctx, groomerID)
}

func (s *service) ReminderExists(ctx context.Context, appointmentID int) (bool, error) {
	return s.repo.ReminderExists(ctx, appointmentID)
}
