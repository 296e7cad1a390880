package appointment

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, a NewAppointment) (*Appointment, error)
	GetByID(ctx context.Context, id int) (*Appointment, error)
	GetDetails(ctx context.Context, id int) (*AppointmentWithDetails, error)
	ListByClient(ctx context.Context, clientID int) ([]AppointmentWithDetails, error)
	ListByGroomer(ctx context.Context, groomerID int) ([]AppointmentWithDetails, error)
	ListAll(ctx context.Context) ([]AppointmentWithDetails, error)

	// ListLiveForGroomerDate returns the pending and confirmed
	// appointments of a groomer on a date, skipping excludeID when
	// it is non-zero.
	ListLiveForGroomerDate(ctx context.Context, groomerID int, date time.Time, excludeID int) ([]Appointment, error)
	PetHasLiveOnDate(ctx context.Context, petID int, date time.Time, excludeID int) (bool, error)
	ListForGroomerDate(ctx context.Context, groomerID int, date time.Time) ([]AppointmentWithDetails, error)
	ListLiveBetween(ctx context.Context, from, to time.Time) ([]AppointmentWithDetails, error)

	// Transition moves an appointment to a new status, guarded by
	// the statuses it may come from.
	Transition(ctx context.Context, id int, to string, from ...string) error
	Reschedule(ctx context.Context, id int, date time.Time, startTime, endTime string) error
}
