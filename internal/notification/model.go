package notification

import "time"

// Notification types.
const (
	TypeNewAppointment         = "new_appointment"
	TypeAppointmentConfirmed   = "appointment_confirmed"
	TypeAppointmentCancelled   = "appointment_cancelled"
	TypeAppointmentRescheduled = "appointment_rescheduled"
	TypeReminder               = "reminder"
)

type Notification struct {
	ID            int       `db:"id" json:"id"`
	GroomerID     int       `db:"groomer_id" json:"groomer_id"`
	AppointmentID *int      `db:"appointment_id" json:"appointment_id,omitempty"`
	Type          string    `db:"type" json:"type"`
	Message       string    `db:"message" json:"message"`
	Read          bool      `db:"read" json:"read"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

type UnreadCountResponse struct {
	Count int `json:"count" example:"3"`
}
