package appointment

import (
	"time"

	"groomslot/internal/availability"
)

// Appointment statuses.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusNoShow    = "no_show"
)

// LiveStatuses are the statuses that hold a slot on the calendar.
var LiveStatuses = []string{StatusPending, StatusConfirmed}

// DateLayout is the wire format for appointment dates.
const DateLayout = "2006-01-02"

type Appointment struct {
	ID         int       `db:"id" json:"id"`
	ClientID   int       `db:"client_id" json:"client_id"`
	PetID      int       `db:"pet_id" json:"pet_id"`
	GroomerID  int       `db:"groomer_id" json:"groomer_id"`
	ServiceID  int       `db:"service_id" json:"service_id"`
	Date       time.Time `db:"date" json:"date"`
	StartTime  string    `db:"start_time" json:"start_time" example:"10:30"`
	EndTime    string    `db:"end_time" json:"end_time" example:"11:30"`
	Status     string    `db:"status" json:"status"`
	Notes      string    `db:"notes" json:"notes"`
	PriceCents int64     `db:"price_cents" json:"price_cents"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

type AppointmentWithDetails struct {
	Appointment
	PetName         string `db:"pet_name" json:"pet_name"`
	ClientName      string `db:"client_name" json:"client_name"`
	ClientEmail     string `db:"client_email" json:"client_email"`
	GroomerName     string `db:"groomer_name" json:"groomer_name"`
	ServiceName     string `db:"service_name" json:"service_name"`
	DurationMinutes int    `db:"duration_minutes" json:"duration_minutes"`
}

// NewAppointment carries the fields needed to insert an appointment row.
// PriceCents is the service price at booking time.
type NewAppointment struct {
	ClientID   int
	PetID      int
	GroomerID  int
	ServiceID  int
	Date       time.Time
	StartTime  string
	EndTime    string
	Notes      string
	PriceCents int64
}

type CreateAppointmentRequest struct {
	PetID     int    `json:"pet_id" binding:"required" example:"3"`
	GroomerID int    `json:"groomer_id" binding:"required" example:"2"`
	ServiceID int    `json:"service_id" binding:"required" example:"1"`
	Date      string `json:"date" binding:"required" example:"2026-09-04"`
	StartTime string `json:"start_time" binding:"required" example:"10:30"`
	Notes     string `json:"notes" example:"Rocky gets nervous around dryers"`
}

type RescheduleRequest struct {
	Date      string `json:"date" binding:"required" example:"2026-09-05"`
	StartTime string `json:"start_time" binding:"required" example:"12:00"`
}

type AvailabilityResponse struct {
	GroomerID int                 `json:"groomer_id"`
	ServiceID int                 `json:"service_id"`
	Date      string              `json:"date" example:"2026-09-04"`
	Slots     []availability.Slot `json:"slots"`
}
