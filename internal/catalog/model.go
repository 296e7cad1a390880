package catalog

import "time"

// GroomingService is a bookable service from the salon catalog.
type GroomingService struct {
	ID              int       `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	Description     string    `db:"description" json:"description"`
	DurationMinutes int       `db:"duration_minutes" json:"duration_minutes"`
	PriceCents      int64     `db:"price_cents" json:"price_cents"`
	ImageURL        string    `db:"image_url" json:"image_url,omitempty"`
	Active          bool      `db:"active" json:"active"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

type CreateServiceRequest struct {
	Name            string `json:"name" binding:"required" example:"Full groom"`
	Description     string `json:"description" example:"Bath, cut and nail trim"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,gt=0" example:"90"`
	PriceCents      int64  `json:"price_cents" binding:"required,gt=0" example:"4500"`
	ImageURL        string `json:"image_url"`
}

type UpdateServiceRequest struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,gt=0"`
	PriceCents      int64  `json:"price_cents" binding:"required,gt=0"`
	ImageURL        string `json:"image_url"`
	Active          bool   `json:"active"`
}
