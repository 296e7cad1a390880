package pet

import "time"

type Pet struct {
	ID        int       `db:"id" json:"id"`
	OwnerID   int       `db:"owner_id" json:"owner_id"`
	Name      string    `db:"name" json:"name"`
	Species   string    `db:"species" json:"species"`
	Breed     string    `db:"breed" json:"breed,omitempty"`
	AgeYears  int       `db:"age_years" json:"age_years,omitempty"`
	WeightKg  float64   `db:"weight_kg" json:"weight_kg,omitempty"`
	PhotoURL  string    `db:"photo_url" json:"photo_url,omitempty"`
	Notes     string    `db:"notes" json:"notes,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type CreatePetRequest struct {
	Name     string  `json:"name" binding:"required" example:"Rocky"`
	Species  string  `json:"species" binding:"required" example:"dog"`
	Breed    string  `json:"breed" example:"poodle"`
	AgeYears int     `json:"age_years" binding:"gte=0" example:"4"`
	WeightKg float64 `json:"weight_kg" binding:"gte=0" example:"12.5"`
	PhotoURL string  `json:"photo_url"`
	Notes    string  `json:"notes" example:"nervous around clippers"`
}

type UpdatePetRequest struct {
	Name     string  `json:"name" binding:"required"`
	Species  string  `json:"species" binding:"required"`
	Breed    string  `json:"breed"`
	AgeYears int     `json:"age_years" binding:"gte=0"`
	WeightKg float64 `json:"weight_kg" binding:"gte=0"`
	PhotoURL string  `json:"photo_url"`
	Notes    string  `json:"notes"`
}
