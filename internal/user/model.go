package user

import "time"

type User struct {
	ID              int       `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	Email           string    `db:"email" json:"email"`
	PasswordHash    string    `db:"password_hash" json:"-"`
	Role            string    `db:"role" json:"role"`
	Phone           string    `db:"phone" json:"phone,omitempty"`
	Specialty       string    `db:"specialty" json:"specialty,omitempty"`
	ExperienceYears int       `db:"experience_years" json:"experience_years,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// GroomerProfile is the public view of a groomer shown to clients.
type GroomerProfile struct {
	ID              int    `db:"id" json:"id"`
	Name            string `db:"name" json:"name"`
	Specialty       string `db:"specialty" json:"specialty"`
	ExperienceYears int    `db:"experience_years" json:"experience_years"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required" example:"Maria Lopez"`
	Email    string `json:"email" binding:"required,email" example:"maria@example.com"`
	Password string `json:"password" binding:"required,min=8" example:"password123"`
	Phone    string `json:"phone" example:"+34600111222"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"maria@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

type UpdateProfileRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

type CreateGroomerRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8"`
	Phone           string `json:"phone"`
	Specialty       string `json:"specialty"`
	ExperienceYears int    `json:"experience_years" binding:"gte=0"`
}
