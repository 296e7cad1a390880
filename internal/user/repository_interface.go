package user

import "context"

// NewUser carries the fields needed to insert a user row.
type NewUser struct {
	Name            string
	Email           string
	PasswordHash    string
	Role            string
	Phone           string
	Specialty       string
	ExperienceYears int
}

type Repository interface {
	Create(ctx context.Context, u NewUser) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id int) (*User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateProfile(ctx context.Context, id int, name, phone string) (*User, error)
	ListGroomers(ctx context.Context) ([]GroomerProfile, error)
	ListAll(ctx context.Context) ([]User, error)
	Delete(ctx context.Context, id int) error
}
