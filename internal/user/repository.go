package user

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrUserNotFound = errors.New("user not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, u NewUser) (*User, error) {
	query := `
		INSERT INTO users (name, email, password_hash, role, phone, specialty, experience_years)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, name, email, password_hash, role, phone, specialty, experience_years, created_at
	`

	var user User
	err := r.db.GetContext(ctx, &user, query,
		u.Name, u.Email, u.PasswordHash, u.Role, u.Phone, u.Specialty, u.ExperienceYears)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	query := `
		SELECT id, name, email, password_hash, role, phone, specialty, experience_years, created_at
		FROM users
		WHERE email = $1
	`

	var user User
	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *repository) FindByID(ctx context.Context, id int) (*User, error) {
	query := `
		SELECT id, name, email, password_hash, role, phone, specialty, experience_years, created_at
		FROM users
		WHERE id = $1
	`

	var user User
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, email)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *repository) UpdateProfile(ctx context.Context, id int, name, phone string) (*User, error) {
	query := `
		UPDATE users
		SET name = $2, phone = $3
		WHERE id = $1
		RETURNING id, name, email, password_hash, role, phone, specialty, experience_years, created_at
	`

	var user User
	err := r.db.GetContext(ctx, &user, query, id, name, phone)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *repository) ListGroomers(ctx context.Context) ([]GroomerProfile, error) {
	query := `
		SELECT id, name, specialty, experience_years
		FROM users
		WHERE role = 'groomer'
		ORDER BY name
	`

	var groomers []GroomerProfile
	err := r.db.SelectContext(ctx, &groomers, query)
	if err != nil {
		return nil, err
	}

	return groomers, nil
}

func (r *repository) ListAll(ctx context.Context) ([]User, error) {
	query := `
		SELECT id, name, email, password_hash, role, phone, specialty, experience_years, created_at
		FROM users
		ORDER BY created_at DESC
	`

	var users []User
	err := r.db.SelectContext(ctx, &users, query)
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM users WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}
