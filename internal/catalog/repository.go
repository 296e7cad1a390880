package catalog

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrServiceNotFound = errors.New("service not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, req CreateServiceRequest) (*GroomingService, error) {
	query := `
		INSERT INTO services (name, description, duration_minutes, price_cents, image_url, active)
		VALUES ($1, $2, $3, $4, $5, true)
		RETURNING id, name, description, duration_minutes, price_cents, image_url, active, created_at
	`

	var svc GroomingService
	err := r.db.GetContext(ctx, &svc, query,
		req.Name, req.Description, req.DurationMinutes, req.PriceCents, req.ImageURL)
	if err != nil {
		return nil, err
	}

	return &svc, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*GroomingService, error) {
	query := `
		SELECT id, name, description, duration_minutes, price_cents, image_url, active, created_at
		FROM services
		WHERE id = $1
	`

	var svc GroomingService
	err := r.db.GetContext(ctx, &svc, query, id)
	if err != nil {
		return nil, err
	}

	return &svc, nil
}

func (r *repository) ListActive(ctx context.Context) ([]GroomingService, error) {
	query := `
		SELECT id, name, description, duration_minutes, price_cents, image_url, active, created_at
		FROM services
		WHERE active = true
		ORDER BY name
	`

	var services []GroomingService
	err := r.db.SelectContext(ctx, &services, query)
	if err != nil {
		return nil, err
	}

	return services, nil
}

func (r *repository) ListAll(ctx context.Context) ([]GroomingService, error) {
	query := `
		SELECT id, name, description, duration_minutes, price_cents, image_url, active, created_at
		FROM services
		ORDER BY name
	`

	var services []GroomingService
	err := r.db.SelectContext(ctx, &services, query)
	if err != nil {
		return nil, err
	}

	return services, nil
}

func (r *repository) Update(ctx context.Context, id int, req UpdateServiceRequest) (*GroomingService, error) {
	query := `
		UPDATE services
		SET name = $2, description = $3, duration_minutes = $4, price_cents = $5, image_url = $6, active = $7
		WHERE id = $1
		RETURNING id, name, description, duration_minutes, price_cents, image_url, active, created_at
	`

	var svc GroomingService
	err := r.db.GetContext(ctx, &svc, query,
		id, req.Name, req.Description, req.DurationMinutes, req.PriceCents, req.ImageURL, req.Active)
	if err != nil {
		return nil, err
	}

	return &svc, nil
}

func (r *repository) Deactivate(ctx context.Context, id int) error {
	query := `UPDATE services SET active = false WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrServiceNotFound
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM services WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrServiceNotFound
	}

	return nil
}

func (r *repository) IsReferenced(ctx context.Context, id int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM appointments WHERE service_id = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, id)
	if err != nil {
		return false, err
	}

	return exists, nil
}
