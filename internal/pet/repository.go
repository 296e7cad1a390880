package pet

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrPetNotFound = errors.New("pet not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, ownerID int, p CreatePetRequest) (*Pet, error) {
	query := `
		INSERT INTO pets (owner_id, name, species, breed, age_years, weight_kg, photo_url, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, owner_id, name, species, breed, age_years, weight_kg, photo_url, notes, created_at
	`

	var pet Pet
	err := r.db.GetContext(ctx, &pet, query,
		ownerID, p.Name, p.Species, p.Breed, p.AgeYears, p.WeightKg, p.PhotoURL, p.Notes)
	if err != nil {
		return nil, err
	}

	return &pet, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Pet, error) {
	query := `
		SELECT id, owner_id, name, species, breed, age_years, weight_kg, photo_url, notes, created_at
		FROM pets
		WHERE id = $1
	`

	var pet Pet
	err := r.db.GetContext(ctx, &pet, query, id)
	if err != nil {
		return nil, err
	}

	return &pet, nil
}

func (r *repository) ListByOwner(ctx context.Context, ownerID int) ([]Pet, error) {
	query := `
		SELECT id, owner_id, name, species, breed, age_years, weight_kg, photo_url, notes, created_at
		FROM pets
		WHERE owner_id = $1
		ORDER BY name
	`

	var pets []Pet
	err := r.db.SelectContext(ctx, &pets, query, ownerID)
	if err != nil {
		return nil, err
	}

	return pets, nil
}

func (r *repository) ListAll(ctx context.Context) ([]Pet, error) {
	query := `
		SELECT id, owner_id, name, species, breed, age_years, weight_kg, photo_url, notes, created_at
		FROM pets
		ORDER BY owner_id, name
	`

	var pets []Pet
	err := r.db.SelectContext(ctx, &pets, query)
	if err != nil {
		return nil, err
	}

	return pets, nil
}

func (r *repository) Update(ctx context.Context, id int, p UpdatePetRequest) (*Pet, error) {
	query := `
		UPDATE pets
		SET name = $2, species = $3, breed = $4, age_years = $5, weight_kg = $6, photo_url = $7, notes = $8
		WHERE id = $1
		RETURNING id, owner_id, name, species, breed, age_years, weight_kg, photo_url, notes, created_at
	`

	var pet Pet
	err := r.db.GetContext(ctx, &pet, query,
		id, p.Name, p.Species, p.Breed, p.AgeYears, p.WeightKg, p.PhotoURL, p.Notes)
	if err != nil {
		return nil, err
	}

	return &pet, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM pets WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrPetNotFound
	}

	return nil
}

func (r *repository) HasLiveAppointments(ctx context.Context, id int) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM appointments
			WHERE pet_id = $1 AND status IN ('pending', 'confirmed')
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, id)
	if err != nil {
		return false, err
	}

	return exists, nil
}
