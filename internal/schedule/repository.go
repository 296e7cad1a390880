package schedule

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrBlockNotFound = errors.New("working block not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, groomerID int, req CreateBlockRequest) (*WorkingBlock, error) {
	query := `
		INSERT INTO working_blocks (groomer_id, weekday, start_time, end_time, active)
		VALUES ($1, $2, $3, $4, true)
		RETURNING id, groomer_id, weekday, start_time, end_time, active, created_at
	`

	var block WorkingBlock
	err := r.db.GetContext(ctx, &block, query, groomerID, req.Weekday, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	return &block, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*WorkingBlock, error) {
	query := `
		SELECT id, groomer_id, weekday, start_time, end_time, active, created_at
		FROM working_blocks
		WHERE id = $1
	`

	var block WorkingBlock
	err := r.db.GetContext(ctx, &block, query, id)
	if err != nil {
		return nil, err
	}

	return &block, nil
}

func (r *repository) ListByGroomer(ctx context.Context, groomerID int) ([]WorkingBlock, error) {
	query := `
		SELECT id, groomer_id, weekday, start_time, end_time, active, created_at
		FROM working_blocks
		WHERE groomer_id = $1
		ORDER BY weekday, start_time
	`

	var blocks []WorkingBlock
	err := r.db.SelectContext(ctx, &blocks, query, groomerID)
	if err != nil {
		return nil, err
	}

	return blocks, nil
}

func (r *repository) ListActiveByGroomer(ctx context.Context, groomerID int) ([]WorkingBlock, error) {
	query := `
		SELECT id, groomer_id, weekday, start_time, end_time, active, created_at
		FROM working_blocks
		WHERE groomer_id = $1 AND active = true
		ORDER BY weekday, start_time
	`

	var blocks []WorkingBlock
	err := r.db.SelectContext(ctx, &blocks, query, groomerID)
	if err != nil {
		return nil, err
	}

	return blocks, nil
}

func (r *repository) ListActiveForDay(ctx context.Context, groomerID, weekday int) ([]WorkingBlock, error) {
	query := `
		SELECT id, groomer_id, weekday, start_time, end_time, active, created_at
		FROM working_blocks
		WHERE groomer_id = $1 AND weekday = $2 AND active = true
		ORDER BY start_time
	`

	var blocks []WorkingBlock
	err := r.db.SelectContext(ctx, &blocks, query, groomerID, weekday)
	if err != nil {
		return nil, err
	}

	return blocks, nil
}

func (r *repository) Update(ctx context.Context, id int, req UpdateBlockRequest) (*WorkingBlock, error) {
	query := `
		UPDATE working_blocks
		SET weekday = $2, start_time = $3, end_time = $4, active = $5
		WHERE id = $1
		RETURNING id, groomer_id, weekday, start_time, end_time, active, created_at
	`

	var block WorkingBlock
	err := r.db.GetContext(ctx, &block, query, id, req.Weekday, req.StartTime, req.EndTime, req.Active)
	if err != nil {
		return nil, err
	}

	return &block, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM working_blocks WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrBlockNotFound
	}

	return nil
}
