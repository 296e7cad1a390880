package schedule

import "context"

type Repository interface {
	Create(ctx context.Context, groomerID int, req CreateBlockRequest) (*WorkingBlock, error)
	GetByID(ctx context.Context, id int) (*WorkingBlock, error)
	ListByGroomer(ctx context.Context, groomerID int) ([]WorkingBlock, error)
	ListActiveByGroomer(ctx context.Context, groomerID int) ([]WorkingBlock, error)
	ListActiveForDay(ctx context.Context, groomerID, weekday int) ([]WorkingBlock, error)
	Update(ctx context.Context, id int, req UpdateBlockRequest) (*WorkingBlock, error)
	Delete(ctx context.Context, id int) error
}
