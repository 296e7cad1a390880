package catalog

import "context"

type Repository interface {
	Create(ctx context.Context, req CreateServiceRequest) (*GroomingService, error)
	GetByID(ctx context.Context, id int) (*GroomingService, error)
	ListActive(ctx context.Context) ([]GroomingService, error)
	ListAll(ctx context.Context) ([]GroomingService, error)
	Update(ctx context.Context, id int, req UpdateServiceRequest) (*GroomingService, error)
	Deactivate(ctx context.Context, id int) error
	Delete(ctx context.Context, id int) error
	IsReferenced(ctx context.Context, id int) (bool, error)
}
