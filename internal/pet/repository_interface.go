package pet

import "context"

type Repository interface {
	Create(ctx context.Context, ownerID int, p CreatePetRequest) (*Pet, error)
	GetByID(ctx context.Context, id int) (*Pet, error)
	ListByOwner(ctx context.Context, ownerID int) ([]Pet, error)
	ListAll(ctx context.Context) ([]Pet, error)
	Update(ctx context.Context, id int, p UpdatePetRequest) (*Pet, error)
	Delete(ctx context.Context, id int) error
	HasLiveAppointments(ctx context.Context, id int) (bool, error)
}
