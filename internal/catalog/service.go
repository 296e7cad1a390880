package catalog

import "context"

type Service interface {
	ListActive(ctx context.Context) ([]GroomingService, error)
	ListAll(ctx context.Context) ([]GroomingService, error)
	Get(ctx context.Context, id int) (*GroomingService, error)
	Create(ctx context.Context, req CreateServiceRequest) (*GroomingService, error)
	Update(ctx context.Context, id int, req UpdateServiceRequest) (*GroomingService, error)
	// Remove deletes a service, or deactivates it when appointments
	// reference it. Returns true when the service was deactivated.
	Remove(ctx context.Context, id int) (bool, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListActive(ctx context.Context) ([]GroomingService, error) {
	return s.repo.ListActive(ctx)
}

func (s *service) ListAll(ctx context.Context) ([]GroomingService, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) Get(ctx context.Context, id int) (*GroomingService, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, req CreateServiceRequest) (*GroomingService, error) {
	return s.repo.Create(ctx, req)
}

func (s *service) Update(ctx context.Context, id int, req UpdateServiceRequest) (*GroomingService, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, ErrServiceNotFound
	}

	return s.repo.Update(ctx, id, req)
}

func (s *service) Remove(ctx context.Context, id int) (bool, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return false, ErrServiceNotFound
	}

	referenced, err := s.repo.IsReferenced(ctx, id)
	if err != nil {
		return false, err
	}

	if referenced {
		return true, s.repo.Deactivate(ctx, id)
	}

	return false, s.repo.Delete(ctx, id)
}
