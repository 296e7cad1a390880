package pet

import (
	"context"
	"errors"
)

var (
	ErrNotOwner           = errors.New("pet belongs to another user")
	ErrPetHasAppointments = errors.New("pet has upcoming appointments")
)

type Service interface {
	Create(ctx context.Context, ownerID int, req CreatePetRequest) (*Pet, error)
	Get(ctx context.Context, ownerID, petID int) (*Pet, error)
	List(ctx context.Context, ownerID int) ([]Pet, error)
	ListAll(ctx context.Context) ([]Pet, error)
	Update(ctx context.Context, ownerID, petID int, req UpdatePetRequest) (*Pet, error)
	Delete(ctx context.Context, ownerID, petID int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, ownerID int, req CreatePetRequest) (*Pet, error) {
	return s.repo.Create(ctx, ownerID, req)
}

func (s *service) Get(ctx context.Context, ownerID, petID int) (*Pet, error) {
	pet, err := s.repo.GetByID(ctx, petID)
	if err != nil {
		return nil, ErrPetNotFound
	}

	if pet.OwnerID != ownerID {
		return nil, ErrNotOwner
	}

	return pet, nil
}

func (s *service) List(ctx context.Context, ownerID int) ([]Pet, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *service) ListAll(ctx context.Context) ([]Pet, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) Update(ctx context.Context, ownerID, petID int, req UpdatePetRequest) (*Pet, error) {
	if _, err := s.Get(ctx, ownerID, petID); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, petID, req)
}

func (s *service) Delete(ctx context.Context, ownerID, petID int) error {
	if _, err := s.Get(ctx, ownerID, petID); err != nil {
		return err
	}

	busy, err := s.repo.HasLiveAppointments(ctx, petID)
	if err != nil {
		return err
	}
	if busy {
		return ErrPetHasAppointments
	}

	return s.repo.Delete(ctx, petID)
}
