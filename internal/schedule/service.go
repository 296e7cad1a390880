package schedule

import (
	"context"
	"errors"

	"groomslot/internal/auth"
	"groomslot/internal/availability"
)

var (
	ErrInvalidTimes = errors.New("start_time must be before end_time")
	ErrNotOwner     = errors.New("working block belongs to another groomer")
)

type Service interface {
	Create(ctx context.Context, actorID int, actorRole string, groomerID int, req CreateBlockRequest) (*WorkingBlock, error)
	ListForGroomer(ctx context.Context, groomerID int) ([]WorkingBlock, error)
	ListActiveForGroomer(ctx context.Context, groomerID int) ([]WorkingBlock, error)
	Update(ctx context.Context, actorID int, actorRole string, blockID int, req UpdateBlockRequest) (*WorkingBlock, error)
	Delete(ctx context.Context, actorID int, actorRole string, blockID int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func validateTimes(start, end string) error {
	startMin, err := availability.ParseClock(start)
	if err != nil {
		return err
	}
	endMin, err := availability.ParseClock(end)
	if err != nil {
		return err
	}
	if startMin >= endMin {
		return ErrInvalidTimes
	}
	return nil
}

// canManage allows a groomer to manage their own blocks and an admin
// to manage anyone's.
func canManage(actorID int, actorRole string, groomerID int) bool {
	return actorRole == auth.RoleAdmin || actorID == groomerID
}

func (s *service) Create(ctx context.Context, actorID int, actorRole string, groomerID int, req CreateBlockRequest) (*WorkingBlock, error) {
	if !canManage(actorID, actorRole, groomerID) {
		return nil, ErrNotOwner
	}

	if err := validateTimes(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, groomerID, req)
}

func (s *service) ListForGroomer(ctx context.Context, groomerID int) ([]WorkingBlock, error) {
	return s.repo.ListByGroomer(ctx, groomerID)
}

// ListActiveForGroomer backs the public schedule view, deactivated
// blocks stay visible only to the owner.
func (s *service) ListActiveForGroomer(ctx context.Context, groomerID int) ([]WorkingBlock, error) {
	return s.repo.ListActiveByGroomer(ctx, groomerID)
}

func (s *service) Update(ctx context.Context, actorID int, actorRole string, blockID int, req UpdateBlockRequest) (*WorkingBlock, error) {
	block, err := s.repo.GetByID(ctx, blockID)
	if err != nil {
		return nil, ErrBlockNotFound
	}

	if !canManage(actorID, actorRole, block.GroomerID) {
		return nil, ErrNotOwner
	}

	if err := validateTimes(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, blockID, req)
}

func (s *service) Delete(ctx context.Context, actorID int, actorRole string, blockID int) error {
	block, err := s.repo.GetByID(ctx, blockID)
	if err != nil {
		return ErrBlockNotFound
	}

	if !canManage(actorID, actorRole, block.GroomerID) {
		return ErrNotOwner
	}

	return s.repo.Delete(ctx, blockID)
}
