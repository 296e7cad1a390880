package pet

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, ownerID int, p CreatePetRequest) (*Pet, error) {
	args := m.Called(ctx, ownerID, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Pet), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int) (*Pet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Pet), args.Error(1)
}

func (m *MockRepository) ListByOwner(ctx context.Context, ownerID int) ([]Pet, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Pet), args.Error(1)
}

func (m *MockRepository) ListAll(ctx context.Context) ([]Pet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Pet), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id int, p UpdatePetRequest) (*Pet, error) {
	args := m.Called(ctx, id, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Pet), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) HasLiveAppointments(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func TestService_Get(t *testing.T) {
	t.Run("owner can read own pet", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("GetByID", mock.Anything, 10).Return(&Pet{ID: 10, OwnerID: 1, Name: "Rocky"}, nil)

		service := NewService(mockRepo)
		pet, err := service.Get(context.Background(), 1, 10)

		assert.NoError(t, err)
		assert.Equal(t, "Rocky", pet.Name)
	})

	t.Run("other user is rejected", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("GetByID", mock.Anything, 10).Return(&Pet{ID: 10, OwnerID: 1}, nil)

		service := NewService(mockRepo)
		pet, err := service.Get(context.Background(), 2, 10)

		assert.Equal(t, ErrNotOwner, err)
		assert.Nil(t, pet)
	})

	t.Run("missing pet", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("GetByID", mock.Anything, 99).Return(nil, errors.New("sql: no rows in result set"))

		service := NewService(mockRepo)
		pet, err := service.Get(context.Background(), 1, 99)

		assert.Equal(t, ErrPetNotFound, err)
		assert.Nil(t, pet)
	})
}

func TestService_Update(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("GetByID", mock.Anything, 10).Return(&Pet{ID: 10, OwnerID: 1, Name: "Rocky"}, nil)
	mockRepo.On("Update", mock.Anything, 10, mock.Anything).Return(&Pet{ID: 10, OwnerID: 1, Name: "Rocco"}, nil)

	service := NewService(mockRepo)
	pet, err := service.Update(context.Background(), 1, 10, UpdatePetRequest{Name: "Rocco", Species: "dog"})

	assert.NoError(t, err)
	assert.Equal(t, "Rocco", pet.Name)
	mockRepo.AssertExpectations(t)
}

func TestService_Delete(t *testing.T) {
	t.Run("free pet is deleted", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("GetByID", mock.Anything, 10).Return(&Pet{ID: 10, OwnerID: 1}, nil)
		mockRepo.On("HasLiveAppointments", mock.Anything, 10).Return(false, nil)
		mockRepo.On("Delete", mock.Anything, 10).Return(nil)

		service := NewService(mockRepo)
		err := service.Delete(context.Background(), 1, 10)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("pet with live appointments is kept", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("GetByID", mock.Anything, 10).Return(&Pet{ID: 10, OwnerID: 1}, nil)
		mockRepo.On("HasLiveAppointments", mock.Anything, 10).Return(true, nil)

		service := NewService(mockRepo)
		err := service.Delete(context.Background(), 1, 10)

		assert.Equal(t, ErrPetHasAppointments, err)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, 10)
	})
}
