package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/nagoyameshi/backend/internal/models"
	"github.com/nagoyameshi/backend/internal/types"
)

// MockCategoryService is a mock implementation of the CategoryService interface
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) List(ctx context.Context, keyword string, p types.Pageable) (types.Page[models.Category], error) {
	args := m.Called(ctx, keyword, p)
	return args.Get(0).(types.Page[models.Category]), args.Error(1)
}

func (m *MockCategoryService) All(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryService) Get(ctx context.Context, id uint) (*models.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryService) Create(ctx context.Context, form types.CategoryRegisterForm) error {
	return m.Called(ctx, form).Error(0)
}

func (m *MockCategoryService) Update(ctx context.Context, form types.CategoryEditForm) error {
	return m.Called(ctx, form).Error(0)
}

func (m *MockCategoryService) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}
