package mocks

import (
	"context"
	"mime/multipart"

	"github.com/stretchr/testify/mock"

	"github.com/nagoyameshi/backend/internal/models"
	"github.com/nagoyameshi/backend/internal/types"
)

// MockRestaurantService is a mock implementation of the RestaurantService interface
type MockRestaurantService struct {
	mock.Mock
}

func (m *MockRestaurantService) Home(ctx context.Context) ([]models.Restaurant, []models.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Restaurant), args.Get(1).([]models.Category), args.Error(2)
}

func (m *MockRestaurantService) Search(ctx context.Context, s types.RestaurantSearch, p types.Pageable) (types.Page[models.Restaurant], error) {
	args := m.Called(ctx, s, p)
	return args.Get(0).(types.Page[models.Restaurant]), args.Error(1)
}

func (m *MockRestaurantService) AdminList(ctx context.Context, keyword string, p types.Pageable) (types.Page[models.Restaurant], error) {
	args := m.Called(ctx, keyword, p)
	return args.Get(0).(types.Page[models.Restaurant]), args.Error(1)
}

func (m *MockRestaurantService) Get(ctx context.Context, id uint) (*models.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Restaurant), args.Error(1)
}

func (m *MockRestaurantService) Detail(ctx context.Context, id, userID uint) (*types.RestaurantDetail, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.RestaurantDetail), args.Error(1)
}

func (m *MockRestaurantService) EditForm(ctx context.Context, id uint) (*types.RestaurantForm, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.RestaurantForm), args.Error(1)
}

func (m *MockRestaurantService) ValidateForm(ctx context.Context, form *types.RestaurantForm) types.FieldErrors {
	return m.Called(ctx, form).Get(0).(types.FieldErrors)
}

func (m *MockRestaurantService) Create(ctx context.Context, form types.RestaurantForm) (*models.Restaurant, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Restaurant), args.Error(1)
}

func (m *MockRestaurantService) Update(ctx context.Context, id uint, form types.RestaurantForm) error {
	return m.Called(ctx, id, form).Error(0)
}

func (m *MockRestaurantService) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

// MockImageService is a mock implementation of the ImageService interface
type MockImageService struct {
	mock.Mock
}

func (m *MockImageService) Upload(ctx context.Context, restaurantName string, fh *multipart.FileHeader) (string, error) {
	args := m.Called(ctx, restaurantName, fh)
	return args.String(0), args.Error(1)
}

func (m *MockImageService) Delete(ctx context.Context, key string) {
	m.Called(ctx, key)
}

func (m *MockImageService) URL(ctx context.Context, key string) string {
	return m.Called(ctx, key).String(0)
}
