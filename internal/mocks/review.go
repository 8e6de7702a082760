package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/nagoyameshi/backend/internal/models"
	"github.com/nagoyameshi/backend/internal/types"
)

// MockReviewService is a mock implementation of the ReviewService interface
type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) ListByRestaurant(ctx context.Context, restaurantID uint, p types.Pageable) (types.Page[models.Review], error) {
	args := m.Called(ctx, restaurantID, p)
	return args.Get(0).(types.Page[models.Review]), args.Error(1)
}

func (m *MockReviewService) GetOwn(ctx context.Context, restaurantID, id, userID uint) (*models.Review, error) {
	args := m.Called(ctx, restaurantID, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewService) HasReviewed(ctx context.Context, restaurantID, userID uint) (bool, error) {
	args := m.Called(ctx, restaurantID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockReviewService) Create(ctx context.Context, restaurantID, userID uint, form types.ReviewForm) (*models.Review, error) {
	args := m.Called(ctx, restaurantID, userID, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewService) Update(ctx context.Context, restaurantID, id, userID uint, form types.ReviewForm) error {
	return m.Called(ctx, restaurantID, id, userID, form).Error(0)
}

func (m *MockReviewService) Delete(ctx context.Context, restaurantID, id, userID uint) error {
	return m.Called(ctx, restaurantID, id, userID).Error(0)
}

// MockFavoriteService is a mock implementation of the FavoriteService interface
type MockFavoriteService struct {
	mock.Mock
}

func (m *MockFavoriteService) Add(ctx context.Context, restaurantID, userID uint) error {
	return m.Called(ctx, restaurantID, userID).Error(0)
}

func (m *MockFavoriteService) Remove(ctx context.Context, id, userID uint) error {
	return m.Called(ctx, id, userID).Error(0)
}

func (m *MockFavoriteService) ListByUser(ctx context.Context, userID uint, p types.Pageable) (types.Page[models.Favorite], error) {
	args := m.Called(ctx, userID, p)
	return args.Get(0).(types.Page[models.Favorite]), args.Error(1)
}
