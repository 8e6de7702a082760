package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/nagoyameshi/backend/internal/models"
	"github.com/nagoyameshi/backend/internal/repository"
	"github.com/nagoyameshi/backend/internal/types"
)

// ReviewPageSize is the review list page size
const ReviewPageSize = 5

type ReviewService struct {
	reviews     *repository.ReviewRepository
	restaurants *repository.RestaurantRepository
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{
		reviews:     repository.NewReviewRepository(db),
		restaurants: repository.NewRestaurantRepository(db),
	}
}

var _ IReviewService = (*ReviewService)(nil)

func (s *ReviewService) ListByRestaurant(ctx context.Context, restaurantID uint, p types.Pageable) (types.Page[models.Review], error) {
	return s.reviews.FindByRestaurant(ctx, restaurantID, p.Normalize(ReviewPageSize))
}

// GetOwn returns a review of the restaurant written by userID
func (s *ReviewService) GetOwn(ctx context.Context, restaurantID, id, userID uint) (*models.Review, error) {
	review, err := s.reviews.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if review.RestaurantID != restaurantID {
		return nil, ErrNotFound
	}
	if review.UserID != userID {
		return nil, ErrForbidden
	}
	return review, nil
}

func (s *ReviewService) HasReviewed(ctx context.Context, restaurantID, userID uint) (bool, error) {
	return s.reviews.ExistsByRestaurantAndUser(ctx, restaurantID, userID)
}

// Create posts the user's first review of the restaurant
func (s *ReviewService) Create(ctx context.Context, restaurantID, userID uint, form types.ReviewForm) (*models.Review, error) {
	if _, err := s.restaurants.FindByID(ctx, restaurantID); err != nil {
		return nil, err
	}
	exists, err := s.reviews.ExistsByRestaurantAndUser(ctx, restaurantID, userID)
	if err != nil {
		return nil, fmt.Errorf("review lookup: %w", err)
	}
	if exists {
		return nil, ErrAlreadyReviewed
	}

	review := &models.Review{
		RestaurantID: restaurantID,
		UserID:       userID,
		Score:        form.Score,
		Content:      form.Content,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	return review, nil
}

func (s *ReviewService) Update(ctx context.Context, restaurantID, id, userID uint, form types.ReviewForm) error {
	if _, err := s.GetOwn(ctx, restaurantID, id, userID); err != nil {
		return err
	}
	return s.reviews.UpdateContent(ctx, id, form.Score, form.Content)
}

// Delete removes the user's review; a missing review succeeds
func (s *ReviewService) Delete(ctx context.Context, restaurantID, id, userID uint) error {
	_, err := s.GetOwn(ctx, restaurantID, id, userID)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return s.reviews.DeleteByID(ctx, id)
}
