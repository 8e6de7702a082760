package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/nagoyameshi/backend/internal/models"
	"github.com/nagoyameshi/backend/internal/types"
)

// ReviewRepository reads and writes restaurant reviews
type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// FindByRestaurant pages through a restaurant's reviews, newest first
func (r *ReviewRepository) FindByRestaurant(ctx context.Context, restaurantID uint, p types.Pageable) (types.Page[models.Review], error) {
	q := r.db.WithContext(ctx).Model(&models.Review{}).Where("restaurant_id = ?", restaurantID)
	return paginate[models.Review](q, p, "created_at DESC, id DESC", func(q *gorm.DB) *gorm.DB {
		return q.Preload("User")
	})
}

// Latest returns the n newest reviews of a restaurant
func (r *ReviewRepository) Latest(ctx context.Context, restaurantID uint, n int) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.WithContext(ctx).Preload("User").Where("restaurant_id = ?", restaurantID).
		Order("created_at DESC, id DESC").Limit(n).Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) CountByRestaurant(ctx context.Context, restaurantID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Review{}).Where("restaurant_id = ?", restaurantID).Count(&n).Error
	return n, err
}

// AverageScore returns the mean score of a restaurant, 0 without reviews
func (r *ReviewRepository) AverageScore(ctx context.Context, restaurantID uint) (float64, error) {
	var avg float64
	err := r.db.WithContext(ctx).Model(&models.Review{}).
		Select("COALESCE(AVG(score), 0)").Where("restaurant_id = ?", restaurantID).Scan(&avg).Error
	return avg, err
}

// ExistsByRestaurantAndUser reports whether the user already reviewed the restaurant
func (r *ReviewRepository) ExistsByRestaurantAndUser(ctx context.Context, restaurantID, userID uint) (bool, error) {
	var review models.Review
	err := r.db.WithContext(ctx).Select("id").
		Where("restaurant_id = ? AND user_id = ?", restaurantID, userID).First(&review).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (r *ReviewRepository) FindByID(ctx context.Context, id uint) (*models.Review, error) {
	var review models.Review
	if err := r.db.WithContext(ctx).Preload("User").First(&review, id).Error; err != nil {
		return nil, translate(err)
	}
	return &review, nil
}

func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	return translate(r.db.WithContext(ctx).Omit("Restaurant", "User").Create(review).Error)
}

// UpdateContent changes the score and text of a review
func (r *ReviewRepository) UpdateContent(ctx context.Context, id uint, score int, content string) error {
	return r.db.WithContext(ctx).Model(&models.Review{}).Where("id = ?", id).
		Updates(map[string]interface{}{"score": score, "content": content}).Error
}

// DeleteByID removes the review; a missing id is not an error
func (r *ReviewRepository) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Review{}, id).Error
}
