package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/nagoyameshi/backend/internal/models"
	"github.com/nagoyameshi/backend/internal/types"
)

// FavoriteRepository reads and writes favorite restaurants of members
type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// FindByRestaurantAndUser returns the favorite row of the pair or ErrNotFound
func (r *FavoriteRepository) FindByRestaurantAndUser(ctx context.Context, restaurantID, userID uint) (*models.Favorite, error) {
	var favorite models.Favorite
	err := r.db.WithContext(ctx).Where("restaurant_id = ? AND user_id = ?", restaurantID, userID).First(&favorite).Error
	if err != nil {
		return nil, translate(err)
	}
	return &favorite, nil
}

// FindByUser pages through a user's favorites, newest first
func (r *FavoriteRepository) FindByUser(ctx context.Context, userID uint, p types.Pageable) (types.Page[models.Favorite], error) {
	q := r.db.WithContext(ctx).Model(&models.Favorite{}).Where("user_id = ?", userID)
	return paginate[models.Favorite](q, p, "created_at DESC, id DESC", func(q *gorm.DB) *gorm.DB {
		return q.Preload("Restaurant").Preload("Restaurant.Category")
	})
}

// Create inserts the favorite; a second row for the same pair yields ErrDuplicate
func (r *FavoriteRepository) Create(ctx context.Context, favorite *models.Favorite) error {
	return translate(r.db.WithContext(ctx).Omit("Restaurant", "User").Create(favorite).Error)
}

// DeleteByIDAndUser removes the favorite when it belongs to userID
func (r *FavoriteRepository) DeleteByIDAndUser(ctx context.Context, id, userID uint) error {
	return r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Favorite{}).Error
}
