package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/nagoyameshi/backend/internal/models"
	"github.com/nagoyameshi/backend/internal/types"
)

// RestaurantRepository reads and writes restaurants
type RestaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{db: db}
}

func withCategory(q *gorm.DB) *gorm.DB {
	return q.Select("restaurants.*").Preload("Category")
}

// Search pages through restaurants for the public list page
func (r *RestaurantRepository) Search(ctx context.Context, s types.RestaurantSearch, p types.Pageable) (types.Page[models.Restaurant], error) {
	q := r.db.WithContext(ctx).Model(&models.Restaurant{}).
		Joins("LEFT JOIN categories ON categories.id = restaurants.category_id")

	if s.Keyword != "" {
		kw := like(s.Keyword)
		q = q.Where("restaurants.name LIKE ? OR restaurants.address LIKE ? OR categories.category_name LIKE ?", kw, kw, kw)
	}
	if s.CategoryID != 0 {
		q = q.Where("restaurants.category_id = ?", s.CategoryID)
	}
	if s.Price > 0 {
		q = q.Where("restaurants.lowest_price <= ?", s.Price)
	}

	order := "restaurants.created_at DESC, restaurants.id DESC"
	if s.Order == types.OrderLowestPriceAsc {
		order = "restaurants.lowest_price ASC, restaurants.id ASC"
	}
	return paginate[models.Restaurant](q, p, order, withCategory)
}

// FindByNameLike pages through restaurants for the admin list by id
func (r *RestaurantRepository) FindByNameLike(ctx context.Context, keyword string, p types.Pageable) (types.Page[models.Restaurant], error) {
	q := r.db.WithContext(ctx).Model(&models.Restaurant{})
	if keyword != "" {
		q = q.Where("name LIKE ?", like(keyword))
	}
	return paginate[models.Restaurant](q, p, "id ASC", func(q *gorm.DB) *gorm.DB { return q.Preload("Category") })
}

// Latest returns the n most recently created restaurants
func (r *RestaurantRepository) Latest(ctx context.Context, n int) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	err := r.db.WithContext(ctx).Preload("Category").
		Order("created_at DESC, id DESC").Limit(n).Find(&restaurants).Error
	return restaurants, err
}

func (r *RestaurantRepository) FindByID(ctx context.Context, id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := r.db.WithContext(ctx).Preload("Category").First(&restaurant, id).Error; err != nil {
		return nil, translate(err)
	}
	return &restaurant, nil
}

func (r *RestaurantRepository) Create(ctx context.Context, restaurant *models.Restaurant) error {
	return translate(r.db.WithContext(ctx).Omit("Category").Create(restaurant).Error)
}

// Save writes every column of an existing restaurant
func (r *RestaurantRepository) Save(ctx context.Context, restaurant *models.Restaurant) error {
	return translate(r.db.WithContext(ctx).Omit("Category").Save(restaurant).Error)
}

// DeleteByID removes the restaurant and its dependent rows; a missing id is not an error
func (r *RestaurantRepository) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, dep := range []interface{}{&models.Favorite{}, &models.Review{}, &models.Reservation{}} {
			if err := tx.Where("restaurant_id = ?", id).Delete(dep).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Restaurant{}, id).Error
	})
}
