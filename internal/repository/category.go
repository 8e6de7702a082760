package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/nagoyameshi/backend/internal/models"
	"github.com/nagoyameshi/backend/internal/types"
)

// CategoryRepository reads and writes restaurant categories
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// FindAll pages through every category by id
func (r *CategoryRepository) FindAll(ctx context.Context, p types.Pageable) (types.Page[models.Category], error) {
	q := r.db.WithContext(ctx).Model(&models.Category{})
	return paginate[models.Category](q, p, "id ASC", nil)
}

// FindByNameLike pages through categories whose name contains keyword
func (r *CategoryRepository) FindByNameLike(ctx context.Context, keyword string, p types.Pageable) (types.Page[models.Category], error) {
	q := r.db.WithContext(ctx).Model(&models.Category{}).Where("category_name LIKE ?", like(keyword))
	return paginate[models.Category](q, p, "id ASC", nil)
}

// List returns every category for select boxes
func (r *CategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).Order("id ASC").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) FindByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, translate(err)
	}
	return &category, nil
}

func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	return translate(r.db.WithContext(ctx).Create(category).Error)
}

// UpdateName renames the category with the given id
func (r *CategoryRepository) UpdateName(ctx context.Context, id uint, name string) error {
	res := r.db.WithContext(ctx).Model(&models.Category{}).Where("id = ?", id).Update("category_name", name)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByID removes the category; a missing id is not an error.
// Restaurants of the category are detached first so databases without
// enforced foreign keys end up in the same state.
func (r *CategoryRepository) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Restaurant{}).Where("category_id = ?", id).Update("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Category{}, id).Error
	})
}
