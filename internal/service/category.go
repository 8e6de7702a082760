package service

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/nagoyameshi/backend/internal/models"
	"github.com/nagoyameshi/backend/internal/repository"
	"github.com/nagoyameshi/backend/internal/types"
)

// CategoryPageSize is the admin category list page size
const CategoryPageSize = 10

type CategoryService struct {
	categories *repository.CategoryRepository
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{categories: repository.NewCategoryRepository(db)}
}

var _ ICategoryService = (*CategoryService)(nil)

// List returns one id-ordered page, filtered by keyword when it is set
func (s *CategoryService) List(ctx context.Context, keyword string, p types.Pageable) (types.Page[models.Category], error) {
	p = p.Normalize(CategoryPageSize)
	if keyword = strings.TrimSpace(keyword); keyword != "" {
		return s.categories.FindByNameLike(ctx, keyword, p)
	}
	return s.categories.FindAll(ctx, p)
}

func (s *CategoryService) All(ctx context.Context) ([]models.Category, error) {
	return s.categories.List(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id uint) (*models.Category, error) {
	return s.categories.FindByID(ctx, id)
}

func (s *CategoryService) Create(ctx context.Context, form types.CategoryRegisterForm) error {
	return s.categories.Create(ctx, &models.Category{CategoryName: form.CategoryName})
}

func (s *CategoryService) Update(ctx context.Context, form types.CategoryEditForm) error {
	return s.categories.UpdateName(ctx, form.ID, form.CategoryName)
}

// Delete removes the category; deleting a missing id succeeds
func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	return s.categories.DeleteByID(ctx, id)
}
