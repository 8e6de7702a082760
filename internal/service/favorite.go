package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/nagoyameshi/backend/internal/models"
	"github.com/nagoyameshi/backend/internal/repository"
	"github.com/nagoyameshi/backend/internal/types"
)

// FavoritePageSize is the favorite list page size
const FavoritePageSize = 10

type FavoriteService struct {
	favorites   *repository.FavoriteRepository
	restaurants *repository.RestaurantRepository
}

func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{
		favorites:   repository.NewFavoriteRepository(db),
		restaurants: repository.NewRestaurantRepository(db),
	}
}

var _ IFavoriteService = (*FavoriteService)(nil)

// Add favorites the restaurant; an existing favorite is kept as is
func (s *FavoriteService) Add(ctx context.Context, restaurantID, userID uint) error {
	if _, err := s.restaurants.FindByID(ctx, restaurantID); err != nil {
		return err
	}
	_, err := s.favorites.FindByRestaurantAndUser(ctx, restaurantID, userID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	err = s.favorites.Create(ctx, &models.Favorite{RestaurantID: restaurantID, UserID: userID})
	if errors.Is(err, repository.ErrDuplicate) {
		// lost a race with a concurrent request for the same pair
		return nil
	}
	return err
}

// Remove deletes the user's favorite; unknown ids succeed
func (s *FavoriteService) Remove(ctx context.Context, id, userID uint) error {
	return s.favorites.DeleteByIDAndUser(ctx, id, userID)
}

func (s *FavoriteService) ListByUser(ctx context.Context, userID uint, p types.Pageable) (types.Page[models.Favorite], error) {
	return s.favorites.FindByUser(ctx, userID, p.Normalize(FavoritePageSize))
}
