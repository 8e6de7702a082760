package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"

	"github.com/nagoyameshi/backend/internal/models"
	"github.com/nagoyameshi/backend/internal/repository"
	"github.com/nagoyameshi/backend/internal/types"
)

// Page sizes and list lengths of the restaurant pages
const (
	RestaurantPageSize      = 15
	AdminRestaurantPageSize = 10
	HomeRestaurantCount     = 6
	DetailReviewCount       = 6
)

type RestaurantService struct {
	restaurants *repository.RestaurantRepository
	categories  *repository.CategoryRepository
	reviews     *repository.ReviewRepository
	favorites   *repository.FavoriteRepository
	images      IImageService
}

func NewRestaurantService(db *gorm.DB, images IImageService) *RestaurantService {
	return &RestaurantService{
		restaurants: repository.NewRestaurantRepository(db),
		categories:  repository.NewCategoryRepository(db),
		reviews:     repository.NewReviewRepository(db),
		favorites:   repository.NewFavoriteRepository(db),
		images:      images,
	}
}

var _ IRestaurantService = (*RestaurantService)(nil)

// Home returns the newest restaurants and every category
func (s *RestaurantService) Home(ctx context.Context) ([]models.Restaurant, []models.Category, error) {
	latest, err := s.restaurants.Latest(ctx, HomeRestaurantCount)
	if err != nil {
		return nil, nil, fmt.Errorf("latest restaurants: %w", err)
	}
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("categories: %w", err)
	}
	return latest, categories, nil
}

func (s *RestaurantService) Search(ctx context.Context, search types.RestaurantSearch, p types.Pageable) (types.Page[models.Restaurant], error) {
	search.Keyword = strings.TrimSpace(search.Keyword)
	return s.restaurants.Search(ctx, search, p.Normalize(RestaurantPageSize))
}

func (s *RestaurantService) AdminList(ctx context.Context, keyword string, p types.Pageable) (types.Page[models.Restaurant], error) {
	return s.restaurants.FindByNameLike(ctx, strings.TrimSpace(keyword), p.Normalize(AdminRestaurantPageSize))
}

func (s *RestaurantService) Get(ctx context.Context, id uint) (*models.Restaurant, error) {
	return s.restaurants.FindByID(ctx, id)
}

// Detail loads the restaurant page for the viewing user; userID 0 is a guest
func (s *RestaurantService) Detail(ctx context.Context, id, userID uint) (*types.RestaurantDetail, error) {
	restaurant, err := s.restaurants.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	d := &types.RestaurantDetail{Restaurant: restaurant}
	if d.Reviews, err = s.reviews.Latest(ctx, id, DetailReviewCount); err != nil {
		return nil, fmt.Errorf("latest reviews: %w", err)
	}
	if d.ReviewCount, err = s.reviews.CountByRestaurant(ctx, id); err != nil {
		return nil, fmt.Errorf("count reviews: %w", err)
	}
	if d.AverageScore, err = s.reviews.AverageScore(ctx, id); err != nil {
		return nil, fmt.Errorf("average score: %w", err)
	}

	if userID == 0 {
		return d, nil
	}
	if d.HasReviewed, err = s.reviews.ExistsByRestaurantAndUser(ctx, id, userID); err != nil {
		return nil, fmt.Errorf("review lookup: %w", err)
	}
	fav, err := s.favorites.FindByRestaurantAndUser(ctx, id, userID)
	switch {
	case err == nil:
		d.Favorite = fav
	case !errors.Is(err, repository.ErrNotFound):
		return nil, fmt.Errorf("favorite lookup: %w", err)
	}
	return d, nil
}

// EditForm populates the admin edit form from the stored restaurant
func (s *RestaurantService) EditForm(ctx context.Context, id uint) (*types.RestaurantForm, error) {
	restaurant, err := s.restaurants.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	var form types.RestaurantForm
	if err := copier.Copy(&form, restaurant); err != nil {
		return nil, fmt.Errorf("copy restaurant: %w", err)
	}
	if restaurant.CategoryID != nil {
		form.CategoryID = *restaurant.CategoryID
	}
	return &form, nil
}

// ValidateForm applies the checks that span several fields or need the database
func (s *RestaurantService) ValidateForm(ctx context.Context, form *types.RestaurantForm) types.FieldErrors {
	errs := types.FieldErrors{}

	open, err := ParseClock(form.OpeningTime)
	if err != nil {
		errs.Add("openingTime", "開店時間を正しく入力してください。")
	}
	closing, err := ParseClock(form.ClosingTime)
	if err != nil {
		errs.Add("closingTime", "閉店時間を正しく入力してください。")
	}
	if !errs.Has("openingTime") && !errs.Has("closingTime") && open >= closing {
		errs.Add("closingTime", "閉店時間は開店時間より後に設定してください。")
	}

	if form.CategoryID != 0 {
		if _, err := s.categories.FindByID(ctx, form.CategoryID); err != nil {
			errs.Add("categoryId", "カテゴリが存在しません。")
		}
	}
	return errs
}

func (s *RestaurantService) Create(ctx context.Context, form types.RestaurantForm) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := copier.Copy(&restaurant, &form); err != nil {
		return nil, fmt.Errorf("copy form: %w", err)
	}
	restaurant.ID = 0
	restaurant.CategoryID = categoryRef(form.CategoryID)
	restaurant.PostalCode = types.NormalizeDigits(form.PostalCode)
	restaurant.PhoneNumber = types.NormalizeDigits(form.PhoneNumber)
	if err := normalizeHours(&restaurant); err != nil {
		return nil, err
	}

	key, err := s.images.Upload(ctx, form.Name, form.ImageFile)
	if err != nil {
		return nil, err
	}
	restaurant.ImageName = key

	if err := s.restaurants.Create(ctx, &restaurant); err != nil {
		s.images.Delete(ctx, key)
		return nil, fmt.Errorf("create restaurant: %w", err)
	}
	return &restaurant, nil
}

// Update overwrites the restaurant with form; a new image replaces the old one
func (s *RestaurantService) Update(ctx context.Context, id uint, form types.RestaurantForm) error {
	restaurant, err := s.restaurants.FindByID(ctx, id)
	if err != nil {
		return err
	}

	form.ID = id
	if err := copier.Copy(restaurant, &form); err != nil {
		return fmt.Errorf("copy form: %w", err)
	}
	restaurant.CategoryID = categoryRef(form.CategoryID)
	restaurant.Category = nil
	restaurant.PostalCode = types.NormalizeDigits(form.PostalCode)
	restaurant.PhoneNumber = types.NormalizeDigits(form.PhoneNumber)
	if err := normalizeHours(restaurant); err != nil {
		return err
	}

	key, err := s.images.Upload(ctx, form.Name, form.ImageFile)
	if err != nil {
		return err
	}
	old := restaurant.ImageName
	if key != "" {
		restaurant.ImageName = key
	}

	if err := s.restaurants.Save(ctx, restaurant); err != nil {
		s.images.Delete(ctx, key)
		return fmt.Errorf("update restaurant: %w", err)
	}
	if key != "" {
		s.images.Delete(ctx, old)
	}
	return nil
}

// normalizeHours stores opening and closing times as "HH:MM"
func normalizeHours(r *models.Restaurant) error {
	open, err := NormalizeClock(r.OpeningTime)
	if err != nil {
		return fmt.Errorf("opening time: %w", err)
	}
	closing, err := NormalizeClock(r.ClosingTime)
	if err != nil {
		return fmt.Errorf("closing time: %w", err)
	}
	r.OpeningTime, r.ClosingTime = open, closing
	return nil
}

// Delete removes the restaurant and its image; a missing id succeeds
func (s *RestaurantService) Delete(ctx context.Context, id uint) error {
	restaurant, err := s.restaurants.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := s.restaurants.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete restaurant: %w", err)
	}
	s.images.Delete(ctx, restaurant.ImageName)
	return nil
}

func categoryRef(id uint) *uint {
	if id == 0 {
		return nil
	}
	return &id
}
