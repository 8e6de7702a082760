package service

import (
	"context"
	"mime/multipart"

	"github.com/nagoyameshi/backend/internal/models"
	"github.com/nagoyameshi/backend/internal/types"
)

// ICategoryService defines the admin category operations
type ICategoryService interface {
	List(ctx context.Context, keyword string, p types.Pageable) (types.Page[models.Category], error)
	All(ctx context.Context) ([]models.Category, error)
	Get(ctx context.Context, id uint) (*models.Category, error)
	Create(ctx context.Context, form types.CategoryRegisterForm) error
	Update(ctx context.Context, form types.CategoryEditForm) error
	Delete(ctx context.Context, id uint) error
}

// IRestaurantService defines the public and admin restaurant operations
type IRestaurantService interface {
	Home(ctx context.Context) ([]models.Restaurant, []models.Category, error)
	Search(ctx context.Context, s types.RestaurantSearch, p types.Pageable) (types.Page[models.Restaurant], error)
	AdminList(ctx context.Context, keyword string, p types.Pageable) (types.Page[models.Restaurant], error)
	Get(ctx context.Context, id uint) (*models.Restaurant, error)
	Detail(ctx context.Context, id, userID uint) (*types.RestaurantDetail, error)
	EditForm(ctx context.Context, id uint) (*types.RestaurantForm, error)
	ValidateForm(ctx context.Context, form *types.RestaurantForm) types.FieldErrors
	Create(ctx context.Context, form types.RestaurantForm) (*models.Restaurant, error)
	Update(ctx context.Context, id uint, form types.RestaurantForm) error
	Delete(ctx context.Context, id uint) error
}

// IReservationService defines the reservation wizard operations
type IReservationService interface {
	ListByUser(ctx context.Context, userID uint, p types.Pageable) (types.Page[models.Reservation], error)
	ValidateInput(restaurant *models.Restaurant, form types.ReservationInputForm) types.FieldErrors
	Create(ctx context.Context, userID uint, form types.ReservationRegisterForm) (*models.Reservation, error)
	Cancel(ctx context.Context, id, userID uint) error
	QRCode(ctx context.Context, id, userID uint) ([]byte, error)
}

// IReviewService defines the review operations
type IReviewService interface {
	ListByRestaurant(ctx context.Context, restaurantID uint, p types.Pageable) (types.Page[models.Review], error)
	GetOwn(ctx context.Context, restaurantID, id, userID uint) (*models.Review, error)
	HasReviewed(ctx context.Context, restaurantID, userID uint) (bool, error)
	Create(ctx context.Context, restaurantID, userID uint, form types.ReviewForm) (*models.Review, error)
	Update(ctx context.Context, restaurantID, id, userID uint, form types.ReviewForm) error
	Delete(ctx context.Context, restaurantID, id, userID uint) error
}

// IFavoriteService defines the favorite operations
type IFavoriteService interface {
	Add(ctx context.Context, restaurantID, userID uint) error
	Remove(ctx context.Context, id, userID uint) error
	ListByUser(ctx context.Context, userID uint, p types.Pageable) (types.Page[models.Favorite], error)
}

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Signup(ctx context.Context, form types.SignupForm) (*models.User, error)
	Verify(ctx context.Context, token string) error
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	GenerateToken(user *models.User) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IUserService defines the member profile and admin member list operations
type IUserService interface {
	Get(ctx context.Context, id uint) (*models.User, error)
	EditForm(ctx context.Context, id uint) (*types.UserEditForm, error)
	Update(ctx context.Context, id uint, form types.UserEditForm) (*models.User, error)
	Search(ctx context.Context, keyword string, p types.Pageable) (types.Page[models.User], error)
}

// IEmailService defines the interface for email operations
type IEmailService interface {
	SendVerificationEmail(user *models.User, token string) error
	SendReservationConfirmation(user *models.User, restaurant *models.Restaurant, reservation *models.Reservation, qr []byte) error
}

// IImageService defines restaurant image storage
type IImageService interface {
	Upload(ctx context.Context, restaurantName string, fh *multipart.FileHeader) (string, error)
	Delete(ctx context.Context, key string)
	URL(ctx context.Context, key string) string
}
