package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/nagoyameshi/backend/internal/models"
	"github.com/nagoyameshi/backend/internal/types"
)

// UserRepository reads and writes members and their verification tokens
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// ExistsByEmail reports whether another user already owns email
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string, exceptID uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Where("email = ? AND id <> ?", email, exceptID).Count(&n).Error
	return n > 0, err
}

// Search pages through members whose name or furigana contains keyword
func (r *UserRepository) Search(ctx context.Context, keyword string, p types.Pageable) (types.Page[models.User], error) {
	q := r.db.WithContext(ctx).Model(&models.User{})
	if keyword != "" {
		kw := like(keyword)
		q = q.Where("name LIKE ? OR furigana LIKE ?", kw, kw)
	}
	return paginate[models.User](q, p, "id ASC", nil)
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return translate(r.db.WithContext(ctx).Create(user).Error)
}

// Save writes every column of an existing user
func (r *UserRepository) Save(ctx context.Context, user *models.User) error {
	return translate(r.db.WithContext(ctx).Save(user).Error)
}

// CreateWithToken stores a new user and its verification token atomically
func (r *UserRepository) CreateWithToken(ctx context.Context, user *models.User, token string) error {
	return translate(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return tx.Create(&models.VerificationToken{UserID: user.ID, Token: token}).Error
	}))
}

// FindToken returns the verification token row for token
func (r *UserRepository) FindToken(ctx context.Context, token string) (*models.VerificationToken, error) {
	var vt models.VerificationToken
	if err := r.db.WithContext(ctx).Preload("User").Where("token = ?", token).First(&vt).Error; err != nil {
		return nil, translate(err)
	}
	return &vt, nil
}

// Enable marks the user as verified and consumes the token
func (r *UserRepository) Enable(ctx context.Context, vt *models.VerificationToken) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.User{}).Where("id = ?", vt.UserID).Update("enabled", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Delete(&models.VerificationToken{}, vt.ID).Error
	})
}

// IsNotFound reports whether err is ErrNotFound
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
