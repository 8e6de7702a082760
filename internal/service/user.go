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

// UserPageSize is the admin member list page size
const UserPageSize = 10

type UserService struct {
	users *repository.UserRepository
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{users: repository.NewUserRepository(db)}
}

var _ IUserService = (*UserService)(nil)

func (s *UserService) Get(ctx context.Context, id uint) (*models.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) EditForm(ctx context.Context, id uint) (*types.UserEditForm, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	var form types.UserEditForm
	if err := copier.Copy(&form, user); err != nil {
		return nil, fmt.Errorf("copy user: %w", err)
	}
	return &form, nil
}

// Update saves the member's profile; the email must stay unique
func (s *UserService) Update(ctx context.Context, id uint, form types.UserEditForm) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(form.Email))
	taken, err := s.users.ExistsByEmail(ctx, email, id)
	if err != nil {
		return nil, fmt.Errorf("email lookup: %w", err)
	}
	if taken {
		return nil, ErrEmailTaken
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Name = strings.TrimSpace(form.Name)
	user.Furigana = strings.TrimSpace(form.Furigana)
	user.PostalCode = types.NormalizeDigits(form.PostalCode)
	user.Address = strings.TrimSpace(form.Address)
	user.PhoneNumber = types.NormalizeDigits(form.PhoneNumber)
	user.Email = email

	if err := s.users.Save(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

func (s *UserService) Search(ctx context.Context, keyword string, p types.Pageable) (types.Page[models.User], error) {
	return s.users.Search(ctx, strings.TrimSpace(keyword), p.Normalize(UserPageSize))
}
