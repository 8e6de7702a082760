package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/nagoyameshi/backend/internal/models"
	"github.com/nagoyameshi/backend/internal/repository"
	"github.com/nagoyameshi/backend/internal/types"
)

// VerificationTTL bounds how long a signup link stays valid
const VerificationTTL = 24 * time.Hour

const tokenIssuer = "nagoyameshi"

type AuthService struct {
	users      *repository.UserRepository
	email      IEmailService
	jwtSecret  string
	sessionTTL time.Duration
	cost       int
}

func NewAuthService(db *gorm.DB, email IEmailService, jwtSecret string, sessionTTL time.Duration) *AuthService {
	return &AuthService{
		users:      repository.NewUserRepository(db),
		email:      email,
		jwtSecret:  jwtSecret,
		sessionTTL: sessionTTL,
		cost:       bcrypt.DefaultCost,
	}
}

var _ IAuthService = (*AuthService)(nil)

// Signup stores a disabled member and mails the verification link
func (s *AuthService) Signup(ctx context.Context, form types.SignupForm) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(form.Email))
	taken, err := s.users.ExistsByEmail(ctx, email, 0)
	if err != nil {
		return nil, fmt.Errorf("email lookup: %w", err)
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Name:        strings.TrimSpace(form.Name),
		Furigana:    strings.TrimSpace(form.Furigana),
		Email:       email,
		Password:    string(hash),
		PostalCode:  types.NormalizeDigits(form.PostalCode),
		Address:     strings.TrimSpace(form.Address),
		PhoneNumber: types.NormalizeDigits(form.PhoneNumber),
		Role:        models.RoleGeneral,
	}
	token := uuid.NewString()
	if err := s.users.CreateWithToken(ctx, user, token); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	if err := s.email.SendVerificationEmail(user, token); err != nil {
		log.Printf("Failed to send verification email to %s: %v", user.Email, err)
	}
	return user, nil
}

// Verify enables the account owning token and consumes the token
func (s *AuthService) Verify(ctx context.Context, token string) error {
	vt, err := s.users.FindToken(ctx, token)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrInvalidToken
	}
	if err != nil {
		return err
	}
	if time.Since(vt.CreatedAt) > VerificationTTL {
		return ErrInvalidToken
	}
	return s.users.Enable(ctx, vt)
}

// Login checks the credentials and returns a signed session token
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, repository.ErrNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if !user.Enabled {
		return "", nil, ErrAccountDisabled
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// GenerateToken signs a session token for user
func (s *AuthService) GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
		},
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *AuthService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	claims := &types.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.UserID == 0 {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
