package service

import (
	"errors"

	"github.com/nagoyameshi/backend/internal/repository"
)

var (
	// ErrNotFound is returned when the requested entity does not exist
	ErrNotFound = repository.ErrNotFound

	ErrAlreadyReviewed      = errors.New("restaurant already reviewed by user")
	ErrOutsideBusinessHours = errors.New("reservation time outside business hours")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrAccountDisabled      = errors.New("account not verified")
	ErrForbidden            = errors.New("forbidden")
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidToken         = errors.New("invalid or expired token")
	ErrOverCapacity         = errors.New("party larger than seating capacity")
	ErrUnsupportedImage     = errors.New("unsupported image type")
)
