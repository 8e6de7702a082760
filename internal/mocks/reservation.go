package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/nagoyameshi/backend/internal/models"
	"github.com/nagoyameshi/backend/internal/types"
)

// MockReservationService is a mock implementation of the ReservationService interface
type MockReservationService struct {
	mock.Mock
}

func (m *MockReservationService) ListByUser(ctx context.Context, userID uint, p types.Pageable) (types.Page[models.Reservation], error) {
	args := m.Called(ctx, userID, p)
	return args.Get(0).(types.Page[models.Reservation]), args.Error(1)
}

func (m *MockReservationService) ValidateInput(restaurant *models.Restaurant, form types.ReservationInputForm) types.FieldErrors {
	args := m.Called(restaurant, form)
	return args.Get(0).(types.FieldErrors)
}

func (m *MockReservationService) Create(ctx context.Context, userID uint, form types.ReservationRegisterForm) (*models.Reservation, error) {
	args := m.Called(ctx, userID, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Reservation), args.Error(1)
}

func (m *MockReservationService) Cancel(ctx context.Context, id, userID uint) error {
	return m.Called(ctx, id, userID).Error(0)
}

func (m *MockReservationService) QRCode(ctx context.Context, id, userID uint) ([]byte, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockEmailService records outgoing mails
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendVerificationEmail(user *models.User, token string) error {
	return m.Called(user, token).Error(0)
}

func (m *MockEmailService) SendReservationConfirmation(user *models.User, restaurant *models.Restaurant, reservation *models.Reservation, qr []byte) error {
	return m.Called(user, restaurant, reservation, qr).Error(0)
}

// MockPublisher records published events
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, queue string, event interface{}) error {
	return m.Called(ctx, queue, event).Error(0)
}

func (m *MockPublisher) Close() error {
	return m.Called().Error(0)
}
