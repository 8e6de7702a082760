package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/skip2/go-qrcode"
	"gorm.io/gorm"

	"github.com/nagoyameshi/backend/internal/events"
	"github.com/nagoyameshi/backend/internal/models"
	"github.com/nagoyameshi/backend/internal/repository"
	"github.com/nagoyameshi/backend/internal/types"
)

// ReservationPageSize is the member reservation list page size
const ReservationPageSize = 10

const dateLayout = "2006-01-02"

type ReservationService struct {
	reservations *repository.ReservationRepository
	restaurants  *repository.RestaurantRepository
	users        *repository.UserRepository
	publisher    events.Publisher
	email        IEmailService
}

func NewReservationService(db *gorm.DB, publisher events.Publisher, email IEmailService) *ReservationService {
	return &ReservationService{
		reservations: repository.NewReservationRepository(db),
		restaurants:  repository.NewRestaurantRepository(db),
		users:        repository.NewUserRepository(db),
		publisher:    publisher,
		email:        email,
	}
}

var _ IReservationService = (*ReservationService)(nil)

// ListByUser returns the user's reservations, newest first
func (s *ReservationService) ListByUser(ctx context.Context, userID uint, p types.Pageable) (types.Page[models.Reservation], error) {
	return s.reservations.FindByUser(ctx, userID, p.Normalize(ReservationPageSize))
}

// ValidateInput applies the business checks of the input step. A missing
// time or one outside the opening window flags the date, time and party
// size fields together.
func (s *ReservationService) ValidateInput(restaurant *models.Restaurant, form types.ReservationInputForm) types.FieldErrors {
	errs := types.FieldErrors{}
	if form.ReservationTime == "" || !WithinBusinessHours(form.ReservationTime, restaurant.OpeningTime, restaurant.ClosingTime) {
		errs.Add("reservationDate", types.MsgReservationDateRequired)
		errs.Add("reservationTime", types.MsgReservationTimeRange)
		errs.Add("numberOfPeople", types.MsgNumberOfPeopleMin)
	}
	if restaurant.SeatingCapacity > 0 && form.NumberOfPeople > restaurant.SeatingCapacity {
		errs.Add("numberOfPeople", fmt.Sprintf("来店人数は%d人以下に設定してください。", restaurant.SeatingCapacity))
	}
	return errs
}

// Create stores the confirmed reservation for userID, then publishes the
// created event and mails the confirmation
func (s *ReservationService) Create(ctx context.Context, userID uint, form types.ReservationRegisterForm) (*models.Reservation, error) {
	restaurant, err := s.restaurants.FindByID(ctx, form.RestaurantID)
	if err != nil {
		return nil, err
	}
	if !WithinBusinessHours(form.ReservationTime, restaurant.OpeningTime, restaurant.ClosingTime) {
		return nil, ErrOutsideBusinessHours
	}
	if restaurant.SeatingCapacity > 0 && form.NumberOfPeople > restaurant.SeatingCapacity {
		return nil, ErrOverCapacity
	}
	date, err := time.Parse(dateLayout, form.ReservationDate)
	if err != nil {
		return nil, fmt.Errorf("parse reservation date: %w", err)
	}
	clock, err := NormalizeClock(form.ReservationTime)
	if err != nil {
		return nil, fmt.Errorf("parse reservation time: %w", err)
	}

	reservation := &models.Reservation{
		RestaurantID:    restaurant.ID,
		UserID:          userID,
		ReservationDate: date,
		ReservationTime: clock,
		NumberOfPeople:  form.NumberOfPeople,
	}
	if err := s.reservations.Create(ctx, reservation); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}
	reservation.Restaurant = restaurant

	s.publish(ctx, events.ReservationCreated, reservation)
	s.sendConfirmation(ctx, reservation)
	return reservation, nil
}

// Cancel deletes the user's reservation. Unknown ids and reservations of
// other users are left alone without error.
func (s *ReservationService) Cancel(ctx context.Context, id, userID uint) error {
	reservation, err := s.reservations.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	n, err := s.reservations.DeleteByIDAndUser(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("delete reservation: %w", err)
	}
	if n > 0 {
		s.publish(ctx, events.ReservationCancelled, reservation)
	}
	return nil
}

// QRCode renders the reservation summary as a PNG for its owner
func (s *ReservationService) QRCode(ctx context.Context, id, userID uint) ([]byte, error) {
	reservation, err := s.reservations.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reservation.UserID != userID {
		return nil, ErrForbidden
	}
	return encodeQR(reservation)
}

func encodeQR(r *models.Reservation) ([]byte, error) {
	name := ""
	if r.Restaurant != nil {
		name = r.Restaurant.Name
	}
	content := fmt.Sprintf("NAGOYAMESHI\n予約番号: %d\n店舗: %s\n日時: %s %s\n人数: %d名",
		r.ID, name, r.ReservationDate.Format(dateLayout), r.ReservationTime, r.NumberOfPeople)
	png, err := qrcode.Encode(content, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}
	return png, nil
}

func (s *ReservationService) publish(ctx context.Context, queue string, r *models.Reservation) {
	ev := events.ReservationEvent{
		ReservationID:   r.ID,
		RestaurantID:    r.RestaurantID,
		UserID:          r.UserID,
		ReservationDate: r.ReservationDate.Format(dateLayout),
		ReservationTime: r.ReservationTime,
		NumberOfPeople:  r.NumberOfPeople,
		OccurredAt:      time.Now().UTC(),
	}
	if r.Restaurant != nil {
		ev.RestaurantName = r.Restaurant.Name
	}
	if err := s.publisher.Publish(ctx, queue, ev); err != nil {
		log.Printf("Failed to publish %s for reservation %d: %v", queue, r.ID, err)
	}
}

func (s *ReservationService) sendConfirmation(ctx context.Context, r *models.Reservation) {
	user, err := s.users.FindByID(ctx, r.UserID)
	if err != nil {
		log.Printf("Failed to load user %d for reservation mail: %v", r.UserID, err)
		return
	}
	qr, err := encodeQR(r)
	if err != nil {
		log.Printf("Failed to render qr code for reservation %d: %v", r.ID, err)
	}
	if err := s.email.SendReservationConfirmation(user, r.Restaurant, r, qr); err != nil {
		log.Printf("Failed to send reservation mail to %s: %v", user.Email, err)
	}
}
