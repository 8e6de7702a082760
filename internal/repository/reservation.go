package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/nagoyameshi/backend/internal/models"
	"github.com/nagoyameshi/backend/internal/types"
)

// ReservationRepository reads and writes reservations
type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// FindByUser pages through a user's reservations, newest first
func (r *ReservationRepository) FindByUser(ctx context.Context, userID uint, p types.Pageable) (types.Page[models.Reservation], error) {
	q := r.db.WithContext(ctx).Model(&models.Reservation{}).Where("user_id = ?", userID)
	return paginate[models.Reservation](q, p, "created_at DESC, id DESC", func(q *gorm.DB) *gorm.DB {
		return q.Preload("Restaurant")
	})
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := r.db.WithContext(ctx).Preload("Restaurant").First(&reservation, id).Error; err != nil {
		return nil, translate(err)
	}
	return &reservation, nil
}

func (r *ReservationRepository) Create(ctx context.Context, reservation *models.Reservation) error {
	return translate(r.db.WithContext(ctx).Omit("Restaurant", "User").Create(reservation).Error)
}

// DeleteByIDAndUser removes the reservation when it belongs to userID and
// reports how many rows went away
func (r *ReservationRepository) DeleteByIDAndUser(ctx context.Context, id, userID uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Reservation{})
	return res.RowsAffected, res.Error
}
