package models

import "time"

// Reservation is a table booking made by a member
type Reservation struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	RestaurantID    uint        `gorm:"not null;index" json:"restaurant_id"`
	Restaurant      *Restaurant `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE" json:"restaurant,omitempty"`
	UserID          uint        `gorm:"not null;index" json:"user_id"`
	User            *User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	ReservationDate time.Time   `gorm:"type:date;not null" json:"reservation_date"`
	ReservationTime string      `gorm:"size:5;not null" json:"reservation_time"` // HH:MM
	NumberOfPeople  int         `gorm:"not null" json:"number_of_people"`
	CreatedAt       time.Time   `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// TableName returns the table name for the Reservation model
func (Reservation) TableName() string {
	return "reservations"
}
