package models

import "time"

type Review struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	RestaurantID uint        `gorm:"not null;index:idx_reviews_restaurant_created,priority:1" json:"restaurant_id"`
	Restaurant   *Restaurant `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE" json:"-"`
	UserID       uint        `gorm:"not null;index" json:"user_id"`
	User         *User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Score        int         `gorm:"not null;check:score >= 1 AND score <= 5" json:"score"`
	Content      string      `gorm:"type:text;not null" json:"content"`
	CreatedAt    time.Time   `gorm:"index:idx_reviews_restaurant_created,priority:2" json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// TableName returns the table name for the Review model
func (Review) TableName() string {
	return "reviews"
}
