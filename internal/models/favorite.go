package models

import "time"

// Favorite links a member to a restaurant they saved. The pair is unique.
type Favorite struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	RestaurantID uint        `gorm:"not null;uniqueIndex:idx_favorites_user_restaurant,priority:2" json:"restaurant_id"`
	Restaurant   *Restaurant `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE" json:"restaurant,omitempty"`
	UserID       uint        `gorm:"not null;uniqueIndex:idx_favorites_user_restaurant,priority:1" json:"user_id"`
	User         *User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt    time.Time   `json:"created_at"`
}

// TableName returns the table name for the Favorite model
func (Favorite) TableName() string {
	return "favorites"
}
