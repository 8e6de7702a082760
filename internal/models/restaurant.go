package models

import "time"

type Restaurant struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"size:100;not null" json:"name"`
	ImageName       string    `gorm:"size:255" json:"image_name"`
	Description     string    `gorm:"type:text;not null" json:"description"`
	LowestPrice     int       `gorm:"not null" json:"lowest_price"`
	HighestPrice    int       `gorm:"not null" json:"highest_price"`
	PostalCode      string    `gorm:"size:10;not null" json:"postal_code"`
	Address         string    `gorm:"size:255;not null" json:"address"`
	PhoneNumber     string    `gorm:"size:20;not null" json:"phone_number"`
	OpeningTime     string    `gorm:"size:5;not null" json:"opening_time"` // HH:MM
	ClosingTime     string    `gorm:"size:5;not null" json:"closing_time"` // HH:MM
	RegularHoliday  string    `gorm:"size:50" json:"regular_holiday"`
	SeatingCapacity int       `gorm:"not null;default:0" json:"seating_capacity"`
	CategoryID      *uint     `gorm:"index" json:"category_id"`
	Category        *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName returns the table name for the Restaurant model
func (Restaurant) TableName() string {
	return "restaurants"
}

// CategoryName returns the category label or an empty string when uncategorised
func (r *Restaurant) CategoryName() string {
	if r.Category == nil {
		return ""
	}
	return r.Category.CategoryName
}
