package models

import "time"

// Roles
const (
	RoleGeneral = "ROLE_GENERAL"
	RoleAdmin   = "ROLE_ADMIN"
)

type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:50;not null" json:"name"`
	Furigana    string    `gorm:"size:50;not null" json:"furigana"`
	Email       string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password    string    `gorm:"size:255;not null" json:"-"`
	PostalCode  string    `gorm:"size:10" json:"postal_code"`
	Address     string    `gorm:"size:255" json:"address"`
	PhoneNumber string    `gorm:"size:20" json:"phone_number"`
	Role        string    `gorm:"size:20;not null;default:'ROLE_GENERAL'" json:"role"`
	Enabled     bool      `gorm:"not null;default:false" json:"enabled"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds the administrator role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// VerificationToken confirms a signup email address
type VerificationToken struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Token     string    `gorm:"size:36;not null;uniqueIndex" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the table name for the VerificationToken model
func (VerificationToken) TableName() string {
	return "verification_tokens"
}

// All returns every model in migration order
func All() []interface{} {
	return []interface{}{
		&User{},
		&VerificationToken{},
		&Category{},
		&Restaurant{},
		&Reservation{},
		&Review{},
		&Favorite{},
	}
}
