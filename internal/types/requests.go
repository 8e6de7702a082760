package types

import "mime/multipart"

// CategoryRegisterForm is bound from the admin category register form
type CategoryRegisterForm struct {
	CategoryName string `form:"categoryName" binding:"required,max=50"`
}

// CategoryEditForm is bound from the admin category edit form
type CategoryEditForm struct {
	ID           uint   `form:"id"`
	CategoryName string `form:"categoryName" binding:"required,max=50"`
}

// RestaurantForm is shared by the admin restaurant register and edit forms
type RestaurantForm struct {
	ID              uint                  `form:"id"`
	Name            string                `form:"name" binding:"required,max=100"`
	ImageFile       *multipart.FileHeader `form:"imageFile" copier:"-"`
	Description     string                `form:"description" binding:"required,max=1000"`
	LowestPrice     int                   `form:"lowestPrice" binding:"required,min=1"`
	HighestPrice    int                   `form:"highestPrice" binding:"required,min=1,gtefield=LowestPrice"`
	PostalCode      string                `form:"postalCode" binding:"required,jppostal"`
	Address         string                `form:"address" binding:"required,max=255"`
	PhoneNumber     string                `form:"phoneNumber" binding:"required,max=20"`
	OpeningTime     string                `form:"openingTime" binding:"required,datetime=15:04"`
	ClosingTime     string                `form:"closingTime" binding:"required,datetime=15:04"`
	RegularHoliday  string                `form:"regularHoliday" binding:"max=50"`
	SeatingCapacity int                   `form:"seatingCapacity" binding:"required,min=1"`
	CategoryID      uint                  `form:"categoryId" copier:"-"`
}

// RestaurantSearch holds the public restaurant list filters
type RestaurantSearch struct {
	Keyword    string `form:"keyword"`
	CategoryID uint   `form:"categoryId"`
	Price      int    `form:"price"`
	Order      string `form:"order"`
}

// Restaurant list orderings
const (
	OrderCreatedAtDesc  = "createdAtDesc"
	OrderLowestPriceAsc = "lowestPriceAsc"
)

// ReservationInputForm is the first step of the reservation wizard.
// The time is optional at binding level; its presence and the business
// hours are checked by the reservation service.
type ReservationInputForm struct {
	ReservationDate string `form:"reservationDate" binding:"required,datetime=2006-01-02"`
	ReservationTime string `form:"reservationTime" binding:"omitempty,datetime=15:04"`
	NumberOfPeople  int    `form:"numberOfPeople" binding:"min=1"`
}

// ReservationRegisterForm is posted from the confirm page
type ReservationRegisterForm struct {
	RestaurantID    uint   `form:"restaurantId" binding:"required"`
	UserID          uint   `form:"userId"`
	ReservationDate string `form:"reservationDate" binding:"required,datetime=2006-01-02"`
	ReservationTime string `form:"reservationTime" binding:"required,datetime=15:04"`
	NumberOfPeople  int    `form:"numberOfPeople" binding:"required,min=1"`
}

// ReviewForm is shared by the review register and edit forms
type ReviewForm struct {
	Score   int    `form:"score" binding:"required,min=1,max=5"`
	Content string `form:"content" binding:"required,max=300"`
}

// SignupForm is bound from the member signup page
type SignupForm struct {
	Name                 string `form:"name" binding:"required,max=50"`
	Furigana             string `form:"furigana" binding:"required,max=50"`
	PostalCode           string `form:"postalCode" binding:"required,jppostal"`
	Address              string `form:"address" binding:"required,max=255"`
	PhoneNumber          string `form:"phoneNumber" binding:"required,max=20"`
	Email                string `form:"email" binding:"required,email,max=255"`
	Password             string `form:"password" binding:"required,min=8,max=72"`
	PasswordConfirmation string `form:"passwordConfirmation" binding:"required,eqfield=Password"`
}

// LoginForm is bound from the login page
type LoginForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

// UserEditForm is bound from the member profile edit page
type UserEditForm struct {
	ID          uint   `form:"id"`
	Name        string `form:"name" binding:"required,max=50"`
	Furigana    string `form:"furigana" binding:"required,max=50"`
	PostalCode  string `form:"postalCode" binding:"required,jppostal"`
	Address     string `form:"address" binding:"required,max=255"`
	PhoneNumber string `form:"phoneNumber" binding:"required,max=20"`
	Email       string `form:"email" binding:"required,email,max=255"`
}
