package testhelpers

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/nagoyameshi/backend/internal/models"
)

// TestPassword is the plain password of every fixture user
const TestPassword = "password123"

var seq atomic.Int64

// CreateTestUser stores an enabled general member
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	return createUser(t, db, models.RoleGeneral)
}

// CreateTestAdmin stores an enabled administrator
func CreateTestAdmin(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	return createUser(t, db, models.RoleAdmin)
}

func createUser(t *testing.T, db *gorm.DB, role string) *models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	n := seq.Add(1)
	user := &models.User{
		Name:        fmt.Sprintf("テスト 太郎%d", n),
		Furigana:    "テスト タロウ",
		Email:       fmt.Sprintf("user%d@example.com", n),
		Password:    string(hash),
		PostalCode:  "4600002",
		Address:     "愛知県名古屋市中区丸の内1-1-1",
		PhoneNumber: "052-000-0000",
		Role:        role,
		Enabled:     true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

// CreateTestCategory stores a category named name
func CreateTestCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()
	category := &models.Category{CategoryName: name}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create category: %v", err)
	}
	return category
}

// CreateTestRestaurant stores a restaurant open from 11:00 to 22:00
func CreateTestRestaurant(t *testing.T, db *gorm.DB, category *models.Category) *models.Restaurant {
	t.Helper()
	n := seq.Add(1)
	restaurant := &models.Restaurant{
		Name:            fmt.Sprintf("名古屋めし処%d", n),
		Description:     "味噌カツとひつまぶしの店",
		LowestPrice:     1000,
		HighestPrice:    3000,
		PostalCode:      "4600002",
		Address:         "愛知県名古屋市中区丸の内2-2-2",
		PhoneNumber:     "052-111-1111",
		OpeningTime:     "11:00",
		ClosingTime:     "22:00",
		RegularHoliday:  "月曜日",
		SeatingCapacity: 30,
	}
	if category != nil {
		restaurant.CategoryID = &category.ID
	}
	if err := db.Omit("Category").Create(restaurant).Error; err != nil {
		t.Fatalf("failed to create restaurant: %v", err)
	}
	return restaurant
}

// CreateTestReservation stores a reservation for tomorrow at 18:00
func CreateTestReservation(t *testing.T, db *gorm.DB, user *models.User, restaurant *models.Restaurant) *models.Reservation {
	t.Helper()
	reservation := &models.Reservation{
		RestaurantID:    restaurant.ID,
		UserID:          user.ID,
		ReservationDate: time.Now().AddDate(0, 0, 1).Truncate(24 * time.Hour),
		ReservationTime: "18:00",
		NumberOfPeople:  2,
	}
	if err := db.Omit("Restaurant", "User").Create(reservation).Error; err != nil {
		t.Fatalf("failed to create reservation: %v", err)
	}
	return reservation
}

// CreateTestReview stores a review by user
func CreateTestReview(t *testing.T, db *gorm.DB, user *models.User, restaurant *models.Restaurant, score int) *models.Review {
	t.Helper()
	review := &models.Review{
		RestaurantID: restaurant.ID,
		UserID:       user.ID,
		Score:        score,
		Content:      "おいしかったです。",
	}
	if err := db.Omit("Restaurant", "User").Create(review).Error; err != nil {
		t.Fatalf("failed to create review: %v", err)
	}
	return review
}
