package types

import "github.com/nagoyameshi/backend/internal/models"

// RestaurantDetail is everything the restaurant page shows
type RestaurantDetail struct {
	Restaurant   *models.Restaurant
	Reviews      []models.Review
	ReviewCount  int64
	AverageScore float64
	HasReviewed  bool
	Favorite     *models.Favorite
}

// IsFavorite reports whether the viewing user favorited the restaurant
func (d *RestaurantDetail) IsFavorite() bool {
	return d.Favorite != nil
}
