package handlers

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/leafload/leafload-api/internal/httperr"
	"github.com/leafload/leafload-api/internal/middleware"
	"github.com/leafload/leafload-api/internal/models"
)

// requireRestaurantOwner loads the restaurant and verifies that the
// authenticated caller owns it. Every restaurant-mutating endpoint goes
// through here; the check is never left to the client. On failure the
// response has already been written and ok is false.
func requireRestaurantOwner(c *gin.Context, db *gorm.DB, restaurantID uint) (*models.Restaurant, bool) {
	callerID := c.MustGet(middleware.ContextUserID).(uint)

	var restaurant models.Restaurant
	if err := db.First(&restaurant, restaurantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "restaurant_not_found", "Restaurant not found.")
		} else {
			httperr.Internal(c, "failed_to_get_restaurant", "Could not load restaurant.")
		}
		return nil, false
	}

	if restaurant.OwnerID != callerID {
		httperr.Forbidden(c, "forbidden", "You do not own this restaurant.")
		return nil, false
	}

	return &restaurant, true
}

// restaurantRating is the derived rating: mean over all reviews, nil when
// the restaurant has none. Never stored or cached.
func restaurantRating(db *gorm.DB, restaurantID uint) *float64 {
	var avg sql.NullFloat64
	if err := db.Model(&models.Review{}).
		Where("restaurant_id = ?", restaurantID).
		Select("AVG(rating)").
		Scan(&avg).Error; err != nil {
		return nil
	}

	if !avg.Valid {
		return nil
	}
	return &avg.Float64
}
