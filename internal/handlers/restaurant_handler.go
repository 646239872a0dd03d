package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/leafload/leafload-api/internal/httperr"
	"github.com/leafload/leafload-api/internal/models"
	"github.com/leafload/leafload-api/internal/validators"
)

type RestaurantHandler struct {
	db *gorm.DB
}

func NewRestaurantHandler(db *gorm.DB) *RestaurantHandler {
	return &RestaurantHandler{db: db}
}

type restaurantCard struct {
	ID              uint     `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	ImageUrl        string   `json:"imageUrl"`
	Address         string   `json:"address"`
	RegionID        *uint    `json:"regionId"`
	RegionName      *string  `json:"regionName"`
	DeliveryTimeMin *int     `json:"deliveryTimeMin"`
	Rating          *float64 `json:"rating"`
}

// List returns every restaurant with its computed rating. Public.
func (h *RestaurantHandler) List(c *gin.Context) {
	var restaurants []models.Restaurant
	if err := h.db.Preload("Region").Order("name ASC").Find(&restaurants).Error; err != nil {
		httperr.Internal(c, "failed_to_list_restaurants", "Could not list restaurants.")
		return
	}

	cards := make([]restaurantCard, 0, len(restaurants))
	for i := range restaurants {
		cards = append(cards, h.toCard(&restaurants[i]))
	}

	c.JSON(http.StatusOK, cards)
}

// Details returns the public menu view: categories with their items plus
// an "other" bucket for items that have no category.
func (h *RestaurantHandler) Details(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid restaurant id.")
		return
	}

	var restaurant models.Restaurant
	err = h.db.
		Preload("Region").
		Preload("Categories", func(tx *gorm.DB) *gorm.DB { return tx.Order("categories.name ASC") }).
		Preload("Categories.MenuItems").
		First(&restaurant, uint(id)).Error
	if err != nil {
		httperr.NotFound(c, "restaurant_not_found", "Restaurant not found")
		return
	}

	var otherItems []models.MenuItem
	if err := h.db.
		Where("restaurant_id = ? AND category_id IS NULL", restaurant.ID).
		Order("title ASC").
		Find(&otherItems).Error; err != nil {
		httperr.Internal(c, "failed_to_get_restaurant", "Could not load restaurant.")
		return
	}

	card := h.toCard(&restaurant)

	c.JSON(http.StatusOK, gin.H{
		"id":              restaurant.ID,
		"name":            restaurant.Name,
		"description":     restaurant.Description,
		"imageUrl":        restaurant.ImageUrl,
		"address":         restaurant.Address,
		"regionId":        restaurant.RegionID,
		"regionName":      card.RegionName,
		"deliveryTimeMin": restaurant.DeliveryTimeMin,
		"rating":          card.Rating,
		"categories":      restaurant.Categories,
		"otherItems":      otherItems,
	})
}

// EditData returns the editable attributes of the caller's restaurant.
// Owner only.
func (h *RestaurantHandler) EditData(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid restaurant id.")
		return
	}

	restaurant, ok := requireRestaurantOwner(c, h.db, uint(id))
	if !ok {
		return
	}

	var regions []models.Region
	if err := h.db.Order("name ASC").Find(&regions).Error; err != nil {
		httperr.Internal(c, "failed_to_list_regions", "Could not list regions.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":              restaurant.ID,
		"name":            restaurant.Name,
		"description":     restaurant.Description,
		"imageUrl":        restaurant.ImageUrl,
		"address":         restaurant.Address,
		"regionId":        restaurant.RegionID,
		"deliveryTimeMin": restaurant.DeliveryTimeMin,
		"regions":         regions,
	})
}

// Update applies a partial update to the caller's restaurant. Owner only.
func (h *RestaurantHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid restaurant id.")
		return
	}

	restaurant, ok := requireRestaurantOwner(c, h.db, uint(id))
	if !ok {
		return
	}

	body, err := bindPatch(c, "name", "description", "imageUrl", "address", "regionId", "deliveryTimeMin")
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	changed := false

	if body.has("name") {
		var name string
		if err := body.field("name", &name); err != nil {
			httperr.BadRequest(c, "invalid_request", "Invalid name.")
			return
		}
		name = strings.TrimSpace(name)
		if name == "" {
			httperr.BadRequest(c, "empty_name", "Name cannot be empty")
			return
		}
		restaurant.Name = name
		changed = true
	}

	if body.has("description") {
		var description string
		if err := body.field("description", &description); err != nil {
			httperr.BadRequest(c, "invalid_request", "Invalid description.")
			return
		}
		restaurant.Description = strings.TrimSpace(description)
		changed = true
	}

	if body.has("imageUrl") {
		var imageUrl string
		if err := body.field("imageUrl", &imageUrl); err != nil {
			httperr.BadRequest(c, "invalid_request", "Invalid image url.")
			return
		}
		restaurant.ImageUrl = strings.TrimSpace(imageUrl)
		changed = true
	}

	if body.has("address") {
		var address string
		if err := body.field("address", &address); err != nil {
			httperr.BadRequest(c, "invalid_request", "Invalid address.")
			return
		}
		restaurant.Address = strings.TrimSpace(address)
		changed = true
	}

	if body.has("regionId") {
		if body.isNull("regionId") {
			restaurant.RegionID = nil
		} else {
			var regionID uint
			if err := body.field("regionId", &regionID); err != nil {
				httperr.BadRequest(c, "invalid_request", "Invalid region.")
				return
			}
			restaurant.RegionID = &regionID
		}
		changed = true
	}

	if body.has("deliveryTimeMin") {
		if body.isNull("deliveryTimeMin") {
			restaurant.DeliveryTimeMin = nil
		} else {
			var minutes int
			if err := body.field("deliveryTimeMin", &minutes); err != nil || minutes < 0 {
				httperr.BadRequest(c, "invalid_request", "Invalid delivery time.")
				return
			}
			restaurant.DeliveryTimeMin = &minutes
		}
		changed = true
	}

	if !changed {
		httperr.BadRequest(c, "empty_update", "No fields provided")
		return
	}

	if err := h.db.Save(restaurant).Error; err != nil {
		httperr.Internal(c, "failed_to_update_restaurant", "Could not update restaurant.")
		return
	}

	c.JSON(http.StatusOK, h.toCard(restaurant))
}

type rateRequest struct {
	Rating int `json:"rating" binding:"required"`
}

// Rate records a review. Any authenticated user may rate; reviews are
// append-only and the rating shown everywhere is their mean.
func (h *RestaurantHandler) Rate(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid restaurant id.")
		return
	}

	var req rateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if !validators.IsRatingValid(req.Rating) {
		httperr.BadRequest(c, "invalid_rating", "Rating must be between 1 and 5")
		return
	}

	var restaurant models.Restaurant
	if err := h.db.First(&restaurant, uint(id)).Error; err != nil {
		httperr.NotFound(c, "restaurant_not_found", "Restaurant not found")
		return
	}

	review := models.Review{
		RestaurantID: restaurant.ID,
		Rating:       req.Rating,
	}
	if err := h.db.Create(&review).Error; err != nil {
		httperr.Internal(c, "failed_to_rate", "Could not save rating.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"restaurantId": restaurant.ID,
		"rating":       restaurantRating(h.db, restaurant.ID),
	})
}

func (h *RestaurantHandler) toCard(r *models.Restaurant) restaurantCard {
	var regionName *string
	if r.Region != nil {
		regionName = &r.Region.Name
	}
	return restaurantCard{
		ID:              r.ID,
		Name:            r.Name,
		Description:     r.Description,
		ImageUrl:        r.ImageUrl,
		Address:         r.Address,
		RegionID:        r.RegionID,
		RegionName:      regionName,
		DeliveryTimeMin: r.DeliveryTimeMin,
		Rating:          restaurantRating(h.db, r.ID),
	}
}
