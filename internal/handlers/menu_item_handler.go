package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/leafload/leafload-api/internal/httperr"
	"github.com/leafload/leafload-api/internal/models"
)

type MenuItemHandler struct {
	db *gorm.DB
}

func NewMenuItemHandler(db *gorm.DB) *MenuItemHandler {
	return &MenuItemHandler{db: db}
}

type createMenuItemRequest struct {
	RestaurantID uint    `json:"restaurantId" binding:"required"`
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description"`
	ImageUrl     string  `json:"imageUrl"`
	CategoryID   *uint   `json:"categoryId"`
	Price        float64 `json:"price" binding:"required"`
}

// Create adds a menu item to the caller's restaurant. Owner only.
func (h *MenuItemHandler) Create(c *gin.Context) {
	var req createMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	restaurant, ok := requireRestaurantOwner(c, h.db, req.RestaurantID)
	if !ok {
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		httperr.BadRequest(c, "empty_title", "Title cannot be empty")
		return
	}
	if req.Price <= 0 {
		httperr.BadRequest(c, "invalid_price", "Price must be greater than zero")
		return
	}

	if req.CategoryID != nil {
		if !h.categoryBelongsTo(*req.CategoryID, restaurant.ID) {
			httperr.BadRequest(c, "category_not_found", "Category does not belong to this restaurant")
			return
		}
	}

	item := models.MenuItem{
		Title:        title,
		Description:  strings.TrimSpace(req.Description),
		ImageUrl:     strings.TrimSpace(req.ImageUrl),
		Price:        req.Price,
		CategoryID:   req.CategoryID,
		RestaurantID: restaurant.ID,
	}
	if err := h.db.Create(&item).Error; err != nil {
		httperr.Internal(c, "failed_to_create_menu_item", "Could not create menu item.")
		return
	}

	c.JSON(http.StatusCreated, item)
}

// EditData returns the item plus the restaurant's categories so the
// edit form can offer them. Owner only.
func (h *MenuItemHandler) EditData(c *gin.Context) {
	item, ok := h.ownedMenuItem(c)
	if !ok {
		return
	}

	var categories []models.Category
	if err := h.db.
		Where("restaurant_id = ?", item.RestaurantID).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		httperr.Internal(c, "failed_to_get_menu_item", "Could not load menu item.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":          item.ID,
		"title":       item.Title,
		"description": item.Description,
		"imageUrl":    item.ImageUrl,
		"price":       item.Price,
		"categoryId":  item.CategoryID,
		"categories":  categories,
	})
}

// Update applies a partial update. A null categoryId detaches the item
// into the "Other" bucket.
func (h *MenuItemHandler) Update(c *gin.Context) {
	item, ok := h.ownedMenuItem(c)
	if !ok {
		return
	}

	body, err := bindPatch(c, "title", "description", "imageUrl", "price", "categoryId")
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	changed := false

	if body.has("title") {
		var title string
		if err := body.field("title", &title); err != nil {
			httperr.BadRequest(c, "invalid_request", "Invalid title.")
			return
		}
		title = strings.TrimSpace(title)
		if title == "" {
			httperr.BadRequest(c, "empty_title", "Title cannot be empty")
			return
		}
		item.Title = title
		changed = true
	}

	if body.has("description") {
		var description string
		if err := body.field("description", &description); err != nil {
			httperr.BadRequest(c, "invalid_request", "Invalid description.")
			return
		}
		item.Description = strings.TrimSpace(description)
		changed = true
	}

	if body.has("imageUrl") {
		var imageUrl string
		if err := body.field("imageUrl", &imageUrl); err != nil {
			httperr.BadRequest(c, "invalid_request", "Invalid image url.")
			return
		}
		item.ImageUrl = strings.TrimSpace(imageUrl)
		changed = true
	}

	if body.has("price") {
		var price float64
		if err := body.field("price", &price); err != nil {
			httperr.BadRequest(c, "invalid_request", "Invalid price.")
			return
		}
		if price <= 0 {
			httperr.BadRequest(c, "invalid_price", "Price must be greater than zero")
			return
		}
		item.Price = price
		changed = true
	}

	if body.has("categoryId") {
		if body.isNull("categoryId") {
			item.CategoryID = nil
		} else {
			var categoryID uint
			if err := body.field("categoryId", &categoryID); err != nil {
				httperr.BadRequest(c, "invalid_request", "Invalid category.")
				return
			}
			if !h.categoryBelongsTo(categoryID, item.RestaurantID) {
				httperr.BadRequest(c, "category_not_found", "Category does not belong to this restaurant")
				return
			}
			item.CategoryID = &categoryID
		}
		changed = true
	}

	if !changed {
		httperr.BadRequest(c, "empty_update", "No fields provided")
		return
	}

	if err := h.db.Save(item).Error; err != nil {
		httperr.Internal(c, "failed_to_update_menu_item", "Could not update menu item.")
		return
	}

	c.JSON(http.StatusOK, item)
}

// Delete removes a menu item. Past orders keep their frozen snapshot of
// it, so history is unaffected.
func (h *MenuItemHandler) Delete(c *gin.Context) {
	item, ok := h.ownedMenuItem(c)
	if !ok {
		return
	}

	if err := h.db.Delete(&models.MenuItem{}, item.ID).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_menu_item", "Could not delete menu item.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": item.ID})
}

func (h *MenuItemHandler) ownedMenuItem(c *gin.Context) (*models.MenuItem, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid menu item id.")
		return nil, false
	}

	var item models.MenuItem
	if err := h.db.First(&item, uint(id)).Error; err != nil {
		httperr.NotFound(c, "menu_item_not_found", "Menu item not found")
		return nil, false
	}

	if _, ok := requireRestaurantOwner(c, h.db, item.RestaurantID); !ok {
		return nil, false
	}

	return &item, true
}

func (h *MenuItemHandler) categoryBelongsTo(categoryID, restaurantID uint) bool {
	var count int64
	h.db.Model(&models.Category{}).
		Where("id = ? AND restaurant_id = ?", categoryID, restaurantID).
		Count(&count)
	return count > 0
}
