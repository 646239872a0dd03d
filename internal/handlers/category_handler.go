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

type CategoryHandler struct {
	db *gorm.DB
}

func NewCategoryHandler(db *gorm.DB) *CategoryHandler {
	return &CategoryHandler{db: db}
}

type createCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

type updateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// Create adds a menu category to the caller's restaurant. Owner only.
func (h *CategoryHandler) Create(c *gin.Context) {
	restaurantID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid restaurant id.")
		return
	}

	restaurant, ok := requireRestaurantOwner(c, h.db, uint(restaurantID))
	if !ok {
		return
	}

	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		httperr.BadRequest(c, "empty_name", "Category name cannot be empty")
		return
	}

	category := models.Category{
		Name:         name,
		RestaurantID: restaurant.ID,
	}
	if err := h.db.Create(&category).Error; err != nil {
		httperr.Internal(c, "failed_to_create_category", "Could not create category.")
		return
	}

	c.JSON(http.StatusCreated, category)
}

// Update renames a category. Owner of the category's restaurant only.
func (h *CategoryHandler) Update(c *gin.Context) {
	category, ok := h.ownedCategory(c)
	if !ok {
		return
	}

	var req updateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		httperr.BadRequest(c, "empty_name", "Category name cannot be empty")
		return
	}

	category.Name = name
	if err := h.db.Save(category).Error; err != nil {
		httperr.Internal(c, "failed_to_update_category", "Could not update category.")
		return
	}

	c.JSON(http.StatusOK, category)
}

// Delete removes a category and detaches its items so they fall back to
// the "Other" bucket instead of disappearing from the menu. Both writes
// happen in one transaction.
func (h *CategoryHandler) Delete(c *gin.Context) {
	category, ok := h.ownedCategory(c)
	if !ok {
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.MenuItem{}).
			Where("category_id = ?", category.ID).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Category{}, category.ID).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_delete_category", "Could not delete category.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": category.ID})
}

// ownedCategory loads the category from the path and checks the caller
// owns its restaurant. Writes the error response itself on failure.
func (h *CategoryHandler) ownedCategory(c *gin.Context) (*models.Category, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid category id.")
		return nil, false
	}

	var category models.Category
	if err := h.db.First(&category, uint(id)).Error; err != nil {
		httperr.NotFound(c, "category_not_found", "Category not found")
		return nil, false
	}

	if _, ok := requireRestaurantOwner(c, h.db, category.RestaurantID); !ok {
		return nil, false
	}

	return &category, true
}
