package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/leafload/leafload-api/internal/httperr"
	"github.com/leafload/leafload-api/internal/middleware"
	"github.com/leafload/leafload-api/internal/models"
	"github.com/leafload/leafload-api/internal/validators"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

// GetMe returns the profile of the token subject, never of a caller-chosen
// user.
func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.Preload("Region").First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found")
		return
	}

	var restaurantID *uint
	var restaurant models.Restaurant
	if err := h.db.Select("id").Where("owner_id = ?", user.ID).First(&restaurant).Error; err == nil {
		restaurantID = &restaurant.ID
	}

	c.JSON(http.StatusOK, profileResponse(&user, restaurantID))
}

// UpdateMe applies a partial profile update. Exactly the mutable
// attributes are recognized; a body without any of them is rejected
// instead of succeeding as a no-op.
func (h *MeHandler) UpdateMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found")
		return
	}

	body, err := bindPatch(c, "name", "email", "password", "address", "regionId")
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
		user.Name = name
		changed = true
	}

	if body.has("email") {
		var email string
		if err := body.field("email", &email); err != nil {
			httperr.BadRequest(c, "invalid_request", "Invalid email.")
			return
		}
		email = validators.NormalizeEmail(email)
		if !validators.IsEmailValid(email) {
			httperr.BadRequest(c, "invalid_email", "Invalid email")
			return
		}
		user.Email = email
		changed = true
	}

	if body.has("password") {
		var password string
		if err := body.field("password", &password); err != nil {
			httperr.BadRequest(c, "invalid_request", "Invalid password.")
			return
		}
		if !validators.IsPasswordValid(password) {
			httperr.BadRequest(c, "password_too_short", "Password must be at least 6 characters")
			return
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			httperr.Internal(c, "failed_to_hash_password", "Could not hash password.")
			return
		}
		user.PasswordHash = string(hashed)
		changed = true
	}

	if body.has("address") {
		var address string
		if err := body.field("address", &address); err != nil {
			httperr.BadRequest(c, "invalid_request", "Invalid address.")
			return
		}
		user.Address = strings.TrimSpace(address)
		changed = true
	}

	if body.has("regionId") {
		if body.isNull("regionId") {
			user.RegionID = nil
		} else {
			var regionID uint
			if err := body.field("regionId", &regionID); err != nil {
				httperr.BadRequest(c, "invalid_request", "Invalid region.")
				return
			}
			user.RegionID = &regionID
		}
		changed = true
	}

	if !changed {
		httperr.BadRequest(c, "empty_update", "No fields provided")
		return
	}

	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user", "Could not update profile.")
		return
	}

	// Reload with the region so the response carries its name.
	if err := h.db.Preload("Region").First(&user, userID).Error; err != nil {
		httperr.Internal(c, "failed_to_get_user", "Could not load profile.")
		return
	}

	c.JSON(http.StatusOK, profileResponse(&user, nil))
}

func profileResponse(user *models.User, restaurantID *uint) gin.H {
	var regionName *string
	if user.Region != nil {
		regionName = &user.Region.Name
	}

	resp := gin.H{
		"username":   user.Username,
		"name":       user.Name,
		"email":      user.Email,
		"role":       user.Role,
		"createdOn":  user.CreatedAt,
		"address":    user.Address,
		"regionId":   user.RegionID,
		"regionName": regionName,
	}
	if restaurantID != nil {
		resp["restaurantId"] = restaurantID
	}
	return resp
}
