package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/leafload/leafload-api/internal/config"
	"github.com/leafload/leafload-api/internal/httperr"
	"github.com/leafload/leafload-api/internal/models"
	"github.com/leafload/leafload-api/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SignupRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	Address   string `json:"address"`
	RegionID  *uint  `json:"regionId"`
}

type SignupRestaurantRequest struct {
	OwnerID  uint   `json:"ownerId"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	ImageUrl string `json:"imageUrl"`
	RegionID *uint  `json:"regionId"`
}

// --------- Handlers ---------

// Login verifies the credentials and issues the identity token. Unknown
// username and wrong password answer with the exact same body, so the
// endpoint leaks nothing about which usernames exist.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	var user models.User
	if err := h.db.Where("username = ?", req.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials")
			return
		}
		httperr.Internal(c, "internal_error", "Internal error.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials")
		return
	}

	restaurantID := h.findOwnedRestaurantID(user.ID)

	token, err := h.generateToken(&user, restaurantID)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not generate token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":           user.ID,
		"name":         user.Name,
		"role":         user.Role,
		"restaurantId": restaurantID,
		"regionId":     user.RegionID,
		"token":        token,
	})
}

// Signup registers a customer or restaurant-owner account. The user is
// logged in right away: the response carries a usable token.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if !validators.NonEmpty(req.Username) ||
		!validators.NonEmpty(req.FirstName) ||
		!validators.NonEmpty(req.LastName) ||
		req.Password == "" ||
		!validators.NonEmpty(req.Role) {
		httperr.BadRequest(c, "missing_field", "Missing field input.")
		return
	}

	if !validators.IsRoleValid(req.Role) {
		httperr.BadRequest(c, "invalid_role", "Unknown role.")
		return
	}

	if !validators.IsEmailValid(req.Email) {
		httperr.BadRequest(c, "invalid_email", "Invalid email")
		return
	}

	if !validators.IsPasswordValid(req.Password) {
		httperr.BadRequest(c, "password_too_short", "Password must be at least 6 characters")
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("username = ?", req.Username).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "username_already_exists", "Username already exists.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not hash password.")
		return
	}

	user := models.User{
		Username:     req.Username,
		Email:        validators.NormalizeEmail(req.Email),
		Name:         strings.TrimSpace(req.LastName) + " " + strings.TrimSpace(req.FirstName),
		PasswordHash: string(hashed),
		Role:         req.Role,
		Address:      strings.TrimSpace(req.Address),
		RegionID:     req.RegionID,
	}

	if err := h.db.Create(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_create_user", "Could not create user.")
		return
	}

	token, err := h.generateToken(&user, nil)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not generate token.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"userId": user.ID,
		"role":   user.Role,
		"token":  token,
	})
}

// SignupRestaurant is the second step of owner registration: the account
// already exists, this creates the restaurant it owns. No new token is
// issued, the caller keeps the one from Signup.
func (h *AuthHandler) SignupRestaurant(c *gin.Context) {
	var req SignupRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.OwnerID == 0 || !validators.NonEmpty(req.Name) || !validators.NonEmpty(req.Address) {
		httperr.BadRequest(c, "missing_field", "Missing field input.")
		return
	}

	var owner models.User
	if err := h.db.First(&owner, req.OwnerID).Error; err != nil {
		httperr.BadRequest(c, "owner_not_found", "Owner/UserID not found")
		return
	}

	if owner.Role != models.RoleRestaurantOwner {
		httperr.BadRequest(c, "invalid_role", "User is not a restaurant owner")
		return
	}

	restaurant := models.Restaurant{
		Name:     strings.TrimSpace(req.Name),
		Address:  strings.TrimSpace(req.Address),
		ImageUrl: req.ImageUrl,
		OwnerID:  owner.ID,
		RegionID: req.RegionID,
	}

	if err := h.db.Create(&restaurant).Error; err != nil {
		httperr.Internal(c, "failed_to_create_restaurant", "Could not create restaurant.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"restaurantId": restaurant.ID,
	})
}

// --------- JWT ---------

func (h *AuthHandler) findOwnedRestaurantID(userID uint) *uint {
	var restaurant models.Restaurant
	if err := h.db.Select("id").Where("owner_id = ?", userID).First(&restaurant).Error; err != nil {
		return nil
	}
	return &restaurant.ID
}

func (h *AuthHandler) generateToken(user *models.User, restaurantID *uint) (string, error) {
	claims := jwt.MapClaims{
		"sub":          user.ID,
		"role":         user.Role,
		"restaurantId": restaurantID,
		"exp":          time.Now().Add(h.config.JWTTTL).Unix(),
		"iat":          time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
