package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/leafload/leafload-api/internal/config"
)

const (
	ContextUserID       = "userID"
	ContextUserRole     = "userRole"
	ContextRestaurantID = "restaurantID"
)

// AuthMiddleware verifies the bearer token and fails closed: a missing
// header, a malformed token, a bad signature and an expired token all end
// the request with 401. On success the verified identity is placed in the
// request context; handlers never trust client-supplied ids.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		tokenString := parts[1]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_claims"})
			return
		}

		userID, ok := claims["sub"].(float64)
		role, _ := claims["role"].(string)
		if !ok || role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_payload"})
			return
		}

		c.Set(ContextUserID, uint(userID))
		c.Set(ContextUserRole, role)

		// restaurantId is null for customers and for owners without a
		// restaurant yet.
		if restaurantID, ok := claims["restaurantId"].(float64); ok {
			c.Set(ContextRestaurantID, uint(restaurantID))
		}

		c.Next()
	}
}

// RestaurantIDFromContext returns the caller's restaurant id, if the token
// carried one.
func RestaurantIDFromContext(c *gin.Context) (uint, bool) {
	v, exists := c.Get(ContextRestaurantID)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
