package auth

import (
	"errors"
	"net/http"
	"strings"

	"khisha/internal/database"
	"khisha/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthMiddleware validates the bearer token and loads the caller's identity
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
			c.Abort()
			return
		}

		claims, err := ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			if errors.Is(err, ErrExpiredToken) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "token expired, please log in again"})
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			}
			c.Abort()
			return
		}

		// The token may outlive the account; make sure the user still exists
		db := database.GetDB()
		var user models.User
		if err := db.Select("id", "email", "name").First(&user, claims.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to verify credentials"})
			}
			c.Abort()
			return
		}

		// Store user info in context for handlers to use
		c.Set("user_id", user.ID)
		c.Set("email", user.Email)
		c.Set("name", user.Name)

		c.Next()
	}
}

// UserIDFromContext returns the authenticated user's ID set by AuthMiddleware
func UserIDFromContext(c *gin.Context) uint {
	return c.GetUint("user_id")
}
