package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"khisha/internal/auth"
	"khisha/internal/database"
	"khisha/internal/models"
	"khisha/internal/services"
	"khisha/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Register handles new user registration
func Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, http.StatusBadRequest, fmt.Sprintf("Invalid input: %s", err.Error()), err)
		return
	}

	// Validate password strength
	if err := auth.ValidatePassword(req.Password); err != nil {
		handleError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		handleError(c, http.StatusInternalServerError, "Failed to create account", err)
		return
	}

	user := models.User{
		Name:       req.Name,
		Email:      req.Email,
		HashedPass: hashed,
	}

	db := database.GetDB()
	if err := db.Create(&user).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			handleError(c, http.StatusConflict, "Email already in use", err)
			return
		}
		handleError(c, http.StatusInternalServerError, "Failed to create account", err)
		return
	}

	// Welcome email is best-effort; registration succeeds without it
	if err := services.NewEmailService().SendWelcomeEmail(user.Email, user.Name); err != nil {
		log.Printf("Warning: Failed to send welcome email to %s: %v", user.Email, err)
	}

	c.JSON(http.StatusCreated, user)
}

// Login handles user authentication and issues a JWT token
func Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, http.StatusBadRequest, "Invalid login request", err)
		return
	}

	db := database.GetDB()
	var user models.User
	if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			handleError(c, http.StatusUnauthorized, "Invalid credentials", err)
			return
		}
		handleError(c, http.StatusInternalServerError, "Login attempt failed", err)
		return
	}

	if !auth.CheckPassword(user.HashedPass, req.Password) {
		handleError(c, http.StatusUnauthorized, "Invalid credentials",
			fmt.Errorf("password verification failed for user %d from %s", user.ID, utils.GetRealClientIP(c)))
		return
	}

	token, err := auth.GenerateToken(user.ID)
	if err != nil {
		handleError(c, http.StatusInternalServerError, "Failed to generate token", err)
		return
	}

	// Update last login time
	if err := db.Model(&user).Update("last_login", time.Now()).Error; err != nil {
		log.Printf("Warning: Failed to update last login for user %d: %v", user.ID, err)
	}

	log.Printf("User %d logged in from %s", user.ID, utils.GetRealClientIP(c))

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
	})
}

// GetCurrentUser returns the currently authenticated user
func GetCurrentUser(c *gin.Context) {
	userID := auth.UserIDFromContext(c)

	db := database.GetDB()
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			handleError(c, http.StatusNotFound, "User not found", err)
			return
		}
		handleError(c, http.StatusInternalServerError, "Failed to retrieve user", err)
		return
	}

	c.JSON(http.StatusOK, user)
}
