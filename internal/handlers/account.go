package handlers

import (
	"errors"
	"log"
	"net/http"

	"khisha/internal/auth"
	"khisha/internal/database"
	"khisha/internal/models"
	"khisha/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const maxAvatarSize = 5 * 1024 * 1024 // 5MB

// GetProfile returns the authenticated user's profile
func GetProfile(c *gin.Context) {
	userID := auth.UserIDFromContext(c)

	db := database.GetDB()
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			handleError(c, http.StatusNotFound, "User not found", err)
			return
		}
		handleError(c, http.StatusInternalServerError, "Failed to retrieve profile", err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile applies changes to the authenticated user's profile
func UpdateProfile(c *gin.Context) {
	userID := auth.UserIDFromContext(c)

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, http.StatusBadRequest, "Invalid input", err)
		return
	}

	db := database.GetDB()
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		handleError(c, http.StatusNotFound, "User not found", err)
		return
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}

	if err := db.Save(&user).Error; err != nil {
		handleError(c, http.StatusInternalServerError, "Failed to update profile", err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// ChangePasswordRequest carries the current and replacement passwords
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// ChangePassword verifies the current password and stores a new hash
func ChangePassword(c *gin.Context) {
	userID := auth.UserIDFromContext(c)

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, http.StatusBadRequest, "Invalid input", err)
		return
	}

	if err := auth.ValidatePassword(req.NewPassword); err != nil {
		handleError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	db := database.GetDB()
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		handleError(c, http.StatusNotFound, "User not found", err)
		return
	}

	if !auth.CheckPassword(user.HashedPass, req.CurrentPassword) {
		handleError(c, http.StatusUnauthorized, "Current password is incorrect",
			errors.New("password verification failed"))
		return
	}

	hashed, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		handleError(c, http.StatusInternalServerError, "Failed to change password", err)
		return
	}

	if err := db.Model(&user).Update("hashed_pass", hashed).Error; err != nil {
		handleError(c, http.StatusInternalServerError, "Failed to change password", err)
		return
	}

	// Notification email is best-effort
	if err := services.NewEmailService().SendPasswordChangedEmail(user.Email, user.Name); err != nil {
		log.Printf("Warning: Failed to send password change email to %s: %v", user.Email, err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}

// UploadAvatar stores a new profile picture and saves its URL
func UploadAvatar(c *gin.Context) {
	userID := auth.UserIDFromContext(c)

	file, header, err := c.Request.FormFile("avatar")
	if err != nil {
		handleError(c, http.StatusBadRequest, "Avatar file is required", err)
		return
	}
	defer file.Close()

	imageService, err := services.NewImageService()
	if err != nil {
		handleError(c, http.StatusInternalServerError, "Image uploads are not configured", err)
		return
	}

	if err := imageService.ValidateImageFile(file, maxAvatarSize); err != nil {
		handleError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	url, err := imageService.UploadAvatar(file, header.Filename, userID)
	if err != nil {
		handleError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	db := database.GetDB()
	if err := db.Model(&models.User{}).Where("id = ?", userID).
		Update("avatar_url", url).Error; err != nil {
		handleError(c, http.StatusInternalServerError, "Failed to save avatar", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar_url": url})
}
