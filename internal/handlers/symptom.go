package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"khisha/internal/auth"
	"khisha/internal/database"
	"khisha/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetSymptoms lists the caller's logged symptoms, newest first
func GetSymptoms(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	db := database.GetDB()

	query := db.Where("user_id = ?", userID)
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if minSeverity := c.Query("min_severity"); minSeverity != "" {
		query = query.Where("severity >= ?", minSeverity)
	}

	var symptoms []models.Symptom
	if err := query.Order("created_at DESC").Find(&symptoms).Error; err != nil {
		handleError(c, http.StatusInternalServerError, "Failed to fetch symptoms", err)
		return
	}

	c.JSON(http.StatusOK, symptoms)
}

// CreateSymptom logs a new symptom occurrence
func CreateSymptom(c *gin.Context) {
	userID := auth.UserIDFromContext(c)

	var req models.CreateSymptomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, http.StatusBadRequest, fmt.Sprintf("Invalid input: %s", err.Error()), err)
		return
	}

	category := req.Category
	if category == "" {
		category = "other"
	}
	frequency := req.Frequency
	if frequency == "" {
		frequency = "once"
	}

	symptom := models.Symptom{
		UserID:      userID,
		Name:        req.Name,
		Severity:    req.Severity,
		Location:    req.Location,
		Description: req.Description,
		Triggers:    req.Triggers,
		Duration:    req.Duration,
		Notes:       req.Notes,
		Category:    category,
		Frequency:   frequency,
	}

	db := database.GetDB()
	if err := db.Create(&symptom).Error; err != nil {
		handleError(c, http.StatusInternalServerError, "Failed to log symptom", err)
		return
	}

	c.JSON(http.StatusCreated, symptom)
}

// UpdateSymptom applies a partial update to a logged symptom
func UpdateSymptom(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		handleError(c, http.StatusNotFound, "Symptom not found", err)
		return
	}

	var req models.UpdateSymptomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, http.StatusBadRequest, fmt.Sprintf("Invalid input: %s", err.Error()), err)
		return
	}

	db := database.GetDB()
	var symptom models.Symptom
	if err := db.Where("id = ? AND user_id = ?", id, userID).First(&symptom).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			handleError(c, http.StatusNotFound, "Symptom not found", err)
			return
		}
		handleError(c, http.StatusInternalServerError, "Failed to fetch symptom", err)
		return
	}

	if req.Name != nil {
		symptom.Name = *req.Name
	}
	if req.Severity != nil {
		symptom.Severity = *req.Severity
	}
	if req.Location != nil {
		symptom.Location = *req.Location
	}
	if req.Description != nil {
		symptom.Description = *req.Description
	}
	if req.Triggers != nil {
		symptom.Triggers = *req.Triggers
	}
	if req.Duration != nil {
		symptom.Duration = *req.Duration
	}
	if req.Notes != nil {
		symptom.Notes = *req.Notes
	}
	if req.Category != nil {
		symptom.Category = *req.Category
	}
	if req.Frequency != nil {
		symptom.Frequency = *req.Frequency
	}

	if err := db.Save(&symptom).Error; err != nil {
		handleError(c, http.StatusInternalServerError, "Failed to update symptom", err)
		return
	}

	c.JSON(http.StatusOK, symptom)
}

// DeleteSymptom removes a logged symptom
func DeleteSymptom(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		handleError(c, http.StatusNotFound, "Symptom not found", err)
		return
	}

	db := database.GetDB()
	result := db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Symptom{})
	if result.Error != nil {
		handleError(c, http.StatusInternalServerError, "Failed to delete symptom", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		handleError(c, http.StatusNotFound, "Symptom not found",
			fmt.Errorf("symptom %d not found for user %d", id, userID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Symptom deleted successfully"})
}
