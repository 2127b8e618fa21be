package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"khisha/internal/auth"
	"khisha/internal/database"
	"khisha/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetMedications lists the caller's medications, most recently added first
func GetMedications(c *gin.Context) {
	userID := auth.UserIDFromContext(c)

	var medications []models.Medication
	db := database.GetDB()
	if err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&medications).Error; err != nil {
		handleError(c, http.StatusInternalServerError, "Failed to fetch medications", err)
		return
	}

	c.JSON(http.StatusOK, medications)
}

// CreateMedication adds a medication to the caller's list
func CreateMedication(c *gin.Context) {
	userID := auth.UserIDFromContext(c)

	var req models.CreateMedicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, http.StatusBadRequest, fmt.Sprintf("Invalid input: %s", err.Error()), err)
		return
	}

	medication := models.Medication{
		UserID:        userID,
		Name:          req.Name,
		Dosage:        req.Dosage,
		Frequency:     req.Frequency,
		Instructions:  req.Instructions,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		ReminderTimes: req.ReminderTimes,
	}

	db := database.GetDB()
	if err := db.Create(&medication).Error; err != nil {
		handleError(c, http.StatusInternalServerError, "Failed to add medication", err)
		return
	}

	c.JSON(http.StatusCreated, medication)
}

// UpdateMedication applies a partial update to a medication
func UpdateMedication(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		handleError(c, http.StatusNotFound, "Medication not found", err)
		return
	}

	var req models.UpdateMedicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, http.StatusBadRequest, fmt.Sprintf("Invalid input: %s", err.Error()), err)
		return
	}

	db := database.GetDB()
	var medication models.Medication
	if err := db.Where("id = ? AND user_id = ?", id, userID).First(&medication).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			handleError(c, http.StatusNotFound, "Medication not found", err)
			return
		}
		handleError(c, http.StatusInternalServerError, "Failed to fetch medication", err)
		return
	}

	if req.Name != nil {
		medication.Name = *req.Name
	}
	if req.Dosage != nil {
		medication.Dosage = *req.Dosage
	}
	if req.Frequency != nil {
		medication.Frequency = *req.Frequency
	}
	if req.Instructions != nil {
		medication.Instructions = *req.Instructions
	}
	if req.StartDate != nil {
		medication.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		medication.EndDate = *req.EndDate
	}
	if req.ReminderTimes != nil {
		medication.ReminderTimes = req.ReminderTimes
	}

	if err := db.Save(&medication).Error; err != nil {
		handleError(c, http.StatusInternalServerError, "Failed to update medication", err)
		return
	}

	c.JSON(http.StatusOK, medication)
}

// DeleteMedication removes a medication and its dose history
func DeleteMedication(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		handleError(c, http.StatusNotFound, "Medication not found", err)
		return
	}

	db := database.GetDB()
	result := db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Medication{})
	if result.Error != nil {
		handleError(c, http.StatusInternalServerError, "Failed to delete medication", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		handleError(c, http.StatusNotFound, "Medication not found",
			fmt.Errorf("medication %d not found for user %d", id, userID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Medication deleted successfully"})
}

// RecordDose logs a medication dose as taken
func RecordDose(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		handleError(c, http.StatusNotFound, "Medication not found", err)
		return
	}

	var req models.RecordDoseRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		handleError(c, http.StatusBadRequest, "Invalid input", err)
		return
	}

	db := database.GetDB()
	var medication models.Medication
	if err := db.Where("id = ? AND user_id = ?", id, userID).First(&medication).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			handleError(c, http.StatusNotFound, "Medication not found", err)
			return
		}
		handleError(c, http.StatusInternalServerError, "Failed to fetch medication", err)
		return
	}

	takenAt := time.Now()
	if req.TakenAt != nil {
		takenAt = *req.TakenAt
	}

	dose := models.DoseLog{
		MedicationID: medication.ID,
		UserID:       userID,
		TakenAt:      takenAt,
		Notes:        req.Notes,
		CreatedAt:    time.Now(),
	}

	if err := db.Create(&dose).Error; err != nil {
		handleError(c, http.StatusInternalServerError, "Failed to record dose", err)
		return
	}

	c.JSON(http.StatusCreated, dose)
}

// GetDoseHistory lists recorded doses for one medication, newest first
func GetDoseHistory(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		handleError(c, http.StatusNotFound, "Medication not found", err)
		return
	}

	db := database.GetDB()
	var doses []models.DoseLog
	if err := db.Where("medication_id = ? AND user_id = ?", id, userID).
		Order("taken_at DESC").Find(&doses).Error; err != nil {
		handleError(c, http.StatusInternalServerError, "Failed to fetch dose history", err)
		return
	}

	c.JSON(http.StatusOK, doses)
}
