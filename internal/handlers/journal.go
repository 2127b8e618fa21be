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

// GetJournalEntries lists the caller's journal entries, newest date first.
// An optional ?date=YYYY-MM-DD filter narrows to a single day.
func GetJournalEntries(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	db := database.GetDB()

	query := db.Where("user_id = ?", userID)
	if date := c.Query("date"); date != "" {
		query = query.Where("date = ?", date)
	}

	var entries []models.JournalEntry
	if err := query.Order("date DESC").Find(&entries).Error; err != nil {
		handleError(c, http.StatusInternalServerError, "Failed to fetch journal entries", err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// CreateJournalEntry records one day's journal; a user gets one entry per date
func CreateJournalEntry(c *gin.Context) {
	userID := auth.UserIDFromContext(c)

	var req models.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, http.StatusBadRequest, fmt.Sprintf("Invalid input: %s", err.Error()), err)
		return
	}

	db := database.GetDB()

	// Reject a second entry for the same date up front
	var existing models.JournalEntry
	err := db.Where("user_id = ? AND date = ?", userID, req.Date).First(&existing).Error
	if err == nil {
		handleError(c, http.StatusConflict, "Journal entry already exists for this date",
			fmt.Errorf("duplicate journal entry for user %d on %s", userID, req.Date))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		handleError(c, http.StatusInternalServerError, "Failed to create journal entry", err)
		return
	}

	entry := models.JournalEntry{
		UserID:     userID,
		Date:       req.Date,
		Mood:       req.Mood,
		Energy:     req.Energy,
		Sleep:      req.Sleep,
		Exercise:   req.Exercise,
		Water:      req.Water,
		Stress:     req.Stress,
		Notes:      req.Notes,
		Symptoms:   req.Symptoms,
		Activities: req.Activities,
		Meals:      req.Meals,
	}

	if err := db.Create(&entry).Error; err != nil {
		handleError(c, http.StatusInternalServerError, "Failed to create journal entry", err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// UpdateJournalEntry applies a partial update to one journal entry
func UpdateJournalEntry(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		handleError(c, http.StatusNotFound, "Journal entry not found", err)
		return
	}

	var req models.UpdateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, http.StatusBadRequest, fmt.Sprintf("Invalid input: %s", err.Error()), err)
		return
	}

	db := database.GetDB()
	var entry models.JournalEntry
	if err := db.Where("id = ? AND user_id = ?", id, userID).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			handleError(c, http.StatusNotFound, "Journal entry not found", err)
			return
		}
		handleError(c, http.StatusInternalServerError, "Failed to fetch journal entry", err)
		return
	}

	if req.Mood != nil {
		entry.Mood = *req.Mood
	}
	if req.Energy != nil {
		entry.Energy = *req.Energy
	}
	if req.Sleep != nil {
		entry.Sleep = *req.Sleep
	}
	if req.Exercise != nil {
		entry.Exercise = *req.Exercise
	}
	if req.Water != nil {
		entry.Water = *req.Water
	}
	if req.Stress != nil {
		entry.Stress = *req.Stress
	}
	if req.Notes != nil {
		entry.Notes = *req.Notes
	}
	if req.Symptoms != nil {
		entry.Symptoms = req.Symptoms
	}
	if req.Activities != nil {
		entry.Activities = req.Activities
	}
	if req.Meals != nil {
		entry.Meals = req.Meals
	}

	if err := db.Save(&entry).Error; err != nil {
		handleError(c, http.StatusInternalServerError, "Failed to update journal entry", err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// DeleteJournalEntry removes one journal entry
func DeleteJournalEntry(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		handleError(c, http.StatusNotFound, "Journal entry not found", err)
		return
	}

	db := database.GetDB()
	result := db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.JournalEntry{})
	if result.Error != nil {
		handleError(c, http.StatusInternalServerError, "Failed to delete journal entry", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		handleError(c, http.StatusNotFound, "Journal entry not found",
			fmt.Errorf("journal entry %d not found for user %d", id, userID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Journal entry deleted successfully"})
}
