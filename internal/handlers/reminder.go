package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"khisha/internal/auth"
	"khisha/internal/database"
	"khisha/internal/models"
	"khisha/internal/reminder"

	"github.com/gin-gonic/gin"
)

// reminderService builds the lifecycle service over the request's database
func reminderService() *reminder.Service {
	return reminder.NewService(reminder.NewGormStore(database.GetDB()))
}

// reminderID parses the :id path parameter
func reminderID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid reminder id %q", c.Param("id"))
	}
	return uint(id), nil
}

// respondReminderError maps engine errors onto HTTP statuses
func respondReminderError(c *gin.Context, err error, action string) {
	var verr *reminder.ValidationError
	switch {
	case errors.As(err, &verr):
		handleError(c, http.StatusBadRequest, verr.Error(), err)
	case errors.Is(err, reminder.ErrNotFound):
		handleError(c, http.StatusNotFound, "Reminder not found", err)
	default:
		handleError(c, http.StatusInternalServerError, "Failed to "+action, err)
	}
}

// GetReminders lists the caller's reminders, most recently created first
func GetReminders(c *gin.Context) {
	reminders, err := reminderService().List(auth.UserIDFromContext(c))
	if err != nil {
		handleError(c, http.StatusInternalServerError, "Failed to fetch reminders", err)
		return
	}

	c.JSON(http.StatusOK, reminders)
}

// CreateReminder creates a new reminder for the caller
func CreateReminder(c *gin.Context) {
	var req models.CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, http.StatusBadRequest, fmt.Sprintf("Invalid input: %s", err.Error()), err)
		return
	}

	created, err := reminderService().Create(auth.UserIDFromContext(c), req)
	if err != nil {
		respondReminderError(c, err, "create reminder")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateReminder applies a partial update to a reminder
func UpdateReminder(c *gin.Context) {
	id, err := reminderID(c)
	if err != nil {
		handleError(c, http.StatusNotFound, "Reminder not found", err)
		return
	}

	var req models.UpdateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, http.StatusBadRequest, fmt.Sprintf("Invalid input: %s", err.Error()), err)
		return
	}

	updated, err := reminderService().Update(auth.UserIDFromContext(c), id, req)
	if err != nil {
		respondReminderError(c, err, "update reminder")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteReminder removes a reminder
func DeleteReminder(c *gin.Context) {
	id, err := reminderID(c)
	if err != nil {
		handleError(c, http.StatusNotFound, "Reminder not found", err)
		return
	}

	if err := reminderService().Delete(auth.UserIDFromContext(c), id); err != nil {
		respondReminderError(c, err, "delete reminder")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reminder deleted successfully"})
}

// CompleteReminder marks a reminder as done and advances its trigger
func CompleteReminder(c *gin.Context) {
	id, err := reminderID(c)
	if err != nil {
		handleError(c, http.StatusNotFound, "Reminder not found", err)
		return
	}

	var req models.CompleteReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		handleError(c, http.StatusBadRequest, "Invalid input", err)
		return
	}

	completed, err := reminderService().Complete(auth.UserIDFromContext(c), id, req.Notes)
	if err != nil {
		respondReminderError(c, err, "complete reminder")
		return
	}

	c.JSON(http.StatusOK, completed)
}

// ToggleReminder flips a reminder's active state
func ToggleReminder(c *gin.Context) {
	id, err := reminderID(c)
	if err != nil {
		handleError(c, http.StatusNotFound, "Reminder not found", err)
		return
	}

	toggled, err := reminderService().Toggle(auth.UserIDFromContext(c), id)
	if err != nil {
		respondReminderError(c, err, "toggle reminder")
		return
	}

	c.JSON(http.StatusOK, toggled)
}

// GetReminderStats returns the derived metrics for the caller's reminders
func GetReminderStats(c *gin.Context) {
	stats, err := reminderService().Stats(auth.UserIDFromContext(c))
	if err != nil {
		handleError(c, http.StatusInternalServerError, "Failed to fetch reminder statistics", err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
