package reminder

import (
	"errors"
	"fmt"
	"time"

	"khisha/internal/models"
)

// ErrNotFound is returned when a reminder does not exist or belongs to a
// different user; the two cases are deliberately not distinguished
var ErrNotFound = errors.New("reminder not found")

// ValidationError reports a missing or malformed field on a reminder mutation
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Service orchestrates the reminder lifecycle. It is the only component
// that writes last_triggered and next_trigger, always through
// NextOccurrence. Create, Update and Toggle keep next_trigger set iff
// the reminder is active; Complete advances it unconditionally.
type Service struct {
	store Store
	now   func() time.Time
}

// NewService creates a reminder service over the given store
func NewService(store Store) *Service {
	return &Service{
		store: store,
		now:   time.Now,
	}
}

// List returns a user's reminders, most recently created first
func (s *Service) List(userID uint) ([]models.Reminder, error) {
	return s.store.ListByOwner(userID)
}

// Create validates the request and persists a new reminder. Active
// reminders get their first trigger computed immediately.
func (s *Service) Create(userID uint, req models.CreateReminderRequest) (*models.Reminder, error) {
	if req.Title == "" {
		return nil, &ValidationError{Field: "title", Reason: "required"}
	}
	if len(req.Title) > 100 {
		return nil, &ValidationError{Field: "title", Reason: "must be at most 100 characters"}
	}
	if !ValidTimeOfDay(req.Time) {
		return nil, &ValidationError{Field: "time", Reason: "must be HH:MM in 24h format"}
	}
	if !validFrequency(req.Frequency) {
		return nil, &ValidationError{Field: "frequency", Reason: "must be daily, weekly or monthly"}
	}

	reminderType := req.Type
	if reminderType == "" {
		reminderType = models.GeneralReminder
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	reminder := models.Reminder{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Type:        reminderType,
		Time:        req.Time,
		Frequency:   req.Frequency,
		IsActive:    isActive,
	}

	if isActive {
		next := NextOccurrence(req.Time, req.Frequency, s.now())
		reminder.NextTrigger = &next
	}

	if err := s.store.Create(&reminder); err != nil {
		return nil, err
	}
	return &reminder, nil
}

// Update applies a partial update. If the time of day or frequency
// changed, the next trigger is recomputed from the resulting rule;
// if is_active changed, the trigger is recomputed or cleared so the
// active/trigger invariant survives arbitrary field combinations.
func (s *Service) Update(userID, id uint, req models.UpdateReminderRequest) (*models.Reminder, error) {
	reminder, err := s.store.FindByOwner(userID, id)
	if err != nil {
		return nil, err
	}

	scheduleChanged := false
	if req.Time != nil && *req.Time != reminder.Time {
		if !ValidTimeOfDay(*req.Time) {
			return nil, &ValidationError{Field: "time", Reason: "must be HH:MM in 24h format"}
		}
		reminder.Time = *req.Time
		scheduleChanged = true
	}
	if req.Frequency != nil && *req.Frequency != reminder.Frequency {
		if !validFrequency(*req.Frequency) {
			return nil, &ValidationError{Field: "frequency", Reason: "must be daily, weekly or monthly"}
		}
		reminder.Frequency = *req.Frequency
		scheduleChanged = true
	}
	if req.Title != nil {
		if *req.Title == "" {
			return nil, &ValidationError{Field: "title", Reason: "required"}
		}
		if len(*req.Title) > 100 {
			return nil, &ValidationError{Field: "title", Reason: "must be at most 100 characters"}
		}
		reminder.Title = *req.Title
	}
	if req.Description != nil {
		reminder.Description = *req.Description
	}
	if req.Type != nil {
		reminder.Type = *req.Type
	}
	if req.IsActive != nil {
		reminder.IsActive = *req.IsActive
	}

	if reminder.IsActive {
		if scheduleChanged || reminder.NextTrigger == nil {
			next := NextOccurrence(reminder.Time, reminder.Frequency, s.now())
			reminder.NextTrigger = &next
		}
	} else {
		reminder.NextTrigger = nil
	}

	if err := s.store.Save(reminder); err != nil {
		return nil, err
	}
	return reminder, nil
}

// Toggle flips a reminder's active state. Activating recomputes the next
// trigger from the stored rule; deactivating clears it.
func (s *Service) Toggle(userID, id uint) (*models.Reminder, error) {
	reminder, err := s.store.FindByOwner(userID, id)
	if err != nil {
		return nil, err
	}

	reminder.IsActive = !reminder.IsActive
	if reminder.IsActive {
		next := NextOccurrence(reminder.Time, reminder.Frequency, s.now())
		reminder.NextTrigger = &next
	} else {
		reminder.NextTrigger = nil
	}

	if err := s.store.Save(reminder); err != nil {
		return nil, err
	}
	return reminder, nil
}

// Complete marks a reminder done now: last_triggered is stamped, the next
// trigger advances, and the completion note replaces any previous one.
// Inactive reminders complete the same way; the advanced trigger is
// simply advisory until the reminder is reactivated.
func (s *Service) Complete(userID, id uint, notes string) (*models.Reminder, error) {
	reminder, err := s.store.FindByOwner(userID, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	next := NextOccurrence(reminder.Time, reminder.Frequency, now)
	reminder.LastTriggered = &now
	reminder.NextTrigger = &next
	reminder.CompletionNotes = notes

	if err := s.store.Save(reminder); err != nil {
		return nil, err
	}
	return reminder, nil
}

// Delete removes a reminder owned by the user
func (s *Service) Delete(userID, id uint) error {
	deleted, err := s.store.DeleteByOwner(userID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// Stats computes the derived metrics snapshot for a user's reminder set
func (s *Service) Stats(userID uint) (models.ReminderStats, error) {
	reminders, err := s.store.ListByOwner(userID)
	if err != nil {
		return models.ReminderStats{}, err
	}
	return ComputeStats(reminders, s.now()), nil
}

func validFrequency(f models.Frequency) bool {
	switch f {
	case models.Daily, models.Weekly, models.Monthly:
		return true
	}
	return false
}
