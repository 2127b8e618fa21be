package models

import "time"

// ReminderType categorizes a reminder; it has no behavioral effect
type ReminderType string

const (
	MedicationReminder   ReminderType = "medication"
	HydrationReminder    ReminderType = "hydration"
	ExerciseReminder     ReminderType = "exercise"
	AssessmentReminder   ReminderType = "assessment"
	MentalHealthReminder ReminderType = "mental-health"
	SleepReminder        ReminderType = "sleep"
	NutritionReminder    ReminderType = "nutrition"
	GeneralReminder      ReminderType = "general"
)

// Frequency governs how a reminder's trigger advances after completion
type Frequency string

const (
	Daily   Frequency = "daily"
	Weekly  Frequency = "weekly"
	Monthly Frequency = "monthly"
)

// Reminder represents a user-owned recurring reminder rule.
// NextTrigger is maintained by the lifecycle service and cleared when a
// reminder is deactivated; LastTriggered is written only on completion.
type Reminder struct {
	ID              uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          uint         `gorm:"not null;index" json:"user_id"`
	Title           string       `gorm:"size:100;not null" json:"title"`
	Description     string       `gorm:"type:text" json:"description"`
	Type            ReminderType `gorm:"size:20;not null;default:general;index" json:"type"`
	Time            string       `gorm:"size:5;not null" json:"time"` // HH:MM, 24h
	Frequency       Frequency    `gorm:"size:10;not null" json:"frequency"`
	IsActive        bool         `gorm:"not null;default:true;index" json:"is_active"`
	LastTriggered   *time.Time   `json:"last_triggered"`
	NextTrigger     *time.Time   `gorm:"index" json:"next_trigger"`
	CompletionNotes string       `gorm:"type:text" json:"completion_notes"`
	CreatedAt       time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time    `gorm:"not null" json:"updated_at"`
}

// TableName specifies the table name for the Reminder model
func (Reminder) TableName() string {
	return "reminder"
}

// CreateReminderRequest represents the data needed to create a new reminder
type CreateReminderRequest struct {
	Title       string       `json:"title" binding:"required,max=100"`
	Description string       `json:"description"`
	Type        ReminderType `json:"type" binding:"omitempty,oneof=medication hydration exercise assessment mental-health sleep nutrition general"`
	Time        string       `json:"time" binding:"required"`
	Frequency   Frequency    `json:"frequency" binding:"required,oneof=daily weekly monthly"`
	IsActive    *bool        `json:"is_active"`
}

// UpdateReminderRequest represents a partial reminder update; nil fields
// are left unchanged
type UpdateReminderRequest struct {
	Title       *string       `json:"title" binding:"omitempty,max=100"`
	Description *string       `json:"description"`
	Type        *ReminderType `json:"type" binding:"omitempty,oneof=medication hydration exercise assessment mental-health sleep nutrition general"`
	Time        *string       `json:"time"`
	Frequency   *Frequency    `json:"frequency" binding:"omitempty,oneof=daily weekly monthly"`
	IsActive    *bool         `json:"is_active"`
}

// CompleteReminderRequest carries the optional note attached at completion
type CompleteReminderRequest struct {
	Notes string `json:"notes"`
}

// ReminderStats is the derived snapshot returned by the stats endpoint
type ReminderStats struct {
	Total          int `json:"total"`
	Active         int `json:"active"`
	Overdue        int `json:"overdue"`
	CompletedToday int `json:"completed_today"`
	SuccessRate    int `json:"success_rate"`
}
