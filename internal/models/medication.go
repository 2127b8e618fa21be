package models

import (
	"time"

	"gorm.io/datatypes"
)

// Medication represents a medication a user is taking
type Medication struct {
	ID            uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        uint           `gorm:"not null;index" json:"user_id"`
	Name          string         `gorm:"size:100;not null" json:"name"`
	Dosage        string         `gorm:"size:100;not null" json:"dosage"`
	Frequency     string         `gorm:"size:100;not null" json:"frequency"`
	Instructions  string         `gorm:"type:text" json:"instructions"`
	StartDate     string         `gorm:"size:10" json:"start_date"` // YYYY-MM-DD
	EndDate       string         `gorm:"size:10" json:"end_date"`
	ReminderTimes datatypes.JSON `gorm:"type:json" json:"reminder_times"` // list of HH:MM strings
	CreatedAt     time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"not null" json:"updated_at"`

	DoseLogs []DoseLog `gorm:"foreignKey:MedicationID;constraint:OnDelete:CASCADE" json:"-"`
}

// DoseLog records a single dose a user marked as taken
type DoseLog struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	MedicationID uint      `gorm:"not null;index" json:"medication_id"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	TakenAt      time.Time `gorm:"not null" json:"taken_at"`
	Notes        string    `gorm:"type:text" json:"notes"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
}

// TableName specifies the table name for the Medication model
func (Medication) TableName() string {
	return "medication"
}

// TableName specifies the table name for the DoseLog model
func (DoseLog) TableName() string {
	return "dose_log"
}

// CreateMedicationRequest represents the data needed to add a medication
type CreateMedicationRequest struct {
	Name          string         `json:"name" binding:"required,max=100"`
	Dosage        string         `json:"dosage" binding:"required,max=100"`
	Frequency     string         `json:"frequency" binding:"required,max=100"`
	Instructions  string         `json:"instructions"`
	StartDate     string         `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate       string         `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	ReminderTimes datatypes.JSON `json:"reminder_times"`
}

// UpdateMedicationRequest represents a partial medication update
type UpdateMedicationRequest struct {
	Name          *string        `json:"name" binding:"omitempty,max=100"`
	Dosage        *string        `json:"dosage" binding:"omitempty,max=100"`
	Frequency     *string        `json:"frequency" binding:"omitempty,max=100"`
	Instructions  *string        `json:"instructions"`
	StartDate     *string        `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate       *string        `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	ReminderTimes datatypes.JSON `json:"reminder_times"`
}

// RecordDoseRequest marks a medication dose as taken
type RecordDoseRequest struct {
	TakenAt *time.Time `json:"taken_at"`
	Notes   string     `json:"notes"`
}
