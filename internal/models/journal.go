package models

import (
	"time"

	"gorm.io/datatypes"
)

// JournalEntry represents one day's health journal; a user can have at
// most one entry per calendar date
type JournalEntry struct {
	ID         uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uint           `gorm:"not null;uniqueIndex:idx_journal_user_date" json:"user_id"`
	Date       string         `gorm:"size:10;not null;uniqueIndex:idx_journal_user_date" json:"date"` // YYYY-MM-DD
	Mood       int            `gorm:"not null" json:"mood"`
	Energy     int            `gorm:"not null" json:"energy"`
	Sleep      float64        `gorm:"not null" json:"sleep"`
	Exercise   int            `gorm:"not null;default:0" json:"exercise"`
	Water      int            `gorm:"not null;default:8" json:"water"`
	Stress     int            `gorm:"not null" json:"stress"`
	Notes      string         `gorm:"type:text" json:"notes"`
	Symptoms   datatypes.JSON `gorm:"type:json" json:"symptoms"`
	Activities datatypes.JSON `gorm:"type:json" json:"activities"`
	Meals      datatypes.JSON `gorm:"type:json" json:"meals"`
	CreatedAt  time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"not null" json:"updated_at"`
}

// TableName specifies the table name for the JournalEntry model
func (JournalEntry) TableName() string {
	return "journal_entry"
}

// CreateJournalEntryRequest represents the data needed to create a journal entry
type CreateJournalEntryRequest struct {
	Date       string         `json:"date" binding:"required,datetime=2006-01-02"`
	Mood       int            `json:"mood" binding:"required,min=1,max=10"`
	Energy     int            `json:"energy" binding:"required,min=1,max=10"`
	Sleep      float64        `json:"sleep" binding:"required,min=0,max=12"`
	Exercise   int            `json:"exercise" binding:"min=0,max=300"`
	Water      int            `json:"water" binding:"min=0,max=20"`
	Stress     int            `json:"stress" binding:"required,min=1,max=10"`
	Notes      string         `json:"notes"`
	Symptoms   datatypes.JSON `json:"symptoms"`
	Activities datatypes.JSON `json:"activities"`
	Meals      datatypes.JSON `json:"meals"`
}

// UpdateJournalEntryRequest represents a partial journal entry update
type UpdateJournalEntryRequest struct {
	Mood       *int           `json:"mood" binding:"omitempty,min=1,max=10"`
	Energy     *int           `json:"energy" binding:"omitempty,min=1,max=10"`
	Sleep      *float64       `json:"sleep" binding:"omitempty,min=0,max=12"`
	Exercise   *int           `json:"exercise" binding:"omitempty,min=0,max=300"`
	Water      *int           `json:"water" binding:"omitempty,min=0,max=20"`
	Stress     *int           `json:"stress" binding:"omitempty,min=1,max=10"`
	Notes      *string        `json:"notes"`
	Symptoms   datatypes.JSON `json:"symptoms"`
	Activities datatypes.JSON `json:"activities"`
	Meals      datatypes.JSON `json:"meals"`
}
