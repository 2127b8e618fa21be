package models

import "time"

// Symptom represents a logged symptom occurrence
type Symptom struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Severity    int       `gorm:"not null" json:"severity"` // 1-10
	Location    string    `gorm:"size:100" json:"location"`
	Description string    `gorm:"type:text" json:"description"`
	Triggers    string    `gorm:"type:text" json:"triggers"`
	Duration    string    `gorm:"size:50" json:"duration"`
	Notes       string    `gorm:"type:text" json:"notes"`
	Category    string    `gorm:"size:50;not null;default:other" json:"category"`
	Frequency   string    `gorm:"size:50;default:once" json:"frequency"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

// TableName specifies the table name for the Symptom model
func (Symptom) TableName() string {
	return "symptom"
}

// CreateSymptomRequest represents the data needed to log a symptom
type CreateSymptomRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Severity    int    `json:"severity" binding:"required,min=1,max=10"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Triggers    string `json:"triggers"`
	Duration    string `json:"duration"`
	Notes       string `json:"notes"`
	Category    string `json:"category"`
	Frequency   string `json:"frequency"`
}

// UpdateSymptomRequest represents a partial symptom update
type UpdateSymptomRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Severity    *int    `json:"severity" binding:"omitempty,min=1,max=10"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
	Triggers    *string `json:"triggers"`
	Duration    *string `json:"duration"`
	Notes       *string `json:"notes"`
	Category    *string `json:"category"`
	Frequency   *string `json:"frequency"`
}
