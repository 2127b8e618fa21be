package reminder

import (
	"errors"

	"khisha/internal/models"

	"gorm.io/gorm"
)

// Store is the owner-scoped persistence boundary for reminders. Every
// lookup takes the owning user's ID so that a foreign record is
// indistinguishable from a missing one.
type Store interface {
	ListByOwner(userID uint) ([]models.Reminder, error)
	FindByOwner(userID, id uint) (*models.Reminder, error)
	Create(r *models.Reminder) error
	Save(r *models.Reminder) error
	DeleteByOwner(userID, id uint) (bool, error)
}

// GormStore implements Store on top of the application database
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a Store backed by the given gorm connection
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// ListByOwner returns all of a user's reminders, most recently created first
func (s *GormStore) ListByOwner(userID uint) ([]models.Reminder, error) {
	var reminders []models.Reminder
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reminders).Error
	return reminders, err
}

// FindByOwner returns a single reminder owned by the user, or ErrNotFound
func (s *GormStore) FindByOwner(userID, id uint) (*models.Reminder, error) {
	var reminder models.Reminder
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&reminder).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &reminder, nil
}

// Create persists a new reminder
func (s *GormStore) Create(r *models.Reminder) error {
	return s.db.Create(r).Error
}

// Save writes back every field of an existing reminder, including nulls
func (s *GormStore) Save(r *models.Reminder) error {
	return s.db.Save(r).Error
}

// DeleteByOwner removes a reminder owned by the user; the bool reports
// whether a row was actually deleted
func (s *GormStore) DeleteByOwner(userID, id uint) (bool, error) {
	result := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Reminder{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
