// Package progress provides database operations for children and their
// hadith memorization progress.
package progress

import (
	"time"

	"gorm.io/gorm"

	"github.com/hadithdb/hadith-api/internal/entities"
)

// Repository handles child and progress database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new progress repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// --- Children ---

// CreateChild registers a child under a parent account.
func (r *Repository) CreateChild(userID uint, name, avatar string) (*entities.Child, error) {
	child := &entities.Child{
		UserID: userID,
		Name:   name,
		Avatar: avatar,
	}
	if err := r.db.Create(child).Error; err != nil {
		return nil, err
	}
	return child, nil
}

// GetChildren returns all children of a parent.
func (r *Repository) GetChildren(userID uint) ([]entities.Child, error) {
	var children []entities.Child
	err := r.db.Where("user_id = ?", userID).Order("id").Find(&children).Error
	return children, err
}

// GetChild returns one child, scoped to the owning parent.
func (r *Repository) GetChild(childID, userID uint) (*entities.Child, error) {
	var child entities.Child
	err := r.db.Where("id = ? AND user_id = ?", childID, userID).First(&child).Error
	if err != nil {
		return nil, err
	}
	return &child, nil
}

// UpdateChild renames a child or changes its avatar.
func (r *Repository) UpdateChild(child *entities.Child) error {
	return r.db.Save(child).Error
}

// DeleteChild removes a child and all of its progress records.
func (r *Repository) DeleteChild(childID uint) error {
	if err := r.db.Where("child_id = ?", childID).
		Delete(&entities.ChildHadithProgress{}).Error; err != nil {
		return err
	}
	return r.db.Delete(&entities.Child{}, childID).Error
}

// --- Progress ---

// ListProgress returns a child's progress records, optionally filtered by status.
func (r *Repository) ListProgress(childID uint, status entities.LearningStatus) ([]entities.ChildHadithProgress, error) {
	query := r.db.Where("child_id = ?", childID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var records []entities.ChildHadithProgress
	err := query.Order("id").Find(&records).Error
	return records, err
}

// GetProgress returns one progress record of a child for a hadith.
func (r *Repository) GetProgress(childID, hadithID uint) (*entities.ChildHadithProgress, error) {
	var record entities.ChildHadithProgress
	err := r.db.Where("child_id = ? AND hadith_id = ?", childID, hadithID).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// StartProgress creates a new progress record with status "new".
func (r *Repository) StartProgress(childID, hadithID uint) (*entities.ChildHadithProgress, error) {
	record := &entities.ChildHadithProgress{
		ChildID:   childID,
		HadithID:  hadithID,
		Status:    entities.StatusNew,
		StartedAt: time.Now().UTC(),
	}
	if err := r.db.Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// UpdateStatus advances a progress record to a new learning status,
// stamping review/memorization times as appropriate.
func (r *Repository) UpdateStatus(record *entities.ChildHadithProgress, status entities.LearningStatus, notes string) error {
	now := time.Now().UTC()
	record.Status = status
	if notes != "" {
		record.Notes = notes
	}
	switch status {
	case entities.StatusMemorized:
		record.MemorizedAt = &now
	case entities.StatusReviewing:
		record.LastReviewedAt = &now
		record.ReviewCount++
	}
	return r.db.Save(record).Error
}

// DeleteProgress removes one progress record.
func (r *Repository) DeleteProgress(id uint) error {
	return r.db.Delete(&entities.ChildHadithProgress{}, id).Error
}

// Stats returns per-status counts for a child, plus the total.
func (r *Repository) Stats(childID uint) (map[string]int64, error) {
	stats := make(map[string]int64, len(entities.AllLearningStatuses)+1)
	var total int64
	for _, status := range entities.AllLearningStatuses {
		var count int64
		err := r.db.Model(&entities.ChildHadithProgress{}).
			Where("child_id = ? AND status = ?", childID, status).
			Count(&count).Error
		if err != nil {
			return nil, err
		}
		stats[string(status)] = count
		total += count
	}
	stats["total"] = total
	return stats, nil
}
