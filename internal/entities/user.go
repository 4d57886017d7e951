package entities

import "time"

// LearningStatus tracks how far a child has come with one hadith.
// Flow: new -> reading -> memorizing -> memorized -> reviewing.
type LearningStatus string

const (
	StatusNew        LearningStatus = "new"
	StatusReading    LearningStatus = "reading"
	StatusMemorizing LearningStatus = "memorizing"
	StatusMemorized  LearningStatus = "memorized"
	StatusReviewing  LearningStatus = "reviewing"
)

// AllLearningStatuses lists every status in flow order, used for stats.
var AllLearningStatuses = []LearningStatus{
	StatusNew, StatusReading, StatusMemorizing, StatusMemorized, StatusReviewing,
}

// IsValid reports whether s is one of the known learning statuses.
func (s LearningStatus) IsValid() bool {
	for _, known := range AllLearningStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// User is a parent account. Each user can register multiple children whose
// memorization progress is tracked independently.
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Email          string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	HashedPassword string    `gorm:"size:255;not null" json:"-"`
	Name           string    `gorm:"size:100;not null" json:"name"`
	IsActive       bool      `gorm:"default:true" json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	Children       []Child   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"children,omitempty"`
}

type Child struct {
	ID        uint                  `gorm:"primaryKey" json:"id"`
	UserID    uint                  `gorm:"index;not null" json:"user_id"`
	Name      string                `gorm:"size:100;not null" json:"name"`
	Avatar    string                `gorm:"size:50" json:"avatar,omitempty"`
	CreatedAt time.Time             `json:"created_at"`
	Progress  []ChildHadithProgress `gorm:"foreignKey:ChildID;constraint:OnDelete:CASCADE" json:"progress,omitempty"`
}

type ChildHadithProgress struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	ChildID        uint           `gorm:"index;not null" json:"child_id"`
	HadithID       uint           `gorm:"index;not null" json:"hadith_id"`
	Status         LearningStatus `gorm:"size:20;default:new;not null" json:"status"`
	StartedAt      time.Time      `json:"started_at"`
	LastReviewedAt *time.Time     `json:"last_reviewed_at,omitempty"`
	MemorizedAt    *time.Time     `json:"memorized_at,omitempty"`
	ReviewCount    int            `gorm:"default:0" json:"review_count"`
	Notes          string         `gorm:"size:500" json:"notes,omitempty"`
	Hadith         Hadith         `gorm:"foreignKey:HadithID" json:"-"`
}
