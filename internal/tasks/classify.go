package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/mikestefanello/backlite"
	"gorm.io/gorm"

	"github.com/hadithdb/hadith-api/internal/topics"
)

// ClassifyChaptersTask assigns every chapter to a topic by keyword matching
// against chapter titles.
type ClassifyChaptersTask struct{}

// Config returns the queue configuration for classification tasks.
func (t ClassifyChaptersTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "classify_chapters",
		MaxAttempts: 1,
		Backoff:     time.Minute,
		Timeout:     10 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// ClassifyChaptersProcessor creates a processor function for ClassifyChaptersTask.
func ClassifyChaptersProcessor(db *gorm.DB) backlite.QueueProcessor[ClassifyChaptersTask] {
	return func(ctx context.Context, task ClassifyChaptersTask) error {
		if db == nil {
			return fmt.Errorf("database not configured")
		}
		classifier := topics.NewClassifier(topics.KeywordTable())
		_, err := classifier.ClassifyChapters(db)
		return err
	}
}

// NewClassifyChaptersQueue creates a backlite queue for classification tasks.
func NewClassifyChaptersQueue(db *gorm.DB) backlite.Queue {
	return backlite.NewQueue(ClassifyChaptersProcessor(db))
}
