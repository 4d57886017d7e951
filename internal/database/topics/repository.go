// Package topics provides read access to the topic taxonomy and the chapters
// assigned to each topic.
package topics

import (
	"gorm.io/gorm"

	"github.com/hadithdb/hadith-api/internal/entities"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// TopicWithCount pairs a topic with the number of chapters assigned to it.
type TopicWithCount struct {
	Topic        entities.Topic
	ChapterCount int64
}

// ListTopics returns all topics in display order with their chapter counts.
func (r *Repository) ListTopics() ([]TopicWithCount, error) {
	var topics []entities.Topic
	if err := r.db.Order("display_order, id").Find(&topics).Error; err != nil {
		return nil, err
	}

	result := make([]TopicWithCount, 0, len(topics))
	for _, topic := range topics {
		var count int64
		if err := r.db.Model(&entities.Chapter{}).
			Where("topic_id = ?", topic.ID).
			Count(&count).Error; err != nil {
			return nil, err
		}
		result = append(result, TopicWithCount{Topic: topic, ChapterCount: count})
	}
	return result, nil
}

// GetBySlug returns a single topic by slug.
func (r *Repository) GetBySlug(slug string) (*entities.Topic, error) {
	var topic entities.Topic
	if err := r.db.Where("slug = ?", slug).First(&topic).Error; err != nil {
		return nil, err
	}
	return &topic, nil
}

// GetChapters returns the chapters assigned to a topic with their books
// preloaded, ordered by book and chapter number.
func (r *Repository) GetChapters(topicID uint) ([]entities.Chapter, error) {
	var chapters []entities.Chapter
	err := r.db.Preload("Book").
		Where("topic_id = ?", topicID).
		Order("book_id, number").
		Find(&chapters).Error
	return chapters, err
}

// GetSahihHadiths returns the hadiths of a topic that carry at least one
// grade containing "sahih", paginated, with the total before pagination.
func (r *Repository) GetSahihHadiths(topicID uint, page, pageSize int) ([]entities.Hadith, int64, error) {
	sahihIDs := r.db.Model(&entities.Grade{}).
		Distinct("hadith_id").
		Where("lower(grade) LIKE ?", "%sahih%")

	query := r.db.Model(&entities.Hadith{}).
		Joins("JOIN chapters ON chapters.id = hadiths.chapter_id").
		Where("chapters.topic_id = ?", topicID).
		Where("hadiths.id IN (?)", sahihIDs)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var hadiths []entities.Hadith
	err := query.
		Preload("Book").
		Preload("Chapter").
		Preload("Grades").
		Order("hadiths.book_id, hadiths.hadith_number").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&hadiths).Error
	return hadiths, total, err
}
