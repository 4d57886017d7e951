// Package topics assigns hadith chapters to subject categories by scoring
// English chapter titles against a static keyword table.
package topics

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"

	"github.com/hadithdb/hadith-api/internal/entities"
)

// ErrMissingMiscTopic is returned when the fallback topic is absent from the
// database. Classification aborts rather than leave chapters topic-less.
var ErrMissingMiscTopic = errors.New("misc topic not found; refusing to classify")

// Classifier scores chapter titles against the topic keyword table.
// The table is immutable after construction.
type Classifier struct {
	table []TopicKeywords
}

// NewClassifier creates a classifier over the given keyword table.
// Pass KeywordTable() for the canonical taxonomy.
func NewClassifier(table []TopicKeywords) *Classifier {
	return &Classifier{table: table}
}

// ClassifyTitle picks the topic for one chapter title.
//
// The title is lower-cased and every topic's keywords are counted as
// substring occurrences; the topic with the strictly highest count wins,
// scanning the table in declared order, so ties keep the earlier topic.
// A title matching nothing falls back to "misc" with score 0. An empty or
// whitespace-only title is skipped entirely (ok=false).
func (c *Classifier) ClassifyTitle(title string) (slug string, score int, ok bool) {
	title = strings.ToLower(title)
	if strings.TrimSpace(title) == "" {
		return "", 0, false
	}

	bestSlug := ""
	bestScore := 0
	for _, entry := range c.table {
		n := 0
		for _, kw := range entry.Keywords {
			if strings.Contains(title, kw) {
				n++
			}
		}
		if n > bestScore {
			bestScore = n
			bestSlug = entry.Slug
		}
	}

	if bestScore == 0 {
		return entities.MiscTopicSlug, 0, true
	}
	return bestSlug, bestScore, true
}

// Report summarizes one batch classification pass.
type Report struct {
	Mapped  int `json:"mapped"`
	Misc    int `json:"misc"`
	Skipped int `json:"skipped"`
}

// ClassifyChapters runs a batch pass over every chapter, assigning each to a
// topic. Re-running over unchanged data produces identical assignments. The
// pass aborts before touching any chapter if the misc fallback topic is
// missing.
func (c *Classifier) ClassifyChapters(db *gorm.DB) (*Report, error) {
	var topicRows []entities.Topic
	if err := db.Find(&topicRows).Error; err != nil {
		return nil, fmt.Errorf("load topics: %w", err)
	}

	topicIDs := make(map[string]uint, len(topicRows))
	for _, t := range topicRows {
		topicIDs[t.Slug] = t.ID
	}
	if _, found := topicIDs[entities.MiscTopicSlug]; !found {
		return nil, ErrMissingMiscTopic
	}

	var chapters []entities.Chapter
	if err := db.Find(&chapters).Error; err != nil {
		return nil, fmt.Errorf("load chapters: %w", err)
	}

	report := &Report{}
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, chapter := range chapters {
			slug, _, classified := c.ClassifyTitle(chapter.TitleEn)
			if !classified {
				report.Skipped++
				continue
			}

			topicID, found := topicIDs[slug]
			if !found {
				// Keyword table entry with no topic row; bucket as misc
				// instead of writing a dangling reference.
				slug = entities.MiscTopicSlug
				topicID = topicIDs[slug]
			}
			if err := tx.Model(&entities.Chapter{}).
				Where("id = ?", chapter.ID).
				Update("topic_id", topicID).Error; err != nil {
				return fmt.Errorf("assign chapter %d: %w", chapter.ID, err)
			}

			if slug == entities.MiscTopicSlug {
				report.Misc++
			} else {
				report.Mapped++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Topic classification: %d mapped, %d defaulted to misc, %d skipped",
		report.Mapped, report.Misc, report.Skipped)
	return report, nil
}
