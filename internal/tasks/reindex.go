package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/hadithdb/hadith-api/internal/entities"
	"github.com/hadithdb/hadith-api/internal/search"
)

const reindexBatchSize = 500

// HadithStreamer feeds the full hadith corpus in batches with book and
// grades preloaded.
type HadithStreamer interface {
	ForEachBatch(batchSize int, fn func(batch []entities.Hadith) error) error
}

// SearchIndexer is the slice of the search engine the reindex task needs.
type SearchIndexer interface {
	IsConnected() bool
	CreateIndex() error
	DeleteIndex() error
	IndexDocuments(docs []search.Document) error
}

// ReindexSearchTask rebuilds the search index from the database. Rebuild is
// drop-and-recreate, so index settings always match the current code.
type ReindexSearchTask struct{}

// Config returns the queue configuration for reindex tasks.
func (t ReindexSearchTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "reindex_search",
		MaxAttempts: 2,
		Backoff:     5 * time.Minute,
		Timeout:     30 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// ReindexSearchProcessor creates a processor function for ReindexSearchTask.
func ReindexSearchProcessor(indexer SearchIndexer, streamer HadithStreamer) backlite.QueueProcessor[ReindexSearchTask] {
	return func(ctx context.Context, task ReindexSearchTask) error {
		if indexer == nil || streamer == nil {
			return fmt.Errorf("search reindex not configured")
		}
		if !indexer.IsConnected() {
			return fmt.Errorf("search engine unavailable")
		}

		if err := indexer.DeleteIndex(); err != nil {
			log.Printf("[TASK] Index deletion before rebuild failed (may not exist yet): %v", err)
		}
		if err := indexer.CreateIndex(); err != nil {
			return fmt.Errorf("create index: %w", err)
		}

		var indexed int
		err := streamer.ForEachBatch(reindexBatchSize, func(batch []entities.Hadith) error {
			docs := make([]search.Document, 0, len(batch))
			for _, hadith := range batch {
				docs = append(docs, search.DocumentFromHadith(hadith))
			}
			if err := indexer.IndexDocuments(docs); err != nil {
				return err
			}
			indexed += len(docs)
			return nil
		})
		if err != nil {
			return fmt.Errorf("index hadiths: %w", err)
		}

		log.Printf("[TASK] Reindexed %d hadiths", indexed)
		return nil
	}
}

// NewReindexSearchQueue creates a backlite queue for search reindex tasks.
func NewReindexSearchQueue(indexer SearchIndexer, streamer HadithStreamer) backlite.Queue {
	return backlite.NewQueue(ReindexSearchProcessor(indexer, streamer))
}
