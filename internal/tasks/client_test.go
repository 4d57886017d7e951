package tasks

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hadithdb/hadith-api/internal/entities"
	"github.com/hadithdb/hadith-api/internal/search"
)

func TestNewClient(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	cfg := DefaultConfig()
	cfg.Workers = 1

	client, err := NewClient(dbPath, cfg)
	require.NoError(t, err)
	require.NotNil(t, client)

	// Verify the queue got its own database next to the main one
	tasksDBPath := filepath.Join(tmpDir, "test-tasks.db")
	_, err = os.Stat(tasksDBPath)
	assert.NoError(t, err, "tasks database should be created")

	assert.NoError(t, client.Close())
}

func TestClientStartStop(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	cfg := DefaultConfig()
	cfg.Workers = 1

	client, err := NewClient(dbPath, cfg)
	require.NoError(t, err)
	defer client.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go client.Start(ctx)

	time.Sleep(50 * time.Millisecond)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer stopCancel()
	assert.True(t, client.Stop(stopCtx), "stop should succeed gracefully")
}

func TestReindexSearchTaskConfig(t *testing.T) {
	cfg := ReindexSearchTask{}.Config()

	assert.Equal(t, "reindex_search", cfg.Name)
	assert.Equal(t, 2, cfg.MaxAttempts)
	assert.Equal(t, 30*time.Minute, cfg.Timeout)
	assert.NotNil(t, cfg.Retention)
}

func TestClassifyChaptersTaskConfig(t *testing.T) {
	cfg := ClassifyChaptersTask{}.Config()

	assert.Equal(t, "classify_chapters", cfg.Name)
	assert.Equal(t, 1, cfg.MaxAttempts)
}

type fakeIndexer struct {
	connected bool
	created   bool
	deleted   bool
	docs      int
}

func (f *fakeIndexer) IsConnected() bool { return f.connected }
func (f *fakeIndexer) CreateIndex() error {
	f.created = true
	return nil
}
func (f *fakeIndexer) DeleteIndex() error {
	f.deleted = true
	return nil
}
func (f *fakeIndexer) IndexDocuments(docs []search.Document) error {
	f.docs += len(docs)
	return nil
}

type fakeStreamer struct {
	batches [][]entities.Hadith
}

func (f *fakeStreamer) ForEachBatch(batchSize int, fn func(batch []entities.Hadith) error) error {
	for _, batch := range f.batches {
		if err := fn(batch); err != nil {
			return err
		}
	}
	return nil
}

func TestReindexSearchProcessor(t *testing.T) {
	t.Run("rebuilds the index from batches", func(t *testing.T) {
		indexer := &fakeIndexer{connected: true}
		streamer := &fakeStreamer{batches: [][]entities.Hadith{
			{{TextAr: "نص"}, {TextAr: "نص"}},
			{{TextAr: "نص"}},
		}}

		processor := ReindexSearchProcessor(indexer, streamer)
		require.NoError(t, processor(context.Background(), ReindexSearchTask{}))

		assert.True(t, indexer.deleted)
		assert.True(t, indexer.created)
		assert.Equal(t, 3, indexer.docs)
	})

	t.Run("fails fast when engine is down", func(t *testing.T) {
		processor := ReindexSearchProcessor(&fakeIndexer{connected: false}, &fakeStreamer{})
		err := processor(context.Background(), ReindexSearchTask{})
		assert.Error(t, err)
	})

	t.Run("fails when not configured", func(t *testing.T) {
		processor := ReindexSearchProcessor(nil, nil)
		assert.Error(t, processor(context.Background(), ReindexSearchTask{}))
	})
}
