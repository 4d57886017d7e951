package database

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hadithdb/hadith-api/internal/entities"
	"github.com/hadithdb/hadith-api/internal/topics"
)

func setupDB(t *testing.T) (*Database, func()) {
	t.Helper()
	dbPath := "./test_db_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"

	db, err := NewDatabase(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, cleanup
}

func TestNewDatabase_SeedsTopics(t *testing.T) {
	db, cleanup := setupDB(t)
	defer cleanup()

	var count int64
	require.NoError(t, db.DB.Model(&entities.Topic{}).Count(&count).Error)
	assert.Equal(t, int64(len(topics.Taxonomy())), count)

	var misc entities.Topic
	require.NoError(t, db.DB.Where("slug = ?", entities.MiscTopicSlug).First(&misc).Error)
	assert.Equal(t, "Miscellaneous", misc.NameEn)
}

func TestNewDatabase_SeedIsIdempotent(t *testing.T) {
	dbPath := "./test_db_reseed.db"
	defer os.Remove(dbPath)

	db, err := NewDatabase(dbPath)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Re-open: seeding must not duplicate topics.
	db, err = NewDatabase(dbPath)
	require.NoError(t, err)
	defer db.Close()

	var count int64
	require.NoError(t, db.DB.Model(&entities.Topic{}).Count(&count).Error)
	assert.Equal(t, int64(len(topics.Taxonomy())), count)
}
