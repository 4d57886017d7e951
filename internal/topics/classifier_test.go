package topics

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hadithdb/hadith-api/internal/entities"
)

func setupTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()
	dbPath := "./test_topics_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Topic{}, &entities.Book{}, &entities.Chapter{})
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}
	return db, cleanup
}

func seedTopics(t *testing.T, db *gorm.DB, topics []entities.Topic) map[string]uint {
	t.Helper()
	ids := make(map[string]uint)
	for i := range topics {
		require.NoError(t, db.Create(&topics[i]).Error)
		ids[topics[i].Slug] = topics[i].ID
	}
	return ids
}

func TestClassifyTitle(t *testing.T) {
	c := NewClassifier(KeywordTable())

	t.Run("clear single topic", func(t *testing.T) {
		slug, score, ok := c.ClassifyTitle("The Book of Fasting in Ramadan")
		assert.True(t, ok)
		assert.Equal(t, "sawm", slug)
		assert.GreaterOrEqual(t, score, 2) // "fasting" (+ "fast") and "ramadan"
	})

	t.Run("case insensitive", func(t *testing.T) {
		upper, _, _ := c.ClassifyTitle("PRAYER OF THE TRAVELLER")
		lower, _, _ := c.ClassifyTitle("prayer of the traveller")
		assert.Equal(t, lower, upper)
	})

	t.Run("no keyword matches falls back to misc", func(t *testing.T) {
		slug, score, ok := c.ClassifyTitle("zzzz qqqq xxxx")
		assert.True(t, ok)
		assert.Equal(t, "misc", slug)
		assert.Equal(t, 0, score)
	})

	t.Run("empty title is skipped", func(t *testing.T) {
		_, _, ok := c.ClassifyTitle("")
		assert.False(t, ok)
	})

	t.Run("whitespace-only title is skipped", func(t *testing.T) {
		_, _, ok := c.ClassifyTitle("   \t ")
		assert.False(t, ok)
	})

	t.Run("tie keeps first topic in table order", func(t *testing.T) {
		table := []TopicKeywords{
			{"alpha", []string{"shared"}},
			{"beta", []string{"shared"}},
		}
		tied := NewClassifier(table)
		for i := 0; i < 20; i++ {
			slug, score, ok := tied.ClassifyTitle("a shared word")
			require.True(t, ok)
			assert.Equal(t, "alpha", slug)
			assert.Equal(t, 1, score)
		}
	})

	t.Run("strictly higher score beats earlier topic", func(t *testing.T) {
		table := []TopicKeywords{
			{"alpha", []string{"one"}},
			{"beta", []string{"one", "two"}},
		}
		slug, score, ok := NewClassifier(table).ClassifyTitle("one and two")
		require.True(t, ok)
		assert.Equal(t, "beta", slug)
		assert.Equal(t, 2, score)
	})
}

func TestClassifyChapters(t *testing.T) {
	t.Run("assigns, defaults and skips with counts", func(t *testing.T) {
		db, cleanup := setupTestDB(t)
		defer cleanup()

		ids := seedTopics(t, db, Taxonomy())

		book := entities.Book{NameEn: "Sahih al-Bukhari", NameAr: "صحيح البخاري", Slug: "bukhari"}
		require.NoError(t, db.Create(&book).Error)

		chapters := []entities.Chapter{
			{BookID: book.ID, Number: 1, TitleEn: "The Book of Prayer"},
			{BookID: book.ID, Number: 2, TitleEn: "Obligatory Charity Tax (Zakat)"},
			{BookID: book.ID, Number: 3, TitleEn: "xyzzy plugh"},
			{BookID: book.ID, Number: 4, TitleEn: ""},
		}
		for i := range chapters {
			require.NoError(t, db.Create(&chapters[i]).Error)
		}

		report, err := NewClassifier(KeywordTable()).ClassifyChapters(db)
		require.NoError(t, err)
		assert.Equal(t, 2, report.Mapped)
		assert.Equal(t, 1, report.Misc)
		assert.Equal(t, 1, report.Skipped)

		var prayer entities.Chapter
		require.NoError(t, db.First(&prayer, chapters[0].ID).Error)
		require.NotNil(t, prayer.TopicID)
		assert.Equal(t, ids["salah"], *prayer.TopicID)

		var zakat entities.Chapter
		require.NoError(t, db.First(&zakat, chapters[1].ID).Error)
		require.NotNil(t, zakat.TopicID)
		assert.Equal(t, ids["zakat"], *zakat.TopicID)

		var unmatched entities.Chapter
		require.NoError(t, db.First(&unmatched, chapters[2].ID).Error)
		require.NotNil(t, unmatched.TopicID)
		assert.Equal(t, ids["misc"], *unmatched.TopicID)

		var empty entities.Chapter
		require.NoError(t, db.First(&empty, chapters[3].ID).Error)
		assert.Nil(t, empty.TopicID)
	})

	t.Run("rerun produces identical assignments", func(t *testing.T) {
		db, cleanup := setupTestDB(t)
		defer cleanup()

		seedTopics(t, db, Taxonomy())
		book := entities.Book{NameEn: "Sahih Muslim", NameAr: "صحيح مسلم", Slug: "muslim"}
		require.NoError(t, db.Create(&book).Error)
		require.NoError(t, db.Create(&entities.Chapter{BookID: book.ID, Number: 1, TitleEn: "The Book of Fasting"}).Error)

		c := NewClassifier(KeywordTable())
		first, err := c.ClassifyChapters(db)
		require.NoError(t, err)
		second, err := c.ClassifyChapters(db)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("slug without a topic row falls back to misc", func(t *testing.T) {
		db, cleanup := setupTestDB(t)
		defer cleanup()

		// Only misc exists; the winning slug has no row to point at.
		var misc entities.Topic
		for _, topic := range Taxonomy() {
			if topic.Slug == entities.MiscTopicSlug {
				misc = topic
			}
		}
		ids := seedTopics(t, db, []entities.Topic{misc})

		book := entities.Book{NameEn: "Jami at-Tirmidhi", NameAr: "جامع الترمذي", Slug: "tirmidhi"}
		require.NoError(t, db.Create(&book).Error)
		chapter := entities.Chapter{BookID: book.ID, Number: 1, TitleEn: "The Book of Prayer"}
		require.NoError(t, db.Create(&chapter).Error)

		report, err := NewClassifier(KeywordTable()).ClassifyChapters(db)
		require.NoError(t, err)
		assert.Equal(t, 1, report.Misc)
		assert.Equal(t, 0, report.Mapped)

		var assigned entities.Chapter
		require.NoError(t, db.First(&assigned, chapter.ID).Error)
		require.NotNil(t, assigned.TopicID)
		assert.Equal(t, ids[entities.MiscTopicSlug], *assigned.TopicID)
	})

	t.Run("missing misc topic aborts without writes", func(t *testing.T) {
		db, cleanup := setupTestDB(t)
		defer cleanup()

		// Seed every topic except misc.
		var partial []entities.Topic
		for _, topic := range Taxonomy() {
			if topic.Slug != entities.MiscTopicSlug {
				partial = append(partial, topic)
			}
		}
		seedTopics(t, db, partial)

		book := entities.Book{NameEn: "Sunan Abu Dawud", NameAr: "سنن أبي داود", Slug: "abudawud"}
		require.NoError(t, db.Create(&book).Error)
		chapter := entities.Chapter{BookID: book.ID, Number: 1, TitleEn: "The Book of Prayer"}
		require.NoError(t, db.Create(&chapter).Error)

		_, err := NewClassifier(KeywordTable()).ClassifyChapters(db)
		require.ErrorIs(t, err, ErrMissingMiscTopic)

		var unchanged entities.Chapter
		require.NoError(t, db.First(&unchanged, chapter.ID).Error)
		assert.Nil(t, unchanged.TopicID)
	})
}
