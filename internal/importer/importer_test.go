package importer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
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

const arabicEditionFixture = `{
	"metadata": {
		"name": "صحيح البخاري",
		"sections": {"0": "", "1": "بدء الوحي"},
		"section_details": {
			"1": {"hadithnumber_first": 1, "hadithnumber_last": 2}
		}
	},
	"hadiths": [
		{"hadithnumber": 1, "arabicnumber": 1, "text": "إنما الأعمال بالنيات",
		 "grades": [{"name": "Grader Ar", "grade": "صحيح"}]},
		{"hadithnumber": 2, "arabicnumber": 2, "text": "بني الإسلام على خمس", "grades": []},
		{"hadithnumber": null, "text": "بلا رقم", "grades": []}
	]
}`

const englishEditionFixture = `{
	"metadata": {
		"name": "Sahih al-Bukhari",
		"sections": {"0": "", "1": "Revelation"},
		"section_details": {
			"1": {"hadithnumber_first": 1, "hadithnumber_last": 2}
		}
	},
	"hadiths": [
		{"hadithnumber": 1, "text": "Actions are but by intentions",
		 "grades": [{"name": "Grader En", "grade": "Sahih"}]},
		{"hadithnumber": 2, "text": "Islam is built upon five", "grades": []}
	]
}`

func setupImportTest(t *testing.T) (*gorm.DB, *httptest.Server, func()) {
	t.Helper()
	dbPath := "./test_importer_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.Book{}, &entities.Chapter{}, &entities.Hadith{}, &entities.Grade{},
	))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.Contains(r.URL.Path, "ara-"):
			w.Write([]byte(arabicEditionFixture))
		case strings.Contains(r.URL.Path, "eng-"):
			w.Write([]byte(englishEditionFixture))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	cleanup := func() {
		server.Close()
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}
	return db, server, cleanup
}

func TestEditionDecoding(t *testing.T) {
	var edition Edition
	require.NoError(t, json.Unmarshal([]byte(arabicEditionFixture), &edition))

	assert.Equal(t, SectionTitle("بدء الوحي"), edition.Metadata.Sections["1"])
	assert.Equal(t, 1, edition.Metadata.SectionDetails["1"].HadithFirst.Int())
	assert.Equal(t, 2, edition.Metadata.SectionDetails["1"].HadithLast.Int())
	require.Len(t, edition.Hadiths, 3)
	assert.Equal(t, 0, edition.Hadiths[2].HadithNumber.Int())

	t.Run("fractional and string numbers", func(t *testing.T) {
		var h EditionHadith
		require.NoError(t, json.Unmarshal([]byte(`{"hadithnumber": 1154.5}`), &h))
		assert.Equal(t, 1154, h.HadithNumber.Int())

		require.NoError(t, json.Unmarshal([]byte(`{"hadithnumber": "7"}`), &h))
		assert.Equal(t, 7, h.HadithNumber.Int())
	})

	t.Run("object section titles", func(t *testing.T) {
		var title SectionTitle
		require.NoError(t, json.Unmarshal([]byte(`{"title": "Revelation"}`), &title))
		assert.Equal(t, SectionTitle("Revelation"), title)
	})
}

func TestImporter_ImportBook(t *testing.T) {
	db, server, cleanup := setupImportTest(t)
	defer cleanup()

	importer := NewImporter(db, NewClient(server.URL))
	stats, err := importer.importBook(context.Background(), Catalogue()[0])
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Hadiths)
	assert.Equal(t, 1, stats.Grades)
	assert.Equal(t, 2, stats.Chapters)

	var book entities.Book
	require.NoError(t, db.Where("slug = ?", "bukhari").First(&book).Error)
	assert.Equal(t, 2, book.HadithCount)

	t.Run("merges english text and prefers english grades", func(t *testing.T) {
		var hadith entities.Hadith
		require.NoError(t, db.Preload("Grades").
			Where("book_id = ? AND hadith_number = 1", book.ID).
			First(&hadith).Error)

		assert.Equal(t, "إنما الأعمال بالنيات", hadith.TextAr)
		assert.Equal(t, "Actions are but by intentions", hadith.TextEn)
		assert.Equal(t, "bukhari:1", hadith.Reference)
		require.Len(t, hadith.Grades, 1)
		assert.Equal(t, "Grader En", hadith.Grades[0].GraderName)
	})

	t.Run("assigns chapters by hadith number range", func(t *testing.T) {
		var hadith entities.Hadith
		require.NoError(t, db.Preload("Chapter").
			Where("book_id = ? AND hadith_number = 2", book.ID).
			First(&hadith).Error)

		require.NotNil(t, hadith.Chapter)
		assert.Equal(t, 1, hadith.Chapter.Number)
		assert.Equal(t, "Revelation", hadith.Chapter.TitleEn)
	})

	t.Run("reimport replaces instead of duplicating", func(t *testing.T) {
		_, err := importer.importBook(context.Background(), Catalogue()[0])
		require.NoError(t, err)

		var count int64
		require.NoError(t, db.Model(&entities.Hadith{}).Count(&count).Error)
		assert.Equal(t, int64(2), count)
	})
}
