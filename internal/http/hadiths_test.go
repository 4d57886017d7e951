package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hadithdb/hadith-api/internal/database"
	"github.com/hadithdb/hadith-api/internal/database/hadiths"
	"github.com/hadithdb/hadith-api/internal/entities"
)

func setupHadithsTestDB(t *testing.T) (*database.Database, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_http_hadiths_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, cleanup
}

func seedCatalogue(t *testing.T, db *database.Database) {
	t.Helper()
	book := &entities.Book{NameEn: "Sahih al-Bukhari", NameAr: "صحيح البخاري", Slug: "bukhari"}
	require.NoError(t, db.DB.Create(book).Error)

	chapter := &entities.Chapter{BookID: book.ID, Number: 1, TitleEn: "Revelation"}
	require.NoError(t, db.DB.Create(chapter).Error)

	hadith := &entities.Hadith{
		BookID:       book.ID,
		ChapterID:    &chapter.ID,
		HadithNumber: 1,
		TextAr:       "إنما الأعمال بالنيات",
		TextEn:       "Actions are but by intentions",
	}
	require.NoError(t, db.DB.Create(hadith).Error)
	require.NoError(t, db.DB.Create(&entities.Grade{
		HadithID: hadith.ID, GraderName: "Grader", Grade: "Sahih",
	}).Error)
}

func TestHadithsController_List(t *testing.T) {
	db, cleanup := setupHadithsTestDB(t)
	defer cleanup()
	seedCatalogue(t, db)

	controller := NewHadithsController(hadiths.NewRepository(db.DB))
	router := gin.New()
	router.GET("/api/v1/hadiths", controller.List)

	t.Run("lists with book filter", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/hadiths?book=bukhari", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, float64(1), response["total"])

		results := response["hadiths"].([]interface{})
		require.Len(t, results, 1)
		first := results[0].(map[string]interface{})
		assert.Equal(t, "bukhari", first["book_slug"])
		assert.Equal(t, float64(1), first["chapter_number"])
		assert.Len(t, first["grades"], 1)
	})

	t.Run("unknown book yields 404", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/hadiths?book=nope", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHadithsController_Get(t *testing.T) {
	db, cleanup := setupHadithsTestDB(t)
	defer cleanup()
	seedCatalogue(t, db)

	controller := NewHadithsController(hadiths.NewRepository(db.DB))
	router := gin.New()
	router.GET("/api/v1/hadiths/:id", controller.Get)

	t.Run("returns full record", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/hadiths/1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response HadithResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "إنما الأعمال بالنيات", response.TextAr)
		assert.Equal(t, "Sahih al-Bukhari", response.BookNameEn)
	})

	t.Run("missing hadith yields 404", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/hadiths/999", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-numeric id yields 400", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/hadiths/abc", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
