package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hadithdb/hadith-api/internal/auth"
	"github.com/hadithdb/hadith-api/internal/database"
	"github.com/hadithdb/hadith-api/internal/entities"
)

// setupAuthedRouter builds the full router with auth enabled and returns a
// Bearer token for a registered parent.
func setupAuthedRouter(t *testing.T) (*gin.Engine, *database.Database, string, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_children_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	tokens := auth.NewTokenManager("test-secret", time.Hour)
	authService := auth.NewService(db.DB, tokens, 4)

	_, err = authService.Register("parent@example.com", "s3cret12", "Parent")
	require.NoError(t, err)
	token, err := authService.Login("parent@example.com", "s3cret12")
	require.NoError(t, err)

	router := NewRouter(RouterConfig{
		Database:    db,
		Searcher:    &stubSearcher{},
		Verifier:    nil,
		AuthService: authService,
		Version:     "test",
	})

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return router, db, token, cleanup
}

func authedRequest(method, url string, body []byte, token string) *http.Request {
	req, _ := http.NewRequest(method, url, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestChildrenRoutes(t *testing.T) {
	router, db, token, cleanup := setupAuthedRouter(t)
	defer cleanup()

	t.Run("rejects missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest("GET", "/api/v1/children", nil, ""))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Not authenticated")
	})

	t.Run("rejects garbage token", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest("GET", "/api/v1/children", nil, "garbage"))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Could not validate credentials")
	})

	t.Run("create and list children", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{"name": "Yusuf", "avatar": "lion"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest("POST", "/api/v1/children", body, token))
		require.Equal(t, http.StatusCreated, w.Code)

		w = httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest("GET", "/api/v1/children", nil, token))
		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, float64(1), response["count"])
	})

	t.Run("progress lifecycle over HTTP", func(t *testing.T) {
		book := &entities.Book{NameEn: "Sahih Muslim", NameAr: "صحيح مسلم", Slug: "muslim"}
		require.NoError(t, db.DB.Create(book).Error)
		hadith := &entities.Hadith{BookID: book.ID, HadithNumber: 1, TextAr: "نص"}
		require.NoError(t, db.DB.Create(hadith).Error)

		body, _ := json.Marshal(map[string]uint{"hadith_id": hadith.ID})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest("POST", "/api/v1/children/1/progress", body, token))
		require.Equal(t, http.StatusCreated, w.Code)

		// duplicate tracking is a conflict
		w = httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest("POST", "/api/v1/children/1/progress", body, token))
		assert.Equal(t, http.StatusConflict, w.Code)

		body, _ = json.Marshal(map[string]string{"status": "memorized"})
		w = httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest("PUT", "/api/v1/children/1/progress/1", body, token))
		assert.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest("GET", "/api/v1/children/1/progress/stats", nil, token))
		assert.Equal(t, http.StatusOK, w.Code)

		var stats map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
		counts := stats["stats"].(map[string]interface{})
		assert.Equal(t, float64(1), counts["memorized"])
		assert.Equal(t, float64(1), counts["total"])
	})

	t.Run("another parent cannot see the child", func(t *testing.T) {
		tokens := auth.NewTokenManager("test-secret", time.Hour)
		other := auth.NewService(db.DB, tokens, 4)
		_, err := other.Register("other@example.com", "s3cret12", "Other")
		require.NoError(t, err)
		otherToken, err := other.Login("other@example.com", "s3cret12")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest("GET", "/api/v1/children/1", nil, otherToken))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
