package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hadithdb/hadith-api/internal/database"
	"github.com/hadithdb/hadith-api/internal/search"
)

type HealthResponse struct {
	Status  string            `json:"status"`
	Time    string            `json:"time"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks"`
}

type HealthController struct {
	db       *database.Database
	searcher search.Searcher
	version  string
}

func NewHealthController(db *database.Database, searcher search.Searcher, version string) *HealthController {
	return &HealthController{
		db:       db,
		searcher: searcher,
		version:  version,
	}
}

// Status reports database and search index connectivity. A down search index
// degrades the status but the endpoint stays 200 because the catalogue
// endpoints keep working without it.
func (h *HealthController) Status(c *gin.Context) {
	checks := make(map[string]string)
	status := "healthy"

	if h.db != nil {
		sqlDB, err := h.db.DB.DB()
		if err != nil {
			checks["database"] = "error: " + err.Error()
			status = "unhealthy"
		} else if err := sqlDB.Ping(); err != nil {
			checks["database"] = "error: " + err.Error()
			status = "unhealthy"
		} else {
			checks["database"] = "ok"
		}
	} else {
		checks["database"] = "not configured"
	}

	if h.searcher != nil && h.searcher.IsConnected() {
		checks["search"] = "ok"
	} else {
		checks["search"] = "unavailable"
		if status == "healthy" {
			status = "degraded"
		}
	}

	health := HealthResponse{
		Status:  status,
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Checks:  checks,
	}

	statusCode := http.StatusOK
	if status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.IndentedJSON(statusCode, health)
}
