package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hadithdb/hadith-api/internal/search"
)

// Minimum query lengths, in runes. Arabic queries are short in bytes per
// character so byte length would over-reject.
const (
	minSearchQueryLen = 2
	minVerifyTextLen  = 10
)

type SearchController struct {
	searcher search.Searcher
	verifier *search.Verifier
}

func NewSearchController(searcher search.Searcher, verifier *search.Verifier) *SearchController {
	return &SearchController{searcher: searcher, verifier: verifier}
}

// Search runs a full-text query with optional book/grade filters and
// highlighted matches.
func (controller *SearchController) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if len([]rune(query)) < minSearchQueryLen {
		respondBadRequest(c, "Query must be at least 2 characters")
		return
	}
	if !controller.searcher.IsConnected() {
		respondError(c, http.StatusServiceUnavailable, "Search service unavailable")
		return
	}

	opts := search.QueryOptions{
		Book:     c.Query("book"),
		Grade:    c.Query("grade"),
		Page:     parseIntQuery(c, "page", 1),
		PageSize: parseIntQuery(c, "page_size", search.DefaultPageSize),
	}
	req := search.BuildSearchRequest(query, opts)

	result, err := controller.searcher.Search(req)
	if err != nil {
		respondError(c, http.StatusServiceUnavailable, "Search service unavailable")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":              query,
		"hits":               result.Hits,
		"total":              result.EstimatedTotal,
		"page":               int(req.Offset/req.Limit) + 1,
		"page_size":          req.Limit,
		"processing_time_ms": result.ProcessingTimeMs,
	})
}

// Autocomplete returns lightweight suggestions for a query prefix.
func (controller *SearchController) Autocomplete(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if len([]rune(query)) < minSearchQueryLen {
		respondBadRequest(c, "Query must be at least 2 characters")
		return
	}
	if !controller.searcher.IsConnected() {
		respondError(c, http.StatusServiceUnavailable, "Search service unavailable")
		return
	}

	req := search.BuildAutocompleteRequest(query, parseIntQuery(c, "limit", search.DefaultSuggestionLimit))

	result, err := controller.searcher.Autocomplete(req)
	if err != nil {
		respondError(c, http.StatusServiceUnavailable, "Search service unavailable")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":       query,
		"suggestions": result.Hits,
		"total":       result.EstimatedTotal,
	})
}

// Verify checks whether a quoted text is an authentic hadith. The endpoint
// never fails on index errors; it reports an unverified outcome instead.
func (controller *SearchController) Verify(c *gin.Context) {
	text := strings.TrimSpace(c.Query("text"))
	if len([]rune(text)) < minVerifyTextLen {
		respondBadRequest(c, "Text must be at least 10 characters")
		return
	}

	verification := controller.verifier.Verify(text)

	response := gin.H{
		"found":           verification.Found,
		"query":           text,
		"hadith":          nil,
		"similar_hadiths": []HadithResponse{},
		"message":         verification.Message,
	}
	if verification.Hadith != nil {
		response["hadith"] = hadithToResponse(verification.Hadith)
	}
	if len(verification.Similar) > 0 {
		similar := make([]HadithResponse, 0, len(verification.Similar))
		for _, h := range verification.Similar {
			similar = append(similar, hadithToResponse(h))
		}
		response["similar_hadiths"] = similar
	}

	c.JSON(http.StatusOK, response)
}
