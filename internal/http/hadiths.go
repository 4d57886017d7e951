package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hadithdb/hadith-api/internal/database/hadiths"
	"github.com/hadithdb/hadith-api/internal/search"
)

type HadithsController struct {
	repo *hadiths.Repository
}

func NewHadithsController(repo *hadiths.Repository) *HadithsController {
	return &HadithsController{repo: repo}
}

// List returns a filtered, paginated hadith listing.
func (controller *HadithsController) List(c *gin.Context) {
	filter := hadiths.ListFilter{
		BookSlug:      c.Query("book"),
		ChapterNumber: parseIntQuery(c, "chapter", 0),
		Grade:         c.Query("grade"),
		Page:          parseIntQuery(c, "page", 1),
		PageSize:      parseIntQuery(c, "page_size", search.DefaultPageSize),
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > search.MaxSearchPageSize {
		filter.PageSize = search.DefaultPageSize
	}

	results, total, err := controller.repo.List(filter)
	if err != nil {
		respondNotFound(c, "Book")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"hadiths":   hadithsToResponses(results),
		"total":     total,
		"page":      filter.Page,
		"page_size": filter.PageSize,
	})
}

// Random returns one random hadith matching the optional book/grade filters.
func (controller *HadithsController) Random(c *gin.Context) {
	hadith, err := controller.repo.Random(c.Query("book"), c.Query("grade"))
	if err != nil {
		respondNotFound(c, "Hadith")
		return
	}
	c.JSON(http.StatusOK, hadithToResponse(hadith))
}

// Get returns one hadith by its database ID.
func (controller *HadithsController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	hadith, err := controller.repo.GetByID(id)
	if err != nil {
		respondNotFound(c, "Hadith")
		return
	}
	c.JSON(http.StatusOK, hadithToResponse(hadith))
}
