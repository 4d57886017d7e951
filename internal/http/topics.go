package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"

	topicsrepo "github.com/hadithdb/hadith-api/internal/database/topics"
	"github.com/hadithdb/hadith-api/internal/entities"
)

const topicsCacheKey = "topics.list"

type topicResponse struct {
	ID            uint   `json:"id"`
	Slug          string `json:"slug"`
	NameEn        string `json:"name_en"`
	NameAr        string `json:"name_ar"`
	DescriptionEn string `json:"description_en,omitempty"`
	DescriptionAr string `json:"description_ar,omitempty"`
	Icon          string `json:"icon,omitempty"`
	ChapterCount  int64  `json:"chapter_count"`
}

type topicChapterResponse struct {
	BookSlug   string `json:"book_slug"`
	BookNameEn string `json:"book_name_en"`
	Number     int    `json:"number"`
	TitleEn    string `json:"title_en,omitempty"`
	TitleAr    string `json:"title_ar,omitempty"`
}

// TopicsController serves the topic taxonomy. The topic list barely changes
// after classification, so it is cached in memory for a few minutes.
type TopicsController struct {
	repo  *topicsrepo.Repository
	cache *cache.Cache
}

func NewTopicsController(repo *topicsrepo.Repository) *TopicsController {
	return &TopicsController{
		repo:  repo,
		cache: cache.New(5*time.Minute, 10*time.Minute),
	}
}

func (controller *TopicsController) ListTopics(c *gin.Context) {
	if cached, found := controller.cache.Get(topicsCacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	topics, err := controller.repo.ListTopics()
	if err != nil {
		respondInternalError(c, err, "list topics")
		return
	}

	responses := make([]topicResponse, 0, len(topics))
	for _, t := range topics {
		responses = append(responses, topicToResponse(t.Topic, t.ChapterCount))
	}

	payload := gin.H{"topics": responses, "count": len(responses)}
	controller.cache.Set(topicsCacheKey, payload, cache.DefaultExpiration)
	c.JSON(http.StatusOK, payload)
}

func (controller *TopicsController) GetTopic(c *gin.Context) {
	topic, err := controller.repo.GetBySlug(c.Param("slug"))
	if err != nil {
		respondNotFound(c, "Topic")
		return
	}

	chapters, err := controller.repo.GetChapters(topic.ID)
	if err != nil {
		respondInternalError(c, err, "list topic chapters")
		return
	}

	chapterResponses := make([]topicChapterResponse, 0, len(chapters))
	for _, chapter := range chapters {
		chapterResponses = append(chapterResponses, topicChapterResponse{
			BookSlug:   chapter.Book.Slug,
			BookNameEn: chapter.Book.NameEn,
			Number:     chapter.Number,
			TitleEn:    chapter.TitleEn,
			TitleAr:    chapter.TitleAr,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"topic":    topicToResponse(*topic, int64(len(chapters))),
		"chapters": chapterResponses,
	})
}

// GetTopicSahih lists only the hadiths of a topic that scholars graded
// sahih, with the non-sahih grades stripped from each record.
func (controller *TopicsController) GetTopicSahih(c *gin.Context) {
	topic, err := controller.repo.GetBySlug(c.Param("slug"))
	if err != nil {
		respondNotFound(c, "Topic")
		return
	}

	page := parseIntQuery(c, "page", 1)
	if page < 1 {
		page = 1
	}
	pageSize := parseIntQuery(c, "page_size", 20)
	if pageSize < 1 {
		pageSize = 1
	} else if pageSize > 100 {
		pageSize = 100
	}

	hadiths, total, err := controller.repo.GetSahihHadiths(topic.ID, page, pageSize)
	if err != nil {
		respondInternalError(c, err, "list sahih hadiths")
		return
	}

	responses := make([]sahihHadithResponse, 0, len(hadiths))
	for _, hadith := range hadiths {
		responses = append(responses, sahihHadithToResponse(hadith))
	}

	c.JSON(http.StatusOK, gin.H{
		"topic": gin.H{
			"slug":           topic.Slug,
			"name_en":        topic.NameEn,
			"name_ar":        topic.NameAr,
			"description_en": topic.DescriptionEn,
			"description_ar": topic.DescriptionAr,
		},
		"hadiths":     responses,
		"total_sahih": total,
		"page":        page,
		"page_size":   pageSize,
		"total_pages": (total + int64(pageSize) - 1) / int64(pageSize),
	})
}

type sahihHadithResponse struct {
	ID             uint            `json:"id"`
	HadithNumber   int             `json:"hadith_number"`
	TextAr         string          `json:"text_ar"`
	TextEn         string          `json:"text_en,omitempty"`
	NarratorEn     string          `json:"narrator_en,omitempty"`
	Reference      string          `json:"reference,omitempty"`
	BookSlug       string          `json:"book_slug"`
	BookNameEn     string          `json:"book_name_en"`
	BookNameAr     string          `json:"book_name_ar"`
	ChapterTitleEn string          `json:"chapter_title_en,omitempty"`
	Grades         []GradeResponse `json:"grades"`
}

func sahihHadithToResponse(hadith entities.Hadith) sahihHadithResponse {
	resp := sahihHadithResponse{
		ID:           hadith.ID,
		HadithNumber: hadith.HadithNumber,
		TextAr:       hadith.TextAr,
		TextEn:       hadith.TextEn,
		NarratorEn:   hadith.NarratorEn,
		Reference:    hadith.Reference,
		BookSlug:     hadith.Book.Slug,
		BookNameEn:   hadith.Book.NameEn,
		BookNameAr:   hadith.Book.NameAr,
		Grades:       make([]GradeResponse, 0, len(hadith.Grades)),
	}
	if hadith.Chapter != nil {
		resp.ChapterTitleEn = hadith.Chapter.TitleEn
	}
	for _, grade := range hadith.Grades {
		if strings.Contains(strings.ToLower(grade.Grade), "sahih") {
			resp.Grades = append(resp.Grades, GradeResponse{Grader: grade.GraderName, Grade: grade.Grade})
		}
	}
	return resp
}

func topicToResponse(topic entities.Topic, chapterCount int64) topicResponse {
	return topicResponse{
		ID:            topic.ID,
		Slug:          topic.Slug,
		NameEn:        topic.NameEn,
		NameAr:        topic.NameAr,
		DescriptionEn: topic.DescriptionEn,
		DescriptionAr: topic.DescriptionAr,
		Icon:          topic.Icon,
		ChapterCount:  chapterCount,
	}
}
