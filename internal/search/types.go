// Package search integrates the hadith corpus with the external full-text
// index: shaping queries, indexing documents, and verifying free-form hadith
// text against the catalogue.
package search

import (
	"github.com/hadithdb/hadith-api/internal/arabic"
	"github.com/hadithdb/hadith-api/internal/entities"
)

// HitGrade is an authenticity grade as stored in index documents.
type HitGrade struct {
	Grader string `json:"grader"`
	Grade  string `json:"grade"`
}

// Hit is the subset of an index document the API depends on, plus the
// optional highlight payload returned for full search requests.
type Hit struct {
	ID           uint           `json:"id"`
	HadithNumber int            `json:"hadith_number"`
	TextAr       string         `json:"text_ar"`
	TextEn       string         `json:"text_en,omitempty"`
	BookSlug     string         `json:"book_slug"`
	BookNameEn   string         `json:"book_name_en"`
	BookNameAr   string         `json:"book_name_ar"`
	Grades       []HitGrade     `json:"grades"`
	Highlight    map[string]any `json:"highlight,omitempty"`
}

// Request is a shaped query ready for the index. The shaper produces it; the
// engine consumes it. The shaper never talks to the index itself.
type Request struct {
	Query           string
	Limit           int64
	Offset          int64
	Filter          string
	HighlightFields []string
	RetrieveFields  []string
}

// Result is what the index answered.
type Result struct {
	Hits             []Hit
	EstimatedTotal   int64
	ProcessingTimeMs int64
}

// Searcher is the capability the rest of the service needs from the external
// index. Any engine honoring the filter and highlight semantics of the shaped
// requests satisfies it.
type Searcher interface {
	IsConnected() bool
	Search(req Request) (*Result, error)
	Autocomplete(req Request) (*Result, error)
}

// Document is a hadith as stored in the index. text_ar_normalized mirrors
// the query-side normalization so recall works on either spelling.
type Document struct {
	ID               uint       `json:"id"`
	BookID           uint       `json:"book_id"`
	ChapterID        *uint      `json:"chapter_id,omitempty"`
	HadithNumber     int        `json:"hadith_number"`
	ArabicNumber     int        `json:"arabic_number"`
	TextAr           string     `json:"text_ar"`
	TextArNormalized string     `json:"text_ar_normalized,omitempty"`
	TextEn           string     `json:"text_en"`
	NarratorEn       string     `json:"narrator_en"`
	Reference        string     `json:"reference"`
	BookSlug         string     `json:"book_slug"`
	BookNameEn       string     `json:"book_name_en"`
	BookNameAr       string     `json:"book_name_ar"`
	Grades           []HitGrade `json:"grades"`
}

// DocumentFromHadith builds an index document from a hadith with its book
// and grades preloaded.
func DocumentFromHadith(h entities.Hadith) Document {
	grades := make([]HitGrade, 0, len(h.Grades))
	for _, g := range h.Grades {
		grades = append(grades, HitGrade{Grader: g.GraderName, Grade: g.Grade})
	}

	doc := Document{
		ID:           h.ID,
		BookID:       h.BookID,
		ChapterID:    h.ChapterID,
		HadithNumber: h.HadithNumber,
		ArabicNumber: h.ArabicNumber,
		TextAr:       h.TextAr,
		TextEn:       h.TextEn,
		NarratorEn:   h.NarratorEn,
		Reference:    h.Reference,
		BookSlug:     h.Book.Slug,
		BookNameEn:   h.Book.NameEn,
		BookNameAr:   h.Book.NameAr,
		Grades:       grades,
	}
	if h.TextAr != "" {
		doc.TextArNormalized = arabic.Normalize(h.TextAr)
	}
	return doc
}
