package http

import (
	"github.com/hadithdb/hadith-api/internal/entities"
)

// GradeResponse is an authenticity grade as rendered in API responses.
type GradeResponse struct {
	Grader string `json:"grader"`
	Grade  string `json:"grade"`
}

// HadithResponse is the canonical hadith representation returned by the
// listing, detail, random and verification endpoints.
type HadithResponse struct {
	ID             uint            `json:"id"`
	HadithNumber   int             `json:"hadith_number"`
	ArabicNumber   int             `json:"arabic_number,omitempty"`
	TextAr         string          `json:"text_ar"`
	TextEn         string          `json:"text_en,omitempty"`
	NarratorEn     string          `json:"narrator_en,omitempty"`
	Reference      string          `json:"reference,omitempty"`
	BookSlug       string          `json:"book_slug"`
	BookNameEn     string          `json:"book_name_en"`
	BookNameAr     string          `json:"book_name_ar"`
	ChapterNumber  *int            `json:"chapter_number,omitempty"`
	ChapterTitleEn string          `json:"chapter_title_en,omitempty"`
	Grades         []GradeResponse `json:"grades"`
}

func hadithToResponse(h *entities.Hadith) HadithResponse {
	grades := make([]GradeResponse, 0, len(h.Grades))
	for _, g := range h.Grades {
		grades = append(grades, GradeResponse{Grader: g.GraderName, Grade: g.Grade})
	}

	response := HadithResponse{
		ID:           h.ID,
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
	if h.Chapter != nil {
		number := h.Chapter.Number
		response.ChapterNumber = &number
		response.ChapterTitleEn = h.Chapter.TitleEn
	}
	return response
}

func hadithsToResponses(hadiths []entities.Hadith) []HadithResponse {
	responses := make([]HadithResponse, 0, len(hadiths))
	for i := range hadiths {
		responses = append(responses, hadithToResponse(&hadiths[i]))
	}
	return responses
}
