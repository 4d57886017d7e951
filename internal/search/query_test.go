package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSearchRequest_Pagination(t *testing.T) {
	t.Run("defaults out-of-range values into bounds", func(t *testing.T) {
		req := BuildSearchRequest("نية", QueryOptions{Page: 0, PageSize: 0})
		assert.Equal(t, int64(1), req.Limit)
		assert.Equal(t, int64(0), req.Offset)

		req = BuildSearchRequest("نية", QueryOptions{Page: -5, PageSize: 9999})
		assert.Equal(t, int64(MaxSearchPageSize), req.Limit)
		assert.Equal(t, int64(0), req.Offset)
	})

	t.Run("offset follows page", func(t *testing.T) {
		req := BuildSearchRequest("نية", QueryOptions{Page: 3, PageSize: 20})
		assert.Equal(t, int64(20), req.Limit)
		assert.Equal(t, int64(40), req.Offset)
	})
}

func TestBuildSearchRequest_NormalizesQuery(t *testing.T) {
	req := BuildSearchRequest("الأَعْمَالُ", QueryOptions{Page: 1, PageSize: 10})
	assert.Equal(t, "الاعمال", req.Query)
}

func TestBuildSearchRequest_Filters(t *testing.T) {
	t.Run("no filters", func(t *testing.T) {
		req := BuildSearchRequest("q", QueryOptions{Page: 1, PageSize: 10})
		assert.Empty(t, req.Filter)
	})

	t.Run("book only", func(t *testing.T) {
		req := BuildSearchRequest("q", QueryOptions{Book: "bukhari", Page: 1, PageSize: 10})
		assert.Equal(t, `book_slug = "bukhari"`, req.Filter)
	})

	t.Run("grade is lower-cased", func(t *testing.T) {
		req := BuildSearchRequest("q", QueryOptions{Grade: "Sahih", Page: 1, PageSize: 10})
		assert.Equal(t, `grades CONTAINS "sahih"`, req.Filter)
	})

	t.Run("book and grade combine with AND", func(t *testing.T) {
		req := BuildSearchRequest("q", QueryOptions{Book: "muslim", Grade: "Hasan", Page: 1, PageSize: 10})
		assert.Equal(t, `book_slug = "muslim" AND grades CONTAINS "hasan"`, req.Filter)
	})
}

func TestBuildSearchRequest_Highlighting(t *testing.T) {
	req := BuildSearchRequest("q", QueryOptions{Page: 1, PageSize: 10})
	assert.Equal(t, []string{"text_ar", "text_en"}, req.HighlightFields)
}

func TestBuildAutocompleteRequest(t *testing.T) {
	req := BuildAutocompleteRequest("الصلاة", 0)
	assert.Equal(t, int64(1), req.Limit)

	req = BuildAutocompleteRequest("الصلاة", 500)
	assert.Equal(t, int64(MaxAutocompletePageSize), req.Limit)

	req = BuildAutocompleteRequest("الصَّلاة", 10)
	assert.Equal(t, "الصلاة", req.Query)
	assert.Empty(t, req.Filter)
	assert.Empty(t, req.HighlightFields)
	assert.Equal(t, autocompleteFields, req.RetrieveFields)
}
