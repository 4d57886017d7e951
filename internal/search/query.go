package search

import (
	"fmt"
	"strings"

	"github.com/hadithdb/hadith-api/internal/arabic"
)

// Pagination bounds. Out-of-range values are clamped, not rejected.
const (
	MaxSearchPageSize       = 100
	MaxAutocompletePageSize = 20
	DefaultPageSize         = 20
	DefaultSuggestionLimit  = 10
)

// Highlight delimiters wrapped around matched terms in full search results.
// These literal tags are part of the public response contract.
const (
	HighlightPreTag  = "<mark>"
	HighlightPostTag = "</mark>"
)

// autocompleteFields is the fixed attribute subset autocomplete retrieves.
var autocompleteFields = []string{
	"id", "hadith_number", "text_ar", "text_en",
	"book_slug", "book_name_en", "book_name_ar", "grades",
}

// QueryOptions carries the user-facing search parameters before shaping.
type QueryOptions struct {
	Book     string // optional book slug filter
	Grade    string // optional grade substring filter
	Page     int
	PageSize int
}

// BuildSearchRequest shapes a full-text search request. The query text is
// normalized because the indexed corpus is stored pre-normalized; filters
// combine with AND; pagination is clamped into range.
func BuildSearchRequest(query string, opts QueryOptions) Request {
	page := clamp(opts.Page, 1, 0)
	pageSize := clamp(opts.PageSize, 1, MaxSearchPageSize)

	return Request{
		Query:           arabic.Normalize(query),
		Limit:           int64(pageSize),
		Offset:          int64((page - 1) * pageSize),
		Filter:          buildFilter(opts.Book, opts.Grade),
		HighlightFields: []string{"text_ar", "text_en"},
	}
}

// BuildAutocompleteRequest shapes a suggestion request: smaller page bound,
// fixed retrieved attributes, no filters or highlighting.
func BuildAutocompleteRequest(query string, limit int) Request {
	return Request{
		Query:          arabic.Normalize(query),
		Limit:          int64(clamp(limit, 1, MaxAutocompletePageSize)),
		RetrieveFields: autocompleteFields,
	}
}

// buildFilter renders the index filter expression. The book filter is an
// equality predicate on book_slug; the grade filter is a case-insensitive
// contains predicate on grades, lower-cased before rendering.
func buildFilter(book, grade string) string {
	var clauses []string
	if book != "" {
		clauses = append(clauses, fmt.Sprintf("book_slug = %q", book))
	}
	if grade != "" {
		clauses = append(clauses, fmt.Sprintf("grades CONTAINS %q", strings.ToLower(grade)))
	}
	return strings.Join(clauses, " AND ")
}

// clamp bounds v to [low, high]; high == 0 means unbounded above.
func clamp(v, low, high int) int {
	if v < low {
		return low
	}
	if high > 0 && v > high {
		return high
	}
	return v
}
