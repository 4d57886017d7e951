package search

import (
	"log"
	"strings"

	"github.com/hadithdb/hadith-api/internal/arabic"
	"github.com/hadithdb/hadith-api/internal/entities"
)

const (
	// verifySearchLimit is how many candidates are pulled from the index
	// per verification.
	verifySearchLimit = 5
	// verifyTokenThreshold is the minimum number of distinct shared tokens
	// for a non-substring match.
	verifyTokenThreshold = 3
	// maxSimilarHadiths caps the fallback list when no exact match exists.
	maxSimilarHadiths = 3
)

// Verification messages returned to clients.
const (
	MsgVerified    = "Hadith found and verified."
	MsgNotVerified = "Exact match not found. Here are similar hadiths."
	MsgUnavailable = "Could not verify. Search service may be unavailable."
)

// HadithResolver loads full hadith records for index hits.
type HadithResolver interface {
	GetByID(id uint) (*entities.Hadith, error)
}

// Verification is the outcome of checking a quoted text against the corpus.
type Verification struct {
	Found   bool
	Hadith  *entities.Hadith
	Similar []*entities.Hadith
	Message string
}

// Verifier checks whether a quoted piece of text is an authentic hadith from
// the indexed collections.
type Verifier struct {
	searcher Searcher
	resolver HadithResolver
}

func NewVerifier(searcher Searcher, resolver HadithResolver) *Verifier {
	return &Verifier{searcher: searcher, resolver: resolver}
}

// Verify searches the index for the quoted text and compares the top hit's
// normalized text against the normalized query. The top hit matches when one
// normalized text contains the other, or when they share at least
// verifyTokenThreshold distinct whitespace tokens; lower-ranked hits are only
// ever offered as similar hadiths. Index failures degrade to an unverified
// result rather than an error.
func (v *Verifier) Verify(text string) *Verification {
	if !v.searcher.IsConnected() {
		return &Verification{Message: MsgUnavailable}
	}

	result, err := v.searcher.Search(Request{
		Query: arabic.Normalize(text),
		Limit: verifySearchLimit,
	})
	if err != nil {
		log.Printf("Verification search failed: %v", err)
		return &Verification{Message: MsgUnavailable}
	}
	if len(result.Hits) == 0 {
		return &Verification{Message: MsgUnavailable}
	}

	top := result.Hits[0]
	if textsMatch(normalizeForComparison(text), normalizeForComparison(top.TextAr)) {
		hadith, err := v.resolver.GetByID(top.ID)
		if err != nil {
			log.Printf("Verification hit %d could not be loaded: %v", top.ID, err)
		} else {
			return &Verification{
				Found:   true,
				Hadith:  hadith,
				Message: MsgVerified,
			}
		}
	}

	hits := result.Hits
	if len(hits) > maxSimilarHadiths {
		hits = hits[:maxSimilarHadiths]
	}
	similar := make([]*entities.Hadith, 0, len(hits))
	for _, hit := range hits {
		hadith, err := v.resolver.GetByID(hit.ID)
		if err != nil {
			continue
		}
		similar = append(similar, hadith)
	}

	return &Verification{
		Similar: similar,
		Message: MsgNotVerified,
	}
}

func normalizeForComparison(text string) string {
	return strings.ToLower(arabic.Normalize(text))
}

// textsMatch reports whether two normalized texts refer to the same hadith:
// either one contains the other, or they share enough distinct tokens.
func textsMatch(query, candidate string) bool {
	if query == "" || candidate == "" {
		return false
	}
	if strings.Contains(candidate, query) || strings.Contains(query, candidate) {
		return true
	}

	queryTokens := make(map[string]struct{})
	for _, tok := range strings.Fields(query) {
		queryTokens[tok] = struct{}{}
	}

	shared := make(map[string]struct{})
	for _, tok := range strings.Fields(candidate) {
		if _, ok := queryTokens[tok]; ok {
			shared[tok] = struct{}{}
		}
	}
	return len(shared) >= verifyTokenThreshold
}
