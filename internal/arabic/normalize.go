// Package arabic provides canonical comparison forms for Arabic text.
//
// The search index stores hadith text pre-normalized, so queries must go
// through the same transform for matching to line up. All functions are pure,
// never fail, and return empty input unchanged.
package arabic

import "strings"

// Tashkeel (diacritic) range removed during normalization, plus the
// superscript alef mark U+0670.
const (
	diacriticLow    = 0x064B
	diacriticHigh   = 0x065F
	superscriptAlef = 0x0670
)

// Hamza-bearing forms folded to their base letters.
var hamzaReplacer = strings.NewReplacer(
	"أ", "ا", // أ -> ا
	"إ", "ا", // إ -> ا
	"آ", "ا", // آ -> ا
	"ؤ", "و", // ؤ -> و
	"ئ", "ي", // ئ -> ي
)

// All alef variations fold to the plain alef.
var alefReplacer = strings.NewReplacer(
	"إ", "ا",
	"أ", "ا",
	"آ", "ا",
)

// RemoveDiacritics strips Arabic tashkeel marks from text.
func RemoveDiacritics(text string) string {
	if text == "" {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if (r >= diacriticLow && r <= diacriticHigh) || r == superscriptAlef {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeHamza replaces hamza-bearing letter forms with their base letters.
func NormalizeHamza(text string) string {
	if text == "" {
		return text
	}
	return hamzaReplacer.Replace(text)
}

// NormalizeAlef folds all alef variations to the basic alef.
func NormalizeAlef(text string) string {
	if text == "" {
		return text
	}
	return alefReplacer.Replace(text)
}

// Normalize applies the full Arabic normalization pipeline:
// diacritic removal, then hamza normalization, then alef folding.
// The order is fixed; diacritics must go first so downstream token
// boundaries stay consistent.
func Normalize(text string) string {
	if text == "" {
		return text
	}
	text = RemoveDiacritics(text)
	text = NormalizeHamza(text)
	text = NormalizeAlef(text)
	return text
}

// CleanText collapses whitespace runs to single spaces and trims the ends.
func CleanText(text string) string {
	if text == "" {
		return text
	}
	return strings.Join(strings.Fields(text), " ")
}

// IsArabic reports whether text contains at least one Arabic code point.
func IsArabic(text string) bool {
	for _, r := range text {
		if (r >= 0x0600 && r <= 0x06FF) ||
			(r >= 0x0750 && r <= 0x077F) ||
			(r >= 0x08A0 && r <= 0x08FF) {
			return true
		}
	}
	return false
}
