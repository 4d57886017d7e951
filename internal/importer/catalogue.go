// Package importer loads the six canonical hadith collections (Kutub
// al-Sittah) from the fawazahmed0/hadith-api CDN into the database, merging
// the Arabic and English editions of each book.
package importer

// BookSource describes one collection and its CDN edition names.
type BookSource struct {
	Slug           string
	NameEn         string
	NameAr         string
	AuthorEn       string
	AuthorAr       string
	ArabicEdition  string
	EnglishEdition string
}

// Catalogue returns the six major collections in import order.
func Catalogue() []BookSource {
	return []BookSource{
		{
			Slug:           "bukhari",
			NameEn:         "Sahih al-Bukhari",
			NameAr:         "صحيح البخاري",
			AuthorEn:       "Imam Bukhari",
			AuthorAr:       "الإمام البخاري",
			ArabicEdition:  "ara-bukhari",
			EnglishEdition: "eng-bukhari",
		},
		{
			Slug:           "muslim",
			NameEn:         "Sahih Muslim",
			NameAr:         "صحيح مسلم",
			AuthorEn:       "Imam Muslim",
			AuthorAr:       "الإمام مسلم",
			ArabicEdition:  "ara-muslim",
			EnglishEdition: "eng-muslim",
		},
		{
			Slug:           "abudawud",
			NameEn:         "Sunan Abu Dawud",
			NameAr:         "سنن أبي داود",
			AuthorEn:       "Imam Abu Dawud",
			AuthorAr:       "الإمام أبو داود",
			ArabicEdition:  "ara-abudawud",
			EnglishEdition: "eng-abudawud",
		},
		{
			Slug:           "tirmidhi",
			NameEn:         "Jami at-Tirmidhi",
			NameAr:         "جامع الترمذي",
			AuthorEn:       "Imam Tirmidhi",
			AuthorAr:       "الإمام الترمذي",
			ArabicEdition:  "ara-tirmidhi",
			EnglishEdition: "eng-tirmidhi",
		},
		{
			Slug:           "nasai",
			NameEn:         "Sunan an-Nasai",
			NameAr:         "سنن النسائي",
			AuthorEn:       "Imam Nasai",
			AuthorAr:       "الإمام النسائي",
			ArabicEdition:  "ara-nasai",
			EnglishEdition: "eng-nasai",
		},
		{
			Slug:           "ibnmajah",
			NameEn:         "Sunan Ibn Majah",
			NameAr:         "سنن ابن ماجه",
			AuthorEn:       "Imam Ibn Majah",
			AuthorAr:       "الإمام ابن ماجه",
			ArabicEdition:  "ara-ibnmajah",
			EnglishEdition: "eng-ibnmajah",
		},
	}
}
