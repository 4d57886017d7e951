package config

const (
	// DefaultDatabasePath is the default path for the main application database
	DefaultDatabasePath = "./data/hadith.db"

	// DefaultSearchIndex is the Meilisearch index holding hadith documents
	DefaultSearchIndex = "hadiths"

	// DefaultSourceBaseURL serves the fawazahmed0/hadith-api JSON editions
	DefaultSourceBaseURL = "https://cdn.jsdelivr.net/gh/fawazahmed0/hadith-api@1"
)
