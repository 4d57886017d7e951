package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/hadithdb/hadith-api/internal/config"
	"github.com/hadithdb/hadith-api/internal/database"
	"github.com/hadithdb/hadith-api/internal/database/hadiths"
	"github.com/hadithdb/hadith-api/internal/entities"
	"github.com/hadithdb/hadith-api/internal/search"
)

const indexBatchSize = 500

// IndexSearchCommand rebuilds the Meilisearch index from the database.
type IndexSearchCommand struct {
	DatabasePath   string
	MeilisearchURL string
	APIKey         string
	Index          string
	Recreate       bool
}

func NewIndexSearchCommand() *IndexSearchCommand {
	return &IndexSearchCommand{}
}

func (cmd *IndexSearchCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("index-search", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the SQLite database file")
	fs.StringVar(&cmd.MeilisearchURL, "meilisearch", "http://localhost:7700", "Meilisearch server URL")
	fs.StringVar(&cmd.APIKey, "api-key", "", "Meilisearch API key")
	fs.StringVar(&cmd.Index, "index", config.DefaultSearchIndex, "Meilisearch index name")
	fs.BoolVar(&cmd.Recreate, "recreate", true, "Drop and recreate the index before indexing")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s index-search [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Index all hadiths from the database into Meilisearch.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *IndexSearchCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	service := search.NewService(config.Meilisearch{
		URL:    cmd.MeilisearchURL,
		APIKey: cmd.APIKey,
		Index:  cmd.Index,
	})
	if !service.Connect() {
		return fmt.Errorf("could not connect to Meilisearch at %s", cmd.MeilisearchURL)
	}

	if cmd.Recreate {
		if err := service.DeleteIndex(); err != nil {
			fmt.Printf("Index not deleted (may not exist yet): %v\n", err)
		}
		if err := service.CreateIndex(); err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}

	repo := hadiths.NewRepository(db.DB)
	indexed := 0
	err = repo.ForEachBatch(indexBatchSize, func(batch []entities.Hadith) error {
		docs := make([]search.Document, 0, len(batch))
		for _, hadith := range batch {
			docs = append(docs, search.DocumentFromHadith(hadith))
		}
		if err := service.IndexDocuments(docs); err != nil {
			return err
		}
		indexed += len(docs)
		fmt.Printf("Indexed %d hadiths...\n", indexed)
		return nil
	})
	if err != nil {
		return fmt.Errorf("index hadiths: %w", err)
	}

	fmt.Printf("Done: %d hadiths indexed into %q\n", indexed, cmd.Index)
	return nil
}
