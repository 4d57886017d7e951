// Package cli implements the management subcommands: data import, search
// indexing, topic classification and user creation.
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/hadithdb/hadith-api/internal/config"
	"github.com/hadithdb/hadith-api/internal/database"
	"github.com/hadithdb/hadith-api/internal/importer"
)

// ImportDataCommand downloads the six collections and loads them into the
// database.
type ImportDataCommand struct {
	DatabasePath string
	BaseURL      string
}

func NewImportDataCommand() *ImportDataCommand {
	return &ImportDataCommand{}
}

func (cmd *ImportDataCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("import-data", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the SQLite database file")
	fs.StringVar(&cmd.BaseURL, "source", config.DefaultSourceBaseURL, "Base URL of the hadith-api CDN")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s import-data [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Download the six major hadith collections (Kutub al-Sittah) in Arabic\n")
		fmt.Fprintf(os.Stderr, "and English and import them into the database. Re-running replaces\n")
		fmt.Fprintf(os.Stderr, "previously imported collections.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *ImportDataCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	imp := importer.NewImporter(db.DB, importer.NewClient(cmd.BaseURL))
	stats, err := imp.Run(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d books, %d chapters, %d hadiths, %d grades\n",
		stats.Books, stats.Chapters, stats.Hadiths, stats.Grades)
	return nil
}
