package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/hadithdb/hadith-api/internal/config"
	"github.com/hadithdb/hadith-api/internal/database"
	"github.com/hadithdb/hadith-api/internal/topics"
)

// MapTopicsCommand classifies every chapter into a topic by keyword matching
// against English chapter titles.
type MapTopicsCommand struct {
	DatabasePath string
}

func NewMapTopicsCommand() *MapTopicsCommand {
	return &MapTopicsCommand{}
}

func (cmd *MapTopicsCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("map-topics", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the SQLite database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s map-topics [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Assign every chapter to a topic based on its English title. Chapters\n")
		fmt.Fprintf(os.Stderr, "matching no keywords fall back to the misc topic; re-running is safe.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *MapTopicsCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	classifier := topics.NewClassifier(topics.KeywordTable())
	report, err := classifier.ClassifyChapters(db.DB)
	if err != nil {
		return err
	}

	fmt.Printf("Mapped %d chapters, %d defaulted to misc, %d skipped\n",
		report.Mapped, report.Misc, report.Skipped)
	return nil
}
