package cli

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hadithdb/hadith-api/internal/auth"
	"github.com/hadithdb/hadith-api/internal/config"
	"github.com/hadithdb/hadith-api/internal/database"
)

// CreateUserCommand registers a parent account from the command line.
type CreateUserCommand struct {
	DatabasePath string
	Email        string
	Password     string
	Name         string
}

func NewCreateUserCommand() *CreateUserCommand {
	return &CreateUserCommand{}
}

func (cmd *CreateUserCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("create-user", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the SQLite database file")
	fs.StringVar(&cmd.Email, "email", "", "Email address (required)")
	fs.StringVar(&cmd.Password, "password", "", "Password (required)")
	fs.StringVar(&cmd.Name, "name", "", "Display name (required)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s create-user -email <email> -password <password> -name <name> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Create an active user account.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.Email == "" || cmd.Password == "" || cmd.Name == "" {
		fs.Usage()
		return fmt.Errorf("email, password and name are required")
	}
	return nil
}

func (cmd *CreateUserCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	cfg := config.NewConfig()
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, 24*time.Hour)
	service := auth.NewService(db.DB, tokens, cfg.Auth.BcryptCost)

	user, err := service.Register(cmd.Email, cmd.Password, cmd.Name)
	if err != nil {
		return err
	}

	fmt.Printf("Created user %d (%s)\n", user.ID, user.Email)
	return nil
}
