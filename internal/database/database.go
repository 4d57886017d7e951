package database

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hadithdb/hadith-api/internal/entities"
	"github.com/hadithdb/hadith-api/internal/topics"
)

type Database struct {
	DB *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Auto-migrate all entities
	err = db.AutoMigrate(
		&entities.Book{},
		&entities.Chapter{},
		&entities.Hadith{},
		&entities.Grade{},
		&entities.Topic{},
		&entities.User{},
		&entities.Child{},
		&entities.ChildHadithProgress{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	database := &Database{DB: db}

	if err := database.seedTopics(); err != nil {
		return nil, fmt.Errorf("failed to seed topics: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return database, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// seedTopics inserts any missing rows of the canonical topic taxonomy.
// Existing rows are left untouched so re-running startup is safe.
func (d *Database) seedTopics() error {
	for _, topic := range topics.Taxonomy() {
		var existing entities.Topic
		result := d.DB.Where("slug = ?", topic.Slug).First(&existing)
		if result.Error == gorm.ErrRecordNotFound {
			if err := d.DB.Create(&topic).Error; err != nil {
				return fmt.Errorf("failed to create topic %s: %w", topic.Slug, err)
			}
		}
	}
	return nil
}
