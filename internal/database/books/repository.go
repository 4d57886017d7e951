// Package books provides database operations for hadith collections and
// their chapters.
package books

import (
	"gorm.io/gorm"

	"github.com/hadithdb/hadith-api/internal/entities"
)

// Repository handles book and chapter database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetAllBooks returns all collections ordered by id.
func (r *Repository) GetAllBooks() ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Order("id").Find(&books).Error
	return books, err
}

// GetBookBySlug returns one collection by its slug, e.g. "bukhari".
func (r *Repository) GetBookBySlug(slug string) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Where("slug = ?", slug).First(&book).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// GetChapters returns all chapters of a book ordered by chapter number.
func (r *Repository) GetChapters(bookID uint) ([]entities.Chapter, error) {
	var chapters []entities.Chapter
	err := r.db.Where("book_id = ?", bookID).Order("number").Find(&chapters).Error
	return chapters, err
}

// GetChapter returns one chapter of a book by chapter number.
func (r *Repository) GetChapter(bookID uint, number int) (*entities.Chapter, error) {
	var chapter entities.Chapter
	err := r.db.Where("book_id = ? AND number = ?", bookID, number).First(&chapter).Error
	if err != nil {
		return nil, err
	}
	return &chapter, nil
}

// CountHadiths returns the number of hadiths stored for a book.
func (r *Repository) CountHadiths(bookID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entities.Hadith{}).Where("book_id = ?", bookID).Count(&count).Error
	return count, err
}
