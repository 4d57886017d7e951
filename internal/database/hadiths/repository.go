// Package hadiths provides database operations for hadith lookup.
//
// GetByID doubles as the resolver the verification matcher uses to turn a
// search hit id into a full record with grades and attribution.
package hadiths

import (
	"strings"

	"gorm.io/gorm"

	"github.com/hadithdb/hadith-api/internal/entities"
)

// ListFilter narrows a hadith listing. Zero values mean "no filter".
type ListFilter struct {
	BookSlug      string
	ChapterNumber int
	Grade         string // case-insensitive substring match against grades
	Page          int
	PageSize      int
}

// Repository handles hadith database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new hadiths repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetByID returns a hadith with its book, chapter and grades preloaded.
func (r *Repository) GetByID(id uint) (*entities.Hadith, error) {
	var hadith entities.Hadith
	err := r.db.Preload("Book").Preload("Chapter").Preload("Grades").First(&hadith, id).Error
	if err != nil {
		return nil, err
	}
	return &hadith, nil
}

// GetByBookAndNumber returns one hadith of a book by its hadith number.
func (r *Repository) GetByBookAndNumber(bookID uint, number int) (*entities.Hadith, error) {
	var hadith entities.Hadith
	err := r.db.Preload("Book").Preload("Chapter").Preload("Grades").
		Where("book_id = ? AND hadith_number = ?", bookID, number).
		First(&hadith).Error
	if err != nil {
		return nil, err
	}
	return &hadith, nil
}

// List returns a filtered, paginated hadith listing plus the total count.
func (r *Repository) List(filter ListFilter) ([]entities.Hadith, int64, error) {
	query := r.db.Model(&entities.Hadith{})

	query, err := r.applyFilters(query, filter)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.PageSize
	var hadiths []entities.Hadith
	err = query.Preload("Book").Preload("Chapter").Preload("Grades").
		Order("id").
		Offset(offset).Limit(filter.PageSize).
		Find(&hadiths).Error
	return hadiths, total, err
}

// Random returns one random hadith matching the optional book/grade filters.
func (r *Repository) Random(bookSlug, grade string) (*entities.Hadith, error) {
	query := r.db.Model(&entities.Hadith{})

	query, err := r.applyFilters(query, ListFilter{BookSlug: bookSlug, Grade: grade})
	if err != nil {
		return nil, err
	}

	var hadith entities.Hadith
	err = query.Preload("Book").Preload("Chapter").Preload("Grades").
		Order("RANDOM()").
		First(&hadith).Error
	if err != nil {
		return nil, err
	}
	return &hadith, nil
}

// ForEachBatch streams all hadiths with preloads in batches, for bulk
// indexing without holding the entire corpus in memory.
func (r *Repository) ForEachBatch(batchSize int, fn func(batch []entities.Hadith) error) error {
	var batch []entities.Hadith
	result := r.db.Preload("Book").Preload("Chapter").Preload("Grades").
		FindInBatches(&batch, batchSize, func(tx *gorm.DB, _ int) error {
			return fn(batch)
		})
	return result.Error
}

func (r *Repository) applyFilters(query *gorm.DB, filter ListFilter) (*gorm.DB, error) {
	if filter.BookSlug != "" {
		var book entities.Book
		if err := r.db.Where("slug = ?", filter.BookSlug).First(&book).Error; err != nil {
			return nil, err
		}
		query = query.Where("hadiths.book_id = ?", book.ID)

		if filter.ChapterNumber > 0 {
			var chapter entities.Chapter
			err := r.db.Where("book_id = ? AND number = ?", book.ID, filter.ChapterNumber).
				First(&chapter).Error
			if err == nil {
				query = query.Where("hadiths.chapter_id = ?", chapter.ID)
			}
		}
	}

	if filter.Grade != "" {
		gradeLower := strings.ToLower(filter.Grade)
		query = query.Where(
			"hadiths.id IN (?)",
			r.db.Model(&entities.Grade{}).
				Select("hadith_id").
				Where("LOWER(grade) LIKE ?", "%"+gradeLower+"%"),
		)
	}

	return query, nil
}
