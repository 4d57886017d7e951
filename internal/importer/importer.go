package importer

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"gorm.io/gorm"

	"github.com/hadithdb/hadith-api/internal/entities"
)

// Stats summarizes one import run.
type Stats struct {
	Books    int
	Chapters int
	Hadiths  int
	Grades   int
}

// Importer downloads the catalogue and persists it.
type Importer struct {
	db     *gorm.DB
	client *Client
}

func NewImporter(db *gorm.DB, client *Client) *Importer {
	return &Importer{db: db, client: client}
}

// Run imports every book in the catalogue. Each book is replaced atomically:
// a failed download leaves the previously imported data in place.
func (i *Importer) Run(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	for _, source := range Catalogue() {
		bookStats, err := i.importBook(ctx, source)
		if err != nil {
			return stats, fmt.Errorf("import %s: %w", source.Slug, err)
		}
		stats.Books++
		stats.Chapters += bookStats.Chapters
		stats.Hadiths += bookStats.Hadiths
		stats.Grades += bookStats.Grades
	}
	log.Printf("Import complete: %d books, %d chapters, %d hadiths, %d grades",
		stats.Books, stats.Chapters, stats.Hadiths, stats.Grades)
	return stats, nil
}

func (i *Importer) importBook(ctx context.Context, source BookSource) (*Stats, error) {
	log.Printf("Importing %s...", source.NameEn)

	arabic, err := i.client.FetchEdition(ctx, source.ArabicEdition)
	if err != nil {
		return nil, err
	}
	// English editions are a best-effort enrichment; Arabic text is the
	// canonical content.
	english, err := i.client.FetchEdition(ctx, source.EnglishEdition)
	if err != nil {
		log.Printf("No English edition for %s: %v", source.Slug, err)
		english = &Edition{}
	}

	stats := &Stats{}
	err = i.db.Transaction(func(tx *gorm.DB) error {
		if err := deleteExistingBook(tx, source.Slug); err != nil {
			return err
		}

		book := &entities.Book{
			NameEn:   source.NameEn,
			NameAr:   source.NameAr,
			Slug:     source.Slug,
			AuthorEn: source.AuthorEn,
			AuthorAr: source.AuthorAr,
		}
		if err := tx.Create(book).Error; err != nil {
			return fmt.Errorf("create book: %w", err)
		}

		chapters, err := buildChapters(tx, book.ID, arabic, english)
		if err != nil {
			return err
		}
		stats.Chapters = len(chapters)

		hadithCount, gradeCount, err := importHadiths(tx, book.ID, source.Slug, arabic, english, chapters)
		if err != nil {
			return err
		}
		stats.Hadiths = hadithCount
		stats.Grades = gradeCount

		return tx.Model(book).Update("hadith_count", hadithCount).Error
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Completed %s: %d hadiths, %d grades, %d chapters",
		source.Slug, stats.Hadiths, stats.Grades, stats.Chapters)
	return stats, nil
}

func deleteExistingBook(tx *gorm.DB, slug string) error {
	var book entities.Book
	err := tx.Where("slug = ?", slug).First(&book).Error
	if err == gorm.ErrRecordNotFound {
		return nil
	}
	if err != nil {
		return err
	}

	var hadithIDs []uint
	if err := tx.Model(&entities.Hadith{}).
		Where("book_id = ?", book.ID).
		Pluck("id", &hadithIDs).Error; err != nil {
		return err
	}
	if len(hadithIDs) > 0 {
		if err := tx.Where("hadith_id IN ?", hadithIDs).
			Delete(&entities.Grade{}).Error; err != nil {
			return err
		}
	}
	if err := tx.Where("book_id = ?", book.ID).Delete(&entities.Hadith{}).Error; err != nil {
		return err
	}
	if err := tx.Where("book_id = ?", book.ID).Delete(&entities.Chapter{}).Error; err != nil {
		return err
	}
	return tx.Delete(&book).Error
}

// buildChapters creates chapter rows from the union of both editions'
// section listings, keyed by section number.
func buildChapters(tx *gorm.DB, bookID uint, arabic, english *Edition) (map[int]*entities.Chapter, error) {
	details := arabic.Metadata.SectionDetails
	if len(details) == 0 {
		details = english.Metadata.SectionDetails
	}

	numbers := make(map[string]struct{})
	for num := range arabic.Metadata.Sections {
		numbers[num] = struct{}{}
	}
	for num := range english.Metadata.Sections {
		numbers[num] = struct{}{}
	}
	for num := range details {
		numbers[num] = struct{}{}
	}

	chapters := make(map[int]*entities.Chapter, len(numbers))
	for num := range numbers {
		numInt, err := parseSectionNumber(num)
		if err != nil {
			continue
		}

		chapter := &entities.Chapter{
			BookID:  bookID,
			Number:  numInt,
			TitleEn: string(english.Metadata.Sections[num]),
			TitleAr: string(arabic.Metadata.Sections[num]),
		}
		if d, ok := details[num]; ok {
			if first := d.HadithFirst.Int(); first > 0 {
				chapter.HadithStart = &first
			}
			if last := d.HadithLast.Int(); last > 0 {
				chapter.HadithEnd = &last
			}
		}
		if err := tx.Create(chapter).Error; err != nil {
			return nil, fmt.Errorf("create chapter %d: %w", numInt, err)
		}
		chapters[numInt] = chapter
	}
	return chapters, nil
}

func importHadiths(tx *gorm.DB, bookID uint, slug string, arabic, english *Edition, chapters map[int]*entities.Chapter) (int, int, error) {
	englishByNumber := make(map[int]EditionHadith, len(english.Hadiths))
	for _, h := range english.Hadiths {
		if h.HadithNumber.Int() > 0 {
			englishByNumber[h.HadithNumber.Int()] = h
		}
	}

	hadithCount := 0
	gradeCount := 0
	for _, ah := range arabic.Hadiths {
		number := ah.HadithNumber.Int()
		if number <= 0 {
			continue
		}
		eh := englishByNumber[number]

		hadith := &entities.Hadith{
			BookID:       bookID,
			ChapterID:    chapterFor(chapters, number),
			HadithNumber: number,
			ArabicNumber: ah.ArabicNumber.Int(),
			TextAr:       ah.Text,
			TextEn:       eh.Text,
			NarratorEn:   eh.Narrator,
			Reference:    fmt.Sprintf("%s:%d", slug, number),
		}
		if err := tx.Create(hadith).Error; err != nil {
			return hadithCount, gradeCount, fmt.Errorf("create hadith %d: %w", number, err)
		}
		hadithCount++

		// English grade data is richer; fall back to Arabic.
		grades := eh.Grades
		if len(grades) == 0 {
			grades = ah.Grades
		}
		for _, g := range grades {
			if g.Name == "" || g.Grade == "" {
				continue
			}
			err := tx.Create(&entities.Grade{
				HadithID:   hadith.ID,
				GraderName: g.Name,
				Grade:      g.Grade,
			}).Error
			if err != nil {
				return hadithCount, gradeCount, fmt.Errorf("create grade: %w", err)
			}
			gradeCount++
		}

		if hadithCount%1000 == 0 {
			log.Printf("  Imported %d hadiths...", hadithCount)
		}
	}
	return hadithCount, gradeCount, nil
}

// chapterFor resolves the chapter whose hadith number range covers the given
// number, when the edition provides ranges.
func chapterFor(chapters map[int]*entities.Chapter, hadithNumber int) *uint {
	for _, chapter := range chapters {
		if chapter.HadithStart == nil || chapter.HadithEnd == nil {
			continue
		}
		if *chapter.HadithStart <= hadithNumber && hadithNumber <= *chapter.HadithEnd {
			id := chapter.ID
			return &id
		}
	}
	return nil
}

func parseSectionNumber(raw string) (int, error) {
	return strconv.Atoi(raw)
}
