package entities

type Book struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	NameEn      string    `gorm:"size:255;not null" json:"name_en"`
	NameAr      string    `gorm:"size:255;not null" json:"name_ar"`
	Slug        string    `gorm:"uniqueIndex;size:50;not null" json:"slug"` // e.g. "bukhari", "muslim"
	AuthorEn    string    `gorm:"size:255" json:"author_en,omitempty"`
	AuthorAr    string    `gorm:"size:255" json:"author_ar,omitempty"`
	HadithCount int       `json:"hadith_count"`
	Chapters    []Chapter `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE" json:"chapters,omitempty"`
	Hadiths     []Hadith  `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE" json:"hadiths,omitempty"`
}

type Chapter struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	BookID      uint     `gorm:"index;not null" json:"book_id"`
	TopicID     *uint    `gorm:"index" json:"topic_id,omitempty"`
	Number      int      `gorm:"not null" json:"number"`
	TitleEn     string   `json:"title_en,omitempty"`
	TitleAr     string   `json:"title_ar,omitempty"`
	HadithStart *int     `json:"hadith_start,omitempty"`
	HadithEnd   *int     `json:"hadith_end,omitempty"`
	Book        Book     `gorm:"foreignKey:BookID" json:"-"`
	Topic       *Topic   `gorm:"foreignKey:TopicID" json:"-"`
	Hadiths     []Hadith `gorm:"foreignKey:ChapterID" json:"-"`
}

type Hadith struct {
	ID           uint     `gorm:"primaryKey" json:"id"`
	BookID       uint     `gorm:"index;not null" json:"book_id"`
	ChapterID    *uint    `gorm:"index" json:"chapter_id,omitempty"`
	HadithNumber int      `gorm:"index;not null" json:"hadith_number"`
	ArabicNumber int      `json:"arabic_number,omitempty"`
	TextAr       string   `gorm:"not null" json:"text_ar"`
	TextEn       string   `json:"text_en,omitempty"`
	NarratorEn   string   `json:"narrator_en,omitempty"`
	Reference    string   `gorm:"size:100" json:"reference,omitempty"`
	Book         Book     `gorm:"foreignKey:BookID" json:"-"`
	Chapter      *Chapter `gorm:"foreignKey:ChapterID" json:"-"`
	Grades       []Grade  `gorm:"foreignKey:HadithID;constraint:OnDelete:CASCADE" json:"grades,omitempty"`
}

type Grade struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	HadithID   uint   `gorm:"index;not null" json:"hadith_id"`
	GraderName string `gorm:"size:255;not null" json:"grader_name"`
	Grade      string `gorm:"index;size:100;not null" json:"grade"`
}
