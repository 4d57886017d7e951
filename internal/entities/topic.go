package entities

// Topic is a master category from the traditional Islamic classification of
// hadith subject matter (fiqh chapters): creed, purification, prayer, fasting
// and so on. Chapters are assigned to exactly one topic by the keyword
// classifier; "misc" is the mandatory fallback bucket.
type Topic struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	NameEn        string    `gorm:"size:100;not null" json:"name_en"`
	NameAr        string    `gorm:"size:100;not null" json:"name_ar"`
	Slug          string    `gorm:"uniqueIndex;size:50;not null" json:"slug"`
	DescriptionEn string    `json:"description_en,omitempty"`
	DescriptionAr string    `json:"description_ar,omitempty"`
	Icon          string    `gorm:"size:50" json:"icon,omitempty"`
	Order         int       `gorm:"column:display_order" json:"order"`
	Chapters      []Chapter `gorm:"foreignKey:TopicID" json:"-"`
}

// MiscTopicSlug is the fallback topic for chapters matching no keywords.
// Batch classification refuses to run if this topic is missing.
const MiscTopicSlug = "misc"
