package topics

import "github.com/hadithdb/hadith-api/internal/entities"

// Taxonomy returns the canonical Islamic topic categories, in display order.
// Seeded into the database once at startup; "misc" must always be present as
// the classifier's fallback bucket.
func Taxonomy() []entities.Topic {
	return []entities.Topic{
		{Slug: "aqeedah", NameEn: "Faith & Creed", NameAr: "العقيدة", DescriptionEn: "Beliefs, faith, monotheism, and Islamic creed", DescriptionAr: "الإيمان والتوحيد والعقيدة الإسلامية", Order: 1},
		{Slug: "taharah", NameEn: "Purification", NameAr: "الطهارة", DescriptionEn: "Ritual purification, ablution, and cleanliness", DescriptionAr: "الوضوء والغسل والنظافة", Order: 2},
		{Slug: "salah", NameEn: "Prayer", NameAr: "الصلاة", DescriptionEn: "Daily prayers, Friday prayer, and all prayer-related matters", DescriptionAr: "الصلوات الخمس وصلاة الجمعة وأحكام الصلاة", Order: 3},
		{Slug: "zakat", NameEn: "Almsgiving", NameAr: "الزكاة", DescriptionEn: "Obligatory charity and its rulings", DescriptionAr: "الزكاة المفروضة وأحكامها", Order: 4},
		{Slug: "sawm", NameEn: "Fasting", NameAr: "الصوم", DescriptionEn: "Ramadan fasting and voluntary fasts", DescriptionAr: "صيام رمضان والصيام التطوعي", Order: 5},
		{Slug: "hajj", NameEn: "Pilgrimage", NameAr: "الحج والعمرة", DescriptionEn: "Hajj, Umrah, and visiting sacred places", DescriptionAr: "الحج والعمرة وزيارة الأماكن المقدسة", Order: 6},
		{Slug: "muamalat", NameEn: "Transactions", NameAr: "المعاملات", DescriptionEn: "Business dealings, trade, loans, and financial matters", DescriptionAr: "البيوع والتجارة والقروض والمعاملات المالية", Order: 7},
		{Slug: "nikah", NameEn: "Marriage & Family", NameAr: "النكاح والأسرة", DescriptionEn: "Marriage, divorce, family relations, and child-rearing", DescriptionAr: "الزواج والطلاق والعلاقات الأسرية وتربية الأولاد", Order: 8},
		{Slug: "foods", NameEn: "Food & Drinks", NameAr: "الأطعمة والأشربة", DescriptionEn: "Halal food, drinks, hunting, and slaughter", DescriptionAr: "الطعام الحلال والشراب والصيد والذبائح", Order: 9},
		{Slug: "clothing", NameEn: "Clothing & Adornment", NameAr: "اللباس والزينة", DescriptionEn: "Dress code, adornment, and appearance", DescriptionAr: "اللباس والزينة والمظهر", Order: 10},
		{Slug: "akhlaq", NameEn: "Ethics & Morals", NameAr: "الأخلاق", DescriptionEn: "Good character, virtues, and moral conduct", DescriptionAr: "حسن الخلق والفضائل والسلوك الأخلاقي", Order: 11},
		{Slug: "adab", NameEn: "Manners & Etiquette", NameAr: "الآداب", DescriptionEn: "Islamic etiquette, greetings, and social conduct", DescriptionAr: "الآداب الإسلامية والتحية والسلوك الاجتماعي", Order: 12},
		{Slug: "ilm", NameEn: "Knowledge", NameAr: "العلم", DescriptionEn: "Seeking knowledge, teaching, and scholarship", DescriptionAr: "طلب العلم والتعليم والعلماء", Order: 13},
		{Slug: "quran", NameEn: "Quran", NameAr: "القرآن", DescriptionEn: "Quran recitation, virtues, and sciences", DescriptionAr: "تلاوة القرآن وفضائله وعلومه", Order: 14},
		{Slug: "dua", NameEn: "Supplications", NameAr: "الدعاء", DescriptionEn: "Prayers, invocations, and asking Allah", DescriptionAr: "الدعاء والتضرع إلى الله", Order: 15},
		{Slug: "dhikr", NameEn: "Remembrance of Allah", NameAr: "الذكر", DescriptionEn: "Remembrance, praise, and glorification of Allah", DescriptionAr: "ذكر الله والتسبيح والتحميد", Order: 16},
		{Slug: "jihad", NameEn: "Jihad & Expeditions", NameAr: "الجهاد والسير", DescriptionEn: "Striving in Allah's cause and military expeditions", DescriptionAr: "الجهاد في سبيل الله والغزوات", Order: 17},
		{Slug: "seerah", NameEn: "Prophet's Biography", NameAr: "السيرة النبوية", DescriptionEn: "Life of Prophet Muhammad ﷺ and companions", DescriptionAr: "سيرة النبي ﷺ والصحابة", Order: 18},
		{Slug: "fitan", NameEn: "Trials & End Times", NameAr: "الفتن وأشراط الساعة", DescriptionEn: "Tribulations, signs of the Hour, and eschatology", DescriptionAr: "الفتن وعلامات الساعة والآخرة", Order: 19},
		{Slug: "jannah-nar", NameEn: "Paradise & Hell", NameAr: "الجنة والنار", DescriptionEn: "Description of Paradise, Hell, and the afterlife", DescriptionAr: "وصف الجنة والنار والحياة الآخرة", Order: 20},
		{Slug: "qadar", NameEn: "Divine Decree", NameAr: "القدر", DescriptionEn: "Predestination and divine will", DescriptionAr: "القضاء والقدر والإرادة الإلهية", Order: 21},
		{Slug: "hudud", NameEn: "Legal Punishments", NameAr: "الحدود", DescriptionEn: "Islamic legal punishments and judicial matters", DescriptionAr: "الحدود الشرعية والقضاء", Order: 22},
		{Slug: "medicine", NameEn: "Medicine & Healing", NameAr: "الطب", DescriptionEn: "Prophetic medicine, healing, and health", DescriptionAr: "الطب النبوي والعلاج والصحة", Order: 23},
		{Slug: "dreams", NameEn: "Dreams", NameAr: "الرؤيا", DescriptionEn: "Dream interpretation and visions", DescriptionAr: "تفسير الأحلام والرؤى", Order: 24},
		{Slug: "misc", NameEn: "Miscellaneous", NameAr: "متفرقات", DescriptionEn: "Other topics and general matters", DescriptionAr: "مواضيع أخرى وأمور عامة", Order: 25},
	}
}
