package topics

// TopicKeywords pairs a topic slug with the lowercase English substrings that
// vote for it when they occur in a chapter title.
type TopicKeywords struct {
	Slug     string
	Keywords []string
}

// KeywordTable returns the static topic keyword table. The slice order is the
// scan order of the classifier and therefore part of its observable behavior:
// when two topics score the same, the one earlier in this table wins. Do not
// reorder entries.
func KeywordTable() []TopicKeywords {
	return []TopicKeywords{
		{"aqeedah", []string{
			"faith", "belief", "iman", "oneness", "tawhid", "monotheism",
			"divine", "allah", "god", "lord", "creator",
		}},
		{"taharah", []string{
			"purification", "ablution", "wudu", "ghusl", "bath", "clean",
			"tayammum", "menstrual", "impurity", "najasah", "taharah",
		}},
		{"salah", []string{
			"prayer", "salat", "salah", "prostration", "bowing", "mosque",
			"friday", "congregation", "imam", "adhan", "call to prayer",
			"witr", "tahajjud", "qiyam", "eid", "eclipse", "funeral", "janazah",
			"rain", "istisqa", "fear", "travel", "shortening",
		}},
		{"zakat", []string{
			"zakat", "alms", "charity", "sadaqah", "poor", "needy", "tithe",
			"wealth", "nisab",
		}},
		{"sawm", []string{
			"fasting", "fast", "sawm", "siyam", "ramadan", "iftar", "suhur",
			"itikaf", "laylat",
		}},
		{"hajj", []string{
			"hajj", "pilgrimage", "umrah", "makkah", "mecca", "kaaba",
			"tawaf", "safa", "marwa", "mina", "arafat", "muzdalifah",
			"sacrifice", "animal", "udhiyah", "qurbani", "aqiqah",
		}},
		{"muamalat", []string{
			"business", "trade", "sale", "buy", "sell", "loan", "debt",
			"contract", "transaction", "riba", "usury", "interest",
			"partner", "rent", "hire", "wage", "inheritance", "will",
			"bequest", "wealth",
		}},
		{"nikah", []string{
			"marriage", "nikah", "wedding", "wife", "husband", "spouse",
			"divorce", "talaq", "iddah", "waiting", "dowry", "mahr",
			"breastfeeding", "custody", "child", "family", "women",
		}},
		{"foods", []string{
			"food", "drink", "eat", "meal", "meat", "animal", "hunt",
			"slaughter", "halal", "haram", "wine", "alcohol", "intoxicant",
			"game", "fish", "sacrifice",
		}},
		{"clothing", []string{
			"cloth", "dress", "garment", "wear", "silk", "gold", "adorn",
			"image", "picture", "hair", "beard", "dyeing",
		}},
		{"akhlaq", []string{
			"character", "moral", "virtue", "vice", "sin", "good", "evil",
			"backbiting", "lying", "honest", "trust", "promise", "envy",
			"pride", "arrogance", "humble", "patience", "anger", "forgive",
		}},
		{"adab", []string{
			"manner", "etiquette", "greeting", "salam", "permission",
			"visit", "guest", "hospitality", "sneeze", "yawn", "sleep",
			"sit", "walk", "talk", "speech", "silence",
		}},
		{"ilm", []string{
			"knowledge", "learn", "teach", "scholar", "student", "book",
			"hadith", "sunnah", "narrat",
		}},
		{"quran", []string{
			"quran", "recit", "verse", "surah", "ayah", "tajweed",
			"memoriz", "hafiz", "tafsir", "interpret",
		}},
		{"dua", []string{
			"supplication", "dua", "invocation", "ask", "request", "pray",
			"implore", "beseech",
		}},
		{"dhikr", []string{
			"remembrance", "dhikr", "tasbih", "tahmid", "takbir",
			"glorif", "praise", "morning", "evening", "adhkar",
		}},
		{"jihad", []string{
			"jihad", "fight", "battle", "war", "expedition", "army",
			"soldier", "martyr", "shahid", "booty", "spoil", "treaty",
			"peace", "truce", "horse", "weapon", "military",
		}},
		{"seerah", []string{
			"prophet", "messenger", "companion", "sahaba", "migration",
			"hijra", "medina", "biography", "story", "narrative",
			"merit", "virtue of", "excellence",
		}},
		{"fitan", []string{
			"trial", "tribulation", "fitna", "affliction", "test",
			"dajjal", "antichrist", "hour", "resurrection", "day of judgment",
			"sign", "end time", "mahdi",
		}},
		{"jannah-nar", []string{
			"paradise", "heaven", "jannah", "hell", "fire", "jahannam",
			"hereafter", "afterlife", "death", "grave", "punishment",
			"reward", "intercession",
		}},
		{"qadar", []string{
			"decree", "destiny", "fate", "qadar", "predestination",
			"will of allah", "divine",
		}},
		{"hudud", []string{
			"punishment", "hudud", "penalty", "crime", "theft", "steal",
			"adultery", "fornication", "wine", "murder", "kill", "blood",
			"retaliation", "qisas", "judge", "witness", "testimony",
			"oath", "court", "legal",
		}},
		{"medicine", []string{
			"medicine", "disease", "sick", "ill", "cure", "heal", "remedy",
			"doctor", "patient", "ruqyah", "evil eye", "magic", "poison",
			"plague", "fever",
		}},
		{"dreams", []string{
			"dream", "vision", "sleep", "interpret", "ruya",
		}},
	}
}
