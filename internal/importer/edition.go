package importer

import (
	"encoding/json"
	"strconv"
)

// Edition is one decoded edition file from the CDN, either the Arabic or the
// English rendering of a collection.
type Edition struct {
	Metadata EditionMetadata `json:"metadata"`
	Hadiths  []EditionHadith `json:"hadiths"`
}

type EditionMetadata struct {
	Name           string                    `json:"name"`
	Sections       map[string]SectionTitle   `json:"sections"`
	SectionDetails map[string]SectionDetails `json:"section_details"`
}

type SectionDetails struct {
	HadithFirst FlexInt `json:"hadithnumber_first"`
	HadithLast  FlexInt `json:"hadithnumber_last"`
}

type EditionHadith struct {
	HadithNumber FlexInt        `json:"hadithnumber"`
	ArabicNumber FlexInt        `json:"arabicnumber"`
	Text         string         `json:"text"`
	Narrator     string         `json:"narrator"`
	Grades       []EditionGrade `json:"grades"`
}

type EditionGrade struct {
	Name  string `json:"name"`
	Grade string `json:"grade"`
}

// SectionTitle tolerates both upstream formats: a plain title string and the
// older object form carrying title keys.
type SectionTitle string

func (t *SectionTitle) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = SectionTitle(s)
		return nil
	}

	var obj map[string]string
	if err := json.Unmarshal(data, &obj); err == nil {
		for _, key := range []string{"title", "title_en", "title_ar"} {
			if v, ok := obj[key]; ok {
				*t = SectionTitle(v)
				return nil
			}
		}
	}
	*t = ""
	return nil
}

// FlexInt tolerates the numeric quirks of the upstream data: hadith numbers
// appear as integers, floats (sub-numbered hadiths like 1154.5), numeric
// strings, and null.
type FlexInt int

func (n *FlexInt) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		*n = 0
		return nil
	}
	if len(s) > 1 && s[0] == '"' {
		s = s[1 : len(s)-1]
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*n = 0
		return nil
	}
	*n = FlexInt(int(f))
	return nil
}

func (n FlexInt) Int() int {
	return int(n)
}
