package extract

import (
	"strings"

	"github.com/avoronova/lessonsift/internal/model"
	"github.com/avoronova/lessonsift/internal/textmetrics"
)

// lessonKeywords drive the lesson-type suggestion. The category with the
// highest keyword density wins; discussion is the fallback when nothing
// stands out.
var lessonKeywords = map[model.LessonType][]string{
	model.LessonBusiness: {
		"business", "market", "company", "finance", "meeting", "client",
		"revenue", "strategy", "management", "investment", "negotiation",
	},
	model.LessonGrammar: {
		"grammar", "verb", "noun", "tense", "sentence", "adjective",
		"plural", "conjugation", "pronoun", "syntax", "clause",
	},
	model.LessonTravel: {
		"travel", "trip", "flight", "hotel", "destination", "tourist",
		"journey", "airport", "vacation", "passport", "itinerary",
	},
	model.LessonPronunciation: {
		"pronunciation", "pronounce", "accent", "syllable", "phonetic",
		"vowel", "consonant", "stress", "intonation",
	},
}

// Categories are scored in a fixed order so equal densities resolve
// deterministically.
var lessonOrder = []model.LessonType{
	model.LessonBusiness,
	model.LessonGrammar,
	model.LessonTravel,
	model.LessonPronunciation,
}

// minLessonMatches is how many keyword hits a category needs before it
// beats the discussion fallback.
const minLessonMatches = 3

// SuggestLessonType picks a lesson category from keyword densities in
// text. It is total and deterministic; empty or unremarkable text maps
// to discussion.
func SuggestLessonType(text string) model.LessonType {
	words := textmetrics.WordCount(text)
	if words == 0 {
		return model.LessonDiscussion
	}
	lower := strings.ToLower(text)

	best := model.LessonDiscussion
	bestCount := 0
	for _, lesson := range lessonOrder {
		count := 0
		for _, kw := range lessonKeywords[lesson] {
			count += strings.Count(lower, kw)
		}
		if count > bestCount {
			best, bestCount = lesson, count
		}
	}

	if bestCount < minLessonMatches {
		return model.LessonDiscussion
	}
	return best
}
