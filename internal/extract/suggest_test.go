package extract

import (
	"testing"

	"github.com/avoronova/lessonsift/internal/model"
)

func TestSuggestLessonType_Business(t *testing.T) {
	text := "The company presented its revenue strategy at the quarterly meeting. " +
		"Management discussed the market position and a new investment plan for clients."

	if got := SuggestLessonType(text); got != model.LessonBusiness {
		t.Errorf("Expected business, got %s", got)
	}
}

func TestSuggestLessonType_Grammar(t *testing.T) {
	text := "Every sentence needs a verb, and the tense of that verb changes the meaning. " +
		"A noun can take a plural form, and an adjective describes it."

	if got := SuggestLessonType(text); got != model.LessonGrammar {
		t.Errorf("Expected grammar, got %s", got)
	}
}

func TestSuggestLessonType_Travel(t *testing.T) {
	text := "Book the flight early and choose a hotel near the airport. " +
		"Every tourist should keep a passport copy during the trip."

	if got := SuggestLessonType(text); got != model.LessonTravel {
		t.Errorf("Expected travel, got %s", got)
	}
}

func TestSuggestLessonType_Pronunciation(t *testing.T) {
	text := "Stress the first syllable and keep the vowel short. " +
		"The phonetic chart shows how to pronounce each consonant with the right intonation."

	if got := SuggestLessonType(text); got != model.LessonPronunciation {
		t.Errorf("Expected pronunciation, got %s", got)
	}
}

func TestSuggestLessonType_DiscussionFallback(t *testing.T) {
	text := "The weather changed suddenly in the afternoon and everyone went home early."

	if got := SuggestLessonType(text); got != model.LessonDiscussion {
		t.Errorf("Expected discussion fallback, got %s", got)
	}
}

func TestSuggestLessonType_Empty(t *testing.T) {
	if got := SuggestLessonType(""); got != model.LessonDiscussion {
		t.Errorf("Expected discussion for empty text, got %s", got)
	}
}

func TestSuggestLessonType_BelowThreshold(t *testing.T) {
	// Two travel hits are not enough to beat the fallback.
	text := "The trip began at the airport with very little ceremony."

	if got := SuggestLessonType(text); got != model.LessonDiscussion {
		t.Errorf("Expected discussion below the match threshold, got %s", got)
	}
}

func TestSuggestLessonType_Deterministic(t *testing.T) {
	text := "The company arranged travel for the meeting: a flight, a hotel, and a client dinner to discuss revenue."

	first := SuggestLessonType(text)
	for i := 0; i < 5; i++ {
		if got := SuggestLessonType(text); got != first {
			t.Fatalf("Expected deterministic suggestion, got %s then %s", first, got)
		}
	}
}
