package quality

import (
	"github.com/avoronova/lessonsift/internal/model"
	"github.com/avoronova/lessonsift/internal/textmetrics"
)

// EstimateCEFR suggests a proficiency band for text: simpler text maps to
// lower bands. The estimate combines average sentence length with the
// share of long words, both cheap proxies for syntactic and lexical load.
func EstimateCEFR(text string) model.CEFRLevel {
	stats := textmetrics.AnalyzeSentences(text)
	if stats.Count == 0 {
		return model.CEFRA1
	}

	longRatio := longWordRatio(text)

	// Complexity blends sentence length (capped at 40) with lexical load.
	complexity := stats.Mean + longRatio*30

	switch {
	case complexity < 10:
		return model.CEFRA1
	case complexity < 15:
		return model.CEFRA2
	case complexity < 21:
		return model.CEFRB1
	case complexity < 28:
		return model.CEFRB2
	default:
		return model.CEFRC1
	}
}

// longWordRatio is the fraction of words with 7 or more characters.
func longWordRatio(text string) float64 {
	words := textmetrics.Words(text)
	if len(words) == 0 {
		return 0
	}
	long := 0
	for _, w := range words {
		if len([]rune(w)) >= 7 {
			long++
		}
	}
	return float64(long) / float64(len(words))
}
