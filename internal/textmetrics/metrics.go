// Package textmetrics provides pure text statistics used by the quality
// scorer and the validation engine: word counts, sentence splits, and
// paragraph structure. All functions are total over arbitrary input.
package textmetrics

import (
	"math"
	"strings"
	"unicode"
)

// Words splits text into whitespace-delimited word tokens.
func Words(text string) []string {
	return strings.FieldsFunc(text, unicode.IsSpace)
}

// WordCount returns the number of whitespace-delimited words in text.
func WordCount(text string) int {
	return len(Words(text))
}

// Sentences splits text into sentences on terminator punctuation.
// A terminator only ends a sentence when followed by whitespace or the
// end of input, which avoids splitting on decimals and most abbreviations.
func Sentences(text string) []string {
	text = strings.ReplaceAll(text, "\n", " ")

	var sentences []string
	var current strings.Builder

	runes := []rune(text)
	for i, r := range runes {
		current.WriteRune(r)

		if r == '.' || r == '!' || r == '?' {
			atEnd := i+1 >= len(runes)
			if atEnd || unicode.IsSpace(runes[i+1]) {
				sentence := strings.TrimSpace(current.String())
				if sentence != "" && containsLetter(sentence) {
					sentences = append(sentences, sentence)
				}
				current.Reset()
			}
		}
	}

	if rest := strings.TrimSpace(current.String()); rest != "" && containsLetter(rest) {
		sentences = append(sentences, rest)
	}

	return sentences
}

// Paragraphs splits text into non-empty blocks separated by blank lines.
func Paragraphs(text string) []string {
	var paragraphs []string
	for _, block := range strings.Split(text, "\n\n") {
		if trimmed := strings.TrimSpace(block); trimmed != "" {
			paragraphs = append(paragraphs, trimmed)
		}
	}
	return paragraphs
}

// SentenceStats summarizes sentence-length distribution in words.
type SentenceStats struct {
	Count    int
	Mean     float64
	Variance float64
	StdDev   float64
}

// AnalyzeSentences computes sentence-length statistics for text.
// Zero-valued stats are returned for text with no sentences.
func AnalyzeSentences(text string) SentenceStats {
	sentences := Sentences(text)
	if len(sentences) == 0 {
		return SentenceStats{}
	}

	lengths := make([]float64, len(sentences))
	sum := 0.0
	for i, s := range sentences {
		lengths[i] = float64(WordCount(s))
		sum += lengths[i]
	}
	mean := sum / float64(len(lengths))

	variance := 0.0
	for _, l := range lengths {
		d := l - mean
		variance += d * d
	}
	variance /= float64(len(lengths))

	return SentenceStats{
		Count:    len(sentences),
		Mean:     mean,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
	}
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
