// Package quality computes the composite content quality score from three
// independent sub-scores: length adequacy, readability, and structural
// variety. Decomposing the score lets callers explain why content failed,
// not just that it failed.
package quality

import (
	"math"

	"github.com/avoronova/lessonsift/internal/model"
	"github.com/avoronova/lessonsift/internal/textmetrics"
)

// Weights control how sub-scores combine into the overall score.
type Weights struct {
	Readability float64
	Structure   float64
	Length      float64
}

// DefaultWeights emphasize readability slightly over the other two.
func DefaultWeights() Weights {
	return Weights{Readability: 0.4, Structure: 0.3, Length: 0.3}
}

// targetWordCount is where the length sub-score saturates.
const targetWordCount = 500

// Scorer calculates content quality scores.
type Scorer struct {
	weights Weights
}

// NewScorer creates a scorer with the given weights. Zero weights fall
// back to the defaults.
func NewScorer(w Weights) *Scorer {
	if w.Readability+w.Structure+w.Length <= 0 {
		w = DefaultWeights()
	}
	return &Scorer{weights: w}
}

// Calculate scores text and returns all sub-scores in [0,1].
// Empty text yields all zeros.
func (s *Scorer) Calculate(text string) model.QualitySummary {
	words := textmetrics.WordCount(text)
	if words == 0 {
		return model.QualitySummary{}
	}

	stats := textmetrics.AnalyzeSentences(text)
	paragraphs := len(textmetrics.Paragraphs(text))

	length := lengthScore(words)
	readability := readabilityScore(stats)
	structure := structureScore(words, paragraphs, stats.Count)

	total := s.weights.Readability + s.weights.Structure + s.weights.Length
	overall := (readability*s.weights.Readability +
		structure*s.weights.Structure +
		length*s.weights.Length) / total

	return model.QualitySummary{
		Overall:     clamp01(overall),
		Readability: readability,
		Structure:   structure,
		Length:      length,
	}
}

// lengthScore increases monotonically with word count and saturates at
// the target length.
func lengthScore(words int) float64 {
	return clamp01(float64(words) / targetWordCount)
}

// readabilityScore penalizes very short (<8 words) and very long (>40
// words) average sentences, and rewards length variance near a natural
// band. Text with no sentences scores zero.
func readabilityScore(stats textmetrics.SentenceStats) float64 {
	if stats.Count == 0 {
		return 0
	}

	mean := stats.Mean
	var meanScore float64
	switch {
	case mean < 8:
		meanScore = mean / 8 * 0.5
	case mean <= 12:
		meanScore = 0.5 + (mean-8)/4*0.5
	case mean <= 25:
		meanScore = 1
	case mean <= 40:
		meanScore = 1 - (mean-25)/15*0.5
	default:
		meanScore = math.Max(0, 0.5-(mean-40)/20*0.5)
	}

	// Uniform sentence lengths read mechanically; wild swings read
	// choppily. Reward a standard deviation between 3 and 12 words.
	var varScore float64
	switch {
	case stats.StdDev >= 3 && stats.StdDev <= 12:
		varScore = 1
	case stats.StdDev < 3:
		varScore = stats.StdDev / 3
	default:
		varScore = math.Max(0, 1-(stats.StdDev-12)/12)
	}

	return clamp01(0.8*meanScore + 0.2*varScore)
}

// structureScore rewards multiple paragraphs relative to total length and
// penalizes single-block walls of text.
func structureScore(words, paragraphs, sentences int) float64 {
	if paragraphs == 0 {
		return 0
	}
	if paragraphs == 1 {
		if words > 200 {
			return 0.2
		}
		// A single short block is acceptable structure for short text.
		return 0.6
	}

	expected := float64(words)/120 + 1
	score := float64(paragraphs) / expected
	if sentences >= paragraphs*2 {
		score += 0.1 // paragraphs with developed sentences, not fragments
	}
	return clamp01(score)
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
