// Package validate decides whether a piece of text is usable raw material
// for lesson generation. The engine runs every check and reports every
// failing reason; it never short-circuits, throws, or rejects malformed
// input — bad input degrades into issues, not errors.
package validate

import (
	"fmt"
	"regexp"

	"github.com/avoronova/lessonsift/internal/model"
	"github.com/avoronova/lessonsift/internal/quality"
	"github.com/avoronova/lessonsift/internal/textmetrics"
)

// languageGateConfidence mirrors language.FallbackConfidence: detected
// languages below it are treated as unreliable.
const languageGateConfidence = 0.7

// Pattern-density limits, in matches per 1000 words. Strict mode halves
// them.
const (
	socialDensityLimit = 15.0
	navDensityLimit    = 40.0
	promoDensityLimit  = 8.0
)

// strictScoreMargin is added to the minimum quality score in strict mode.
const strictScoreMargin = 10.0

var (
	socialPattern = regexp.MustCompile(`(?i)(#\w+|@\w+|\b(likes?|shares?|retweets?|followers?|upvotes?)\b)`)
	navPattern    = regexp.MustCompile(`(?i)\b(home|menu|next|previous|back|login|log in|sign in|sign up|sitemap|skip to content|search)\b`)
	promoPattern  = regexp.MustCompile(`(?i)(\b(buy now|subscribe|sale|discount|free shipping|add to cart|order now|limited time|checkout)\b|\d+% off)`)
)

// Engine validates content against configurable thresholds.
type Engine struct {
	minWordCount    int
	minQualityScore float64
	strictMode      bool
	scorer          *quality.Scorer
}

// NewEngine creates a validation engine. Zero-valued config fields fall
// back to the defaults (200 words, score 60, non-strict).
func NewEngine(cfg model.ValidationConfig) *Engine {
	if cfg.MinWordCount <= 0 {
		cfg.MinWordCount = 200
	}
	if cfg.MinQualityScore <= 0 {
		cfg.MinQualityScore = 60
	}
	return &Engine{
		minWordCount:    cfg.MinWordCount,
		minQualityScore: cfg.MinQualityScore,
		strictMode:      cfg.StrictMode,
		scorer:          quality.NewScorer(quality.DefaultWeights()),
	}
}

// Validate runs the full check sequence over text. A nil language context
// skips the language gate. Every check appends at most one issue.
func (e *Engine) Validate(text string, lang *model.LanguageContext) model.ValidationResult {
	var result model.ValidationResult

	words := textmetrics.WordCount(text)

	// 1. Minimum length.
	if words < e.minWordCount {
		result.Issues = append(result.Issues, model.ValidationIssue{
			Type:        model.IssueInsufficientContent,
			Severity:    model.SeverityError,
			Message:     fmt.Sprintf("content has %d words, minimum is %d", words, e.minWordCount),
			Recoverable: true,
		})
	}

	// 2. Language gate, only when the caller supplied language info.
	if lang != nil {
		if !lang.Supported || lang.Confidence < languageGateConfidence {
			result.Issues = append(result.Issues, model.ValidationIssue{
				Type:        model.IssueUnsupportedLanguage,
				Severity:    model.SeverityError,
				Message:     fmt.Sprintf("language %q is not supported or was detected with low confidence (%.2f)", lang.Language, lang.Confidence),
				Recoverable: true,
			})
		}
	}

	// 3. Pattern-density checks.
	socialLimit, navLimit, promoLimit := socialDensityLimit, navDensityLimit, promoDensityLimit
	if e.strictMode {
		socialLimit /= 2
		navLimit /= 2
		promoLimit /= 2
	}

	if d := density(socialPattern, text, words); d > socialLimit {
		result.Issues = append(result.Issues, model.ValidationIssue{
			Type:        model.IssueSocialMediaContent,
			Severity:    model.SeverityError,
			Message:     fmt.Sprintf("social media markers appear %.0f times per 1000 words", d),
			Recoverable: true,
		})
	}
	if d := density(navPattern, text, words); d > navLimit {
		result.Issues = append(result.Issues, model.ValidationIssue{
			Type:        model.IssueNavigationOnly,
			Severity:    model.SeverityError,
			Message:     fmt.Sprintf("navigation labels appear %.0f times per 1000 words", d),
			Recoverable: true,
		})
	}
	if d := density(promoPattern, text, words); d > promoLimit {
		result.Issues = append(result.Issues, model.ValidationIssue{
			Type:        model.IssueTooMuchAdvertising,
			Severity:    model.SeverityError,
			Message:     fmt.Sprintf("promotional phrases appear %.0f times per 1000 words", d),
			Recoverable: true,
		})
	}

	// 4. Quality score.
	summary := e.scorer.Calculate(text)
	result.Score = summary.Overall * 100

	minScore := e.minQualityScore
	if e.strictMode {
		minScore += strictScoreMargin
	}
	result.MeetsMinimumQuality = result.Score >= minScore
	if !result.MeetsMinimumQuality {
		result.Issues = append(result.Issues, model.ValidationIssue{
			Type:        model.IssueLowQuality,
			Severity:    model.SeverityWarning,
			Message:     fmt.Sprintf("quality score %.0f is below the minimum of %.0f", result.Score, minScore),
			Recoverable: true,
		})
		result.Warnings = append(result.Warnings, "content quality is below the recommended minimum")
	}

	// 5. Validity follows from error-severity issues alone.
	result.IsValid = !result.HasError()

	result.Recommendations = RecoveryOptions(result.Issues)
	return result
}

// density returns matches per 1000 words. Zero-word text has zero density.
func density(pattern *regexp.Regexp, text string, words int) float64 {
	if words == 0 {
		return 0
	}
	matches := len(pattern.FindAllStringIndex(text, -1))
	return float64(matches) / float64(words) * 1000
}
