package analyze

import (
	"fmt"

	"github.com/avoronova/lessonsift/internal/language"
	"github.com/avoronova/lessonsift/internal/model"
)

// minSuitableWords is the word-count gate for lesson suitability.
const minSuitableWords = 200

// unsuitableTypes are content types that never qualify as lesson material.
var unsuitableTypes = map[model.ContentType]bool{
	model.ContentProduct:    true,
	model.ContentSocial:     true,
	model.ContentNavigation: true,
	model.ContentEcommerce:  true,
	model.ContentMultimedia: true,
}

// Suitable applies every suitability gate to an analysis and returns the
// decision with an itemized reason per failing gate. All gates are
// evaluated; nothing short-circuits, so the caller can report every
// failure, not just the first.
func (e *Engine) Suitable(a model.PageAnalysis) (bool, []string) {
	var reasons []string

	if a.WordCount < minSuitableWords {
		reasons = append(reasons, fmt.Sprintf("word count %d is below the minimum of %d", a.WordCount, minSuitableWords))
	}
	if !e.detector.Supported(a.Language) {
		reasons = append(reasons, fmt.Sprintf("language %q is not supported", a.Language))
	}
	if a.LanguageConfidence < language.FallbackConfidence {
		reasons = append(reasons, fmt.Sprintf("language confidence %.2f is below %.2f", a.LanguageConfidence, language.FallbackConfidence))
	}
	if !a.IsEducational {
		reasons = append(reasons, "content does not look educational")
	}
	if unsuitableTypes[a.ContentType] {
		reasons = append(reasons, fmt.Sprintf("content type %q is not suitable for lessons", a.ContentType))
	}
	if a.HasSocialFeeds {
		reasons = append(reasons, "page embeds social media feeds")
	}
	if a.HasCommentSections {
		reasons = append(reasons, "page contains comment sections")
	}

	return len(reasons) == 0, reasons
}
