package validate

import (
	"strings"
	"testing"

	"github.com/avoronova/lessonsift/internal/model"
)

// goodText builds a clean multi-paragraph article of about n words.
func goodText(n int) string {
	sentences := []string{
		"The community garden opened its gates for the tenth season this week.",
		"Volunteers planted early vegetables and repaired the shared tool shed together.",
		"Several new families joined after reading about the project in the paper.",
		"Organizers expect the harvest to supply two local food banks this autumn.",
	}
	var sb strings.Builder
	count := 0
	i := 0
	for count < n {
		sb.WriteString(sentences[i%len(sentences)])
		sb.WriteString(" ")
		count += len(strings.Fields(sentences[i%len(sentences)]))
		i++
		if i%3 == 0 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}

func supportedEnglish() *model.LanguageContext {
	return &model.LanguageContext{Language: "en", Confidence: 0.95, Supported: true}
}

func TestEngine_Validate_GoodContent(t *testing.T) {
	engine := NewEngine(model.ValidationConfig{MinWordCount: 200, MinQualityScore: 60})

	result := engine.Validate(goodText(500), supportedEnglish())

	if !result.IsValid {
		t.Errorf("Expected good content to be valid, issues: %+v", result.Issues)
	}
	if !result.MeetsMinimumQuality {
		t.Errorf("Expected quality above minimum, got score %f", result.Score)
	}
}

func TestEngine_Validate_InsufficientContent(t *testing.T) {
	engine := NewEngine(model.ValidationConfig{MinWordCount: 200, MinQualityScore: 60})

	result := engine.Validate(goodText(60), supportedEnglish())

	if result.IsValid {
		t.Error("Expected 60-word content to be invalid")
	}
	found := false
	for _, issue := range result.Issues {
		if issue.Type == model.IssueInsufficientContent {
			found = true
			if issue.Severity != model.SeverityError {
				t.Errorf("Expected error severity, got %s", issue.Severity)
			}
			if !issue.Recoverable {
				t.Error("Expected insufficient content to be recoverable")
			}
		}
	}
	if !found {
		t.Errorf("Expected insufficient_content issue, got %+v", result.Issues)
	}
	if len(result.Recommendations) == 0 {
		t.Error("Expected recovery recommendations")
	}
}

func TestEngine_Validate_UnsupportedLanguage(t *testing.T) {
	engine := NewEngine(model.ValidationConfig{})
	lang := &model.LanguageContext{Language: "ja", Confidence: 0.9, Supported: false}

	result := engine.Validate(goodText(500), lang)

	if result.IsValid {
		t.Error("Expected unsupported language to invalidate content")
	}
	if !hasIssue(result.Issues, model.IssueUnsupportedLanguage) {
		t.Errorf("Expected unsupported_language issue, got %+v", result.Issues)
	}
}

func TestEngine_Validate_LowConfidenceLanguage(t *testing.T) {
	engine := NewEngine(model.ValidationConfig{})
	lang := &model.LanguageContext{Language: "en", Confidence: 0.4, Supported: true}

	result := engine.Validate(goodText(500), lang)

	if !hasIssue(result.Issues, model.IssueUnsupportedLanguage) {
		t.Error("Expected low-confidence detection to trigger the language gate")
	}
}

func TestEngine_Validate_NilLanguageSkipsGate(t *testing.T) {
	engine := NewEngine(model.ValidationConfig{})

	result := engine.Validate(goodText(500), nil)

	if hasIssue(result.Issues, model.IssueUnsupportedLanguage) {
		t.Error("Expected nil language context to skip the language gate")
	}
}

func TestEngine_Validate_SocialMediaContent(t *testing.T) {
	engine := NewEngine(model.ValidationConfig{MinWordCount: 50})

	// A feed-like page: hashtags and mentions on nearly every line.
	var sb strings.Builder
	for i := 0; i < 30; i++ {
		sb.WriteString("@someone posted a photo #trending #viral everyone likes it and shares follow for followers\n")
	}
	result := engine.Validate(sb.String(), supportedEnglish())

	if result.IsValid {
		t.Error("Expected feed-like content to be invalid")
	}
	if !hasIssue(result.Issues, model.IssueSocialMediaContent) {
		t.Errorf("Expected social_media_content issue, got %+v", result.Issues)
	}
}

func TestEngine_Validate_NavigationOnly(t *testing.T) {
	engine := NewEngine(model.ValidationConfig{MinWordCount: 20})

	var sb strings.Builder
	for i := 0; i < 25; i++ {
		sb.WriteString("Home Menu Next Previous Back Login Search Sitemap\n")
	}
	result := engine.Validate(sb.String(), supportedEnglish())

	if !hasIssue(result.Issues, model.IssueNavigationOnly) {
		t.Errorf("Expected navigation_only issue, got %+v", result.Issues)
	}
}

func TestEngine_Validate_TooMuchAdvertising(t *testing.T) {
	engine := NewEngine(model.ValidationConfig{MinWordCount: 50})

	base := goodText(300)
	promo := strings.Repeat("Buy now and subscribe for 50% off with free shipping before checkout. ", 20)
	result := engine.Validate(base+promo, supportedEnglish())

	if !hasIssue(result.Issues, model.IssueTooMuchAdvertising) {
		t.Errorf("Expected too_much_advertising issue, got %+v", result.Issues)
	}
}

func TestEngine_Validate_MultipleIssuesReported(t *testing.T) {
	engine := NewEngine(model.ValidationConfig{MinWordCount: 200})
	lang := &model.LanguageContext{Language: "xx", Confidence: 0.2, Supported: false}

	// Short and in an unsupported language: both issues must surface.
	result := engine.Validate("#short @post likes shares", lang)

	if !hasIssue(result.Issues, model.IssueInsufficientContent) {
		t.Error("Expected insufficient_content among issues")
	}
	if !hasIssue(result.Issues, model.IssueUnsupportedLanguage) {
		t.Error("Expected unsupported_language among issues")
	}
}

func TestEngine_Validate_StrictModeTightensLimits(t *testing.T) {
	// Mild promo density passes the normal limit but not the strict one.
	base := goodText(950)
	promo := strings.Repeat("Subscribe today for a discount. ", 2)
	text := base + promo

	normal := NewEngine(model.ValidationConfig{MinWordCount: 50}).Validate(text, supportedEnglish())
	strict := NewEngine(model.ValidationConfig{MinWordCount: 50, StrictMode: true}).Validate(text, supportedEnglish())

	if hasIssue(normal.Issues, model.IssueTooMuchAdvertising) {
		t.Errorf("Expected mild promo density to pass normal mode, got %+v", normal.Issues)
	}
	if !hasIssue(strict.Issues, model.IssueTooMuchAdvertising) {
		t.Errorf("Expected strict mode to flag mild promo density, got %+v", strict.Issues)
	}
}

func TestEngine_Validate_LowQualityIsWarningNotError(t *testing.T) {
	engine := NewEngine(model.ValidationConfig{MinWordCount: 10, MinQualityScore: 99})

	result := engine.Validate(goodText(250), supportedEnglish())

	if !hasIssue(result.Issues, model.IssueLowQuality) {
		t.Fatalf("Expected low_quality issue at threshold 99, got %+v", result.Issues)
	}
	for _, issue := range result.Issues {
		if issue.Type == model.IssueLowQuality && issue.Severity != model.SeverityWarning {
			t.Errorf("Expected low_quality to be a warning, got %s", issue.Severity)
		}
	}
	// A warning alone must not invalidate the content.
	if !result.IsValid {
		t.Errorf("Expected content with only warnings to stay valid, issues: %+v", result.Issues)
	}
	if result.MeetsMinimumQuality {
		t.Error("Expected MeetsMinimumQuality to be false below threshold")
	}
}

func TestEngine_Validate_EmptyInput(t *testing.T) {
	engine := NewEngine(model.ValidationConfig{})

	result := engine.Validate("", nil)

	if result.IsValid {
		t.Error("Expected empty input to be invalid")
	}
	if !hasIssue(result.Issues, model.IssueInsufficientContent) {
		t.Error("Expected insufficient_content for empty input")
	}
}

func hasIssue(issues []model.ValidationIssue, typ model.IssueType) bool {
	for _, issue := range issues {
		if issue.Type == typ {
			return true
		}
	}
	return false
}
