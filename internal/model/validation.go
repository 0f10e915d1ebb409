package model

// IssueType classifies a validation issue.
type IssueType string

const (
	IssueInsufficientContent IssueType = "insufficient_content"
	IssueUnsupportedLanguage IssueType = "unsupported_language"
	IssueSocialMediaContent  IssueType = "social_media_content"
	IssueNavigationOnly      IssueType = "navigation_only"
	IssueTooMuchAdvertising  IssueType = "too_much_advertising"
	IssueLowQuality          IssueType = "low_quality"
)

// IssueSeverity indicates whether an issue blocks extraction or merely warns.
type IssueSeverity string

const (
	SeverityError   IssueSeverity = "error"
	SeverityWarning IssueSeverity = "warning"
)

// ValidationIssue is one finding from the validation engine.
type ValidationIssue struct {
	Type        IssueType     `json:"type"`
	Severity    IssueSeverity `json:"severity"`
	Message     string        `json:"message"`
	Recoverable bool          `json:"recoverable"`
}

// ValidationResult is the outcome of validating a piece of content.
// IsValid is false iff at least one issue has severity error.
type ValidationResult struct {
	IsValid             bool              `json:"is_valid"`
	MeetsMinimumQuality bool              `json:"meets_minimum_quality"`
	Score               float64           `json:"score"` // [0,100]
	Issues              []ValidationIssue `json:"issues"`
	Warnings            []string          `json:"warnings,omitempty"`
	Recommendations     []string          `json:"recommendations,omitempty"`
}

// HasError reports whether any issue carries error severity.
func (r ValidationResult) HasError() bool {
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

// LanguageContext carries optional language information into validation.
// A nil context skips the language gate entirely.
type LanguageContext struct {
	Language   string  `json:"language"`
	Confidence float64 `json:"confidence"`
	Supported  bool    `json:"supported"`
}
