package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/avoronova/lessonsift/internal/model"
	"github.com/avoronova/lessonsift/internal/validate"
)

// Renderer writes reports as JSON or Markdown artifacts.
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer.
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the report as indented JSON to path.
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderMarkdown writes a human-readable report to path.
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Lesson source report\n\n")
	fmt.Fprintf(&b, "- **Source**: %s\n", report.SourceURL)
	fmt.Fprintf(&b, "- **Fetched**: %s\n", report.FetchedAt.Format("2006-01-02 15:04 MST"))
	fmt.Fprintf(&b, "- **Suitable**: %v\n\n", report.Suitable)

	a := report.Analysis
	fmt.Fprintf(&b, "## Analysis\n\n")
	fmt.Fprintf(&b, "| Signal | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Words | %d |\n", a.WordCount)
	fmt.Fprintf(&b, "| Content type | %s |\n", a.ContentType)
	fmt.Fprintf(&b, "| Language | %s (%.2f) |\n", a.Language, a.LanguageConfidence)
	fmt.Fprintf(&b, "| Quality | %.2f |\n", a.QualityScore)
	fmt.Fprintf(&b, "| Advertising ratio | %.2f |\n", a.AdvertisingRatio)
	fmt.Fprintf(&b, "| Educational | %v |\n\n", a.IsEducational)

	if len(report.Reasons) > 0 {
		fmt.Fprintf(&b, "## Why this page was rejected\n\n")
		for _, reason := range report.Reasons {
			fmt.Fprintf(&b, "- %s\n", reason)
		}
		b.WriteString("\n")
	}

	if c := report.Content; c != nil {
		fmt.Fprintf(&b, "## Extracted content\n\n")
		fmt.Fprintf(&b, "- **Title**: %s\n", c.Metadata.Title)
		fmt.Fprintf(&b, "- **Words**: %d\n", c.WordCount)
		fmt.Fprintf(&b, "- **Validation score**: %.0f/100\n", c.Validation.Score)
		fmt.Fprintf(&b, "- **Suggested lesson type**: %s\n", c.SuggestedLessonType)
		fmt.Fprintf(&b, "- **Suggested CEFR level**: %s\n", c.SuggestedCEFRLevel)
		if msg := validate.ErrorMessage(c.Validation.Issues); msg != "" {
			fmt.Fprintf(&b, "- **Problems**: %s\n", msg)
		}
		if c.Attribution != nil {
			fmt.Fprintf(&b, "- **Attribution**: %s\n", c.Attribution.Attribution)
		}
		b.WriteString("\n")
	}

	if r.includeFooter {
		b.WriteString("---\n\nGenerated by lessonsift. Suitability reflects heuristic analysis, not editorial judgment.\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

// RenderSummary prints a short stdout summary of the run.
func (r *Renderer) RenderSummary(report *model.Report) {
	fmt.Printf("%s\n", report.SourceURL)
	if report.Robots != nil && !report.Robots.Allowed {
		fmt.Printf("  blocked: %s\n", report.Robots.Reason)
		return
	}
	fmt.Printf("  suitable: %v  words: %d  type: %s  language: %s\n",
		report.Suitable, report.Analysis.WordCount, report.Analysis.ContentType, report.Analysis.Language)
	for _, reason := range report.Reasons {
		fmt.Printf("  - %s\n", reason)
	}
	if report.Content != nil {
		fmt.Printf("  lesson: %s  cefr: %s  score: %.0f/100\n",
			report.Content.SuggestedLessonType, report.Content.SuggestedCEFRLevel, report.Content.Validation.Score)
	}
}
