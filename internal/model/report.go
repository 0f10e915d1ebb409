package model

import "time"

// Report is the complete artifact of one analyze run, suitable for
// rendering as JSON or Markdown.
type Report struct {
	SourceURL string    `json:"source_url"`
	FetchedAt time.Time `json:"fetched_at"`
	FetchMeta FetchMeta `json:"fetch_meta"`

	Analysis PageAnalysis      `json:"analysis"`
	Suitable bool              `json:"suitable"`
	Reasons  []string          `json:"reasons,omitempty"` // itemized failing gates
	Robots   *RobotsDecision   `json:"robots,omitempty"`
	Content  *ExtractedContent `json:"content,omitempty"`
}

// FetchMeta contains HTTP metadata from fetching the source page.
type FetchMeta struct {
	StatusCode   int               `json:"status_code"`
	ContentType  string            `json:"content_type,omitempty"`
	LastModified string            `json:"last_modified,omitempty"`
	ETag         string            `json:"etag,omitempty"`
	Headers      map[string]string `json:"headers,omitempty"`
}
