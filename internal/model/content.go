package model

import "time"

// LessonType is the lesson category suggested for extracted content.
type LessonType string

const (
	LessonBusiness      LessonType = "business"
	LessonGrammar       LessonType = "grammar"
	LessonTravel        LessonType = "travel"
	LessonPronunciation LessonType = "pronunciation"
	LessonDiscussion    LessonType = "discussion"
)

// CEFRLevel is a Common European Framework proficiency band.
type CEFRLevel string

const (
	CEFRA1 CEFRLevel = "A1"
	CEFRA2 CEFRLevel = "A2"
	CEFRB1 CEFRLevel = "B1"
	CEFRB2 CEFRLevel = "B2"
	CEFRC1 CEFRLevel = "C1"
)

// BlockType identifies a structured content block.
type BlockType string

const (
	BlockHeading   BlockType = "heading"
	BlockParagraph BlockType = "paragraph"
	BlockList      BlockType = "list"
	BlockTable     BlockType = "table"
	BlockCode      BlockType = "code"
)

// ContentBlock is one structural unit of extracted content.
type ContentBlock struct {
	Type     BlockType  `json:"type"`
	Level    int        `json:"level,omitempty"` // heading level, 1-6
	Text     string     `json:"text,omitempty"`
	Items    []string   `json:"items,omitempty"` // list entries
	Headers  []string   `json:"headers,omitempty"`
	Rows     [][]string `json:"rows,omitempty"`
	Language string     `json:"language,omitempty"` // code block language hint
}

// PageMetadata describes the source page of an extraction.
type PageMetadata struct {
	Title       string      `json:"title"`
	Author      string      `json:"author,omitempty"`
	SiteName    string      `json:"site_name,omitempty"`
	SourceURL   string      `json:"source_url"`
	Domain      string      `json:"domain"`
	Language    string      `json:"language"`
	ContentType ContentType `json:"content_type"`
	Excerpt     string      `json:"excerpt,omitempty"`
}

// QualitySummary is the scorer breakdown attached to extracted content.
type QualitySummary struct {
	Overall     float64 `json:"overall"`     // [0,1]
	Readability float64 `json:"readability"` // [0,1]
	Structure   float64 `json:"structure"`   // [0,1]
	Length      float64 `json:"length"`      // [0,1]
}

// Attribution is the human-readable citation attached to extracted content.
type Attribution struct {
	SourceURL   string    `json:"source_url"`
	Title       string    `json:"title"`
	Domain      string    `json:"domain"`
	ExtractedAt time.Time `json:"extracted_at"`
	Attribution string    `json:"attribution"`
}

// ExtractedContent is the final artifact handed to the lesson generator.
// It is built once per extraction and owned by the caller.
type ExtractedContent struct {
	Text                string           `json:"text"` // sanitized raw text
	Blocks              []ContentBlock   `json:"blocks"`
	Metadata            PageMetadata     `json:"metadata"`
	Quality             QualitySummary   `json:"quality"`
	Validation          ValidationResult `json:"validation"`
	Attribution         *Attribution     `json:"attribution,omitempty"`
	SuggestedLessonType LessonType       `json:"suggested_lesson_type"`
	SuggestedCEFRLevel  CEFRLevel        `json:"suggested_cefr_level"`
	WordCount           int              `json:"word_count"`
}
