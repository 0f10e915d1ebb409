package model

// ContentType classifies what kind of page the analyzed content came from.
// Classification is total: every page gets exactly one tag.
type ContentType string

const (
	ContentArticle      ContentType = "article"
	ContentBlog         ContentType = "blog"
	ContentNews         ContentType = "news"
	ContentTutorial     ContentType = "tutorial"
	ContentEncyclopedia ContentType = "encyclopedia"
	ContentProduct      ContentType = "product"
	ContentSocial       ContentType = "social"
	ContentNavigation   ContentType = "navigation"
	ContentEcommerce    ContentType = "ecommerce"
	ContentMultimedia   ContentType = "multimedia"
	ContentUnknown      ContentType = "unknown"
)

// PageAnalysis is the transient result of analyzing one page snapshot.
// It is computed per call and never persisted.
type PageAnalysis struct {
	WordCount          int         `json:"word_count"`
	ContentType        ContentType `json:"content_type"`
	Language           string      `json:"language"`
	LanguageConfidence float64     `json:"language_confidence"` // [0,1]
	QualityScore       float64     `json:"quality_score"`       // [0,1]
	HasMainContent     bool        `json:"has_main_content"`
	IsEducational      bool        `json:"is_educational"`
	AdvertisingRatio   float64     `json:"advertising_ratio"` // [0,1]
	HasSocialFeeds     bool        `json:"has_social_feeds"`
	HasCommentSections bool        `json:"has_comment_sections"`
}

// DOMSignals carries the structural counts the classifier and analyzer read
// from a parsed document. All fields default to zero for plain-text input.
type DOMSignals struct {
	HeadingCount   int
	ParagraphCount int
	ListItemCount  int
	NavCount       int
	BlockCount     int // content-bearing block elements, total
	AdCount        int // elements matched by ad/banner selectors
	MediaCount     int // video/audio/iframe embeds
	PriceCount     int // price/cart indicators
	FormCount      int
	LinkCount      int
	SentenceCount  int
	WordCount      int
}
