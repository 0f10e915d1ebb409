// Package analyze is the DOM-facing orchestrator: it pulls text and
// structure out of an HTML snapshot, runs language detection, content-type
// classification, and quality scoring, and exposes the page-level
// suitability decision. Analysis reads the document and never writes it,
// so repeated calls over the same snapshot are safe and memoizable.
package analyze

import (
	"encoding/json"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/avoronova/lessonsift/internal/cache"
	"github.com/avoronova/lessonsift/internal/classify"
	"github.com/avoronova/lessonsift/internal/language"
	"github.com/avoronova/lessonsift/internal/model"
	"github.com/avoronova/lessonsift/internal/quality"
	"github.com/avoronova/lessonsift/internal/textmetrics"
)

// Selector groups used to read structural signals off the document.
const (
	adSelector      = `[class*="advert"], [class*="banner"], [id*="advert"], [class*="sponsor"], .ad, .ads, .adsbygoogle, [class*="promo"]`
	socialSelector  = `[class*="social-feed"], [class*="twitter-timeline"], .tweet, [class*="instagram-media"], .fb-post, [class*="tiktok-embed"]`
	commentSelector = `#comments, .comments, [class*="comment-section"], [class*="comment-list"], #disqus_thread, [id*="livefyre"]`
	mediaSelector   = `video, audio, iframe[src*="youtube"], iframe[src*="vimeo"], iframe[src*="spotify"]`
	priceSelector   = `[class*="price"], [class*="cart"], [class*="add-to-cart"], [data-price]`
	blockSelector   = "p, li, h1, h2, h3, h4, h5, h6, blockquote, pre, table"
)

// Engine analyzes page snapshots.
type Engine struct {
	detector   *language.Detector
	classifier *classify.Classifier
	scorer     *quality.Scorer
	memo       cache.Cache // nil disables memoization
}

// NewEngine creates an analysis engine. A nil memo cache disables
// result memoization.
func NewEngine(memo cache.Cache) *Engine {
	return &Engine{
		detector:   language.NewDetector(),
		classifier: classify.NewClassifier(),
		scorer:     quality.NewScorer(quality.DefaultWeights()),
		memo:       memo,
	}
}

// AnalyzePage analyzes an HTML snapshot fetched from rawURL and returns a
// complete PageAnalysis. It is total: unparseable input yields a
// zero-signal analysis, never an error.
func (e *Engine) AnalyzePage(html, rawURL string) model.PageAnalysis {
	key := cache.Fingerprint(rawURL + "\x00" + html)
	if e.memo != nil {
		if data, ok := e.memo.Get(key); ok {
			var cached model.PageAnalysis
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached
			}
		}
	}

	analysis := e.analyze(html, rawURL)

	if e.memo != nil {
		if data, err := json.Marshal(analysis); err == nil {
			_ = e.memo.Set(key, data)
		}
	}
	return analysis
}

// Invalidate drops any memoized result for the given snapshot.
func (e *Engine) Invalidate(html, rawURL string) {
	if e.memo != nil {
		_ = e.memo.Delete(cache.Fingerprint(rawURL + "\x00" + html))
	}
}

func (e *Engine) analyze(html, rawURL string) model.PageAnalysis {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return model.PageAnalysis{ContentType: model.ContentUnknown, Language: "unknown"}
	}

	bodyText := normalizeWhitespace(doc.Find("body").Text())
	signals := readSignals(doc)
	signals.WordCount = textmetrics.WordCount(bodyText)
	signals.SentenceCount = len(textmetrics.Sentences(bodyText))

	// Language, with declared-attribute fallback on low confidence.
	detected := e.detector.Detect(bodyText)
	lang, confidence := detected.Language, detected.Confidence
	if detected.Confidence < language.FallbackConfidence {
		if declared := language.NormalizeTag(docLang(doc)); declared != "" && e.detector.Supported(declared) {
			lang = declared
			confidence = language.FallbackConfidence
		}
	}

	var hostname, path string
	if u, err := url.Parse(rawURL); err == nil {
		hostname = u.Hostname()
		path = u.Path
	}

	contentType := e.classifier.Classify(classify.Input{
		Path:     path,
		Hostname: hostname,
		Signals:  signals,
	})

	structured := structuredText(doc)
	summary := e.scorer.Calculate(structured)

	advertisingRatio := 0.0
	if signals.BlockCount > 0 {
		advertisingRatio = clamp01(float64(signals.AdCount) / float64(signals.BlockCount))
	}

	hasMain := signals.ParagraphCount >= 3 && signals.WordCount >= 100

	return model.PageAnalysis{
		WordCount:          signals.WordCount,
		ContentType:        contentType,
		Language:           lang,
		LanguageConfidence: confidence,
		QualityScore:       summary.Overall,
		HasMainContent:     hasMain,
		IsEducational:      isEducational(contentType, bodyText, signals),
		AdvertisingRatio:   advertisingRatio,
		HasSocialFeeds:     doc.Find(socialSelector).Length() > 0,
		HasCommentSections: doc.Find(commentSelector).Length() > 0,
	}
}

// readSignals collects structural counts in one pass over the document.
func readSignals(doc *goquery.Document) model.DOMSignals {
	return model.DOMSignals{
		HeadingCount:   doc.Find("h1, h2, h3, h4, h5, h6").Length(),
		ParagraphCount: doc.Find("p").Length(),
		ListItemCount:  doc.Find("li").Length(),
		NavCount:       doc.Find("nav, [role='navigation']").Length(),
		BlockCount:     doc.Find(blockSelector).Length(),
		AdCount:        doc.Find(adSelector).Length(),
		MediaCount:     doc.Find(mediaSelector).Length(),
		PriceCount:     doc.Find(priceSelector).Length(),
		FormCount:      doc.Find("form").Length(),
		LinkCount:      doc.Find("a[href]").Length(),
	}
}

// structuredText rebuilds the body text with paragraph boundaries intact
// so the structure sub-score sees the real block layout.
func structuredText(doc *goquery.Document) string {
	var b strings.Builder
	doc.Find("h1, h2, h3, h4, h5, h6, p, blockquote, li").Each(func(_ int, s *goquery.Selection) {
		text := normalizeWhitespace(s.Text())
		if text != "" {
			b.WriteString(text)
			b.WriteString("\n\n")
		}
	})
	return strings.TrimSpace(b.String())
}

var educationalKeywords = []string{
	"learn", "learning", "guide", "tutorial", "lesson", "course", "how to",
	"introduction", "explain", "example", "history", "research", "study",
	"science", "definition", "overview",
}

// isEducational decides whether the page reads like instructive material.
func isEducational(contentType model.ContentType, bodyText string, signals model.DOMSignals) bool {
	switch contentType {
	case model.ContentProduct, model.ContentSocial, model.ContentNavigation,
		model.ContentEcommerce, model.ContentMultimedia:
		return false
	}

	lower := strings.ToLower(bodyText)
	matches := 0
	for _, kw := range educationalKeywords {
		if strings.Contains(lower, kw) {
			matches++
		}
	}
	return matches >= 2 || (signals.WordCount >= 400 && signals.ParagraphCount >= 4)
}

func docLang(doc *goquery.Document) string {
	lang, _ := doc.Find("html").Attr("lang")
	return lang
}

func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
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
