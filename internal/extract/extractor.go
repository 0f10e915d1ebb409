// Package extract produces the final ExtractedContent artifact: structured
// content and metadata pulled from a page, validated, sanitized, and
// annotated with lesson suggestions for the downstream generator.
package extract

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"github.com/avoronova/lessonsift/internal/analyze"
	"github.com/avoronova/lessonsift/internal/language"
	"github.com/avoronova/lessonsift/internal/model"
	"github.com/avoronova/lessonsift/internal/privacy"
	"github.com/avoronova/lessonsift/internal/quality"
	"github.com/avoronova/lessonsift/internal/textmetrics"
	"github.com/avoronova/lessonsift/internal/validate"
)

// Extractor orchestrates DOM extraction, privacy checks, validation, and
// suggestion logic for one page.
type Extractor struct {
	privacy   *privacy.Manager
	analyzer  *analyze.Engine
	validator *validate.Engine
	detector  *language.Detector
	scorer    *quality.Scorer
}

// NewExtractor creates an extractor wired to the given collaborators.
func NewExtractor(pm *privacy.Manager, analyzer *analyze.Engine, validator *validate.Engine) *Extractor {
	return &Extractor{
		privacy:   pm,
		analyzer:  analyzer,
		validator: validator,
		detector:  language.NewDetector(),
		scorer:    quality.NewScorer(quality.DefaultWeights()),
	}
}

// Extract builds an ExtractedContent from an HTML snapshot fetched from
// rawURL. The caller is expected to have cleared the privacy policy for
// the URL already; Extract itself only records consent and sanitizes.
func (x *Extractor) Extract(html, rawURL string) (*model.ExtractedContent, error) {
	if strings.TrimSpace(html) == "" {
		return nil, fmt.Errorf("empty document")
	}

	if x.privacy.Settings().ExplicitConsentRequired {
		x.privacy.EnsureConsent()
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	article := x.readable(html, rawURL)

	rawText := article.TextContent
	if strings.TrimSpace(rawText) == "" {
		rawText = normalizeWhitespace(doc.Find("body").Text())
	}

	blocks := extractBlocks(article.Content, doc)

	// Language: heuristic detection, declared attribute on low confidence.
	detected := x.detector.Detect(rawText)
	lang, confidence := detected.Language, detected.Confidence
	if confidence < language.FallbackConfidence {
		if declared := language.NormalizeTag(htmlLang(doc)); declared != "" && x.detector.Supported(declared) {
			lang = declared
			confidence = language.FallbackConfidence
		}
	}

	validation := x.validator.Validate(rawText, &model.LanguageContext{
		Language:   lang,
		Confidence: confidence,
		Supported:  x.detector.Supported(lang),
	})

	summary := x.scorer.Calculate(rawText)

	domain := ""
	if parsed, err := url.Parse(rawURL); err == nil {
		domain = parsed.Hostname()
	}

	pageAnalysis := x.analyzer.AnalyzePage(html, rawURL)

	content := &model.ExtractedContent{
		Text:   x.privacy.Sanitize(rawText),
		Blocks: blocks,
		Metadata: model.PageMetadata{
			Title:       title(article, doc),
			Author:      article.Byline,
			SiteName:    article.SiteName,
			SourceURL:   rawURL,
			Domain:      domain,
			Language:    lang,
			ContentType: pageAnalysis.ContentType,
			Excerpt:     article.Excerpt,
		},
		Quality:             summary,
		Validation:          validation,
		SuggestedLessonType: SuggestLessonType(rawText),
		SuggestedCEFRLevel:  quality.EstimateCEFR(rawText),
		WordCount:           textmetrics.WordCount(rawText),
	}

	if x.privacy.Settings().IncludeAttribution {
		attribution := x.privacy.BuildAttribution(rawURL, content.Metadata.Title)
		content.Attribution = &attribution
	}

	x.privacy.LogDataUsage("content_extracted", len(content.Text), rawURL)
	return content, nil
}

// Validation re-exposes a prior extraction's validation result for UI
// consumption without re-running DOM extraction.
func (x *Extractor) Validation(content *model.ExtractedContent) model.ValidationResult {
	if content == nil {
		return model.ValidationResult{}
	}
	return content.Validation
}

// readable runs go-readability over the snapshot; on failure it returns a
// zero article and the caller falls back to the raw body text.
func (x *Extractor) readable(html, rawURL string) readability.Article {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		parsedURL = &url.URL{}
	}
	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(html), parsedURL)
	if err != nil {
		return readability.Article{}
	}
	return article
}

// title resolves the page title through the fallback chain: readability
// title, <title>, og:title, first h1.
func title(article readability.Article, doc *goquery.Document) string {
	if t := strings.TrimSpace(article.Title); t != "" {
		return t
	}
	if t := strings.TrimSpace(doc.Find("title").First().Text()); t != "" {
		return t
	}
	if t, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok && strings.TrimSpace(t) != "" {
		return strings.TrimSpace(t)
	}
	return strings.TrimSpace(doc.Find("h1").First().Text())
}

// extractBlocks walks the readability-cleaned content and builds the
// structured block list. If readability produced nothing, the full
// document is walked instead.
func extractBlocks(articleHTML string, full *goquery.Document) []model.ContentBlock {
	doc := full
	if strings.TrimSpace(articleHTML) != "" {
		if clean, err := goquery.NewDocumentFromReader(strings.NewReader(articleHTML)); err == nil {
			doc = clean
		}
	}

	var blocks []model.ContentBlock
	doc.Find("h1, h2, h3, h4, h5, h6, p, ul, ol, table, pre").Each(func(_ int, s *goquery.Selection) {
		switch tag := goquery.NodeName(s); tag {
		case "p":
			if text := normalizeWhitespace(s.Text()); text != "" {
				blocks = append(blocks, model.ContentBlock{Type: model.BlockParagraph, Text: text})
			}
		case "ul", "ol":
			if items := listItems(s); len(items) > 0 {
				blocks = append(blocks, model.ContentBlock{Type: model.BlockList, Items: items})
			}
		case "table":
			if block := tableBlock(s); block != nil {
				blocks = append(blocks, *block)
			}
		case "pre":
			if block := codeBlock(s); block != nil {
				blocks = append(blocks, *block)
			}
		default: // h1-h6
			if text := normalizeWhitespace(s.Text()); text != "" {
				blocks = append(blocks, model.ContentBlock{
					Type:  model.BlockHeading,
					Level: int(tag[1] - '0'),
					Text:  text,
				})
			}
		}
	})
	return blocks
}

func listItems(s *goquery.Selection) []string {
	var items []string
	s.ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
		if text := normalizeWhitespace(li.Text()); text != "" {
			items = append(items, text)
		}
	})
	return items
}

func tableBlock(s *goquery.Selection) *model.ContentBlock {
	var headers []string
	s.Find("thead tr th").Each(func(_ int, th *goquery.Selection) {
		headers = append(headers, normalizeWhitespace(th.Text()))
	})
	if len(headers) == 0 {
		s.Find("tr").First().Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			headers = append(headers, normalizeWhitespace(cell.Text()))
		})
	}

	var rows [][]string
	s.Find("tbody tr").Each(func(_ int, tr *goquery.Selection) {
		var row []string
		tr.Find("td").Each(func(_ int, td *goquery.Selection) {
			row = append(row, normalizeWhitespace(td.Text()))
		})
		if len(row) > 0 {
			rows = append(rows, row)
		}
	})

	if len(headers) == 0 && len(rows) == 0 {
		return nil
	}
	return &model.ContentBlock{Type: model.BlockTable, Headers: headers, Rows: rows}
}

func codeBlock(s *goquery.Selection) *model.ContentBlock {
	code := s.Find("code")
	text := strings.TrimSpace(code.Text())
	if text == "" {
		text = strings.TrimSpace(s.Text())
	}
	if text == "" {
		return nil
	}

	lang, _ := code.Attr("class")
	lang = strings.TrimPrefix(lang, "language-")
	return &model.ContentBlock{Type: model.BlockCode, Text: text, Language: lang}
}

func htmlLang(doc *goquery.Document) string {
	lang, _ := doc.Find("html").Attr("lang")
	return lang
}

func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
