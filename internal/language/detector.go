// Package language implements lightweight signal-word language detection.
// Each supported language has a fixed set of distinctive short function
// words; the detector counts word-boundary matches and picks the arg-max
// language. This is deliberately not statistical language identification.
package language

import "strings"

// FallbackConfidence is the threshold below which callers should fall
// back to the document's declared language attribute.
const FallbackConfidence = 0.7

// minSignalMatches is the absolute match count a language must clear
// before the detector reports full confidence.
const minSignalMatches = 3

// Result is the outcome of one detection call.
type Result struct {
	Language   string  `json:"language"`
	Confidence float64 `json:"confidence"` // [0,1]
	Supported  bool    `json:"supported"`
}

// supportedLanguages is the allow-list, in tie-break priority order:
// when two languages match equally, the first listed wins.
var supportedLanguages = []string{"en", "es", "fr", "de", "it", "pt"}

var signalWords = map[string][]string{
	"en": {"the", "and", "is", "are", "was", "were", "have", "has", "with", "this", "that", "from", "they", "will", "there", "their", "what", "about", "which", "would"},
	"es": {"el", "los", "las", "es", "son", "está", "están", "tiene", "este", "esta", "pero", "porque", "muy", "más", "también", "donde", "cuando", "hacer", "desde", "entre"},
	"fr": {"le", "les", "est", "sont", "était", "avec", "cette", "qui", "dans", "pour", "mais", "nous", "vous", "ils", "être", "avoir", "fait", "plus", "très", "aussi"},
	"de": {"der", "die", "das", "ist", "sind", "war", "haben", "hat", "mit", "diese", "dass", "von", "sie", "werden", "nicht", "auch", "für", "auf", "ein", "eine"},
	"it": {"il", "gli", "sono", "era", "hanno", "ha", "con", "questo", "questa", "che", "per", "una", "uno", "ma", "come", "non", "anche", "più", "molto", "quando"},
	"pt": {"os", "as", "são", "estava", "tem", "com", "este", "esta", "que", "para", "uma", "um", "mas", "não", "também", "mais", "muito", "quando", "fazer", "pelo"},
}

// Detector scores text against per-language signal-word sets.
type Detector struct {
	order []string
	sets  map[string]map[string]struct{}
}

// NewDetector creates a detector over the fixed language allow-list.
func NewDetector() *Detector {
	sets := make(map[string]map[string]struct{}, len(signalWords))
	for lang, words := range signalWords {
		set := make(map[string]struct{}, len(words))
		for _, w := range words {
			set[w] = struct{}{}
		}
		sets[lang] = set
	}
	return &Detector{order: supportedLanguages, sets: sets}
}

// Supported reports whether lang is in the fixed allow-list.
func (d *Detector) Supported(lang string) bool {
	lang = NormalizeTag(lang)
	for _, l := range d.order {
		if l == lang {
			return true
		}
	}
	return false
}

// Detect scores text and returns the best language with a confidence in
// [0,1]. Empty or signal-free text yields "unknown" with zero confidence.
func (d *Detector) Detect(text string) Result {
	words := tokenize(text)
	if len(words) == 0 {
		return Result{Language: "unknown"}
	}

	counts := make(map[string]int, len(d.order))
	for _, w := range words {
		for _, lang := range d.order {
			if _, ok := d.sets[lang][w]; ok {
				counts[lang]++
			}
		}
	}

	best, second := "", 0
	bestCount := 0
	for _, lang := range d.order {
		c := counts[lang]
		if c > bestCount {
			second = bestCount
			best, bestCount = lang, c
		} else if c > second {
			second = c
		}
	}

	if bestCount == 0 {
		return Result{Language: "unknown"}
	}

	// Margin over the runner-up, damped when the absolute match count is
	// too small to be a reliable signal.
	margin := float64(bestCount-second) / float64(bestCount)
	saturation := 1.0
	if bestCount < minSignalMatches {
		saturation = float64(bestCount) / float64(minSignalMatches)
	}
	confidence := clamp01(margin * saturation)

	return Result{
		Language:   best,
		Confidence: confidence,
		Supported:  true,
	}
}

// NormalizeTag reduces a BCP 47 tag like "en-US" to its primary subtag.
func NormalizeTag(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		lang = lang[:i]
	}
	return lang
}

func tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ".,;:!?\"'()[]{}«»¿¡")
		if f != "" {
			words = append(words, f)
		}
	}
	return words
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
