// Package classify assigns a content-type tag to a page from its URL and
// DOM structure. The rule set is an ordered table evaluated top to bottom,
// first match wins, so priority encodes specificity: domain rules before
// path rules before structural rules before the prose default.
package classify

import (
	"strings"

	"github.com/avoronova/lessonsift/internal/model"
)

// Input is everything the classifier looks at. All fields are optional;
// zero values simply fail to match any rule and fall through to the default.
type Input struct {
	Path     string
	Hostname string
	Signals  model.DOMSignals
}

// Rule is one classification rule. Rules are data: each is independently
// testable through Classifier.Apply.
type Rule struct {
	Name   string
	Match  func(Input) bool
	Result model.ContentType
}

// Classifier evaluates an ordered rule table.
type Classifier struct {
	rules []Rule
}

// NewClassifier creates a classifier with the default rule table.
func NewClassifier() *Classifier {
	return &Classifier{rules: defaultRules()}
}

// Classify returns exactly one content type for the input. It is total
// and deterministic: the same input always yields the same tag.
func (c *Classifier) Classify(in Input) model.ContentType {
	in.Path = strings.ToLower(in.Path)
	in.Hostname = strings.ToLower(in.Hostname)

	for _, rule := range c.rules {
		if rule.Match(in) {
			return rule.Result
		}
	}

	if looksLikeProse(in.Signals) {
		return model.ContentArticle
	}
	return model.ContentUnknown
}

// Apply evaluates a single named rule against the input, for testing
// individual rules in isolation. Unknown rule names never match.
func (c *Classifier) Apply(name string, in Input) (model.ContentType, bool) {
	in.Path = strings.ToLower(in.Path)
	in.Hostname = strings.ToLower(in.Hostname)

	for _, rule := range c.rules {
		if rule.Name == name {
			if rule.Match(in) {
				return rule.Result, true
			}
			return "", false
		}
	}
	return "", false
}

var encyclopediaDomains = []string{"wikipedia.org", "britannica.com", "wiktionary.org", "scholarpedia.org"}

var newsDomains = []string{"bbc.com", "bbc.co.uk", "cnn.com", "reuters.com", "theguardian.com", "nytimes.com", "apnews.com", "npr.org"}

var socialDomains = []string{"facebook.com", "twitter.com", "x.com", "instagram.com", "tiktok.com", "reddit.com", "linkedin.com", "pinterest.com"}

var ecommerceDomains = []string{"amazon.com", "ebay.com", "etsy.com", "aliexpress.com", "walmart.com", "shopify.com"}

var multimediaDomains = []string{"youtube.com", "vimeo.com", "twitch.tv", "dailymotion.com", "soundcloud.com", "spotify.com"}

func defaultRules() []Rule {
	return []Rule{
		{"domain-encyclopedia", domainIn(encyclopediaDomains), model.ContentEncyclopedia},
		{"domain-news", domainIn(newsDomains), model.ContentNews},
		{"domain-social", domainIn(socialDomains), model.ContentSocial},
		{"domain-ecommerce", domainIn(ecommerceDomains), model.ContentEcommerce},
		{"domain-multimedia", domainIn(multimediaDomains), model.ContentMultimedia},

		{"path-wiki", pathHas("/wiki/"), model.ContentEncyclopedia},
		{"path-tutorial", pathHasAny("/tutorial", "/how-to", "/guide/", "/learn/"), model.ContentTutorial},
		{"path-blog", pathHasAny("/blog/", "/posts/"), model.ContentBlog},
		{"path-news", pathHasAny("/news/", "/article/"), model.ContentNews},
		{"path-product", pathHasAny("/product", "/shop/", "/item/", "/store/"), model.ContentProduct},

		{"dom-navigation", navigationHeavy, model.ContentNavigation},
		{"dom-ecommerce", commerceSignals, model.ContentEcommerce},
		{"dom-multimedia", mediaDominant, model.ContentMultimedia},
	}
}

func domainIn(domains []string) func(Input) bool {
	return func(in Input) bool {
		for _, d := range domains {
			if in.Hostname == d || strings.HasSuffix(in.Hostname, "."+d) {
				return true
			}
		}
		return false
	}
}

func pathHas(fragment string) func(Input) bool {
	return func(in Input) bool {
		return strings.Contains(in.Path, fragment)
	}
}

func pathHasAny(fragments ...string) func(Input) bool {
	return func(in Input) bool {
		for _, f := range fragments {
			if strings.Contains(in.Path, f) {
				return true
			}
		}
		return false
	}
}

// navigationHeavy matches pages whose structure is dominated by list items
// and nav elements rather than paragraphs.
func navigationHeavy(in Input) bool {
	s := in.Signals
	if s.BlockCount == 0 {
		return false
	}
	listRatio := float64(s.ListItemCount+s.NavCount) / float64(s.BlockCount)
	return listRatio > 0.6 && s.ParagraphCount < 3
}

// commerceSignals matches pages with repeated price or cart indicators.
func commerceSignals(in Input) bool {
	return in.Signals.PriceCount >= 3
}

// mediaDominant matches pages where embeds outnumber prose blocks.
func mediaDominant(in Input) bool {
	s := in.Signals
	return s.MediaCount >= 2 && s.MediaCount > s.ParagraphCount
}

// looksLikeProse reports whether the structure resembles running text.
func looksLikeProse(s model.DOMSignals) bool {
	return s.SentenceCount >= 3 && s.WordCount >= 80
}
