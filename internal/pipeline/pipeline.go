// Package pipeline wires the full extraction flow: fetch the page, clear
// the privacy policy, analyze and gate it, extract structured content,
// and render the resulting report.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/avoronova/lessonsift/internal/analyze"
	"github.com/avoronova/lessonsift/internal/cache"
	"github.com/avoronova/lessonsift/internal/extract"
	"github.com/avoronova/lessonsift/internal/model"
	"github.com/avoronova/lessonsift/internal/privacy"
	"github.com/avoronova/lessonsift/internal/validate"
)

// Pipeline orchestrates one analyze-and-extract run per URL.
type Pipeline struct {
	fetcher   *Fetcher
	analyzer  *analyze.Engine
	validator *validate.Engine
	privacy   *privacy.Manager
	extractor *extract.Extractor
	renderer  *Renderer
	config    *model.Config
}

// NewPipeline creates a pipeline from configuration.
func NewPipeline(cfg *model.Config) *Pipeline {
	var memo cache.Cache
	if cfg.Cache.Enabled {
		memo = cache.NewMemoryCache(cfg.Cache.TTL, cfg.Cache.TTL)
	}

	analyzer := analyze.NewEngine(memo)
	validator := validate.NewEngine(cfg.Validation)
	robots := privacy.NewRobotsChecker(cfg.HTTP.UserAgent, cfg.HTTP.Timeout)
	pm := privacy.NewManager(cfg.Privacy, robots)

	return &Pipeline{
		fetcher:   NewFetcher(cfg.HTTP),
		analyzer:  analyzer,
		validator: validator,
		privacy:   pm,
		extractor: extract.NewExtractor(pm, analyzer, validator),
		renderer:  NewRenderer(cfg.Output.IncludeFooter),
		config:    cfg,
	}
}

// Privacy exposes the pipeline's privacy manager, e.g. for session reset.
func (p *Pipeline) Privacy() *privacy.Manager {
	return p.privacy
}

// Run fetches and analyzes a single URL and, when the page clears the
// privacy policy and suitability gates, extracts lesson content. Policy
// denials are reported in the result, not as errors.
func (p *Pipeline) Run(ctx context.Context, rawURL string) (*model.Report, error) {
	report := &model.Report{
		SourceURL: rawURL,
		FetchedAt: time.Now().UTC(),
	}

	// 1. Privacy policy first: a denied domain costs no page fetch.
	decision := p.privacy.CanExtract(rawURL)
	report.Robots = &decision
	if !decision.Allowed {
		report.Reasons = []string{decision.Reason}
		return report, nil
	}

	// 2. Fetch.
	fetched, err := p.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	report.SourceURL = fetched.FinalURL
	report.FetchMeta = fetched.Meta

	// 3. Analyze and gate.
	report.Analysis = p.analyzer.AnalyzePage(fetched.HTML, fetched.FinalURL)
	report.Suitable, report.Reasons = p.analyzer.Suitable(report.Analysis)

	// 4. Extract regardless of the gate so the caller can inspect the
	// validation breakdown; the report records suitability separately.
	content, err := p.extractor.Extract(fetched.HTML, fetched.FinalURL)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}
	report.Content = content

	return report, nil
}
