package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/avoronova/lessonsift/internal/model"
)

// Runner runs the analysis pipeline for one URL.
type Runner interface {
	Run(ctx context.Context, url string) (*model.Report, error)
}

// AnalyzeJob is one URL analysis unit for the pool.
type AnalyzeJob struct {
	URL     string
	Runner  Runner
	Limiter *Limiter // optional per-domain pacing
}

// Execute runs the job.
func (j *AnalyzeJob) Execute(ctx context.Context) Result {
	if j.Limiter != nil {
		if err := j.Limiter.Wait(ctx, j.URL); err != nil {
			return &AnalyzeResult{URL: j.URL, Error: err}
		}
	}
	report, err := j.Runner.Run(ctx, j.URL)
	return &AnalyzeResult{URL: j.URL, Report: report, Error: err}
}

// AnalyzeResult is the outcome of one URL analysis.
type AnalyzeResult struct {
	URL    string
	Report *model.Report
	Error  error
}

// Err returns the job error, if any.
func (r *AnalyzeResult) Err() error { return r.Error }

// BatchProcessor analyzes many URLs concurrently with per-domain rate
// limiting.
type BatchProcessor struct {
	runner      Runner
	concurrency int
	limiter     *Limiter
}

// NewBatchProcessor creates a batch processor.
func NewBatchProcessor(runner Runner, cfg model.ConcurrencyConfig) *BatchProcessor {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 4
	}
	return &BatchProcessor{
		runner:      runner,
		concurrency: workers,
		limiter:     NewLimiter(cfg.RequestsPerSecond, cfg.Burst),
	}
}

// ProcessURLs analyzes all URLs and returns per-URL results. Order is
// not guaranteed; each result carries its URL.
func (b *BatchProcessor) ProcessURLs(ctx context.Context, urls []string) []*AnalyzeResult {
	if len(urls) == 0 {
		return []*AnalyzeResult{}
	}

	pool := newPool(b.concurrency, len(urls))
	pool.Start()

	for _, url := range urls {
		pool.Submit(&AnalyzeJob{URL: url, Runner: b.runner, Limiter: b.limiter})
	}

	results := pool.Wait()
	analyzeResults := make([]*AnalyzeResult, len(results))
	for i, result := range results {
		analyzeResults[i] = result.(*AnalyzeResult)
	}
	return analyzeResults
}

// ProcessFile reads URLs from a file (one per line, # comments allowed)
// and analyzes them.
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*AnalyzeResult, error) {
	urls, err := ReadURLsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read URLs: %w", err)
	}
	return b.ProcessURLs(ctx, urls), nil
}

// ReadURLsFromFile reads deduplicated URLs from a file, one per line.
func ReadURLsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var urls []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			urls = append(urls, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}
	return urls, nil
}
