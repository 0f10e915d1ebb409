package cli

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/avoronova/lessonsift/internal/pipeline"
	"github.com/avoronova/lessonsift/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
	requestsPS   float64
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Analyze multiple URLs from a file in parallel",
	Long: `Batch reads URLs from a file (one per line, # comments allowed) and
analyzes them concurrently. Requests to the same domain are rate limited.
A JSON report is written per URL into the output directory.

Example:
  lessonsift batch urls.txt
  lessonsift batch urls.txt --concurrency 8 --output-dir ./reports
  lessonsift batch urls.txt --rps 1 --timeout 10m`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./lessonsift-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().Float64Var(&requestsPS, "rps", 2, "max requests per second per domain")

	batchCmd.Flags().DurationVar(&timeout, "analyze-timeout", 30*time.Second, "timeout for individual pages")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable analysis memoization")
	batchCmd.Flags().BoolVar(&noRobots, "no-robots", false, "skip robots.txt checks (deny-list still applies)")
	batchCmd.Flags().BoolVar(&strictMode, "strict", false, "raise validation thresholds")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg := buildConfig()
	cfg.Concurrency.Workers = concurrency
	cfg.Concurrency.RequestsPerSecond = requestsPS

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	p := pipeline.NewPipeline(cfg)
	processor := worker.NewBatchProcessor(p, cfg.Concurrency)

	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("batch failed: %w", err)
	}

	renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter)
	suitable, failed := 0, 0
	for _, result := range results {
		if result.Error != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.URL, result.Error)
			continue
		}
		if result.Report.Suitable {
			suitable++
		}
		renderer.RenderSummary(result.Report)

		path := filepath.Join(outputDir, reportFileName(result.URL))
		if err := renderer.RenderJSON(result.Report, path); err != nil {
			fmt.Fprintf(os.Stderr, "✗ write report for %s: %v\n", result.URL, err)
		}
	}

	fmt.Fprintf(os.Stderr, "\n%d analyzed, %d suitable, %d failed\n", len(results), suitable, failed)
	return nil
}

// reportFileName derives a filesystem-safe report name from a URL.
func reportFileName(rawURL string) string {
	name := rawURL
	if parsed, err := url.Parse(rawURL); err == nil {
		name = parsed.Host + parsed.Path
	}
	name = strings.Trim(name, "/")
	replacer := strings.NewReplacer("/", "_", ":", "_", "?", "_", "&", "_", "=", "_", "#", "_")
	name = replacer.Replace(name)
	if name == "" {
		name = "report"
	}
	return name + ".json"
}
