package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/avoronova/lessonsift/internal/model"
	"github.com/avoronova/lessonsift/internal/pipeline"
)

var (
	outJSON     string
	outMD       string
	timeout     time.Duration
	userAgent   string
	maxBytes    int64
	noCache     bool
	noRobots    bool
	noFooter    bool
	insecureTLS bool
	strictMode  bool
	minWords    int
	minScore    float64
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <url>",
	Short: "Analyze a single page and extract lesson material if suitable",
	Long: `Analyze fetches a web page and decides whether a lesson can be built
from it:
- Check the privacy policy (domain deny-list, robots.txt)
- Classify the content type and detect the language
- Score readability, structure, and length
- Apply the suitability gates with itemized reasons
- Extract sanitized, attributed content with lesson suggestions

Example:
  lessonsift analyze https://en.wikipedia.org/wiki/Photosynthesis
  lessonsift analyze https://example.com/article --json report.json --md report.md
  lessonsift analyze https://example.com/article --strict --min-words 300`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Output flags
	analyzeCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path")

	// HTTP flags
	analyzeCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "overall analyze timeout")
	analyzeCmd.Flags().StringVar(&userAgent, "ua", model.DefaultConfig().HTTP.UserAgent, "HTTP User-Agent")
	analyzeCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable analysis memoization")
	analyzeCmd.Flags().BoolVar(&noRobots, "no-robots", false, "skip robots.txt checks (deny-list still applies)")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	analyzeCmd.Flags().BoolVar(&insecureTLS, "insecure", false, "skip TLS certificate verification")

	// Validation flags
	analyzeCmd.Flags().BoolVar(&strictMode, "strict", false, "raise validation thresholds")
	analyzeCmd.Flags().IntVar(&minWords, "min-words", 200, "minimum word count")
	analyzeCmd.Flags().Float64Var(&minScore, "min-score", 60, "minimum quality score (0-100)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	url := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg := buildConfig()

	p := pipeline.NewPipeline(cfg)

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", url)
		fmt.Fprintf(os.Stderr, "Timeout: %v\n\n", timeout)
	}

	report, err := p.Run(ctx, url)
	if err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Word count: %d\n", report.Analysis.WordCount)
		fmt.Fprintf(os.Stderr, "✓ Content type: %s\n", report.Analysis.ContentType)
		fmt.Fprintf(os.Stderr, "✓ Suitable: %v\n\n", report.Suitable)
	}

	return renderReport(p, report)
}

// buildConfig assembles the run configuration from defaults and flags.
func buildConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.HTTP.Timeout = timeout
	cfg.HTTP.UserAgent = userAgent
	cfg.HTTP.MaxBodyBytes = maxBytes
	cfg.HTTP.InsecureTLS = insecureTLS
	cfg.Cache.Enabled = !noCache
	cfg.Privacy.RespectRobotsTxt = !noRobots
	cfg.Validation.StrictMode = strictMode
	cfg.Validation.MinWordCount = minWords
	cfg.Validation.MinQualityScore = minScore
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter
	return cfg
}

func renderReport(p *pipeline.Pipeline, report *model.Report) error {
	renderer := pipeline.NewRenderer(!noFooter)

	if outJSON != "" {
		if err := renderer.RenderJSON(report, outJSON); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", outJSON)
		}
	}
	if outMD != "" {
		if err := renderer.RenderMarkdown(report, outMD); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote Markdown: %s\n", outMD)
		}
	}

	renderer.RenderSummary(report)
	return nil
}
