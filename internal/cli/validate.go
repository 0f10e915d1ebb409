package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/avoronova/lessonsift/internal/language"
	"github.com/avoronova/lessonsift/internal/model"
	"github.com/avoronova/lessonsift/internal/textmetrics"
	"github.com/avoronova/lessonsift/internal/validate"
)

var skipLanguage bool

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <file|->",
	Short: "Validate pasted or saved text as lesson material",
	Long: `Validate runs the content checks over arbitrary text without any
page fetch: word count, language, social/navigation/advertising pattern
density, and quality scoring. Use "-" to read from stdin.

Example:
  lessonsift validate article.txt
  pbpaste | lessonsift validate -
  lessonsift validate article.txt --strict --min-words 300`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().BoolVar(&strictMode, "strict", false, "raise validation thresholds")
	validateCmd.Flags().IntVar(&minWords, "min-words", 200, "minimum word count")
	validateCmd.Flags().Float64Var(&minScore, "min-score", 60, "minimum quality score (0-100)")
	validateCmd.Flags().BoolVar(&skipLanguage, "no-language", false, "skip the language gate")
}

func runValidate(cmd *cobra.Command, args []string) error {
	text, err := readInput(args[0])
	if err != nil {
		return err
	}

	// Saved pages are accepted too; strip markup before validating.
	if textmetrics.LooksLikeHTML(text) {
		text = textmetrics.VisibleText(text)
	}

	engine := validate.NewEngine(model.ValidationConfig{
		MinWordCount:    minWords,
		MinQualityScore: minScore,
		StrictMode:      strictMode,
	})

	var langCtx *model.LanguageContext
	if !skipLanguage {
		detected := language.NewDetector().Detect(text)
		langCtx = &model.LanguageContext{
			Language:   detected.Language,
			Confidence: detected.Confidence,
			Supported:  detected.Supported,
		}
	}

	result := engine.Validate(text, langCtx)

	fmt.Printf("valid: %v  score: %.0f/100  meets minimum quality: %v\n",
		result.IsValid, result.Score, result.MeetsMinimumQuality)
	if langCtx != nil {
		fmt.Printf("language: %s (confidence %.2f)\n", langCtx.Language, langCtx.Confidence)
	}
	for _, issue := range result.Issues {
		fmt.Printf("  [%s] %s: %s\n", issue.Severity, issue.Type, issue.Message)
	}
	if msg := validate.ErrorMessage(result.Issues); msg != "" {
		fmt.Printf("\n%s\n", msg)
	}
	if len(result.Recommendations) > 0 {
		fmt.Println("\nSuggestions:")
		for _, rec := range result.Recommendations {
			fmt.Printf("  - %s\n", rec)
		}
	}

	if !result.IsValid {
		os.Exit(1)
	}
	return nil
}

func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return string(data), nil
}
