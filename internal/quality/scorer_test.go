package quality

import (
	"strings"
	"testing"

	"github.com/avoronova/lessonsift/internal/model"
)

// sampleArticle builds a multi-paragraph text with natural sentence
// lengths, roughly words words long.
func sampleArticle(words int) string {
	sentences := []string{
		"The local library has expanded its evening reading program for adults this spring.",
		"Volunteers meet twice a week to discuss short stories and practice conversation together.",
		"Many attendees say the sessions helped them feel more confident speaking.",
		"The program began three years ago with only five regular members.",
		"Funding now comes from the city council and a small group of local donors.",
	}
	var sb strings.Builder
	count := 0
	i := 0
	for count < words {
		sb.WriteString(sentences[i%len(sentences)])
		sb.WriteString(" ")
		count += len(strings.Fields(sentences[i%len(sentences)]))
		i++
		if i%3 == 0 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}

func TestScorer_Calculate_Empty(t *testing.T) {
	scorer := NewScorer(DefaultWeights())

	summary := scorer.Calculate("")

	if summary.Overall != 0 || summary.Readability != 0 || summary.Structure != 0 || summary.Length != 0 {
		t.Errorf("Expected all zero sub-scores for empty text, got %+v", summary)
	}
}

func TestScorer_Calculate_RangeInvariant(t *testing.T) {
	scorer := NewScorer(DefaultWeights())
	inputs := []string{
		"short",
		sampleArticle(100),
		sampleArticle(600),
		strings.Repeat("word ", 3000),
	}

	for _, input := range inputs {
		summary := scorer.Calculate(input)
		for name, v := range map[string]float64{
			"overall":     summary.Overall,
			"readability": summary.Readability,
			"structure":   summary.Structure,
			"length":      summary.Length,
		} {
			if v < 0 || v > 1 {
				t.Errorf("%s score out of [0,1]: %f", name, v)
			}
		}
	}
}

func TestScorer_Calculate_LengthSaturates(t *testing.T) {
	scorer := NewScorer(DefaultWeights())

	short := scorer.Calculate(sampleArticle(100))
	long := scorer.Calculate(sampleArticle(600))

	if short.Length >= long.Length {
		t.Errorf("Expected length score to grow with word count: %f vs %f", short.Length, long.Length)
	}
	if long.Length != 1 {
		t.Errorf("Expected length score to saturate at 1, got %f", long.Length)
	}
}

func TestScorer_Calculate_WallOfTextPenalized(t *testing.T) {
	scorer := NewScorer(DefaultWeights())

	structured := scorer.Calculate(sampleArticle(600))
	wall := scorer.Calculate(strings.ReplaceAll(sampleArticle(600), "\n\n", " "))

	if wall.Structure >= structured.Structure {
		t.Errorf("Expected single-block text to score lower structure: %f vs %f", wall.Structure, structured.Structure)
	}
}

func TestScorer_Calculate_GoodArticleScoresWell(t *testing.T) {
	scorer := NewScorer(DefaultWeights())

	summary := scorer.Calculate(sampleArticle(600))

	if summary.Overall < 0.6 {
		t.Errorf("Expected well-formed article to score above 0.6, got %f", summary.Overall)
	}
}

func TestScorer_NewScorer_ZeroWeightsFallBack(t *testing.T) {
	scorer := NewScorer(Weights{})

	summary := scorer.Calculate(sampleArticle(600))

	if summary.Overall <= 0 {
		t.Errorf("Expected zero weights to fall back to defaults, got overall %f", summary.Overall)
	}
}

func TestEstimateCEFR_Empty(t *testing.T) {
	if got := EstimateCEFR(""); got != model.CEFRA1 {
		t.Errorf("Expected A1 for empty text, got %s", got)
	}
}

func TestEstimateCEFR_SimpleText(t *testing.T) {
	text := "I like tea. The cat is big. We go home now. It is a sunny day."

	got := EstimateCEFR(text)

	if got != model.CEFRA1 && got != model.CEFRA2 {
		t.Errorf("Expected A1 or A2 for simple text, got %s", got)
	}
}

func TestEstimateCEFR_ComplexText(t *testing.T) {
	text := "Notwithstanding considerable institutional resistance, the interdisciplinary committee ultimately recommended comprehensive structural modifications encompassing administrative procedures, evaluative frameworks, and longstanding organizational conventions throughout the participating departments."

	got := EstimateCEFR(text)

	if got != model.CEFRB2 && got != model.CEFRC1 {
		t.Errorf("Expected B2 or C1 for dense academic text, got %s", got)
	}
}

func TestEstimateCEFR_Monotonic(t *testing.T) {
	simple := EstimateCEFR("The dog runs. The sun is out. We eat food.")
	complexText := EstimateCEFR("Contemporary macroeconomic orthodoxy increasingly acknowledges that unconventional monetary interventions generate distributional consequences traditionally considered beyond central banking mandates.")

	order := map[model.CEFRLevel]int{
		model.CEFRA1: 1, model.CEFRA2: 2, model.CEFRB1: 3, model.CEFRB2: 4, model.CEFRC1: 5,
	}
	if order[simple] >= order[complexText] {
		t.Errorf("Expected simple text (%s) to rank below complex text (%s)", simple, complexText)
	}
}
