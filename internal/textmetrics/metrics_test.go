package textmetrics

import (
	"math"
	"strings"
	"testing"
)

func TestWordCount_Basic(t *testing.T) {
	if got := WordCount("the quick brown fox"); got != 4 {
		t.Errorf("Expected 4 words, got %d", got)
	}
}

func TestWordCount_Empty(t *testing.T) {
	if got := WordCount(""); got != 0 {
		t.Errorf("Expected 0 words for empty text, got %d", got)
	}
	if got := WordCount("   \n\t  "); got != 0 {
		t.Errorf("Expected 0 words for whitespace text, got %d", got)
	}
}

func TestSentences_Basic(t *testing.T) {
	text := "This is the first sentence. This is the second! Is this the third?"
	sentences := Sentences(text)

	if len(sentences) != 3 {
		t.Fatalf("Expected 3 sentences, got %d: %v", len(sentences), sentences)
	}
	if sentences[0] != "This is the first sentence." {
		t.Errorf("Unexpected first sentence: %q", sentences[0])
	}
}

func TestSentences_DecimalNotSplit(t *testing.T) {
	sentences := Sentences("The price rose by 3.5 percent last year.")

	if len(sentences) != 1 {
		t.Errorf("Expected decimal point not to split sentence, got %d sentences: %v", len(sentences), sentences)
	}
}

func TestSentences_TrailingFragment(t *testing.T) {
	sentences := Sentences("Complete sentence here. And a trailing fragment")

	if len(sentences) != 2 {
		t.Fatalf("Expected 2 sentences, got %d", len(sentences))
	}
	if sentences[1] != "And a trailing fragment" {
		t.Errorf("Unexpected trailing fragment: %q", sentences[1])
	}
}

func TestSentences_PunctuationOnly(t *testing.T) {
	if got := Sentences("... !!! ???"); len(got) != 0 {
		t.Errorf("Expected no sentences from punctuation-only text, got %v", got)
	}
}

func TestParagraphs_Basic(t *testing.T) {
	text := "First paragraph.\n\nSecond paragraph.\n\n\n\nThird paragraph."
	paragraphs := Paragraphs(text)

	if len(paragraphs) != 3 {
		t.Errorf("Expected 3 paragraphs, got %d: %v", len(paragraphs), paragraphs)
	}
}

func TestParagraphs_SingleBlock(t *testing.T) {
	paragraphs := Paragraphs("One block with\na soft line break.")

	if len(paragraphs) != 1 {
		t.Errorf("Expected 1 paragraph, got %d", len(paragraphs))
	}
}

func TestAnalyzeSentences_Stats(t *testing.T) {
	// Two sentences of 4 and 6 words: mean 5, variance 1.
	text := "One two three four. One two three four five six."
	stats := AnalyzeSentences(text)

	if stats.Count != 2 {
		t.Fatalf("Expected 2 sentences, got %d", stats.Count)
	}
	if stats.Mean != 5 {
		t.Errorf("Expected mean 5, got %f", stats.Mean)
	}
	if stats.Variance != 1 {
		t.Errorf("Expected variance 1, got %f", stats.Variance)
	}
	if math.Abs(stats.StdDev-1) > 1e-9 {
		t.Errorf("Expected stddev 1, got %f", stats.StdDev)
	}
}

func TestAnalyzeSentences_Empty(t *testing.T) {
	stats := AnalyzeSentences("")

	if stats.Count != 0 || stats.Mean != 0 || stats.StdDev != 0 {
		t.Errorf("Expected zero stats for empty text, got %+v", stats)
	}
}

func TestVisibleText_StripsMarkup(t *testing.T) {
	html := `<html><head><title>T</title><style>p{color:red}</style></head>
<body><p>Visible paragraph.</p><script>var hidden = 1;</script><p>Second one.</p></body></html>`

	text := VisibleText(html)

	if !strings.Contains(text, "Visible paragraph.") {
		t.Errorf("Expected visible text, got %q", text)
	}
	if strings.Contains(text, "hidden") {
		t.Errorf("Expected script contents to be dropped, got %q", text)
	}
	if strings.Contains(text, "color:red") {
		t.Errorf("Expected style contents to be dropped, got %q", text)
	}
}

func TestVisibleText_BlockBoundaries(t *testing.T) {
	text := VisibleText("<div>first</div><div>second</div>")

	if strings.Contains(text, "firstsecond") {
		t.Errorf("Expected block boundary between divs, got %q", text)
	}
}

func TestLooksLikeHTML(t *testing.T) {
	if !LooksLikeHTML("<!DOCTYPE html><html><body>x</body></html>") {
		t.Error("Expected doctype document to look like HTML")
	}
	if LooksLikeHTML("Just some plain text with an aside about <brackets>.") {
		t.Error("Expected plain text not to look like HTML")
	}
}
