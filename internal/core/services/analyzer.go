package services

import (
	"strings"
	"unicode"

	"findbgm/internal/core/domain"
)

// Analyzer classifies a raw script into a ScriptAnalysis using the
// keyword tables in the domain package. It is a pure function over its
// input: no external calls, no retained state.
type Analyzer struct {
	moodKeywords  map[string][]string
	themeKeywords map[string][]string
}

// NewAnalyzer constructs an Analyzer over the stock vocabularies.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		moodKeywords:  domain.MoodKeywords,
		themeKeywords: domain.ThemeKeywords,
	}
}

// Analyze maps script text to a structured analysis. An empty or blank
// script resolves to neutral defaults rather than an error.
func (a *Analyzer) Analyze(script string) domain.ScriptAnalysis {
	if strings.TrimSpace(script) == "" {
		return domain.NeutralAnalysis()
	}

	lowered := strings.ToLower(script)
	words := tokenize(lowered)
	sentiment := sentimentScore(words)

	moods := detectCategories(lowered, a.moodKeywords, domain.MoodPriority)
	themes := detectCategories(lowered, a.themeKeywords, domain.ThemePriority)

	mood := moodFromSentiment(sentiment)
	if len(moods) > 0 {
		mood = moods[0]
	}

	theme := domain.DefaultTheme
	if len(themes) > 0 {
		theme = themes[0]
	}

	return domain.ScriptAnalysis{
		DetectedMood:      mood,
		DetectedTheme:     theme,
		Pacing:            classifyPacing(script),
		SentimentScore:    sentiment,
		Keywords:          extractKeywords(words),
		AllDetectedMoods:  moods,
		AllDetectedThemes: themes,
	}
}

// detectCategories counts keyword hits per category and returns every
// category with at least one hit, ordered by hit count. Ties break by
// the fixed priority order, so detection is deterministic.
func detectCategories(lowered string, vocab map[string][]string, priority []string) []string {
	type hit struct {
		category string
		count    int
	}

	hits := make([]hit, 0, len(priority))
	for _, category := range priority {
		count := 0
		for _, keyword := range vocab[category] {
			if strings.Contains(lowered, keyword) {
				count++
			}
		}
		if count > 0 {
			hits = append(hits, hit{category: category, count: count})
		}
	}

	// Insertion sort by count descending. Iterating priority order
	// above makes equal counts keep their priority rank.
	for i := 1; i < len(hits); i++ {
		for j := i; j > 0 && hits[j].count > hits[j-1].count; j-- {
			hits[j], hits[j-1] = hits[j-1], hits[j]
		}
	}

	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.category
	}
	return out
}

// classifyPacing derives a coarse pacing class from punctuation and
// sentence-length statistics.
func classifyPacing(script string) string {
	exclamations := strings.Count(script, "!")

	sentences := 0
	for _, s := range strings.FieldsFunc(script, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	}) {
		if strings.TrimSpace(s) != "" {
			sentences++
		}
	}
	if sentences == 0 {
		sentences = 1
	}

	wordCount := len(strings.Fields(script))
	avgSentenceLen := float64(wordCount) / float64(sentences)

	switch {
	case exclamations > 2 || avgSentenceLen < 8:
		return domain.PacingFast
	case avgSentenceLen > 15:
		return domain.PacingSlow
	default:
		return domain.PacingMedium
	}
}

// moodFromSentiment is the fallback when no keyword mood matched.
func moodFromSentiment(polarity float64) string {
	switch {
	case polarity < -0.1:
		return "dramatic"
	case polarity > 0.3:
		return "upbeat"
	case polarity > 0.1:
		return "motivational"
	default:
		return domain.DefaultMood
	}
}

// sentimentScore averages per-word polarity over the words that have a
// lexicon entry, clipped to [-1, 1]. No entries means neutral.
func sentimentScore(words []string) float64 {
	var sum float64
	var n int
	for _, w := range words {
		if polarity, ok := polarityLexicon[w]; ok {
			sum += polarity
			n++
		}
	}
	if n == 0 {
		return 0
	}
	avg := sum / float64(n)
	if avg > 1 {
		return 1
	}
	if avg < -1 {
		return -1
	}
	return avg
}

// extractKeywords keeps alphabetic words longer than three runes that
// are not stopwords, deduplicated in order of first appearance.
func extractKeywords(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	keywords := make([]string, 0, maxKeywords)
	for _, w := range words {
		if len([]rune(w)) <= 3 || !isAlpha(w) {
			continue
		}
		if _, stop := stopwords[w]; stop {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		keywords = append(keywords, w)
		if len(keywords) == maxKeywords {
			break
		}
	}
	return keywords
}

func tokenize(lowered string) []string {
	return strings.FieldsFunc(lowered, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-'
	})
}

func isAlpha(word string) bool {
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

const maxKeywords = 10
