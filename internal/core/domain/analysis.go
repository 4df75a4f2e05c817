package domain

// ScriptAnalysis is the structured result of analyzing a video script.
// It is derived purely from the request text and never persisted.
type ScriptAnalysis struct {
	DetectedMood      string   `json:"detected_mood"`
	DetectedTheme     string   `json:"detected_theme"`
	Pacing            string   `json:"pacing"`
	SentimentScore    float64  `json:"sentiment_score"`
	Keywords          []string `json:"keywords"`
	AllDetectedMoods  []string `json:"all_detected_moods"`
	AllDetectedThemes []string `json:"all_detected_themes"`
}

// NeutralAnalysis is the fallback for empty or unreadable scripts.
// An empty script is not an error; it resolves to these defaults.
func NeutralAnalysis() ScriptAnalysis {
	return ScriptAnalysis{
		DetectedMood:      DefaultMood,
		DetectedTheme:     DefaultTheme,
		Pacing:            PacingMedium,
		SentimentScore:    0,
		Keywords:          []string{},
		AllDetectedMoods:  []string{},
		AllDetectedThemes: []string{},
	}
}
