package mcptool

import "findbgm/internal/core/domain"

// response is the single output payload of recommend_background_music.
type response struct {
	Analysis        domain.ScriptAnalysis   `json:"analysis"`
	Recommendations []domain.Recommendation `json:"recommendations"`
	InputParameters inputParameters         `json:"input_parameters"`
	SearchInfo      searchInfo              `json:"search_info"`
}

type inputParameters struct {
	ScriptLength    int    `json:"script_length"`
	Duration        int    `json:"duration"`
	GenrePreference string `json:"genre_preference"`
	MoodPreference  string `json:"mood_preference"`
	ContentType     string `json:"content_type"`
}

type searchInfo struct {
	SearchTermsUsed      []string `json:"search_terms_used"`
	TotalRecommendations int      `json:"total_recommendations"`
	APIStatus            string   `json:"api_status"`
}
