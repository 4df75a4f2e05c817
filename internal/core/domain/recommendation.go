package domain

// Recommendation is a scored track candidate. The only ordering
// invariant is non-increasing ConfidenceScore; ties keep catalog order.
type Recommendation struct {
	Title           string  `json:"title"`
	Artist          string  `json:"artist"`
	CatalogID       string  `json:"catalog_id"`
	ConfidenceScore float64 `json:"confidence_score"`
	Reason          string  `json:"reason"`
	DurationSeconds int     `json:"duration"`
	LoopSuitable    bool    `json:"loop_suitable"`
}

// ScoreWeights is the feature-weight table for confidence scoring.
// Weights are tunable parameters, not a stable contract. A candidate's
// score is the base plus the weight of each matched feature, clamped
// to [0, 1].
type ScoreWeights struct {
	Base         float64
	MoodMatch    float64
	ThemeMatch   float64
	GenreMatch   float64
	DurationFit  float64
	LoopBonus    float64
	KeywordHit   float64
	Instrumental float64
}

// DefaultScoreWeights returns the stock weight table.
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		Base:         0.25,
		MoodMatch:    0.25,
		ThemeMatch:   0.15,
		GenreMatch:   0.10,
		DurationFit:  0.15,
		LoopBonus:    0.05,
		KeywordHit:   0.05,
		Instrumental: 0.15,
	}
}

// MinConfidenceScore is the floor below which candidates are dropped.
const MinConfidenceScore = 0.3

// MaxScoredKeywords caps how many analysis keywords contribute to the
// keyword-hit feature.
const MaxScoredKeywords = 5
