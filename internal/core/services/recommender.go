package services

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"findbgm/internal/core/domain"
	"findbgm/internal/core/ports"
)

// Options are the recommender knobs, read once at startup.
type Options struct {
	MaxDurationSeconds int
	SearchLimit        int
	MaxSearchTerms     int
	MaxResults         int
	MaxRecommendations int
	Weights            domain.ScoreWeights
}

// DefaultOptions mirrors the stock configuration.
func DefaultOptions() Options {
	return Options{
		MaxDurationSeconds: 300,
		SearchLimit:        10,
		MaxSearchTerms:     5,
		MaxResults:         20,
		MaxRecommendations: 5,
		Weights:            domain.DefaultScoreWeights(),
	}
}

// Recommender turns a script analysis plus preferences into a ranked
// list of scored track recommendations.
type Recommender struct {
	catalog ports.MusicCatalog
	opts    Options
	sim     *metrics.JaroWinkler
	log     *slog.Logger
}

// NewRecommender constructs a Recommender over the given catalog.
func NewRecommender(catalog ports.MusicCatalog, opts Options, logger *slog.Logger) *Recommender {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.SearchLimit < 1 {
		opts.SearchLimit = 1
	}
	if opts.MaxSearchTerms < 1 {
		opts.MaxSearchTerms = 1
	}
	return &Recommender{
		catalog: catalog,
		opts:    opts,
		sim:     metrics.NewJaroWinkler(),
		log:     logger,
	}
}

// SearchTerms builds the catalog queries for an analysis. Explicit
// preferences override detected values when supplied.
func (r *Recommender) SearchTerms(analysis domain.ScriptAnalysis, req domain.RecommendationRequest) []string {
	mood := targetMood(analysis, req)

	terms := []string{mood + " background music"}
	if analysis.DetectedTheme != domain.DefaultTheme {
		terms = append(terms, analysis.DetectedTheme+" music")
	} else {
		terms = append(terms, "instrumental background music")
	}

	if req.GenrePreference != "any" {
		terms = append(terms,
			req.GenrePreference+" "+mood,
			req.GenrePreference+" instrumental",
		)
	}

	switch analysis.Pacing {
	case domain.PacingFast:
		terms = append(terms, "upbeat instrumental", "energetic background")
	case domain.PacingSlow:
		terms = append(terms, "calm instrumental", "ambient background")
	}

	if len(terms) > r.opts.MaxSearchTerms {
		terms = terms[:r.opts.MaxSearchTerms]
	}
	return terms
}

// Recommend fetches candidates for every search term, scores them, and
// returns the ranked survivors. Ordering is non-increasing by score,
// stable on ties so catalog order is preserved.
func (r *Recommender) Recommend(ctx context.Context, analysis domain.ScriptAnalysis, req domain.RecommendationRequest) ([]domain.Recommendation, error) {
	terms := r.SearchTerms(analysis, req)

	candidates := make([]domain.Track, 0, r.opts.MaxResults)
	seen := make(map[string]struct{})

	for _, term := range terms {
		tracks, err := r.catalog.Search(ctx, term, r.opts.SearchLimit)
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("recommender: search canceled: %w", ctx.Err())
			}
			r.log.Warn("catalog search failed", "term", term, "error", err)
			continue
		}
		for _, t := range tracks {
			if _, dup := seen[t.ID]; dup || t.ID == "" {
				continue
			}
			seen[t.ID] = struct{}{}
			candidates = append(candidates, t)
			if len(candidates) == r.opts.MaxResults {
				break
			}
		}
		if len(candidates) == r.opts.MaxResults {
			break
		}
	}

	recs := make([]domain.Recommendation, 0, len(candidates))
	for _, t := range candidates {
		if t.DurationSeconds > r.opts.MaxDurationSeconds {
			continue
		}
		score := r.score(t, analysis, req)
		if score < domain.MinConfidenceScore {
			continue
		}
		recs = append(recs, domain.Recommendation{
			Title:           t.Title,
			Artist:          t.Artist,
			CatalogID:       t.ID,
			ConfidenceScore: score,
			Reason:          reason(score, analysis),
			DurationSeconds: t.DurationSeconds,
			LoopSuitable:    t.LoopSuitable,
		})
	}

	slices.SortStableFunc(recs, func(a, b domain.Recommendation) int {
		return cmp.Compare(b.ConfidenceScore, a.ConfidenceScore)
	})

	if len(recs) > r.opts.MaxRecommendations {
		recs = recs[:r.opts.MaxRecommendations]
	}
	return recs, nil
}

// score computes the weighted confidence for one candidate, clamped to
// [0, 1].
func (r *Recommender) score(t domain.Track, analysis domain.ScriptAnalysis, req domain.RecommendationRequest) float64 {
	w := r.opts.Weights
	title := normalizeTitle(t.Title)
	tokens := strings.Fields(title)

	score := w.Base

	if r.matches(title, tokens, targetMood(analysis, req)) {
		score += w.MoodMatch
	}
	if analysis.DetectedTheme != domain.DefaultTheme && r.matches(title, tokens, analysis.DetectedTheme) {
		score += w.ThemeMatch
	}
	if req.GenrePreference != "any" && r.matches(title, tokens, req.GenrePreference) {
		score += w.GenreMatch
	}

	score += w.DurationFit * durationFit(t.DurationSeconds, req.Duration)

	if t.LoopSuitable {
		score += w.LoopBonus
	}

	keywords := analysis.Keywords
	if len(keywords) > domain.MaxScoredKeywords {
		keywords = keywords[:domain.MaxScoredKeywords]
	}
	for _, kw := range keywords {
		if r.matches(title, tokens, kw) {
			score += w.KeywordHit
		}
	}

	for _, marker := range []string{"instrumental", "background", "bgm"} {
		if strings.Contains(title, marker) {
			score += w.Instrumental
			break
		}
	}

	if score > 1 {
		return 1
	}
	if score < 0 {
		return 0
	}
	return score
}

// matches reports a term hit in a title, first by containment, then by
// fuzzy token similarity so near-spellings still count.
func (r *Recommender) matches(title string, tokens []string, term string) bool {
	term = strings.ToLower(term)
	if term == "" {
		return false
	}
	if strings.Contains(title, term) {
		return true
	}
	for _, tok := range tokens {
		if strutil.Similarity(tok, term, r.sim) >= fuzzyMatchThreshold {
			return true
		}
	}
	return false
}

// durationFit scores how well a track length covers the target short.
// Full credit for tracks at least as long as the target within the fit
// band; short tracks get partial credit since they can loop.
func durationFit(trackSeconds, targetSeconds int) float64 {
	if trackSeconds <= 0 {
		return 0
	}
	if trackSeconds >= targetSeconds && trackSeconds <= targetSeconds+durationFitBandSeconds {
		return 1
	}
	if trackSeconds < targetSeconds && targetSeconds-trackSeconds <= durationShortfallSeconds {
		return 0.5
	}
	return 0
}

func targetMood(analysis domain.ScriptAnalysis, req domain.RecommendationRequest) string {
	if req.MoodPreference != "any" && req.MoodPreference != "" {
		return req.MoodPreference
	}
	return analysis.DetectedMood
}

func reason(score float64, analysis domain.ScriptAnalysis) string {
	var level string
	switch {
	case score > 0.8:
		level = "Strong match"
	case score > 0.6:
		level = "Good match"
	default:
		level = "Moderate match"
	}

	parts := []string{level, "for " + analysis.DetectedMood + " mood"}
	if analysis.DetectedTheme != domain.DefaultTheme {
		parts = append(parts, "and "+analysis.DetectedTheme+" content")
	}
	return strings.Join(parts, " ")
}

const (
	fuzzyMatchThreshold      = 0.92
	durationFitBandSeconds   = 45
	durationShortfallSeconds = 10
)
