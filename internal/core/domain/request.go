package domain

import "fmt"

// Duration bounds for a short, in seconds.
const (
	MinRequestDuration = 15
	MaxRequestDuration = 60
)

// RecommendationRequest carries the validated parameters of a single
// recommend_background_music call. Constructed per call, never reused.
type RecommendationRequest struct {
	Script          string
	Duration        int
	GenrePreference string
	MoodPreference  string
	ContentType     string
}

// ValidationError describes a request field that failed validation.
// It is surfaced to the caller as a structured error; downstream
// components are never invoked for an invalid request.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validate checks duration bounds and enum membership. An empty script
// is allowed; the analyzer resolves it to neutral defaults instead.
func (r RecommendationRequest) Validate() error {
	if r.Duration < MinRequestDuration || r.Duration > MaxRequestDuration {
		return ValidationError{
			Field:  "duration",
			Reason: fmt.Sprintf("must be between %d and %d seconds, got %d", MinRequestDuration, MaxRequestDuration, r.Duration),
		}
	}
	if !ValidMember(Genres, r.GenrePreference) {
		return ValidationError{Field: "genre_preference", Reason: fmt.Sprintf("unknown genre %q", r.GenrePreference)}
	}
	if !ValidMember(Moods, r.MoodPreference) {
		return ValidationError{Field: "mood_preference", Reason: fmt.Sprintf("unknown mood %q", r.MoodPreference)}
	}
	if !ValidMember(ContentTypes, r.ContentType) {
		return ValidationError{Field: "content_type", Reason: fmt.Sprintf("unknown content type %q", r.ContentType)}
	}
	return nil
}
