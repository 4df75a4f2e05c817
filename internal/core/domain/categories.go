package domain

// Category vocabularies and trigger-keyword tables. These are explicit
// configuration tables rather than scattered literals so the analyzer
// and recommender can be tuned (and tested) independently. The exact
// word lists are tunable, not a stable contract.

// Genres accepted as a genre_preference value.
var Genres = []string{
	"pop", "electronic", "chill", "rock", "hip-hop",
	"classical", "ambient", "any",
}

// Moods accepted as a mood_preference value.
var Moods = []string{
	"upbeat", "calm", "dramatic", "energetic",
	"relaxed", "motivational", "any",
}

// ContentTypes accepted as a content_type value.
var ContentTypes = []string{
	"comedy", "educational", "lifestyle", "fitness",
	"cooking", "travel", "tech", "other",
}

// MoodPriority fixes the tie-break order for mood detection. When two
// moods score the same number of keyword hits, the one listed first wins.
var MoodPriority = []string{
	"upbeat", "energetic", "motivational", "calm", "relaxed", "dramatic",
}

// ThemePriority fixes the tie-break order for theme detection.
var ThemePriority = []string{
	"fitness", "cooking", "travel", "tech", "educational", "lifestyle",
}

// MoodKeywords maps each detectable mood to its trigger keywords.
var MoodKeywords = map[string][]string{
	"upbeat":       {"excited", "happy", "fun", "celebration", "party", "awesome", "amazing", "dance"},
	"energetic":    {"fast", "quick", "rush", "speed", "action", "move", "go", "run", "energy", "burn"},
	"motivational": {"success", "achieve", "goal", "motivation", "inspire", "dream", "grind", "crush", "push"},
	"calm":         {"peaceful", "serene", "quiet", "meditation", "gentle", "soft", "breathe"},
	"relaxed":      {"chill", "easy", "slow", "comfortable", "laid-back", "casual", "unwind"},
	"dramatic":     {"intense", "powerful", "emotional", "serious", "dramatic", "tension", "epic"},
}

// ThemeKeywords maps each detectable theme to its trigger keywords.
var ThemeKeywords = map[string][]string{
	"fitness":     {"workout", "exercise", "gym", "fitness", "muscle", "training", "health", "reps"},
	"cooking":     {"recipe", "cook", "food", "kitchen", "ingredients", "delicious", "taste", "bake"},
	"travel":      {"travel", "trip", "journey", "adventure", "explore", "destination", "vacation"},
	"tech":        {"technology", "app", "software", "digital", "code", "tech", "innovation", "gadget"},
	"educational": {"learn", "education", "tutorial", "how-to", "explain", "guide", "tips", "lesson"},
	"lifestyle":   {"daily", "routine", "life", "lifestyle", "personal", "self-care", "morning"},
}

// Neutral defaults used when analysis finds nothing to go on.
const (
	DefaultMood  = "calm"
	DefaultTheme = "general"
)

// Pacing classifications.
const (
	PacingFast   = "fast"
	PacingMedium = "medium"
	PacingSlow   = "slow"
)

// ValidMember reports whether value belongs to the given vocabulary.
func ValidMember(vocabulary []string, value string) bool {
	for _, v := range vocabulary {
		if v == value {
			return true
		}
	}
	return false
}
