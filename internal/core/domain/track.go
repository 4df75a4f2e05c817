package domain

// Track is a candidate background-music track in the domain layer,
// sourced from whichever catalog adapter is active. Tracks are
// request-scoped values; nothing retains them across calls.
type Track struct {
	ID              string
	Title           string
	Artist          string
	DurationSeconds int
	LoopSuitable    bool
}
