package swipe

import "fmt"

// Classification labels a gesture session by how far the pointer has
// traveled. Every session starts as a Click; once the cumulative traveled
// distance exceeds the swipe threshold it becomes a Swipe and stays a
// Swipe for the rest of the session, even if later movement stops.
type Classification uint8

const (
	// Click is the initial state: negligible movement so far.
	Click Classification = iota

	// Swipe means the traveled distance has exceeded the swipe threshold.
	// Normals and ribbon geometry are only produced for swipes.
	Swipe
)

// String returns a human-readable name for the classification.
func (c Classification) String() string {
	switch c {
	case Click:
		return "click"
	case Swipe:
		return "swipe"
	default:
		return fmt.Sprintf("Unknown(%d)", c)
	}
}
