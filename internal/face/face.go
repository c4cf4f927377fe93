// Package face reports whether a present user is looking at the screen.
// Webcam capture and head-pose estimation run in a separate camera helper
// process; this package consumes its verdict feed over MQTT. A missing or
// stale feed reads as not-focused rather than holding the last verdict.
package face

// Source reports user presence and focus.
type Source interface {
	// Focused returns true if a user is present and facing the screen.
	// Implementations degrade to false when they cannot tell.
	Focused() (bool, error)

	// Close disconnects from the verdict feed.
	Close() error
}
