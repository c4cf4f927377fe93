// Package input detects keyboard and mouse activity.
// The real implementation installs a global input hook; the fake allows
// testing without touching the OS.
package input

// Source reports whether any keyboard or mouse activity occurred since the
// previous call.
type Source interface {
	// ReadAndReset returns the latched activity flag and clears it
	// (consume-and-clear). A tick with no input reads false.
	ReadAndReset() (bool, error)

	// Close stops the underlying listener.
	Close() error
}
