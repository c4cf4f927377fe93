// Package screen reads the active window title and classifies it against
// configured productivity keyword lists.
package screen

// Reader reads the title of the currently active window.
type Reader interface {
	// Title returns the active window's title. An empty string means no
	// window is active (not an error).
	Title() (string, error)

	// Close releases any resources held by the reader.
	Close() error
}
