package screen

import "github.com/go-vgo/robotgo"

// RealReader reads the active window title from the desktop environment.
type RealReader struct{}

// NewRealReader creates a reader backed by the OS window manager.
func NewRealReader() *RealReader {
	return &RealReader{}
}

// Title returns the active window title, or "" when no window is active
// (transient popups and lock screens report no title on some platforms).
func (r *RealReader) Title() (string, error) {
	return robotgo.GetTitle(), nil
}

// Close is a no-op; the window manager query holds no resources.
func (r *RealReader) Close() error {
	return nil
}
