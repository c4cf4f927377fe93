package screen

import "errors"

// FakeReader is a test double that returns scripted window titles.
type FakeReader struct {
	// Titles contains scripted titles to return.
	// Each call to Title() consumes the next one.
	Titles []string

	// index tracks current position in Titles
	index int

	// Closed tracks if Close was called
	Closed bool

	// ReadError, if set, will be returned by Title()
	ReadError error
}

// NewFakeReader creates a FakeReader with the given titles.
func NewFakeReader(titles []string) *FakeReader {
	return &FakeReader{Titles: titles}
}

// Title returns the next scripted title.
// If titles are exhausted, returns the last one repeatedly.
func (f *FakeReader) Title() (string, error) {
	if f.ReadError != nil {
		return "", f.ReadError
	}

	if len(f.Titles) == 0 {
		return "", errors.New("no titles configured")
	}

	title := f.Titles[f.index]
	if f.index < len(f.Titles)-1 {
		f.index++
	}

	return title, nil
}

// Close marks the reader as closed.
func (f *FakeReader) Close() error {
	f.Closed = true
	return nil
}
