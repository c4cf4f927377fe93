package input

import "errors"

// FakeSource is a test double that returns scripted activity samples.
type FakeSource struct {
	// Samples contains scripted activity flags to return.
	// Each call to ReadAndReset() consumes the next sample.
	Samples []bool

	// index tracks current position in Samples
	index int

	// Closed tracks if Close was called
	Closed bool

	// ReadError, if set, will be returned by ReadAndReset()
	ReadError error
}

// NewFakeSource creates a FakeSource with the given samples.
func NewFakeSource(samples []bool) *FakeSource {
	return &FakeSource{Samples: samples}
}

// ReadAndReset returns the next scripted sample.
// If samples are exhausted, returns the last sample repeatedly.
func (f *FakeSource) ReadAndReset() (bool, error) {
	if f.ReadError != nil {
		return false, f.ReadError
	}

	if len(f.Samples) == 0 {
		return false, errors.New("no samples configured")
	}

	sample := f.Samples[f.index]
	if f.index < len(f.Samples)-1 {
		f.index++
	}

	return sample, nil
}

// Close marks the source as closed.
func (f *FakeSource) Close() error {
	f.Closed = true
	return nil
}

// Reset resets the source to the beginning of samples.
func (f *FakeSource) Reset() {
	f.index = 0
	f.Closed = false
}
