package face

import "errors"

// FakeSource is a test double that returns scripted focus verdicts.
type FakeSource struct {
	// Samples contains scripted verdicts to return.
	// Each call to Focused() consumes the next one.
	Samples []bool

	// index tracks current position in Samples
	index int

	// Closed tracks if Close was called
	Closed bool

	// ReadError, if set, will be returned by Focused()
	ReadError error
}

// NewFakeSource creates a FakeSource with the given samples.
func NewFakeSource(samples []bool) *FakeSource {
	return &FakeSource{Samples: samples}
}

// Focused returns the next scripted verdict.
// If samples are exhausted, returns the last one repeatedly.
func (f *FakeSource) Focused() (bool, error) {
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
