package store

import "time"

// TimeDelta records one AddSessionTime call.
type TimeDelta struct {
	SessionID       int64
	ProductiveSec   int64
	UnproductiveSec int64
}

// SpanStart records one LogAppStart call.
type SpanStart struct {
	SessionID      int64
	Title          string
	Classification string
	Time           time.Time
}

// SpanEnd records one LogAppEnd call.
type SpanEnd struct {
	UsageID int64
	Time    time.Time
}

// FakeRecorder records writes for test assertions.
type FakeRecorder struct {
	Deltas []TimeDelta
	Starts []SpanStart
	Ends   []SpanEnd

	// Err, if set, is returned by every method.
	Err error

	nextUsageID int64
}

// NewFakeRecorder creates a FakeRecorder for testing.
func NewFakeRecorder() *FakeRecorder {
	return &FakeRecorder{}
}

// AddSessionTime records the delta. Zero deltas are recorded too, so tests
// can assert the loop skips empty flushes.
func (f *FakeRecorder) AddSessionTime(sessionID, productiveSec, unproductiveSec int64) error {
	if f.Err != nil {
		return f.Err
	}
	f.Deltas = append(f.Deltas, TimeDelta{sessionID, productiveSec, unproductiveSec})
	return nil
}

// LogAppStart records the span start and returns a synthetic usage id.
func (f *FakeRecorder) LogAppStart(sessionID int64, title, classification string, now time.Time) (int64, error) {
	if f.Err != nil {
		return 0, f.Err
	}
	f.nextUsageID++
	f.Starts = append(f.Starts, SpanStart{sessionID, title, classification, now})
	return f.nextUsageID, nil
}

// LogAppEnd records the span end.
func (f *FakeRecorder) LogAppEnd(usageID int64, now time.Time) error {
	if f.Err != nil {
		return f.Err
	}
	f.Ends = append(f.Ends, SpanEnd{usageID, now})
	return nil
}

// TotalProductive sums recorded productive deltas.
func (f *FakeRecorder) TotalProductive() int64 {
	var sum int64
	for _, d := range f.Deltas {
		sum += d.ProductiveSec
	}
	return sum
}

// TotalUnproductive sums recorded unproductive deltas.
func (f *FakeRecorder) TotalUnproductive() int64 {
	var sum int64
	for _, d := range f.Deltas {
		sum += d.UnproductiveSec
	}
	return sum
}
