package face

import (
	"testing"
	"time"
)

// testRemote builds a Remote with an injected clock and no MQTT client.
func testRemote(ttl time.Duration, now *time.Time) *Remote {
	return &Remote{
		ttl: ttl,
		now: func() time.Time { return *now },
	}
}

func TestRemoteNoVerdictYet(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	r := testRemote(5*time.Second, &now)

	focused, err := r.Focused()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if focused {
		t.Error("expected false before any verdict arrives")
	}
}

func TestRemoteFreshVerdict(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	r := testRemote(5*time.Second, &now)

	r.handle([]byte(`{"focused": true}`))

	now = now.Add(2 * time.Second)
	focused, _ := r.Focused()
	if !focused {
		t.Error("expected true for a fresh verdict")
	}

	r.handle([]byte(`{"focused": false}`))
	focused, _ = r.Focused()
	if focused {
		t.Error("expected false after helper reports not-focused")
	}
}

func TestRemoteStaleVerdictReadsFalse(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	r := testRemote(5*time.Second, &now)

	r.handle([]byte(`{"focused": true}`))

	// At exactly ttl the verdict still counts; past it, the feed is stale.
	now = now.Add(5 * time.Second)
	if focused, _ := r.Focused(); !focused {
		t.Error("expected true at exactly ttl")
	}
	now = now.Add(time.Millisecond)
	if focused, _ := r.Focused(); focused {
		t.Error("expected false once the verdict is older than ttl")
	}
}

func TestRemoteBadPayloadIgnored(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	r := testRemote(5*time.Second, &now)

	r.handle([]byte(`{"focused": true}`))
	r.handle([]byte(`not json`))

	// The malformed message neither crashes nor clears the last verdict.
	if focused, _ := r.Focused(); !focused {
		t.Error("expected previous verdict to survive a malformed message")
	}
}

func TestFakeSourceSequence(t *testing.T) {
	f := NewFakeSource([]bool{true, false})

	for i, want := range []bool{true, false, false} {
		got, err := f.Focused()
		if err != nil {
			t.Fatalf("read %d: unexpected error: %v", i, err)
		}
		if got != want {
			t.Errorf("read %d: expected %v, got %v", i, want, got)
		}
	}

	if err := f.Close(); err != nil || !f.Closed {
		t.Errorf("Close: err=%v closed=%v", err, f.Closed)
	}
}
