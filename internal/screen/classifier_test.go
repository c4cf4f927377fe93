package screen

import (
	"testing"

	"github.com/ayuss-kr/productivity-monitor/internal/logic"
)

func newTestClassifier() *Classifier {
	return NewClassifier(
		[]string{"Visual Studio Code", "terminal", "github"},
		[]string{"YouTube", "netflix", "discord"},
	)
}

func TestClassifyProductive(t *testing.T) {
	c := newTestClassifier()
	for _, title := range []string{
		"main.go - Visual Studio Code",
		"user@host: ~ — Terminal",
		"Pull requests · GitHub - Chromium",
	} {
		if got := c.Classify(title); got != logic.ClassProductive {
			t.Errorf("Classify(%q) = %s, want PRODUCTIVE", title, got)
		}
	}
}

func TestClassifyUnproductive(t *testing.T) {
	c := newTestClassifier()
	for _, title := range []string{
		"cat videos - YouTube",
		"NETFLIX — Home",
	} {
		if got := c.Classify(title); got != logic.ClassUnproductive {
			t.Errorf("Classify(%q) = %s, want UNPRODUCTIVE", title, got)
		}
	}
}

func TestClassifyNeutral(t *testing.T) {
	c := newTestClassifier()
	if got := c.Classify("Downloads - File Manager"); got != logic.ClassNeutral {
		t.Errorf("expected NEUTRAL for unmatched title, got %s", got)
	}
}

func TestClassifyEmptyTitleIsNeutral(t *testing.T) {
	c := newTestClassifier()
	if got := c.Classify(""); got != logic.ClassNeutral {
		t.Errorf("expected NEUTRAL for empty title, got %s", got)
	}
}

func TestClassifyUnproductiveWinsOnAmbiguity(t *testing.T) {
	// A title matching both lists classifies as unproductive.
	c := newTestClassifier()
	title := "GitHub tutorial - YouTube"
	if got := c.Classify(title); got != logic.ClassUnproductive {
		t.Errorf("Classify(%q) = %s, want UNPRODUCTIVE (checked first)", title, got)
	}
}

func TestClassifierNormalizesKeywords(t *testing.T) {
	c := NewClassifier([]string{"  VsCoDe  ", ""}, nil)
	if got := c.Classify("project — vscode"); got != logic.ClassProductive {
		t.Errorf("expected keywords to be trimmed and lowercased, got %s", got)
	}
}

func TestFakeReaderSequence(t *testing.T) {
	f := NewFakeReader([]string{"a", "b"})

	for i, want := range []string{"a", "b", "b"} {
		got, err := f.Title()
		if err != nil {
			t.Fatalf("read %d: unexpected error: %v", i, err)
		}
		if got != want {
			t.Errorf("read %d: expected %q, got %q", i, want, got)
		}
	}

	if err := f.Close(); err != nil || !f.Closed {
		t.Errorf("Close: err=%v closed=%v", err, f.Closed)
	}
}
