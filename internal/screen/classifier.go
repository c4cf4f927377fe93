package screen

import (
	"strings"

	"github.com/ayuss-kr/productivity-monitor/internal/logic"
)

// Classifier matches window titles against keyword lists. Matching is
// case-insensitive substring; unproductive keywords are checked before
// productive ones, so unproductive wins when both lists could match.
type Classifier struct {
	unproductive []string
	productive   []string
}

// NewClassifier builds a classifier from the given keyword lists.
// Keywords are lowercased once here; empty keywords are dropped.
func NewClassifier(productive, unproductive []string) *Classifier {
	return &Classifier{
		productive:   lowerAll(productive),
		unproductive: lowerAll(unproductive),
	}
}

// Classify returns the productivity category for a window title.
// An empty title (no active window) is Neutral.
func (c *Classifier) Classify(title string) logic.Classification {
	if title == "" {
		return logic.ClassNeutral
	}
	t := strings.ToLower(title)

	for _, k := range c.unproductive {
		if strings.Contains(t, k) {
			return logic.ClassUnproductive
		}
	}
	for _, k := range c.productive {
		if strings.Contains(t, k) {
			return logic.ClassProductive
		}
	}
	return logic.ClassNeutral
}

func lowerAll(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" {
			out = append(out, k)
		}
	}
	return out
}
