package logic

// Fuse maps one tick's signals to a single productive/not-productive verdict.
//
// An unproductive window never counts, whatever the other signals say.
// A productive window counts on focus OR input activity, so heads-down
// typing without looking at the screen still accrues. A neutral window
// requires focus: input alone must not keep the clock running on a window
// nobody is attending to.
func Fuse(s Signals) bool {
	switch s.Screen {
	case ClassUnproductive:
		return false
	case ClassProductive:
		return s.Focused || s.Activity
	default:
		// Neutral, and anything a misbehaving classifier might emit.
		return s.Focused
	}
}
