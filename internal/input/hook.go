package input

import (
	"sync"

	hook "github.com/robotn/gohook"
)

// Watcher latches a flag on any keyboard or mouse event delivered by a
// global OS input hook. The hook runs its own background thread; the flag
// is guarded by a mutex and cleared on every read.
type Watcher struct {
	mu     sync.Mutex
	active bool

	stop chan struct{}
	done chan struct{}
}

// NewWatcher installs the global input hook and starts consuming events.
func NewWatcher() *Watcher {
	w := &Watcher{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	events := hook.Start()
	go w.consume(events)
	return w
}

func (w *Watcher) consume(events <-chan hook.Event) {
	defer close(w.done)
	for {
		select {
		case <-w.stop:
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev.Kind {
			case hook.KeyDown, hook.KeyHold,
				hook.MouseDown, hook.MouseMove, hook.MouseDrag, hook.MouseWheel:
				w.mu.Lock()
				w.active = true
				w.mu.Unlock()
			}
		}
	}
}

// ReadAndReset returns whether any input arrived since the previous call
// and clears the flag.
func (w *Watcher) ReadAndReset() (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	active := w.active
	w.active = false
	return active, nil
}

// Close uninstalls the hook and waits for the consumer goroutine to exit.
func (w *Watcher) Close() error {
	hook.End()
	close(w.stop)
	<-w.done
	return nil
}
