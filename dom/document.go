package dom

import (
	"sync"
	"time"

	"golang.org/x/net/html"
)

// Listener is called with the element the event was dispatched on
type Listener func(target *html.Node)

// EventTarget registers listeners on elements.
// Renderers take this instead of the whole Document.
type EventTarget interface {
	On(n *html.Node, event string, fn Listener)
}

// Document owns event listeners and the event loop.
// Every mutation of an attached tree must happen inside Run or a listener
// invoked by Dispatch; both hold the same lock, so at most one callback
// touches the tree at a time.
type Document struct {
	mu        sync.Mutex
	scheduler Scheduler
	listeners map[*html.Node]map[string][]Listener
}

// NewDocument creates a document whose timers come from s
func NewDocument(s Scheduler) *Document {
	if s == nil {
		s = TimerScheduler{}
	}
	return &Document{
		scheduler: s,
		listeners: make(map[*html.Node]map[string][]Listener),
	}
}

// Run executes fn on the event loop
func (d *Document) Run(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fn()
}

// On registers fn for event on n. Call from the event loop only.
func (d *Document) On(n *html.Node, event string, fn Listener) {
	byEvent := d.listeners[n]
	if byEvent == nil {
		byEvent = make(map[string][]Listener)
		d.listeners[n] = byEvent
	}
	byEvent[event] = append(byEvent[event], fn)
}

// Dispatch fires event at target and bubbles it up through the ancestors.
// It reports whether any listener ran. Listeners must not call Dispatch or Run.
func (d *Document) Dispatch(target *html.Node, event string) (handled bool) {
	d.Run(func() {
		for n := target; n != nil; n = n.Parent {
			for _, fn := range d.listeners[n][event] {
				fn(target)
				handled = true
			}
		}
	})
	return handled
}

// Clear removes every child of n and forgets the listeners of the removed subtree.
// Call from the event loop only.
func (d *Document) Clear(n *html.Node) {
	for c := n.FirstChild; c != nil; c = n.FirstChild {
		d.forget(c)
		n.RemoveChild(c)
	}
}

// Schedule runs fn on the event loop after delay. The returned task can be cancelled.
func (d *Document) Schedule(delay time.Duration, fn func()) Task {
	return d.scheduler.After(delay, func() { d.Run(fn) })
}

// ListenerCount reports how many elements have listeners attached
func (d *Document) ListenerCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.listeners)
}

func (d *Document) forget(n *html.Node) {
	delete(d.listeners, n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		d.forget(c)
	}
}
