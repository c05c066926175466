// Package modal drives the Pokémon detail overlay through its open and close transitions.
package modal

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rohanthewiz/logger"
	"golang.org/x/net/html"

	"pokedex/dom"
	"pokedex/models"
	"pokedex/views"
)

// State is the observable lifecycle of the modal
type State int

const (
	Closed  State = iota // portal is empty
	Opening              // modal inserted, active class pending
	Open                 // modal inserted and active
	Closing              // active class removed, teardown pending
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Opening:
		return "opening"
	case Open:
		return "open"
	case Closing:
		return "closing"
	default:
		return "unknown"
	}
}

// ErrModalBusy is returned by Open while another modal is opening or open
var ErrModalBusy = errors.New("a detail modal is already open")

// Options tunes the controller
type Options struct {
	VersionGroup string
	OpenDelay    time.Duration // insert-to-active delay
	CloseDelay   time.Duration // deactivate-to-teardown delay, longer than the CSS transition
}

// Controller owns the single modal rendered into the portal.
// All methods must be called from the document's event loop.
type Controller struct {
	doc    *dom.Document
	portal *html.Node
	opts   Options

	state   State
	view    views.DetailView
	modalID string
	name    string

	pending dom.Task
	seq     uint64 // bumped whenever a scheduled callback becomes stale
}

func New(doc *dom.Document, portal *html.Node, opts Options) *Controller {
	return &Controller{doc: doc, portal: portal, opts: opts}
}

// Open inserts a modal for p and schedules its activation.
// A pending teardown is cancelled and replaced; an opening or open modal wins
// and the request is refused with ErrModalBusy.
func (c *Controller) Open(p *models.PokemonDetail) error {
	switch c.state {
	case Opening, Open:
		logger.Debug("Modal open ignored", "requested", p.Name, "current", c.name, "state", c.state.String())
		return ErrModalBusy
	case Closing:
		c.cancelPending()
		c.teardown()
	}

	view := views.Detail(p, c.opts.VersionGroup)
	c.modalID = uuid.NewString()
	dom.SetAttr(view.Overlay, "data-modal-id", c.modalID)
	c.doc.On(view.Close, "click", func(*html.Node) { c.Close() })

	dom.Append(c.portal, view.Overlay)
	c.view = view
	c.name = p.Name
	c.state = Opening

	c.schedule(c.opts.OpenDelay, c.activate)
	logger.Debug("Modal opening", "pokemon", p.Name, "modal_id", c.modalID)
	return nil
}

// Close starts the reverse transition. It reports whether anything changed.
func (c *Controller) Close() bool {
	if c.state != Opening && c.state != Open {
		return false
	}

	c.cancelPending()
	dom.RemoveClass(c.view.Card, views.ActiveClass)
	dom.RemoveClass(c.view.Overlay, views.ActiveClass)
	c.state = Closing

	c.schedule(c.opts.CloseDelay, c.teardown)
	logger.Debug("Modal closing", "pokemon", c.name, "modal_id", c.modalID)
	return true
}

// State reports the current lifecycle state
func (c *Controller) State() State {
	return c.state
}

// ModalID identifies the modal currently in the portal, empty when closed
func (c *Controller) ModalID() string {
	return c.modalID
}

// CloseButton returns the close button of the current modal, or nil
func (c *Controller) CloseButton() *html.Node {
	if c.state == Closed {
		return nil
	}
	return c.view.Close
}

// PendingDelay is how long until the next scheduled transition would fire,
// measured from when it was scheduled. Zero means nothing is pending.
func (c *Controller) PendingDelay() time.Duration {
	switch c.state {
	case Opening:
		return c.opts.OpenDelay
	case Closing:
		return c.opts.CloseDelay
	default:
		return 0
	}
}

func (c *Controller) activate() {
	dom.AddClass(c.view.Card, views.ActiveClass)
	dom.AddClass(c.view.Overlay, views.ActiveClass)
	c.state = Open
}

func (c *Controller) teardown() {
	c.doc.Clear(c.portal)
	c.view = views.DetailView{}
	c.modalID = ""
	c.name = ""
	c.state = Closed
}

// schedule arranges fn on the event loop. A callback that lost a race with
// cancelPending sees a newer seq and does nothing.
func (c *Controller) schedule(delay time.Duration, fn func()) {
	c.seq++
	seq := c.seq
	c.pending = c.doc.Schedule(delay, func() {
		if seq != c.seq {
			return
		}
		c.pending = nil
		fn()
	})
}

func (c *Controller) cancelPending() {
	if c.pending != nil {
		c.pending.Cancel()
		c.pending = nil
	}
	c.seq++
}
