// Package lightbox tracks which project image, if any, is shown enlarged.
//
// The state machine has two logical states, CLOSED and OPEN(image). State is a
// plain value with pure transitions; Controller owns one State and lets a
// presentation layer observe it.
package lightbox

import "sync"

// State is either CLOSED or OPEN with an image URL. The zero value is CLOSED.
type State struct {
	image string
	open  bool
}

// Closed returns the initial state.
func Closed() State {
	return State{}
}

// Opened returns OPEN(image).
func Opened(image string) State {
	return State{image: image, open: true}
}

// IsOpen reports whether an image is currently enlarged.
func (s State) IsOpen() bool {
	return s.open
}

// Image returns the enlarged image URL. ok is false when the state is CLOSED.
func (s State) Image() (image string, ok bool) {
	return s.image, s.open
}

// Open moves to OPEN(image) regardless of the prior state. The URL is not validated.
func (s State) Open(image string) State {
	return Opened(image)
}

// Close moves to CLOSED. Closing a closed lightbox is a no-op.
func (s State) Close() State {
	return Closed()
}

// Msg is a transition request handled by Update.
type Msg interface {
	apply(State) State
}

// OpenMsg requests OPEN(Image).
type OpenMsg struct {
	Image string
}

func (m OpenMsg) apply(s State) State { return s.Open(m.Image) }

// CloseMsg requests CLOSED.
type CloseMsg struct{}

func (CloseMsg) apply(s State) State { return s.Close() }

// Update applies msg to s and returns the next state. A nil msg leaves s unchanged.
func Update(s State, msg Msg) State {
	if msg == nil {
		return s
	}
	return msg.apply(s)
}

// Controller is a single owned lightbox cell. It is safe for concurrent use,
// but each Controller is meant to belong to one UI session. The zero value is
// a usable CLOSED controller.
type Controller struct {
	mu        sync.Mutex
	state     State
	delivered State // last state handed to subscribers
	notifying bool
	nextID    int
	subs      map[int]func(State)
}

// New returns a CLOSED controller.
func New() *Controller {
	return &Controller{}
}

// Open enlarges image, replacing whatever was open before.
func (c *Controller) Open(image string) {
	c.Dispatch(OpenMsg{Image: image})
}

// Close hides the lightbox.
func (c *Controller) Close() {
	c.Dispatch(CloseMsg{})
}

// Current returns the enlarged image URL, or ok=false when nothing is open.
func (c *Controller) Current() (image string, ok bool) {
	return c.State().Image()
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Dispatch applies msg and notifies subscribers if the state changed.
//
// One goroutine delivers at a time, in order. A Dispatch that arrives while
// another is delivering only updates the state; the delivering goroutine
// picks the change up before it returns, so the last notification always
// matches the controller's state. Changes that land during a delivery may be
// coalesced into one notification.
func (c *Controller) Dispatch(msg Msg) {
	c.mu.Lock()
	c.state = Update(c.state, msg)
	if c.notifying {
		c.mu.Unlock()
		return
	}
	c.notifying = true
	defer func() {
		c.notifying = false
		c.mu.Unlock()
	}()

	for c.state != c.delivered {
		next := c.state
		c.delivered = next
		subs := make([]func(State), 0, len(c.subs))
		for _, fn := range c.subs {
			subs = append(subs, fn)
		}
		c.deliverLocked(subs, next)
	}
}

// deliverLocked runs subs without holding c.mu, which the caller holds.
// Subscribers may call back into the controller.
func (c *Controller) deliverLocked(subs []func(State), s State) {
	c.mu.Unlock()
	defer c.mu.Lock()
	for _, fn := range subs {
		fn(s)
	}
}

// Subscribe registers fn to run after transitions that change the state.
// The returned cancel func removes the subscription.
func (c *Controller) Subscribe(fn func(State)) (cancel func()) {
	c.mu.Lock()
	if c.subs == nil {
		c.subs = make(map[int]func(State))
	}
	id := c.nextID
	c.nextID++
	c.subs[id] = fn
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subs, id)
			c.mu.Unlock()
		})
	}
}
