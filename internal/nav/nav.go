// Package nav owns which of the six screens a session is on and which
// product, if any, is open in the detail view.
package nav

import (
	"errors"
	"sync"
)

// View is the closed set of top-level screens. The root dispatcher
// switches over every variant; adding a view without a renderer is a
// compile-visible hole there.
type View int

const (
	Onboarding View = iota
	Feed
	ProductDetail
	Upload
	Profile
	Cart
)

func (v View) String() string {
	switch v {
	case Onboarding:
		return "onboarding"
	case Feed:
		return "feed"
	case ProductDetail:
		return "product-detail"
	case Upload:
		return "upload"
	case Profile:
		return "profile"
	case Cart:
		return "cart"
	}
	return "unknown"
}

var (
	// ErrNoProduct means OpenDetail was called without a product id.
	// Callers must resolve a product before offering the detail view;
	// this is a guard against a programming error, not user input.
	ErrNoProduct = errors.New("nav: product-detail requires a selected product")
	// ErrBadTarget rejects transitions the screen graph does not have,
	// such as re-entering onboarding.
	ErrBadTarget = errors.New("nav: no such transition")
)

type state struct {
	view     View
	selected string // product id; read only while view == ProductDetail
}

// Controller holds per-session navigation state. Fiber handlers hit it
// concurrently, hence the lock; transitions themselves are plain field
// writes.
type Controller struct {
	mu       sync.Mutex
	sessions map[string]*state
}

func NewController() *Controller {
	return &Controller{sessions: make(map[string]*state)}
}

func (c *Controller) session(sid string) *state {
	st, ok := c.sessions[sid]
	if !ok {
		st = &state{view: Onboarding}
		c.sessions[sid] = st
	}
	return st
}

// Current reports the session's view and selected product id. New
// sessions begin at onboarding.
func (c *Controller) Current(sid string) (View, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	st := c.session(sid)
	return st.view, st.selected
}

// Start moves onboarding to the feed ("start"/"skip"). Once a session
// has left onboarding, Start is a no-op; the screen is never re-entered.
func (c *Controller) Start(sid string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	st := c.session(sid)
	if st.view == Onboarding {
		st.view = Feed
	}
}

// OpenDetail selects a product and switches to the detail view. The
// caller must have resolved the product already; an empty id is refused.
func (c *Controller) OpenDetail(sid, productID string) error {
	if productID == "" {
		return ErrNoProduct
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	st := c.session(sid)
	st.selected = productID
	st.view = ProductDetail
	return nil
}

// Go switches between the hub screens. Feed is the hub: upload, profile
// and cart all sit one step away from it. Onboarding and product-detail
// are not valid targets here, and nothing moves a session that is still
// onboarding.
func (c *Controller) Go(sid string, target View) error {
	switch target {
	case Feed, Upload, Profile, Cart:
	default:
		return ErrBadTarget
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	st := c.session(sid)
	if st.view == Onboarding {
		return ErrBadTarget
	}
	st.view = target
	return nil
}

// Back returns to the feed from any non-hub screen. The selected
// product id may go stale; it is only read while in detail view.
func (c *Controller) Back(sid string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	st := c.session(sid)
	if st.view != Onboarding {
		st.view = Feed
	}
}
