// Package session owns the per-shopper state: one cart, one wishlist and one
// checkout flow per session id. Access to a session's state is serialized so
// that every operation runs to completion before the next one starts.
package session

import (
	"sync"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/cart"
	"github.com/aaravmahajanofficial/storefront/internal/checkout"
	"github.com/aaravmahajanofficial/storefront/internal/wishlist"
)

// Listener receives every effective store mutation, tagged with the session id.
// Calls happen while the session is locked and must not call back into it.
type Listener interface {
	CartChanged(sessionID string, ev cart.Event)
	WishlistChanged(sessionID string, ev wishlist.Event)
	SessionsActive(n int)
}

type NopListener struct{}

func (NopListener) CartChanged(string, cart.Event)         {}
func (NopListener) WishlistChanged(string, wishlist.Event) {}
func (NopListener) SessionsActive(int)                     {}

type State struct {
	Cart     *cart.Store
	Wishlist *wishlist.Store
	Checkout *checkout.Flow

	revision uint64
}

// Revision counts effective cart and wishlist mutations in this session.
func (st *State) Revision() uint64 {
	return st.revision
}

type Session struct {
	ID string

	mu    sync.Mutex
	state State

	lastSeen time.Time
}

func newSession(id string, v *checkout.Validator, a *checkout.Assembler, l Listener, now time.Time) *Session {
	s := &Session{ID: id, lastSeen: now}

	s.state.Cart = cart.NewStore(func(ev cart.Event) {
		s.state.revision++
		l.CartChanged(id, ev)
	})
	s.state.Wishlist = wishlist.NewStore(func(ev wishlist.Event) {
		s.state.revision++
		l.WishlistChanged(id, ev)
	})
	s.state.Checkout = checkout.NewFlow(v, a)

	return s
}

// Do runs fn with exclusive access to the session state. The state must not
// escape fn.
func (s *Session) Do(fn func(st *State)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(&s.state)
}
