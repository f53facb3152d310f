// Package memory keeps per-session state in process memory.
package memory

import (
	"context"
	"sync"
	"time"

	"jinbbq/internal/core/domain/model/cart"
	"jinbbq/internal/pkg/errs"
)

type session struct {
	mu      sync.Mutex
	cart    *cart.Cart
	touched time.Time
	evicted bool
}

// CartStore is a ports.CartStore backed by a map of customer sessions.
// Updates for one customer are serialized by that session's mutex; different
// customers never wait on each other.
type CartStore struct {
	mu       sync.RWMutex
	sessions map[string]*session
	now      func() time.Time
}

func NewCartStore() *CartStore {
	return NewCartStoreWithClock(time.Now)
}

// NewCartStoreWithClock lets tests control the touch time used for eviction.
func NewCartStoreWithClock(now func() time.Time) *CartStore {
	return &CartStore{
		sessions: make(map[string]*session),
		now:      now,
	}
}

func (s *CartStore) Get(ctx context.Context, customerID string) (*cart.Cart, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if customerID == "" {
		return nil, errs.NewValueIsRequiredError("customer id")
	}

	s.mu.RLock()
	sess, ok := s.sessions[customerID]
	s.mu.RUnlock()
	if !ok {
		return cart.New(customerID), nil
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.cart.Clone(), nil
}

func (s *CartStore) Update(ctx context.Context, customerID string, fn func(c *cart.Cart) error) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customer id")
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		sess := s.session(customerID)
		sess.mu.Lock()
		if sess.evicted {
			// Evict won the race for this session; start over with a fresh one.
			sess.mu.Unlock()
			continue
		}

		err := fn(sess.cart)
		sess.touched = s.now()
		sess.mu.Unlock()
		return err
	}
}

// Evict skips sessions that are being updated right now.
func (s *CartStore) Evict(ctx context.Context, idleSince time.Time) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, sess := range s.sessions {
		if !sess.mu.TryLock() {
			continue
		}
		if sess.touched.Before(idleSince) {
			sess.evicted = true
			delete(s.sessions, id)
			evicted++
		}
		sess.mu.Unlock()
	}

	return evicted, nil
}

// Len reports how many sessions currently hold a cart.
func (s *CartStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *CartStore) session(customerID string) *session {
	s.mu.RLock()
	sess, ok := s.sessions[customerID]
	s.mu.RUnlock()
	if ok {
		return sess
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok = s.sessions[customerID]; ok {
		return sess
	}
	sess = &session{cart: cart.New(customerID), touched: s.now()}
	s.sessions[customerID] = sess
	return sess
}
