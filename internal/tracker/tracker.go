// Package tracker implements the provenance tracking engine: product
// registry, lifecycle state machine, append-only ledger, and read-only
// query views over both.
package tracker

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/smartsupply/provenance-tracker/internal/model"
)

// Tracker owns all tracking state. Every mutating operation holds mu for
// the combined "mutate record + append ledger entry" step, so concurrent
// callers never observe a partial update.
type Tracker struct {
	mu       sync.Mutex
	products map[string]*model.Product
	order    []string
	ledger   ledger

	now  func() time.Time
	rand func() float64
}

// Option customizes a Tracker.
type Option func(*Tracker)

// WithClock injects the time source used for timeline and ledger stamps.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithRand injects the random source used for location jitter and batch
// number generation. The function must return values in [0, 1).
func WithRand(f func() float64) Option {
	return func(t *Tracker) { t.rand = f }
}

// New creates an empty Tracker.
func New(opts ...Option) *Tracker {
	t := &Tracker{
		products: make(map[string]*model.Product),
		now:      time.Now,
		rand:     rand.Float64,
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// Counts returns the number of registered products and ledger entries.
func (t *Tracker) Counts() (products, ledgerEntries int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.order), len(t.ledger.entries)
}
