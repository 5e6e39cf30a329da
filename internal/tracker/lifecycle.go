package tracker

import (
	"fmt"

	"github.com/smartsupply/provenance-tracker/internal/model"
	"github.com/smartsupply/provenance-tracker/internal/obs"
	"github.com/smartsupply/provenance-tracker/internal/token"
)

// jitterMagnitude bounds the simulated GPS noise applied on each status
// update: each axis moves by at most ±0.00075 degrees.
const jitterMagnitude = 0.00075

// UpdateStatus applies a scan-driven status update. The product is resolved
// by recomputing tokens across the registry; an unrecognized token fails
// with ErrTokenMismatch and performs no mutation and no ledger append.
//
// Transitions are not validated: any known status may be assigned from any
// state, matching the field behavior of handheld scanners that re-send
// checkpoints out of order.
func (t *Tracker) UpdateStatus(tok string, status model.Status, actor string) (*model.Product, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	p := t.findByTokenLocked(tok)
	if p == nil {
		obs.TokenMismatches.Inc()
		return nil, fmt.Errorf("update status: %w", ErrTokenMismatch)
	}
	t.applyStatusLocked(p, status, actor)
	return p.Clone(), nil
}

// UpdateStatusByID applies a status update to a specific product after
// authenticating the supplied token against it. Unknown id fails with
// ErrNotFound; a token that does not recompute to the product's own fails
// with ErrTokenMismatch, leaving product and ledger untouched.
func (t *Tracker) UpdateStatusByID(id, tok string, status model.Status, actor string) (*model.Product, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	p, ok := t.products[id]
	if !ok {
		return nil, fmt.Errorf("update status %s: %w", id, ErrNotFound)
	}
	if !token.Matches(tok, p.ID, p.Name, p.BatchNumber) {
		obs.TokenMismatches.Inc()
		return nil, fmt.Errorf("update status %s: %w", id, ErrTokenMismatch)
	}
	t.applyStatusLocked(p, status, actor)
	return p.Clone(), nil
}

// applyStatusLocked mutates the product and appends the matching timeline
// and ledger entries as one step. Caller holds the mutex.
func (t *Tracker) applyStatusLocked(p *model.Product, status model.Status, actor string) {
	ts := t.now()
	p.Status = status
	p.Timeline = append(p.Timeline, fmt.Sprintf("%s - %s - %s by %s",
		ts.Format(model.TimeLayout), status.EventKind(), p.ID, actor))
	t.ledger.append(ts, status.EventKind(), p.ID, actor)

	// Simulated movement between checkpoints.
	p.Lat += (t.rand() - 0.5) * 2 * jitterMagnitude
	p.Lon += (t.rand() - 0.5) * 2 * jitterMagnitude

	obs.StatusUpdates.Inc()
	obs.Logger.Info().
		Str("product_id", p.ID).
		Str("status", string(status)).
		Str("actor", actor).
		Msg("status updated")
}

// Flag marks a product as a suspected counterfeit. The boolean is one-way
// and idempotent, but every call appends a fresh FLAGGED timeline and
// ledger entry; repeated reports are audit events in their own right.
func (t *Tracker) Flag(id, actor string) (*model.Product, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	p, ok := t.products[id]
	if !ok {
		return nil, fmt.Errorf("flag %s: %w", id, ErrNotFound)
	}

	ts := t.now()
	p.Flagged = true
	p.Timeline = append(p.Timeline, fmt.Sprintf("%s - FLAGGED BY CUSTOMER", ts.Format(model.TimeLayout)))
	t.ledger.append(ts, model.EventKindFlagged, id, actor)

	obs.ProductsFlagged.Inc()
	obs.Logger.Info().Str("product_id", id).Str("actor", actor).Msg("product flagged")

	return p.Clone(), nil
}
