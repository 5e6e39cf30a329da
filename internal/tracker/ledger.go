package tracker

import (
	"sync/atomic"
	"time"

	"github.com/smartsupply/provenance-tracker/internal/model"
	"github.com/smartsupply/provenance-tracker/internal/obs"
)

// sequencer provides monotonically increasing sequence numbers. Sequence,
// not timestamp, is the true order key of the ledger.
type sequencer struct{ n atomic.Uint64 }

// next returns the next sequence number.
func (s *sequencer) next() uint64 { return s.n.Add(1) }

// ledger is the append-only, strictly ordered log of lifecycle events.
// Entries are never mutated, reordered, or deleted.
type ledger struct {
	seq     sequencer
	entries []model.LedgerEntry
}

// append stamps and records one event. Caller holds the Tracker mutex.
func (l *ledger) append(ts time.Time, kind, productID, actor string) model.LedgerEntry {
	e := model.LedgerEntry{
		Seq:       l.seq.next(),
		Timestamp: ts,
		Kind:      kind,
		ProductID: productID,
		Actor:     actor,
	}
	l.entries = append(l.entries, e)
	obs.LedgerEntries.Inc()
	return e
}

// snapshot copies the full history in append order.
func (l *ledger) snapshot() []model.LedgerEntry {
	return append([]model.LedgerEntry(nil), l.entries...)
}

// LedgerSnapshot returns the full ledger history in append order. The
// returned slice is a copy and stays valid under concurrent appends.
func (t *Tracker) LedgerSnapshot() []model.LedgerEntry {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ledger.snapshot()
}
