// Package model defines domain types used by the tracker.
package model

import (
	"fmt"
	"strings"
	"time"
)

// TimeLayout is the wall-clock format used in timeline and ledger lines.
const TimeLayout = "2006-01-02 15:04:05"

// Status is a product lifecycle state.
type Status string

const (
	StatusRegistered Status = "Registered"
	StatusPickedUp   Status = "Picked Up"
	StatusInTransit  Status = "In Transit"
	StatusDelivered  Status = "Delivered"
)

// Statuses lists all lifecycle states in forward order.
var Statuses = []Status{StatusRegistered, StatusPickedUp, StatusInTransit, StatusDelivered}

// ParseStatus resolves a status string case-insensitively. Underscores are
// treated as spaces so both "In Transit" and "IN_TRANSIT" parse.
func ParseStatus(s string) (Status, error) {
	norm := strings.ReplaceAll(strings.TrimSpace(s), "_", " ")
	for _, st := range Statuses {
		if strings.EqualFold(norm, string(st)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// EventKind returns the ledger event kind for this status.
func (s Status) EventKind() string { return strings.ToUpper(string(s)) }

// Product represents the tracked state of a product.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	BatchNumber   string   `json:"batch_number"`
	Manufacturer  string   `json:"manufacturer"`
	Distributor   string   `json:"distributor"`
	Retailer      string   `json:"retailer"`
	AssignedActor string   `json:"assigned_actor"`
	Status        Status   `json:"status"`
	Lat           float64  `json:"lat"`
	Lon           float64  `json:"lon"`
	Flagged       bool     `json:"flagged"`
	Timeline      []string `json:"timeline"`
}

// Clone returns a deep copy so callers never alias tracker-owned state.
func (p *Product) Clone() *Product {
	cp := *p
	cp.Timeline = append([]string(nil), p.Timeline...)
	return &cp
}

// EventKindFlagged marks a counterfeit report in the ledger.
const EventKindFlagged = "FLAGGED"

// EventKindRegistered marks product registration in the ledger.
const EventKindRegistered = "REGISTERED"

// LedgerEntry is a single append-only audit record. Seq, not Timestamp, is
// the order key; timestamps have second resolution and may collide.
type LedgerEntry struct {
	Seq       uint64    `json:"seq"`
	Timestamp time.Time `json:"timestamp"`
	Kind      string    `json:"kind"`
	ProductID string    `json:"product_id"`
	Actor     string    `json:"actor"`
}

// Line renders the entry in the human-readable ledger format.
func (e LedgerEntry) Line() string {
	ts := e.Timestamp.Format(TimeLayout)
	if e.Kind == EventKindFlagged {
		return fmt.Sprintf("%s - %s - %s reported by %s", ts, e.Kind, e.ProductID, e.Actor)
	}
	return fmt.Sprintf("%s - %s - %s by %s", ts, e.Kind, e.ProductID, e.Actor)
}
