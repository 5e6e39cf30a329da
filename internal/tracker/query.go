package tracker

import (
	"fmt"
	"strings"

	"github.com/smartsupply/provenance-tracker/internal/model"
)

// RenderProvenance formats all descriptive fields plus the full ordered
// timeline. Pure read; the output is deterministic for a given product
// state.
func (t *Tracker) RenderProvenance(id string) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	p, ok := t.products[id]
	if !ok {
		return "", fmt.Errorf("provenance %s: %w", id, ErrNotFound)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Product: %s\n", p.Name)
	fmt.Fprintf(&sb, "ID: %s\n", p.ID)
	fmt.Fprintf(&sb, "Batch: %s\n", p.BatchNumber)
	fmt.Fprintf(&sb, "Manufacturer: %s\n", p.Manufacturer)
	fmt.Fprintf(&sb, "Distributor: %s\n", p.Distributor)
	fmt.Fprintf(&sb, "Retailer: %s\n", p.Retailer)
	fmt.Fprintf(&sb, "Current Status: %s\n", p.Status)
	fmt.Fprintf(&sb, "Assigned Delivery Person: %s\n", p.AssignedActor)
	fmt.Fprintf(&sb, "Last Known Location: %.5f, %.5f\n\n", p.Lat, p.Lon)
	sb.WriteString("Blockchain Transaction Timeline:\n")
	for _, line := range p.Timeline {
		fmt.Fprintf(&sb, " - %s\n", line)
	}
	return sb.String(), nil
}

// ListAssigned returns the products whose assigned actor matches actorName,
// case-insensitively, in registration order. No match yields an empty
// slice, not an error.
func (t *Tracker) ListAssigned(actorName string) []*model.Product {
	t.mu.Lock()
	defer t.mu.Unlock()

	var out []*model.Product
	for _, id := range t.order {
		p := t.products[id]
		if strings.EqualFold(p.AssignedActor, actorName) {
			out = append(out, p.Clone())
		}
	}
	return out
}
