package tracker

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/smartsupply/provenance-tracker/internal/model"
	"github.com/smartsupply/provenance-tracker/internal/obs"
	"github.com/smartsupply/provenance-tracker/internal/token"
)

// RegisterInput carries the attributes for a new product. ID and
// BatchNumber are optional; both are generated when empty.
type RegisterInput struct {
	ID            string
	Name          string
	BatchNumber   string
	Manufacturer  string
	Distributor   string
	Retailer      string
	AssignedActor string
	Lat           float64
	Lon           float64
}

// Register creates a new product record, seeds its timeline with a CREATED
// entry, and appends one REGISTERED ledger entry. The ledger actor for
// registration is the manufacturer.
func (t *Tracker) Register(in RegisterInput) (*model.Product, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := in.ID
	if id == "" {
		id = generateID()
	}
	if _, exists := t.products[id]; exists {
		return nil, fmt.Errorf("register %s: %w", id, ErrDuplicateID)
	}

	batch := in.BatchNumber
	if batch == "" {
		batch = t.generateBatchNumber()
	}

	ts := t.now()
	p := &model.Product{
		ID:            id,
		Name:          in.Name,
		BatchNumber:   batch,
		Manufacturer:  in.Manufacturer,
		Distributor:   in.Distributor,
		Retailer:      in.Retailer,
		AssignedActor: in.AssignedActor,
		Status:        model.StatusRegistered,
		Lat:           in.Lat,
		Lon:           in.Lon,
		Timeline: []string{
			fmt.Sprintf("%s - CREATED - %s", ts.Format(model.TimeLayout), id),
		},
	}

	t.products[id] = p
	t.order = append(t.order, id)
	t.ledger.append(ts, model.EventKindRegistered, id, in.Manufacturer)
	obs.ProductsRegistered.Inc()
	obs.Logger.Info().Str("product_id", id).Str("batch", batch).Msg("product registered")

	return p.Clone(), nil
}

// Get looks up a product by id.
func (t *Tracker) Get(id string) (*model.Product, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	p, ok := t.products[id]
	if !ok {
		return nil, fmt.Errorf("get %s: %w", id, ErrNotFound)
	}
	return p.Clone(), nil
}

// ListAll returns every product in registration order.
func (t *Tracker) ListAll() []*model.Product {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]*model.Product, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.products[id].Clone())
	}
	return out
}

// FindByToken scans all products, recomputing each identity token and
// returning the first match. Tokens are never stored, so this is a linear
// recompute-and-compare scan; a forged token cannot match a cached value.
func (t *Tracker) FindByToken(tok string) (*model.Product, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	p := t.findByTokenLocked(tok)
	if p == nil {
		return nil, fmt.Errorf("lookup by token: %w", ErrNotFound)
	}
	return p.Clone(), nil
}

func (t *Tracker) findByTokenLocked(tok string) *model.Product {
	for _, id := range t.order {
		p := t.products[id]
		if token.Matches(tok, p.ID, p.Name, p.BatchNumber) {
			return p
		}
	}
	return nil
}

// generateBatchNumber mimics the label printer: "BATCH" plus a random
// 4-digit number. Fixed at creation time, never regenerated.
func (t *Tracker) generateBatchNumber() string {
	return fmt.Sprintf("BATCH%d", 1000+int(t.rand()*9000))
}

func generateID() string {
	return "PROD-" + strings.ToUpper(uuid.NewString()[:8])
}
