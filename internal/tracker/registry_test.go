package tracker

import (
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartsupply/provenance-tracker/internal/model"
	"github.com/smartsupply/provenance-tracker/internal/token"
)

var testClock = func() time.Time {
	return time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
}

// newTestTracker pins the clock and random source so assertions are exact.
func newTestTracker(t *testing.T, randValue float64) *Tracker {
	t.Helper()
	return New(WithClock(testClock), WithRand(func() float64 { return randValue }))
}

func registerWidget(t *testing.T, trk *Tracker) *model.Product {
	t.Helper()
	p, err := trk.Register(RegisterInput{
		ID:            "P1",
		Name:          "Widget",
		Manufacturer:  "Acme",
		Distributor:   "DistCo",
		Retailer:      "Shop",
		AssignedActor: "Bob",
		Lat:           1.0,
		Lon:           2.0,
	})
	require.NoError(t, err)
	return p
}

func TestRegisterAndGet(t *testing.T) {
	trk := newTestTracker(t, 0.5)
	p := registerWidget(t, trk)

	assert.Equal(t, "P1", p.ID)
	assert.Equal(t, model.StatusRegistered, p.Status)
	assert.False(t, p.Flagged)
	require.Len(t, p.Timeline, 1)
	assert.Equal(t, "2024-05-01 10:30:00 - CREATED - P1", p.Timeline[0])

	got, err := trk.Get("P1")
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestGetNotFound(t *testing.T) {
	trk := newTestTracker(t, 0.5)
	_, err := trk.Get("missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRegisterDuplicateID(t *testing.T) {
	trk := newTestTracker(t, 0.5)
	registerWidget(t, trk)

	_, err := trk.Register(RegisterInput{ID: "P1", Name: "Other", Manufacturer: "Acme"})
	require.ErrorIs(t, err, ErrDuplicateID)

	_, entries := trk.Counts()
	assert.Equal(t, 1, entries, "failed registration must not append to the ledger")
}

func TestRegisterGeneratesIDAndBatch(t *testing.T) {
	trk := newTestTracker(t, 0.5)
	p, err := trk.Register(RegisterInput{Name: "Widget", Manufacturer: "Acme"})
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^PROD-[0-9A-F]{8}$`), p.ID)
	// rand fixed at 0.5 gives 1000 + 4500.
	assert.Equal(t, "BATCH5500", p.BatchNumber)
}

func TestGeneratedBatchNumberBounds(t *testing.T) {
	for _, v := range []float64{0, 0.25, 0.9999} {
		trk := newTestTracker(t, v)
		p, err := trk.Register(RegisterInput{Name: "Widget", Manufacturer: "Acme"})
		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^BATCH[1-9][0-9]{3}$`), p.BatchNumber)
	}
}

func TestListAllPreservesRegistrationOrder(t *testing.T) {
	trk := newTestTracker(t, 0.5)
	for _, id := range []string{"C", "A", "B"} {
		_, err := trk.Register(RegisterInput{ID: id, Name: "n-" + id, Manufacturer: "m"})
		require.NoError(t, err)
	}

	ids := func() []string {
		var out []string
		for _, p := range trk.ListAll() {
			out = append(out, p.ID)
		}
		return out
	}
	first := ids()
	assert.Equal(t, []string{"C", "A", "B"}, first)
	assert.Equal(t, first, ids(), "iteration must be re-iterable and stable")
}

func TestFindByTokenRoundTrip(t *testing.T) {
	trk := newTestTracker(t, 0.5)
	require.NoError(t, trk.SeedSampleData())
	p := registerWidget(t, trk)

	tok := token.Derive(p.ID, p.Name, p.BatchNumber)
	got, err := trk.FindByToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "P1", got.ID)
}

func TestFindByTokenUnknown(t *testing.T) {
	trk := newTestTracker(t, 0.5)
	registerWidget(t, trk)

	_, err := trk.FindByToken("SS-000000000000000000000000")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRegisterAppendsLedgerEntry(t *testing.T) {
	trk := newTestTracker(t, 0.5)
	registerWidget(t, trk)

	entries := trk.LedgerSnapshot()
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, uint64(1), e.Seq)
	assert.Equal(t, model.EventKindRegistered, e.Kind)
	assert.Equal(t, "P1", e.ProductID)
	assert.Equal(t, "Acme", e.Actor, "registration is attributed to the manufacturer")
	assert.Equal(t, "2024-05-01 10:30:00 - REGISTERED - P1 by Acme", e.Line())
}

func TestReturnedProductsAreCopies(t *testing.T) {
	trk := newTestTracker(t, 0.5)
	p := registerWidget(t, trk)

	p.Name = "tampered"
	p.Timeline[0] = "tampered"

	got, err := trk.Get("P1")
	require.NoError(t, err)
	assert.Equal(t, "Widget", got.Name)
	assert.Equal(t, "2024-05-01 10:30:00 - CREATED - P1", got.Timeline[0])
}

func TestConcurrentRegistrations(t *testing.T) {
	trk := New()
	const n = 100

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := trk.Register(RegisterInput{Name: "Widget", Manufacturer: "Acme"})
			if err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	products, entries := trk.Counts()
	assert.Equal(t, n, products)
	assert.Equal(t, n, entries)

	seen := make(map[uint64]bool)
	for _, e := range trk.LedgerSnapshot() {
		assert.False(t, seen[e.Seq], "sequence numbers must be unique")
		seen[e.Seq] = true
	}
}
