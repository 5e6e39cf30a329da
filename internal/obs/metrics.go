package obs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus collectors for the tracking engine. All are cumulative; the
// ledger never shrinks, so even its size is a counter.
var (
	ProductsRegistered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "provenance_products_registered_total",
		Help: "Number of products registered.",
	})

	StatusUpdates = promauto.NewCounter(prometheus.CounterOpts{
		Name: "provenance_status_updates_total",
		Help: "Number of successful lifecycle status updates.",
	})

	ProductsFlagged = promauto.NewCounter(prometheus.CounterOpts{
		Name: "provenance_flag_reports_total",
		Help: "Number of counterfeit flag reports, including repeats.",
	})

	TokenMismatches = promauto.NewCounter(prometheus.CounterOpts{
		Name: "provenance_token_mismatches_total",
		Help: "Number of scan or update attempts rejected for a bad token.",
	})

	LedgerEntries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "provenance_ledger_entries_total",
		Help: "Number of entries appended to the ledger.",
	})
)
