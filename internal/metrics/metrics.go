package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// LedgerOperations counts transfer-engine invocations by operation and
// outcome, so rejected and failed movements are visible without ledger rows.
var LedgerOperations = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "revpay",
	Subsystem: "ledger",
	Name:      "operations_total",
	Help:      "Ledger engine operations by operation and outcome",
}, []string{"operation", "outcome"})
