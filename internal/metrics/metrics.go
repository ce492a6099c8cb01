// Package metrics exposes prometheus counters for ingestion outcomes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// IngestOutcomes counts pipeline results per outcome: accepted,
	// duplicate, one label per rejection kind, and failed.
	IngestOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dmarc_ingest_outcomes_total",
		Help: "DMARC report ingestion outcomes.",
	}, []string{"outcome"})

	// AggregateMergeFailures counts aggregate merges that failed after
	// the report itself was persisted.
	AggregateMergeFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dmarc_aggregate_merge_failures_total",
		Help: "Daily aggregate merges that failed post-persistence.",
	})
)
