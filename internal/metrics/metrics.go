package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// IngestTotal counts ingestion requests by terminal outcome
	// ("extracted" or "failed").
	IngestTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "docbrief_ingest_total",
		Help: "Document ingestion requests by outcome.",
	}, []string{"outcome"})

	// ExtractionTotal counts successful extractions by strategy.
	ExtractionTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "docbrief_extraction_total",
		Help: "Successful text extractions by strategy.",
	}, []string{"strategy"})

	// FailureTotal counts classified failures by kind.
	FailureTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "docbrief_extraction_failures_total",
		Help: "Classified ingestion failures by kind.",
	}, []string{"kind"})
)
