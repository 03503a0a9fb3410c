package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters
var (
	TonesGeneratedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "easydtmf_tones_generated_total",
		Help: "Total DTMF tones synthesized across all requests",
	})
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "easydtmf_requests_total",
		Help: "Total synthesis requests by outcome",
	}, []string{"outcome"})
	InvalidInputTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "easydtmf_invalid_input_total",
		Help: "Requests rejected before synthesis by reason",
	}, []string{"reason"})
	FilesStoredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "easydtmf_files_stored_total",
		Help: "Total tone files persisted to the output directory",
	})
)

// Histograms
var (
	SynthesisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "easydtmf_synthesis_duration_ms",
		Help:    "Wall time spent rendering and encoding one request, in milliseconds",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
	})
)
