package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry wraps the worker's prometheus collectors. It satisfies the
// batch processor's metrics contract.

type Registry struct {
	reg *prometheus.Registry

	Processed        prometheus.Counter
	Failed           prometheus.Counter
	Ignored          prometheus.Counter
	BatchDurationSec prometheus.Histogram
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	processed := prometheus.NewCounter(prometheus.CounterOpts{Name: "etl_records_processed_total"})
	failed := prometheus.NewCounter(prometheus.CounterOpts{Name: "etl_records_failed_total"})
	ignored := prometheus.NewCounter(prometheus.CounterOpts{Name: "etl_records_ignored_total"})
	batchDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "etl_batch_duration_seconds",
		Buckets: prometheus.DefBuckets,
	})

	r.MustRegister(processed, failed, ignored, batchDuration)
	return &Registry{
		reg:              r,
		Processed:        processed,
		Failed:           failed,
		Ignored:          ignored,
		BatchDurationSec: batchDuration,
	}
}

func (r *Registry) RecordProcessed() { r.Processed.Inc() }
func (r *Registry) RecordFailed()    { r.Failed.Inc() }
func (r *Registry) RecordIgnored()   { r.Ignored.Inc() }

func (r *Registry) ObserveBatch(d time.Duration) {
	r.BatchDurationSec.Observe(d.Seconds())
}

// Handler exposes the registry for the worker's /metrics endpoint.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
