// Package observability exposes Prometheus metrics and health probes for the
// auth server over HTTP.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the service's own collectors.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	HashDuration    *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gophauth_rpc_requests_total",
				Help: "Total number of RPCs by method and status code",
			},
			[]string{"method", "code"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gophauth_rpc_duration_seconds",
				Help:    "RPC latency by method",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		HashDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gophauth_password_hash_seconds",
				Help:    "Time spent hashing or verifying passwords",
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2},
			},
			[]string{"op"},
		),
	}

	reg.MustRegister(m.RequestsTotal, m.RequestDuration, m.HashDuration)
	return m
}

// ObserveRPC records one finished call.
func (m *Metrics) ObserveRPC(method, code string, elapsed time.Duration) {
	m.RequestsTotal.WithLabelValues(method, code).Inc()
	m.RequestDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

// RegisterSessionGauge exposes the number of live sessions, read from count at
// scrape time.
func RegisterSessionGauge(reg prometheus.Registerer, count func() int) {
	reg.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "gophauth_sessions_active",
			Help: "Number of sessions currently held in memory",
		},
		func() float64 { return float64(count()) },
	))
}

// PasswordHasher matches services.PasswordHasher.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encoded string) error
}

type timedHasher struct {
	next    PasswordHasher
	metrics *Metrics
}

// InstrumentHasher wraps h so that every call is timed.
func InstrumentHasher(h PasswordHasher, m *Metrics) PasswordHasher {
	return &timedHasher{next: h, metrics: m}
}

func (t *timedHasher) Hash(password string) (string, error) {
	start := time.Now()
	defer func() { t.metrics.HashDuration.WithLabelValues("hash").Observe(time.Since(start).Seconds()) }()
	return t.next.Hash(password)
}

func (t *timedHasher) Verify(password, encoded string) error {
	start := time.Now()
	defer func() { t.metrics.HashDuration.WithLabelValues("verify").Observe(time.Since(start).Seconds()) }()
	return t.next.Verify(password, encoded)
}
