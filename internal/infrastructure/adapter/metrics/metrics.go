package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	coreport "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/core"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options configures the registry
type Options struct {
	Namespace string
	Buckets   []float64
}

// Metrics owns a private prometheus registry with HTTP and ledger series.
// It implements core.LedgerMetrics.
type Metrics struct {
	registry   *prometheus.Registry
	httpReqCnt *prometheus.CounterVec
	httpDur    *prometheus.HistogramVec
	httpInfl   *prometheus.GaugeVec
	opCnt      *prometheus.CounterVec
	opDur      *prometheus.HistogramVec
	points     *prometheus.CounterVec
}

var _ coreport.LedgerMetrics = (*Metrics)(nil)

// New creates the registry and registers every series
func New(opts Options) *Metrics {
	ns := opts.Namespace
	buckets := opts.Buckets
	if len(buckets) == 0 {
		buckets = prometheus.DefBuckets
	}

	r := prometheus.NewRegistry()
	r.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	r.MustRegister(collectors.NewGoCollector())

	httpReqCnt := prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: ns, Name: "http_requests_total"}, []string{"method", "route", "status"})
	httpDur := prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: ns, Name: "http_request_duration_seconds", Buckets: buckets}, []string{"method", "route", "status"})
	httpInfl := prometheus.NewGaugeVec(prometheus.GaugeOpts{Namespace: ns, Name: "http_requests_inflight"}, []string{"route"})
	r.MustRegister(httpReqCnt, httpDur, httpInfl)

	opCnt := prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: ns, Name: "operations_total", Help: "Ledger and admin operations by outcome"}, []string{"operation", "outcome"})
	opDur := prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: ns, Name: "operation_duration_seconds", Buckets: buckets}, []string{"operation", "outcome"})
	points := prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: ns, Name: "points_total", Help: "Points credited or redeemed"}, []string{"operation"})
	r.MustRegister(opCnt, opDur, points)

	return &Metrics{
		registry:   r,
		httpReqCnt: httpReqCnt,
		httpDur:    httpDur,
		httpInfl:   httpInfl,
		opCnt:      opCnt,
		opDur:      opDur,
		points:     points,
	}
}

// ObserveOperation records an operation outcome and its latency
func (m *Metrics) ObserveOperation(operation, outcome string, elapsed coreport.Duration) {
	m.opCnt.WithLabelValues(operation, outcome).Inc()
	m.opDur.WithLabelValues(operation, outcome).Observe(elapsed.Std().Seconds())
}

// AddPoints records points moved by a credit or redeem
func (m *Metrics) AddPoints(operation string, points int64) {
	if points <= 0 {
		return
	}
	m.points.WithLabelValues(operation).Add(float64(points))
}

// RegisterDBStats exposes the connection pool statistics of db
func (m *Metrics) RegisterDBStats(db *sql.DB, dbName string) error {
	return m.registry.Register(collectors.NewDBStatsCollector(db, dbName))
}

// Middleware records request counts, latency and in-flight requests per route
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.httpInfl.WithLabelValues(route).Inc()
		start := time.Now()
		c.Next()
		status := strconv.Itoa(c.Writer.Status())
		m.httpReqCnt.WithLabelValues(c.Request.Method, route, status).Inc()
		m.httpDur.WithLabelValues(c.Request.Method, route, status).Observe(time.Since(start).Seconds())
		m.httpInfl.WithLabelValues(route).Dec()
	}
}

// Handler serves the registry in the prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry, mostly for tests
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Noop discards every observation
type Noop struct{}

// ObserveOperation does nothing
func (Noop) ObserveOperation(string, string, coreport.Duration) {}

// AddPoints does nothing
func (Noop) AddPoints(string, int64) {}
