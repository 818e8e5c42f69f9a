// Package metrics exposes Prometheus collectors for the HTTP surface, the
// live tracking board and the register.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

type Metrics struct {
	registry *prometheus.Registry

	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	transitions   *prometheus.CounterVec
	checkouts     prometheus.Counter
	checkoutTotal prometheus.Counter
	checkoutFails *prometheus.CounterVec
}

// New builds collectors on a private registry so tests can create as many
// instances as they like.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path"},
		),
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "live_order_transitions_total",
				Help: "Live order status transitions applied by the tracker",
			},
			[]string{"from", "to"},
		),
		checkouts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pos_checkouts_total",
			Help: "Completed point-of-sale checkouts",
		}),
		checkoutTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pos_checkout_amount_total",
			Help: "Sum of completed checkout totals",
		}),
		checkoutFails: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pos_checkout_failures_total",
				Help: "Rejected point-of-sale checkouts",
			},
			[]string{"reason"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.transitions,
		m.checkouts,
		m.checkoutTotal,
		m.checkoutFails,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "undefined"
		}
		m.httpRequests.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) ObserveTransition(from, to string) {
	m.transitions.WithLabelValues(from, to).Inc()
}

func (m *Metrics) ObserveCheckout(total decimal.Decimal, _ int) {
	m.checkouts.Inc()
	m.checkoutTotal.Add(total.InexactFloat64())
}

func (m *Metrics) ObserveCheckoutFailure(reason string) {
	m.checkoutFails.WithLabelValues(reason).Inc()
}
