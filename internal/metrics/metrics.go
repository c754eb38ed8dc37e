// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics records HTTP traffic and ordering activity. A nil *Metrics, or
// one built without a registerer, records nothing.
type Metrics struct {
	requests    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	checkouts   prometheus.Counter
	purchases   *prometheus.CounterVec
	orderTotals prometheus.Histogram
	menuSeeded  prometheus.Counter
}

// New registers the collectors on the provided registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		return &Metrics{}
	}
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
	checkouts := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "checkouts_total",
		Help: "Receipts created at checkout.",
	})
	purchases := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "purchases_total",
		Help: "Receipts purchased, by payment type.",
	}, []string{"payment_type"})
	orderTotals := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "order_total_amount",
		Help:    "Grand total of purchased receipts.",
		Buckets: []float64{10, 25, 50, 75, 100, 150, 250},
	})
	menuSeeded := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "menu_items_seeded_total",
		Help: "Menu items inserted by catalogue seeding.",
	})
	reg.MustRegister(requests, duration, checkouts, purchases, orderTotals, menuSeeded)
	return &Metrics{
		requests:    requests,
		duration:    duration,
		checkouts:   checkouts,
		purchases:   purchases,
		orderTotals: orderTotals,
		menuSeeded:  menuSeeded,
	}
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil || m.requests == nil {
		return
	}
	route = normalizeLabel(route)
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// IncCheckout counts a receipt created at checkout.
func (m *Metrics) IncCheckout() {
	if m == nil || m.checkouts == nil {
		return
	}
	m.checkouts.Inc()
}

// ObservePurchase counts a purchase and records its total.
func (m *Metrics) ObservePurchase(paymentType string, total float64) {
	if m == nil || m.purchases == nil {
		return
	}
	m.purchases.WithLabelValues(normalizeLabel(paymentType)).Inc()
	m.orderTotals.Observe(total)
}

// AddMenuSeeded counts menu items inserted by seeding.
func (m *Metrics) AddMenuSeeded(n int) {
	if m == nil || m.menuSeeded == nil || n <= 0 {
		return
	}
	m.menuSeeded.Add(float64(n))
}

// Handler exposes the gathered metrics in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
