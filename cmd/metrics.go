package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the HTTP surface and the
// booking flow.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	BookingsTotal   prometheus.Counter
	UpstreamErrors  prometheus.Counter
	WebsocketsTotal prometheus.Gauge
}

func NewMetrics() *Metrics {
	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "garagefront_requests_total",
			Help: "Total number of HTTP requests by method",
		}, []string{"method"}),

		BookingsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "garagefront_bookings_confirmed_total",
			Help: "Total number of confirmed bookings",
		}),

		UpstreamErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "garagefront_upstream_errors_total",
			Help: "Total number of failed upstream requests",
		}),

		WebsocketsTotal: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "garagefront_websocket_clients",
			Help: "Currently connected websocket clients",
		}),
	}
}
