package api

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the API
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	toppingsCreated prometheus.Counter
	pizzasCreated   prometheus.Counter
}

// NewMetrics creates the API collectors and registers them with registerer
func NewMetrics(registerer prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pizzeria",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by route, method and status",
		}, []string{"route", "method", "status"}),

		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pizzeria",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),

		toppingsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pizzeria",
			Name:      "toppings_created_total",
			Help:      "Total number of toppings created",
		}),

		pizzasCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pizzeria",
			Name:      "pizzas_created_total",
			Help:      "Total number of pizzas created",
		}),
	}

	collectors := []prometheus.Collector{
		m.requestsTotal,
		m.requestDuration,
		m.toppingsCreated,
		m.pizzasCreated,
	}
	for _, c := range collectors {
		if err := registerer.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ObserveRequest records one finished request
func (m *Metrics) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	m.requestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// IncToppingsCreated increments the toppings created counter
func (m *Metrics) IncToppingsCreated() {
	m.toppingsCreated.Inc()
}

// IncPizzasCreated increments the pizzas created counter
func (m *Metrics) IncPizzasCreated() {
	m.pizzasCreated.Inc()
}
