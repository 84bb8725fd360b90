// Package metrics exposes Prometheus collectors for the API.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "pizza_api"

// Manager owns the collectors and the registry they live on.
type Manager struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	restaurantPizzasCreated prometheus.Counter
	restaurantPizzasFailed  *prometheus.CounterVec
	restaurantsDeleted      prometheus.Counter
}

// NewManager registers every collector on a fresh registry.
func NewManager() *Manager {
	m := &Manager{registry: prometheus.NewRegistry()}
	auto := promauto.With(m.registry)

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by route, method and status code",
		},
		[]string{"route", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	m.restaurantPizzasCreated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "restaurant_pizzas_created_total",
		Help:      "Total number of restaurant pizzas created",
	})

	m.restaurantPizzasFailed = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "restaurant_pizzas_rejected_total",
			Help:      "Restaurant pizza creations rejected, by reason",
		},
		[]string{"reason"},
	)

	m.restaurantsDeleted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "restaurants_deleted_total",
		Help:      "Total number of restaurants deleted",
	})

	return m
}

// Registry exposes the underlying registry, mostly for tests.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one finished HTTP request.
func (m *Manager) ObserveRequest(route, method, statusCode string, seconds float64) {
	m.httpRequests.WithLabelValues(route, method, statusCode).Inc()
	m.httpRequestDuration.WithLabelValues(route, method).Observe(seconds)
}

// RestaurantPizzaCreated counts a committed association.
func (m *Manager) RestaurantPizzaCreated() {
	m.restaurantPizzasCreated.Inc()
}

// RestaurantPizzaRejected counts a refused association, e.g. "validation" or "not_found".
func (m *Manager) RestaurantPizzaRejected(reason string) {
	m.restaurantPizzasFailed.WithLabelValues(reason).Inc()
}

// RestaurantDeleted counts a committed restaurant deletion.
func (m *Manager) RestaurantDeleted() {
	m.restaurantsDeleted.Inc()
}
