package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerCounters(t *testing.T) {
	m := NewManager()

	m.RestaurantPizzaCreated()
	m.RestaurantPizzaCreated()
	m.RestaurantDeleted()
	m.RestaurantPizzaRejected("validation")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.restaurantPizzasCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.restaurantsDeleted))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.restaurantPizzasFailed.WithLabelValues("validation")))
}

func TestObserveRequest(t *testing.T) {
	m := NewManager()
	m.ObserveRequest("/restaurants/:id", "GET", "404", 0.01)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("/restaurants/:id", "GET", "404")))
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := NewManager()
	m.RestaurantDeleted()

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pizza_api_restaurants_deleted_total 1")
}

func TestManagersAreIndependent(t *testing.T) {
	first, second := NewManager(), NewManager()
	first.RestaurantDeleted()

	assert.Equal(t, 0.0, testutil.ToFloat64(second.restaurantsDeleted))
}
