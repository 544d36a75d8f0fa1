// Package metrics defines and registers all custom Prometheus metrics for the
// shop catalog API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry at package init
// and served on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "shop"

// ── User metrics ──────────────────────────────────────────────────────────────

// UsersRegisteredTotal counts registrations.
// Label:
//   - default_secret: "true" when no secret was supplied and the default was stored
var UsersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of registered users.",
	},
	[]string{"default_secret"},
)

// AuthAttemptsTotal counts authentication attempts.
// Label:
//   - result: "success", "user_not_found" or "invalid_credentials"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of authentication attempts, by result.",
	},
	[]string{"result"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

var ProductsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_created_total",
		Help:      "Total number of products added to the catalog.",
	},
)

var CategoriesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "categories_created_total",
		Help:      "Total number of categories created.",
	},
)

// ProductsAssignedTotal counts products appended to categories.
var ProductsAssignedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_assigned_total",
		Help:      "Total number of product-to-category assignments.",
	},
)

// ── Cart metrics ──────────────────────────────────────────────────────────────

var CartItemsAddedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_items_added_total",
		Help:      "Total number of products added to baskets.",
	},
)

// OrderTotal observes every computed order total.
var OrderTotal = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "order_total",
		Help:      "Distribution of computed order totals.",
		Buckets:   []float64{10, 50, 100, 250, 500, 1000, 5000},
	},
)
