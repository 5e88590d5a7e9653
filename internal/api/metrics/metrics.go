// Package metrics defines and registers all custom Prometheus metrics for the
// shipment service. It is the single source of truth for metric names, labels,
// and help strings; promauto registers everything with the default registry at
// package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "shipment"

// ShipmentsCreatedTotal counts newly created shipments.
// Label:
//   - s_type: the shipment type supplied by the caller (e.g. "Standard")
var ShipmentsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shipments_created_total",
		Help:      "Total number of shipments created, by shipment type.",
	},
	[]string{"s_type"},
)

// MarketplaceRequestsTotal counts outbound calls to the sibling marketplace
// services.
// Labels:
//   - service: "user", "order", or "payment"
//   - outcome: "ok" or "error"
var MarketplaceRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "marketplace_requests_total",
		Help:      "Total number of outbound marketplace service calls, by service and outcome.",
	},
	[]string{"service", "outcome"},
)

// CustomersMaterializedTotal counts customer rows created from marketplace
// user data (as opposed to rows that already existed locally).
var CustomersMaterializedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "customers_materialized_total",
		Help:      "Total number of customers materialized from the marketplace user service.",
	},
)
