package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ordersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "billing_service",
			Subsystem: "orders",
			Name:      "created_total",
			Help:      "Total number of orders created",
		},
	)

	ordersSettled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "billing_service",
			Subsystem: "orders",
			Name:      "settled_total",
			Help:      "Total number of orders settled",
		},
	)

	ordersDiscarded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "billing_service",
			Subsystem: "orders",
			Name:      "discarded_total",
			Help:      "Total number of orders discarded",
		},
	)

	notesCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "billing_service",
			Subsystem: "sticky_notes",
			Name:      "created_total",
			Help:      "Total number of sticky notes created",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		ordersCreated,
		ordersSettled,
		ordersDiscarded,
		notesCreated,
	)
}
