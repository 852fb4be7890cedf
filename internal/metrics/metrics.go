package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	cartAdded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "ruboni_client",
			Name:      "cart_items_added_total",
			Help:      "Count of add-to-cart actions.",
		},
	)

	checkouts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ruboni_client",
			Name:      "checkout_total",
			Help:      "Count of checkout attempts by outcome.",
		},
		[]string{"outcome"},
	)

	bookingSubmitted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ruboni_client",
			Name:      "booking_submitted_total",
			Help:      "Count of booking submissions by outcome.",
		},
		[]string{"outcome"},
	)

	bookingAction = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ruboni_client",
			Name:      "booking_action_total",
			Help:      "Count of my-bookings lifecycle actions.",
		},
		[]string{"action", "outcome"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(cartAdded, checkouts, bookingSubmitted, bookingAction)
	})
}

func IncCartAdded() {
	cartAdded.Inc()
}

func IncCheckout(outcome string) {
	checkouts.WithLabelValues(outcome).Inc()
}

func IncBookingSubmitted(outcome string) {
	bookingSubmitted.WithLabelValues(outcome).Inc()
}

func IncBookingAction(action, outcome string) {
	bookingAction.WithLabelValues(action, outcome).Inc()
}
