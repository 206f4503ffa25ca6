package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	slotsGenerated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "salon_booking",
			Name:      "slots_generated_total",
			Help:      "Count of availability slots created.",
		},
	)

	bookings = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "salon_booking",
			Name:      "bookings_total",
			Help:      "Count of booking attempts by outcome.",
		},
		[]string{"outcome"},
	)

	availabilityRequests = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "salon_booking",
			Name:      "availability_requests_total",
			Help:      "Count of availability day queries.",
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(slotsGenerated, bookings, availabilityRequests)
	})
}

func AddSlotsGenerated(n int) {
	slotsGenerated.Add(float64(n))
}

func IncBooking(outcome string) {
	bookings.WithLabelValues(outcome).Inc()
}

func IncAvailabilityRequest() {
	availabilityRequests.Inc()
}
