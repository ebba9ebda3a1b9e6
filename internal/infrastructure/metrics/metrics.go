package metrics

import (
	"strconv"
	"sync"
	"time"

	"shajghor/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shajghor",
			Name:      "http_requests_total",
			Help:      "Count of HTTP requests by route, method and status.",
		},
		[]string{"route", "method", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "shajghor",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and method.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	bookingEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shajghor",
			Name:      "booking_events_total",
			Help:      "Count of stored booking transitions by event.",
		},
		[]string{"event"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, bookingEvents)
	})
}

// GinMiddleware records count and latency per matched route. Unmatched paths
// are grouped under "unmatched" to keep label cardinality bounded.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		httpRequests.WithLabelValues(route, method, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
	}
}

// BookingObserver counts booking transitions.
type BookingObserver struct{}

var _ usecase.BookingObserver = BookingObserver{}

func (BookingObserver) BookingCreated()   { bookingEvents.WithLabelValues("created").Inc() }
func (BookingObserver) BookingCancelled() { bookingEvents.WithLabelValues("cancelled").Inc() }
func (BookingObserver) BookingAssigned()  { bookingEvents.WithLabelValues("assigned").Inc() }
func (BookingObserver) BookingPaid()      { bookingEvents.WithLabelValues("paid").Inc() }
