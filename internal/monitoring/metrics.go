package monitoring

import (
	"errors"
	"strconv"
	"time"

	"github.com/joshua-takyi/eventhub/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventhub_http_requests_total",
			Help: "Total HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "eventhub_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	catalogMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventhub_catalog_mutations_total",
			Help: "Event create/update/delete operations by outcome",
		},
		[]string{"operation", "status"},
	)

	attendanceChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventhub_attendance_changes_total",
			Help: "Attendance adjustments by kind and action",
		},
		[]string{"type", "action"},
	)

	rankEvaluations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventhub_rank_evaluations_total",
			Help: "Organizer rank evaluations by resulting rank",
		},
		[]string{"rank"},
	)

	catalogSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "eventhub_catalog_events",
			Help: "Number of events in the catalog at the last stats read",
		},
	)
)

func ObserveRequest(method, route string, status int, latency time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(latency.Seconds())
}

// RecordMutation counts a catalog mutation, classifying err the same way the API does.
func RecordMutation(operation string, err error) {
	catalogMutations.WithLabelValues(operation, outcome(err)).Inc()
}

func RecordAttendance(kind, action string) {
	attendanceChanges.WithLabelValues(kind, action).Inc()
}

func RecordRank(rank models.Rank) {
	rankEvaluations.WithLabelValues(string(rank)).Inc()
}

func SetCatalogSize(n int) {
	catalogSize.Set(float64(n))
}

func outcome(err error) string {
	var verr *models.ValidationError
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &verr):
		return "invalid"
	case errors.Is(err, models.ErrNotFound):
		return "not_found"
	default:
		return "error"
	}
}
