package monitoring

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"munasabat-backend/internal/services"
)

var (
	collectionSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "collection_records_total",
			Help: "Current number of records per collection",
		},
		[]string{"collection"},
	)

	eventAttendance = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "event_rsvp_count",
			Help: "Derived attendance counts per event",
		},
		[]string{"event_id", "status"},
	)

	reviewOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "review_operations_total",
			Help: "Total review submissions",
		},
		[]string{"target", "status"},
	)

	loginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "login_attempts_total",
			Help: "Total login attempts",
		},
		[]string{"status"},
	)
)

// Monitor re-reads the collections on a fixed interval and exports their
// sizes plus live RSVP counts per event. The 2 second default is what keeps
// the organizer dashboard fresh; there is no push channel.
type Monitor struct {
	vendors  *services.VendorService
	events   *services.EventService
	dresses  *services.DressService
	bundles  *services.BundleService
	interval time.Duration
}

func NewMonitor(vendors *services.VendorService, events *services.EventService,
	dresses *services.DressService, bundles *services.BundleService, interval time.Duration) *Monitor {
	return &Monitor{
		vendors:  vendors,
		events:   events,
		dresses:  dresses,
		bundles:  bundles,
		interval: interval,
	}
}

// Run polls until ctx is cancelled. Start it as a goroutine.
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.collect(ctx)
		}
	}
}

func (m *Monitor) collect(ctx context.Context) {
	events, err := m.events.GetEvents(ctx)
	if err != nil {
		slog.Warn("metrics: reading events failed", "error", err)
		return
	}
	collectionSize.WithLabelValues("events").Set(float64(len(events)))

	for _, event := range events {
		summary := services.SummarizeRSVPs(event.Attendees)
		eventAttendance.WithLabelValues(event.ID, "yes").Set(float64(summary.YesCount))
		eventAttendance.WithLabelValues(event.ID, "no").Set(float64(summary.NoCount))
		eventAttendance.WithLabelValues(event.ID, "maybe").Set(float64(summary.MaybeCount))
	}

	if vendors, err := m.vendors.GetVendors(ctx); err == nil {
		collectionSize.WithLabelValues("vendors").Set(float64(len(vendors)))
	}
	if dresses, err := m.dresses.GetDresses(ctx); err == nil {
		collectionSize.WithLabelValues("dresses").Set(float64(len(dresses)))
	}
	if bundles, err := m.bundles.GetBundles(ctx); err == nil {
		collectionSize.WithLabelValues("packages").Set(float64(len(bundles)))
	}
}

// TrackReview counts a review submission outcome.
func TrackReview(target, status string) {
	reviewOperations.WithLabelValues(target, status).Inc()
}

// TrackLogin counts a login attempt outcome.
func TrackLogin(status string) {
	loginAttempts.WithLabelValues(status).Inc()
}
