// Package metrics exports zone counting state as Prometheus metrics.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/harolpc/go-linezone"
)

// ZoneMetrics holds the Prometheus collectors for a set of counting zones.
// Zone totals are monotonic so they are reconciled into counters by delta,
// call ObserveLine/ObservePolygon after each Trigger call
type ZoneMetrics struct {
	crossings   *prometheus.CounterVec
	tracked     *prometheus.GaugeVec
	occupancy   *prometheus.GaugeVec
	triggerTime prometheus.Histogram

	mu sync.Mutex
	// totals seen at the last observation, per zone name
	lastIn  map[string]int
	lastOut map[string]int
}

// NewZoneMetrics creates the zone collectors and registers them with the
// given registerer
func NewZoneMetrics(reg prometheus.Registerer) *ZoneMetrics {

	m := &ZoneMetrics{
		crossings: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "linezone_crossings_total",
				Help: "Total line crossings counted, per zone and direction.",
			},
			[]string{"zone", "direction"},
		),
		tracked: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "linezone_tracked_records",
				Help: "Number of live tracker identity records per zone.",
			},
			[]string{"zone"},
		),
		occupancy: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "linezone_region_occupancy",
				Help: "Tracked objects currently inside a polygon region.",
			},
			[]string{"zone"},
		),
		triggerTime: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "linezone_trigger_duration_seconds",
				Help:    "Histogram of per frame zone trigger durations.",
				Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
			},
		),
		lastIn:  make(map[string]int),
		lastOut: make(map[string]int),
	}

	reg.MustRegister(m.crossings, m.tracked, m.occupancy, m.triggerTime)

	return m
}

// ObserveLine reconciles a line zones totals into the crossing counters
func (m *ZoneMetrics) ObserveLine(z *linezone.LineZone) {
	m.mu.Lock()
	defer m.mu.Unlock()

	name := z.Name()

	if d := z.InCount() - m.lastIn[name]; d > 0 {
		m.crossings.WithLabelValues(name,
			linezone.DirectionIn.String()).Add(float64(d))
		m.lastIn[name] = z.InCount()
	}

	if d := z.OutCount() - m.lastOut[name]; d > 0 {
		m.crossings.WithLabelValues(name,
			linezone.DirectionOut.String()).Add(float64(d))
		m.lastOut[name] = z.OutCount()
	}

	m.tracked.WithLabelValues(name).Set(float64(z.TrackedCount()))
}

// ObservePolygon updates the occupancy gauge for a polygon zone
func (m *ZoneMetrics) ObservePolygon(z *linezone.PolygonZone) {
	m.occupancy.WithLabelValues(z.Name()).Set(float64(z.CurrentCount()))
}

// ObserveTriggerDuration records how long one frames zone processing took
func (m *ZoneMetrics) ObserveTriggerDuration(d time.Duration) {
	m.triggerTime.Observe(d.Seconds())
}

// Reset clears the reconciled totals, use after resetting the zones
// themselves, eg: when looping a video
func (m *ZoneMetrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastIn = make(map[string]int)
	m.lastOut = make(map[string]int)
}
