// Package metrics exposes collision engine counters to Prometheus.
// Every Collector owns its registry so benches and tests never share state.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records per-tick engine figures. Label values are bounded:
// target is "player" or "entity".
type Collector struct {
	registry *prometheus.Registry

	tickDuration prometheus.Histogram
	bullets      prometheus.Gauge
	playerCell   prometheus.Gauge
	narrowTests  prometheus.Counter
	hits         *prometheus.CounterVec
	errors       prometheus.Counter
}

// New creates a collector with its own registry.
func New() *Collector {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,
		tickDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "danmaku_tick_duration_seconds",
			Help:    "Time spent rebuilding the grid and resolving hits in one tick",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.002, 0.005, 0.01, 0.0166},
		}),
		bullets: factory.NewGauge(prometheus.GaugeOpts{
			Name: "danmaku_bullets_indexed",
			Help: "Bullets inserted into the grid in the last tick",
		}),
		playerCell: factory.NewGauge(prometheus.GaugeOpts{
			Name: "danmaku_player_cell_bullets",
			Help: "Bullet entries sharing a cell with the player in the last tick",
		}),
		narrowTests: factory.NewCounter(prometheus.CounterOpts{
			Name: "danmaku_narrow_tests_total",
			Help: "Shape pairs tested by the engine",
		}),
		hits: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "danmaku_hits_total",
			Help: "Bullet hits by target",
		}, []string{"target"}),
		errors: factory.NewCounter(prometheus.CounterOpts{
			Name: "danmaku_collide_errors_total",
			Help: "Shape pairs the narrow phase could not decide",
		}),
	}
}

// ObserveTick records the duration and sizes of one tick.
func (c *Collector) ObserveTick(d time.Duration, bullets, playerCell int) {
	c.tickDuration.Observe(d.Seconds())
	c.bullets.Set(float64(bullets))
	c.playerCell.Set(float64(playerCell))
}

// AddNarrowTests counts tested shape pairs.
func (c *Collector) AddNarrowTests(n int) {
	c.narrowTests.Add(float64(n))
}

// AddHits counts hits against "player" or "entity".
func (c *Collector) AddHits(target string, n int) {
	c.hits.WithLabelValues(target).Add(float64(n))
}

// AddErrors counts undecidable pairs.
func (c *Collector) AddErrors(n int) {
	c.errors.Add(float64(n))
}

// Registry returns the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the collector's metrics in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
