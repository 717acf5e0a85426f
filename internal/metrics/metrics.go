// Package metrics exposes Prometheus collectors for settlement activity.
package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// SwapMetrics records facade activity.
type SwapMetrics struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	rescues  *prometheus.CounterVec
	paused   prometheus.Gauge
}

// RegistryMetrics records currency registry updates.
type RegistryMetrics struct {
	updates *prometheus.CounterVec
}

var (
	swapOnce sync.Once
	swapReg  *SwapMetrics

	registryOnce sync.Once
	registryReg  *RegistryMetrics
)

// Swaps returns the lazily-initialised swap metrics.
func Swaps() *SwapMetrics {
	swapOnce.Do(func() {
		swapReg = &SwapMetrics{
			requests: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "settlement",
				Subsystem: "swap",
				Name:      "requests_total",
				Help:      "Total swap requests segmented by operation and outcome.",
			}, []string{"operation", "outcome"}),
			latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
				Namespace: "settlement",
				Subsystem: "swap",
				Name:      "duration_seconds",
				Help:      "Latency distribution of swap operations.",
				Buckets:   prometheus.DefBuckets,
			}, []string{"operation"}),
			rescues: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "settlement",
				Subsystem: "swap",
				Name:      "rescues_total",
				Help:      "Total rescue transfers segmented by asset kind and outcome.",
			}, []string{"asset", "outcome"}),
			paused: prometheus.NewGauge(prometheus.GaugeOpts{
				Namespace: "settlement",
				Subsystem: "swap",
				Name:      "paused",
				Help:      "1 while swaps are paused.",
			}),
		}
		prometheus.MustRegister(swapReg.requests, swapReg.latency, swapReg.rescues, swapReg.paused)
	})
	return swapReg
}

// Observe records the outcome and latency of a swap operation.
func (m *SwapMetrics) Observe(operation string, err error, duration time.Duration) {
	if m == nil {
		return
	}
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	m.requests.WithLabelValues(operation, outcome).Inc()
	m.latency.WithLabelValues(operation).Observe(duration.Seconds())
}

// ObserveRescue records a rescue attempt.
func (m *SwapMetrics) ObserveRescue(native bool, err error) {
	if m == nil {
		return
	}
	asset := "token"
	if native {
		asset = "native"
	}
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	m.rescues.WithLabelValues(asset, outcome).Inc()
}

// SetPaused records the pause state.
func (m *SwapMetrics) SetPaused(paused bool) {
	if m == nil {
		return
	}
	if paused {
		m.paused.Set(1)
		return
	}
	m.paused.Set(0)
}

// Registry returns the lazily-initialised registry metrics.
func Registry() *RegistryMetrics {
	registryOnce.Do(func() {
		registryReg = &RegistryMetrics{
			updates: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "settlement",
				Subsystem: "registry",
				Name:      "updates_total",
				Help:      "Total currency registry updates segmented by the registered flag.",
			}, []string{"registered"}),
		}
		prometheus.MustRegister(registryReg.updates)
	})
	return registryReg
}

// ObserveUpdate records a registry update.
func (m *RegistryMetrics) ObserveUpdate(registered bool) {
	if m == nil {
		return
	}
	m.updates.WithLabelValues(strconv.FormatBool(registered)).Inc()
}
