// Package metrics exposes navigation counters and latencies to Prometheus.
package metrics

import (
	"context"

	"net/http"
	"strconv"
	"time"

	"wayfinder/internal/domain/entity"
	"wayfinder/internal/domain/service"
	"wayfinder/internal/errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "wayfinder"

// Query outcomes recorded by the oracle histogram
const (
	outcomeOK          = "ok"
	outcomeUnreachable = "unreachable"
	outcomeError       = "error"
)

// Metrics owns the collectors and the registry they are registered on
type Metrics struct {
	registry *prometheus.Registry

	effects       *prometheus.CounterVec
	oracleLatency *prometheus.HistogramVec
	ticks         *prometheus.CounterVec
	httpRequests  *prometheus.CounterVec
	httpLatency   *prometheus.HistogramVec
}

// New registers all collectors on a fresh registry
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		effects: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "effects_total",
				Help:      "Session side effects emitted, by kind.",
			},
			[]string{"kind"},
		),
		oracleLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "path_query_duration_seconds",
				Help:      "Path oracle query latency, by outcome.",
				Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25},
			},
			[]string{"outcome"},
		),
		ticks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ticks_total",
				Help:      "Navigation ticks run by the loop, by result.",
			},
			[]string{"result"},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests served, by method, route and status.",
			},
			[]string{"method", "route", "status"},
		),
		httpLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency, by method and route.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}

	m.registry.MustRegister(
		m.effects,
		m.oracleLatency,
		m.ticks,
		m.httpRequests,
		m.httpLatency,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveTick counts one loop iteration
func (m *Metrics) ObserveTick(result string) {
	m.ticks.WithLabelValues(result).Inc()
}

// ObserveRequest records one served HTTP request
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpLatency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// InstrumentOracle records latency and outcome of every Solve call
func (m *Metrics) InstrumentOracle(next service.PathOracle) service.PathOracle {
	return &instrumentedOracle{next: next, latency: m.oracleLatency}
}

type instrumentedOracle struct {
	next    service.PathOracle
	latency *prometheus.HistogramVec
}

func (o *instrumentedOracle) Solve(ctx context.Context, origin, destination entity.Point) (entity.Path, error) {
	start := time.Now()
	path, err := o.next.Solve(ctx, origin, destination)

	outcome := outcomeOK
	switch {
	case errors.Is(err, service.ErrUnreachable):
		outcome = outcomeUnreachable
	case err != nil:
		outcome = outcomeError
	}
	o.latency.WithLabelValues(outcome).Observe(time.Since(start).Seconds())

	return path, err
}

// InstrumentEffects counts every effect before forwarding it
func (m *Metrics) InstrumentEffects(next service.EffectPorts) service.EffectPorts {
	return &countingPorts{next: next, effects: m.effects}
}

type countingPorts struct {
	next    service.EffectPorts
	effects *prometheus.CounterVec
}

func (p *countingPorts) OnArrivalSound(targetName string) {
	p.effects.WithLabelValues("arrival_sound").Inc()
	p.next.OnArrivalSound(targetName)
}

func (p *countingPorts) OnArrivalVibration(targetName string) {
	p.effects.WithLabelValues("arrival_vibration").Inc()
	p.next.OnArrivalVibration(targetName)
}

func (p *countingPorts) OnArrivalDialog(targetName string) {
	p.effects.WithLabelValues("arrival_dialog").Inc()
	p.next.OnArrivalDialog(targetName)
}

func (p *countingPorts) OnDirectionInstruction(instruction entity.Instruction) {
	p.effects.WithLabelValues("direction_" + instruction.String()).Inc()
	p.next.OnDirectionInstruction(instruction)
}

func (p *countingPorts) OnReroute(newTargetName string) {
	p.effects.WithLabelValues("reroute").Inc()
	p.next.OnReroute(newTargetName)
}
