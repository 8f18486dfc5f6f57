package http

import (
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	renders   *prometheus.CounterVec
	cacheHits *prometheus.CounterVec
	duration  *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		renders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lessonmark_renders_total",
				Help: "Total number of fragments rendered, excluding cache hits",
			},
			[]string{"kind"},
		),
		cacheHits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lessonmark_render_cache_hits_total",
				Help: "Total number of render requests served from the cache",
			},
			[]string{"kind"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "lessonmark_render_duration_seconds",
				Help:    "Duration of fragment rendering",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
			[]string{"kind"},
		),
	}
	reg.MustRegister(m.renders, m.cacheHits, m.duration)
	return m
}
