package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "devconnector_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// FeedEventsTotal counts realtime feed events published by type.
	FeedEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devconnector_feed_events_total",
		Help: "Total realtime feed events published by type",
	}, []string{"event_type"})

	// WebSocketBackpressureDrops counts messages dropped because a client's
	// send buffer was full or closed.
	WebSocketBackpressureDrops = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devconnector_websocket_backpressure_drops_total",
		Help: "Messages dropped due to websocket client backpressure",
	}, []string{"hub", "reason"})

	// CacheHits counts cache-aside hits and misses by key prefix.
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devconnector_cache_requests_total",
		Help: "Cache-aside lookups by key prefix and outcome",
	}, []string{"prefix", "outcome"})
)

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}
