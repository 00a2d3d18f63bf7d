package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds all application metrics
type Metrics struct {
	RequestCounter     metric.Int64Counter
	RequestDuration    metric.Float64Histogram
	KBBuildDuration    metric.Float64Histogram
	SearchCounter      metric.Int64Counter
	SnapshotCacheHits  metric.Int64Counter
	ResponderFallbacks metric.Int64Counter
}

// InitMetrics initializes all application metrics
func InitMetrics() (*Metrics, error) {
	meter := otel.Meter("solar-storefront-backend")

	requestCounter, err := meter.Int64Counter(
		"http.requests.total",
		metric.WithDescription("Total HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	requestDuration, err := meter.Float64Histogram(
		"http.request.duration",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	kbBuildDuration, err := meter.Float64Histogram(
		"knowledge_base.build.duration",
		metric.WithDescription("Knowledge base build duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	searchCounter, err := meter.Int64Counter(
		"retrieval.searches.total",
		metric.WithDescription("Total retrieval searches"),
	)
	if err != nil {
		return nil, err
	}

	snapshotCacheHits, err := meter.Int64Counter(
		"knowledge_base.snapshot.cache_hits",
		metric.WithDescription("Knowledge base snapshot cache hits by tier"),
	)
	if err != nil {
		return nil, err
	}

	responderFallbacks, err := meter.Int64Counter(
		"responder.contact_fallbacks.total",
		metric.WithDescription("Responder queries handed off to the contact channel"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		RequestCounter:     requestCounter,
		RequestDuration:    requestDuration,
		KBBuildDuration:    kbBuildDuration,
		SearchCounter:      searchCounter,
		SnapshotCacheHits:  snapshotCacheHits,
		ResponderFallbacks: responderFallbacks,
	}, nil
}

// RecordRequest records HTTP request metrics
func (m *Metrics) RecordRequest(method, path, status string, duration float64) {
	attrs := []attribute.KeyValue{
		attribute.String("http.method", method),
		attribute.String("http.path", path),
		attribute.String("http.status", status),
	}

	m.RequestCounter.Add(context.Background(), 1, metric.WithAttributes(attrs...))
	m.RequestDuration.Record(context.Background(), duration, metric.WithAttributes(attrs...))
}

// RecordKBBuild records a knowledge base build.
func (m *Metrics) RecordKBBuild(duration float64, chunks int) {
	attrs := []attribute.KeyValue{
		attribute.Int("knowledge_base.chunks", chunks),
	}
	m.KBBuildDuration.Record(context.Background(), duration, metric.WithAttributes(attrs...))
}

// RecordSearch records one retrieval search.
func (m *Metrics) RecordSearch(mode string) {
	attrs := []attribute.KeyValue{
		attribute.String("retrieval.mode", mode),
	}
	m.SearchCounter.Add(context.Background(), 1, metric.WithAttributes(attrs...))
}

// RecordSnapshotCacheHit records a snapshot cache hit by tier (memory, redis).
func (m *Metrics) RecordSnapshotCacheHit(tier string) {
	attrs := []attribute.KeyValue{
		attribute.String("cache.tier", tier),
	}
	m.SnapshotCacheHits.Add(context.Background(), 1, metric.WithAttributes(attrs...))
}

// RecordResponderFallback records a contact-handoff outcome.
func (m *Metrics) RecordResponderFallback() {
	m.ResponderFallbacks.Add(context.Background(), 1)
}
