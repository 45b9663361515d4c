package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"jan-server/services/image-api/internal/domain/image"
)

// Image API metrics
var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "jan",
			Subsystem: "image_api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "jan",
			Subsystem: "image_api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120},
		},
		[]string{"method", "endpoint", "status"},
	)

	GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "jan",
			Subsystem: "image_api",
			Name:      "generations_total",
			Help:      "Image generation requests by model and outcome",
		},
		[]string{"model", "outcome"},
	)

	ImagesGeneratedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "jan",
			Subsystem: "image_api",
			Name:      "images_generated_total",
			Help:      "Total image URLs returned to clients",
		},
		[]string{"model"},
	)

	ProviderErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "jan",
			Subsystem: "image_api",
			Name:      "provider_errors_total",
			Help:      "Total provider call failures",
		},
		[]string{"provider", "error_type"},
	)

	ProviderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "jan",
			Subsystem: "image_api",
			Name:      "provider_duration_seconds",
			Help:      "Image provider call duration in seconds",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 30, 60, 120},
		},
		[]string{"provider", "model"},
	)
)

// Generation outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

// ModelInvalid is the model label for names outside the catalog.
const ModelInvalid = "invalid"

// ModelLabel maps a client supplied model name to its catalog name so label
// cardinality stays bounded by the catalog.
func ModelLabel(name string) string {
	if spec, ok := image.DefaultCatalog().Model(name); ok {
		return spec.Name
	}
	return ModelInvalid
}

// RecordRequest records HTTP request metrics
func RecordRequest(method, endpoint, status string, duration float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint, status).Observe(duration)
}

// RecordGeneration records the outcome of one generation request.
func RecordGeneration(model, outcome string, images int) {
	model = ModelLabel(model)
	GenerationsTotal.WithLabelValues(model, outcome).Inc()
	if images > 0 {
		ImagesGeneratedTotal.WithLabelValues(model).Add(float64(images))
	}
}

// RecordProviderCall records one provider round trip.
func RecordProviderCall(provider, model string, duration float64) {
	ProviderDuration.WithLabelValues(provider, ModelLabel(model)).Observe(duration)
}

// RecordProviderError records a provider failure
func RecordProviderError(provider, errorType string) {
	ProviderErrorsTotal.WithLabelValues(provider, errorType).Inc()
}
