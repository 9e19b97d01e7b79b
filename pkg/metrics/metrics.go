package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "contentadmin"

	metricLabelRoute      = "route"
	metricLabelStatus     = "status"
	metricLabelCollection = "collection"
	metricLabelResult     = "result"
)

// Metrics is the structure that holds all prometheus metrics
var (
	// ServiceRequestCounter count the number of requests for each route
	ServiceRequestCounter = newCounterVec(
		"service_request_count",
		"Count of requests for each route",
		metricLabelRoute, metricLabelStatus,
	)
	// ServiceRequestDuration observe the duration of requests for each route
	ServiceRequestDuration = newSummaryVec(
		"service_request_duration_seconds",
		"Seconds to unmarshal requests, execute a command and marshal its reponses",
		metricLabelRoute, metricLabelStatus,
	)
	// LoadsCompletedCounter count the number of finished session loads
	LoadsCompletedCounter = newCounterVec(
		"loads_completed_count",
		"Number of session loads that were applied to the store",
	)
	// LoadsFailedCounter count the number of session loads that could not be applied
	LoadsFailedCounter = newCounterVec(
		"loads_failed_count",
		"Number of session loads that failed as a whole",
	)
	// LoadDuration observe the duration of each repo.Load() call
	LoadDuration = newSummaryVec(
		"load_duration_seconds",
		"Duration in seconds for each repo.Load() call",
	)
	// CollectionFallbackCounter count the collections that were replaced by their default
	CollectionFallbackCounter = newCounterVec(
		"collection_fallback_count",
		"Number of collection loads that fell back to the default value",
		metricLabelCollection,
	)
	// CommandCounter count the number of store commands
	CommandCounter = newCounterVec(
		"command_count",
		"Number of commands executed against the store",
		metricLabelResult,
	)
	// ExportCounter count the number of exported documents
	ExportCounter = newCounterVec(
		"export_count",
		"Number of exported collection documents",
		metricLabelCollection,
	)
	// ResourceNodesGauge number of file nodes in the current resource tree
	ResourceNodesGauge = newGaugeVec(
		"resource_nodes_total",
		"Number of file nodes in the current resource tree",
	)
)

func newSummaryVec(name, help string, labels ...string) *prometheus.SummaryVec {
	vec := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		}, labels)
	prometheus.MustRegister(vec)
	return vec
}

func newCounterVec(name, help string, labels ...string) *prometheus.CounterVec {
	vec := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		}, labels)
	prometheus.MustRegister(vec)
	return vec
}

func newGaugeVec(name, help string, labels ...string) *prometheus.GaugeVec {
	vec := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		}, labels)
	prometheus.MustRegister(vec)
	return vec
}
