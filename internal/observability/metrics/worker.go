package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type WorkerMetrics struct {
	registry *prometheus.Registry

	processTotal         *prometheus.CounterVec
	processDuration      *prometheus.HistogramVec
	processInFlight      prometheus.Gauge
	queueLag             *prometheus.HistogramVec
	classificationsTotal *prometheus.CounterVec
	pagesReadTotal       *prometheus.CounterVec
	fieldsExtracted      *prometheus.HistogramVec
}

func NewWorkerMetrics(service string) *WorkerMetrics {
	registry := prometheus.NewRegistry()

	processTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "docufield",
			Subsystem: "worker",
			Name:      "document_process_total",
			Help:      "Total processed documents by status.",
		},
		[]string{"service", "status"},
	)
	processDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "docufield",
			Subsystem: "worker",
			Name:      "document_process_duration_seconds",
			Help:      "Document processing duration in seconds by status.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "status"},
	)
	processInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "docufield",
			Subsystem: "worker",
			Name:      "document_process_in_flight",
			Help:      "Number of in-flight document processing tasks.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	queueLag := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "docufield",
			Subsystem: "worker",
			Name:      "queue_lag_seconds",
			Help:      "Delay between document upload and processing start.",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120, 300, 600},
		},
		[]string{"service"},
	)
	classificationsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "docufield",
			Subsystem: "worker",
			Name:      "classifications_total",
			Help:      "Total classifier outcomes by resolved document type.",
		},
		[]string{"service", "document_type"},
	)
	pagesReadTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "docufield",
			Subsystem: "worker",
			Name:      "pages_read_total",
			Help:      "Total document pages turned into text.",
		},
		[]string{"service"},
	)
	fieldsExtracted := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "docufield",
			Subsystem: "worker",
			Name:      "fields_extracted",
			Help:      "Distribution of extracted fields per processed document.",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 13, 21, 34},
		},
		[]string{"service"},
	)

	registry.MustRegister(
		processTotal,
		processDuration,
		processInFlight,
		queueLag,
		classificationsTotal,
		pagesReadTotal,
		fieldsExtracted,
	)

	return &WorkerMetrics{
		registry:             registry,
		processTotal:         processTotal,
		processDuration:      processDuration,
		processInFlight:      processInFlight,
		queueLag:             queueLag,
		classificationsTotal: classificationsTotal,
		pagesReadTotal:       pagesReadTotal,
		fieldsExtracted:      fieldsExtracted,
	}
}

func (m *WorkerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *WorkerMetrics) StartDocument() {
	m.processInFlight.Inc()
}

func (m *WorkerMetrics) FinishDocument(service string, duration time.Duration, err error) {
	m.processInFlight.Dec()

	status := "success"
	if err != nil {
		status = "error"
	}

	m.processTotal.WithLabelValues(service, status).Inc()
	m.processDuration.WithLabelValues(service, status).Observe(duration.Seconds())
}

func (m *WorkerMetrics) ObserveQueueLag(service string, lag time.Duration) {
	if lag < 0 {
		return
	}
	m.queueLag.WithLabelValues(service).Observe(lag.Seconds())
}

func (m *WorkerMetrics) RecordClassification(service, documentType string) {
	if documentType == "" {
		documentType = "UNKNOWN"
	}
	m.classificationsTotal.WithLabelValues(service, documentType).Inc()
}

func (m *WorkerMetrics) RecordPagesRead(service string, pages int) {
	if pages <= 0 {
		return
	}
	m.pagesReadTotal.WithLabelValues(service).Add(float64(pages))
}

func (m *WorkerMetrics) ObserveFieldsExtracted(service string, count int) {
	m.fieldsExtracted.WithLabelValues(service).Observe(float64(count))
}
