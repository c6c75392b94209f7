package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func scrape(t *testing.T, m *WorkerMetrics) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	res := httptest.NewRecorder()
	m.Handler().ServeHTTP(res, req)
	if res.Code != http.StatusOK {
		t.Fatalf("metrics endpoint returned %d", res.Code)
	}
	return res.Body.String()
}

func TestWorkerMetricsRecordPipelineOutcomes(t *testing.T) {
	m := NewWorkerMetrics("worker")

	m.StartDocument()
	m.FinishDocument("worker", 250*time.Millisecond, nil)
	m.StartDocument()
	m.FinishDocument("worker", 100*time.Millisecond, errors.New("ocr down"))

	m.ObserveQueueLag("worker", 2*time.Second)
	m.RecordClassification("worker", "PASSPORT")
	m.RecordClassification("worker", "")
	m.RecordPagesRead("worker", 3)
	m.ObserveFieldsExtracted("worker", 7)

	body := scrape(t, m)

	for _, want := range []string{
		`docufield_worker_document_process_total{service="worker",status="success"} 1`,
		`docufield_worker_document_process_total{service="worker",status="error"} 1`,
		`docufield_worker_classifications_total{document_type="PASSPORT",service="worker"} 1`,
		`docufield_worker_classifications_total{document_type="UNKNOWN",service="worker"} 1`,
		`docufield_worker_pages_read_total{service="worker"} 3`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("metrics output missing %q\n%s", want, body)
		}
	}
}

func TestWorkerMetricsIgnoreInvalidSamples(t *testing.T) {
	m := NewWorkerMetrics("worker")

	m.ObserveQueueLag("worker", -1*time.Second)
	m.RecordPagesRead("worker", 0)

	body := scrape(t, m)
	if strings.Contains(body, `docufield_worker_pages_read_total{service="worker"}`) {
		t.Fatalf("expected no pages_read sample for zero pages\n%s", body)
	}
}
