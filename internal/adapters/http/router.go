package httpadapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/karimbakr/docufield/internal/config"
	"github.com/karimbakr/docufield/internal/core/domain"
	"github.com/karimbakr/docufield/internal/core/ports"
	"github.com/karimbakr/docufield/internal/observability/metrics"
)

const serviceName = "api"

// Uploads are bounded; anything beyond this is not a scanned document.
const maxUploadBytes = 50 << 20

const backpressureWait = 100 * time.Millisecond

// WorkbookExporter renders a document's extracted fields for download.
type WorkbookExporter interface {
	Export(doc *domain.Document, fields []domain.ExtractedField) ([]byte, error)
}

type Router struct {
	cfg        config.Config
	ingestor   ports.DocumentIngestor
	reader     ports.DocumentReader
	classifier ports.ClassifierService
	exporter   WorkbookExporter
	metrics    *metrics.HTTPServerMetrics
}

func NewRouter(
	cfg config.Config,
	ingestor ports.DocumentIngestor,
	reader ports.DocumentReader,
	classifier ports.ClassifierService,
	exporter WorkbookExporter,
	m *metrics.HTTPServerMetrics,
) *Router {
	return &Router{
		cfg:        cfg,
		ingestor:   ingestor,
		reader:     reader,
		classifier: classifier,
		exporter:   exporter,
		metrics:    m,
	}
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", rt.healthz)
	mux.HandleFunc("/v1/documents", rt.uploadDocument)
	mux.HandleFunc("/v1/documents/", rt.documentSubtree)
	mux.HandleFunc("/v1/classify", rt.classifyText)
	if rt.metrics != nil {
		mux.Handle("/metrics", rt.metrics.Handler())
	}

	var handler http.Handler = mux
	if rt.metrics != nil {
		handler = rt.metrics.Middleware(serviceName, handler)
	}
	if rt.cfg.APIRateLimitRPS > 0 {
		handler = rateLimitMiddleware(handler, rt.cfg.APIRateLimitRPS, rt.cfg.APIRateLimitBurst)
	}
	if rt.cfg.APIMaxInFlight > 0 {
		handler = backpressureMiddleware(handler, rt.cfg.APIMaxInFlight, backpressureWait)
	}
	handler = accessLogMiddleware(handler)
	handler = requestIDMiddleware(handler)
	return handler
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (rt *Router) uploadDocument(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "multipart field 'file' is required"})
		return
	}
	defer file.Close()

	req := ports.UploadRequest{
		Filename:         fileHeader.Filename,
		MimeType:         fileHeader.Header.Get("Content-Type"),
		DeclaredType:     domain.DocumentType(strings.ToUpper(strings.TrimSpace(r.FormValue("document_type")))),
		SkipQualityCheck: parseBoolField(r.FormValue("skip_quality_check")),
		Body:             file,
	}

	doc, err := rt.ingestor.Upload(r.Context(), req)
	if err != nil {
		rt.recordUpload(uploadOutcome(err))
		writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
		return
	}

	rt.recordUpload("accepted")
	writeJSON(w, http.StatusAccepted, doc)
}

// documentSubtree serves GET /v1/documents/{id} and the /fields and
// /export views beneath it.
func (rt *Router) documentSubtree(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/v1/documents/")
	id, view, _ := strings.Cut(rest, "/")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "document id is required"})
		return
	}

	switch view {
	case "":
		rt.getDocument(w, r, id)
	case "fields":
		rt.getDocumentFields(w, r, id)
	case "export":
		rt.exportDocument(w, r, id)
	default:
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown resource"})
	}
}

func (rt *Router) getDocument(w http.ResponseWriter, r *http.Request, id string) {
	doc, err := rt.reader.GetByID(r.Context(), id)
	if err != nil {
		writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (rt *Router) getDocumentFields(w http.ResponseWriter, r *http.Request, id string) {
	fields, err := rt.reader.ListFields(r.Context(), id)
	if err != nil {
		writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
		return
	}
	if fields == nil {
		fields = []domain.ExtractedField{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"document_id": id,
		"fields":      fields,
	})
}

func (rt *Router) exportDocument(w http.ResponseWriter, r *http.Request, id string) {
	doc, err := rt.reader.GetByID(r.Context(), id)
	if err != nil {
		writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
		return
	}
	fields, err := rt.reader.ListFields(r.Context(), id)
	if err != nil {
		writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
		return
	}

	workbook, err := rt.exporter.Export(doc, fields)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	if rt.metrics != nil {
		rt.metrics.RecordExport(serviceName)
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="fields_%s.xlsx"`, id))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(workbook)
}

func (rt *Router) classifyText(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	result, err := rt.classifier.ClassifyText(r.Context(), req.Text)
	if err != nil {
		writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
		return
	}

	if rt.metrics != nil {
		rt.metrics.RecordClassifyRequest(serviceName, string(result.Type))
	}
	writeJSON(w, http.StatusOK, result)
}

func (rt *Router) recordUpload(outcome string) {
	if rt.metrics != nil {
		rt.metrics.RecordUpload(serviceName, outcome)
	}
}

func uploadOutcome(err error) string {
	switch {
	case domain.IsKind(err, domain.ErrUnsupportedFormat):
		return "rejected_format"
	case domain.IsKind(err, domain.ErrQualityRejected):
		return "rejected_quality"
	case domain.IsKind(err, domain.ErrInvalidInput):
		return "rejected_input"
	default:
		return "error"
	}
}

func parseBoolField(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
