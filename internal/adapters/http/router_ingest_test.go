package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/karimbakr/docufield/internal/config"
	"github.com/karimbakr/docufield/internal/core/domain"
	"github.com/karimbakr/docufield/internal/core/ports"
)

type ingestFake struct {
	lastReq ports.UploadRequest
	err     error
}

func (f *ingestFake) Upload(_ context.Context, req ports.UploadRequest) (*domain.Document, error) {
	raw, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, err
	}
	req.Body = bytes.NewReader(raw)
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}

	now := time.Now().UTC()
	return &domain.Document{
		ID:          "doc-1",
		Filename:    req.Filename,
		MimeType:    req.MimeType,
		StoragePath: "doc-1_file.pdf",
		Type:        req.DeclaredType,
		Status:      domain.StatusUploaded,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

type readerFake struct {
	doc    *domain.Document
	fields []domain.ExtractedField
	docErr error
	lstErr error
}

func (f *readerFake) GetByID(context.Context, string) (*domain.Document, error) {
	if f.docErr != nil {
		return nil, f.docErr
	}
	return f.doc, nil
}

func (f *readerFake) ListFields(context.Context, string) ([]domain.ExtractedField, error) {
	if f.lstErr != nil {
		return nil, f.lstErr
	}
	return f.fields, nil
}

type classifierSvcFake struct {
	result domain.ClassificationResult
	err    error
}

func (f *classifierSvcFake) ClassifyText(context.Context, string) (domain.ClassificationResult, error) {
	if f.err != nil {
		return domain.ClassificationResult{}, f.err
	}
	return f.result, nil
}

type exporterFake struct {
	payload []byte
	err     error
}

func (f *exporterFake) Export(*domain.Document, []domain.ExtractedField) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.payload, nil
}

func newTestHandler(cfg config.Config, ingestor *ingestFake, reader *readerFake, classifier *classifierSvcFake, exporter *exporterFake) http.Handler {
	if ingestor == nil {
		ingestor = &ingestFake{}
	}
	if reader == nil {
		reader = &readerFake{doc: &domain.Document{ID: "doc-1"}}
	}
	if classifier == nil {
		classifier = &classifierSvcFake{}
	}
	if exporter == nil {
		exporter = &exporterFake{payload: []byte("xlsx")}
	}
	return NewRouter(cfg, ingestor, reader, classifier, exporter, nil).Handler()
}

func multipartUpload(t *testing.T, extraFields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "passport.pdf")
	if err != nil {
		t.Fatalf("CreateFormFile() error = %v", err)
	}
	if _, err := part.Write([]byte("%PDF-1.4")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	for k, v := range extraFields {
		if err := writer.WriteField(k, v); err != nil {
			t.Fatalf("WriteField() error = %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	return &body, writer.FormDataContentType()
}

func TestHealthzEndpoint(t *testing.T) {
	handler := newTestHandler(config.Config{}, nil, nil, nil, nil)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}
}

func TestUploadDocumentSuccess(t *testing.T) {
	ingestor := &ingestFake{}
	handler := newTestHandler(config.Config{}, ingestor, nil, nil, nil)

	body, contentType := multipartUpload(t, map[string]string{
		"document_type":      "passport",
		"skip_quality_check": "true",
	})
	req := httptest.NewRequest(http.MethodPost, "/v1/documents", body)
	req.Header.Set("Content-Type", contentType)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", res.Code, res.Body.String())
	}

	var docResp map[string]any
	if err := json.NewDecoder(res.Body).Decode(&docResp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if docResp["id"] != "doc-1" {
		t.Fatalf("unexpected response: %+v", docResp)
	}
	if ingestor.lastReq.DeclaredType != domain.TypePassport {
		t.Fatalf("expected declared type uppercased, got %q", ingestor.lastReq.DeclaredType)
	}
	if !ingestor.lastReq.SkipQualityCheck {
		t.Fatalf("expected skip_quality_check parsed")
	}
}

func TestUploadDocumentMissingMultipartField(t *testing.T) {
	handler := newTestHandler(config.Config{}, nil, nil, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/documents", bytes.NewBufferString("plain-text"))
	req.Header.Set("Content-Type", "text/plain")
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.Code)
	}
}

func TestUploadDocumentMapsUnsupportedFormatTo415(t *testing.T) {
	ingestor := &ingestFake{err: domain.WrapError(domain.ErrUnsupportedFormat, "validate upload", errors.New("zip"))}
	handler := newTestHandler(config.Config{}, ingestor, nil, nil, nil)

	body, contentType := multipartUpload(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/v1/documents", body)
	req.Header.Set("Content-Type", contentType)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("expected 415, got %d", res.Code)
	}
}

func TestUploadDocumentMapsQualityRejectionTo422(t *testing.T) {
	ingestor := &ingestFake{err: domain.WrapError(domain.ErrQualityRejected, "quality check", errors.New("too dark"))}
	handler := newTestHandler(config.Config{}, ingestor, nil, nil, nil)

	body, contentType := multipartUpload(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/v1/documents", body)
	req.Header.Set("Content-Type", contentType)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", res.Code)
	}
}

func TestGetDocumentByID(t *testing.T) {
	reader := &readerFake{doc: &domain.Document{ID: "doc-1", Status: domain.StatusCompleted}}
	handler := newTestHandler(config.Config{}, nil, reader, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/documents/doc-1", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}
}

func TestGetDocumentMapsNotFoundTo404(t *testing.T) {
	reader := &readerFake{docErr: domain.WrapError(domain.ErrDocumentNotFound, "get document", errors.New("id missing"))}
	handler := newTestHandler(config.Config{}, nil, reader, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/documents/missing", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.Code)
	}
}

func TestGetDocumentFields(t *testing.T) {
	reader := &readerFake{
		doc: &domain.Document{ID: "doc-1"},
		fields: []domain.ExtractedField{
			{Name: "passport_number", Value: "W1403565", Confidence: 99, Source: "MRZ_LINE2", Page: 1},
		},
	}
	handler := newTestHandler(config.Config{}, nil, reader, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/documents/doc-1/fields", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}

	var resp struct {
		DocumentID string                  `json:"document_id"`
		Fields     []domain.ExtractedField `json:"fields"`
	}
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.DocumentID != "doc-1" || len(resp.Fields) != 1 {
		t.Fatalf("unexpected response %+v", resp)
	}
	if resp.Fields[0].Name != "passport_number" {
		t.Fatalf("unexpected field %+v", resp.Fields[0])
	}
}

func TestExportDocumentSetsAttachmentHeaders(t *testing.T) {
	reader := &readerFake{doc: &domain.Document{ID: "doc-1"}}
	exporter := &exporterFake{payload: []byte("workbook-bytes")}
	handler := newTestHandler(config.Config{}, nil, reader, nil, exporter)

	req := httptest.NewRequest(http.MethodGet, "/v1/documents/doc-1/export", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}
	if got := res.Header().Get("Content-Disposition"); got != `attachment; filename="fields_doc-1.xlsx"` {
		t.Fatalf("unexpected disposition %q", got)
	}
	if res.Body.String() != "workbook-bytes" {
		t.Fatalf("unexpected body %q", res.Body.String())
	}
}

func TestClassifyEndpoint(t *testing.T) {
	classifier := &classifierSvcFake{result: domain.ClassificationResult{
		Type:       domain.TypePassport,
		Confidence: 92,
		Messages:   []string{"Identified as PASSPORT based on 4 strong indicators"},
	}}
	handler := newTestHandler(config.Config{}, nil, nil, classifier, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/classify", bytes.NewBufferString(`{"text":"P<IND..."}`))
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}

	var resp domain.ClassificationResult
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Type != domain.TypePassport || resp.Confidence != 92 {
		t.Fatalf("unexpected result %+v", resp)
	}
}

func TestClassifyEndpointRejectsEmptyText(t *testing.T) {
	classifier := &classifierSvcFake{err: domain.WrapError(domain.ErrInvalidInput, "classify text", errors.New("empty text"))}
	handler := newTestHandler(config.Config{}, nil, nil, classifier, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/classify", bytes.NewBufferString(`{"text":""}`))
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.Code)
	}
}
