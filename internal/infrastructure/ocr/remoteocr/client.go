// Package remoteocr calls a sidecar OCR service over HTTP. The sidecar
// accepts a document upload and returns per-page text with recognition
// confidence.
package remoteocr

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/karimbakr/docufield/internal/core/domain"
	"github.com/karimbakr/docufield/internal/infrastructure/resilience"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	executor   *resilience.Executor
}

func New(baseURL string, timeout time.Duration, executor *resilience.Executor) *Client {
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		executor:   executor,
	}
}

type pageResponse struct {
	Number     int     `json:"number"`
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

type recognizeResponse struct {
	Pages []pageResponse `json:"pages"`
}

// Recognize submits one stored document for OCR and returns its pages
// in order. The body is buffered up front so retries can resend it.
func (c *Client) Recognize(ctx context.Context, filename, mimeType string, data io.Reader) ([]domain.Page, error) {
	raw, err := io.ReadAll(data)
	if err != nil {
		return nil, fmt.Errorf("read document for ocr: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty document body")
	}

	var response recognizeResponse
	call := func(ctx context.Context) error {
		return c.postFile(ctx, "/v1/ocr", filename, mimeType, raw, &response, "recognize")
	}
	if err := c.executor.Execute(ctx, "ocr_recognize", call, classifyOCRError); err != nil {
		return nil, wrapTemporaryIfNeeded("ocr recognize", err)
	}

	pages := make([]domain.Page, 0, len(response.Pages))
	for i, p := range response.Pages {
		number := p.Number
		if number == 0 {
			number = i + 1
		}
		pages = append(pages, domain.Page{
			Number:     number,
			Text:       p.Text,
			Confidence: p.Confidence,
		})
	}
	if len(pages) == 0 {
		return nil, errors.New("ocr service returned no pages")
	}
	return pages, nil
}
