package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/karimbakr/docufield/internal/core/domain"
	"github.com/karimbakr/docufield/internal/core/ports"
)

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".tiff": true,
	".bmp":  true,
}

type IngestDocumentUseCase struct {
	repo    ports.DocumentRepository
	storage ports.ObjectStorage
	queue   ports.MessageQueue
	quality ports.QualityChecker
	catalog ports.TemplateCatalog
}

func NewIngestDocumentUseCase(
	repo ports.DocumentRepository,
	storage ports.ObjectStorage,
	queue ports.MessageQueue,
	quality ports.QualityChecker,
	catalog ports.TemplateCatalog,
) *IngestDocumentUseCase {
	return &IngestDocumentUseCase{
		repo:    repo,
		storage: storage,
		queue:   queue,
		quality: quality,
		catalog: catalog,
	}
}

func (uc *IngestDocumentUseCase) Upload(ctx context.Context, req ports.UploadRequest) (*domain.Document, error) {
	ext := strings.ToLower(filepath.Ext(req.Filename))
	if !allowedExtensions[ext] {
		return nil, domain.WrapError(domain.ErrUnsupportedFormat, "validate upload",
			fmt.Errorf("extension %q is not supported", ext))
	}

	if req.DeclaredType != "" && !uc.catalog.Has(req.DeclaredType) {
		return nil, domain.WrapError(domain.ErrInvalidInput, "validate upload",
			fmt.Errorf("unknown document type %q", req.DeclaredType))
	}

	data, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("read upload body: %w", err)
	}
	if len(data) == 0 {
		return nil, domain.WrapError(domain.ErrInvalidInput, "validate upload",
			errors.New("empty upload body"))
	}

	if !req.SkipQualityCheck && strings.HasPrefix(req.MimeType, "image/") {
		report, err := uc.quality.Check(ctx, req.MimeType, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("quality check: %w", err)
		}
		if !report.Acceptable {
			return nil, domain.WrapError(domain.ErrQualityRejected, "quality check",
				fmt.Errorf("image rejected: %s", strings.Join(report.Warnings, "; ")))
		}
	}

	id := uuid.NewString()
	storageKey := fmt.Sprintf("%s_%s", id, sanitizeFilename(req.Filename))
	now := time.Now().UTC()

	if err := uc.storage.Save(ctx, storageKey, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("save to object storage: %w", err)
	}

	doc := &domain.Document{
		ID:          id,
		Filename:    req.Filename,
		MimeType:    req.MimeType,
		StoragePath: storageKey,
		Type:        req.DeclaredType,
		Status:      domain.StatusUploaded,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.repo.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("create document metadata: %w", err)
	}

	if err := uc.queue.PublishDocumentIngested(ctx, doc.ID); err != nil {
		return nil, fmt.Errorf("publish ingestion event: %w", err)
	}

	return doc, nil
}

func sanitizeFilename(name string) string {
	base := filepath.Base(name)
	base = strings.ReplaceAll(base, " ", "_")
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r
		case r >= 'A' && r <= 'Z':
			return r
		case r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, base)
	if base == "" {
		return "document.bin"
	}
	return base
}
