package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/karimbakr/docufield/internal/core/domain"
)

type DocumentRepository struct {
	db *sql.DB
}

func NewDocumentRepository(db *sql.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func OpenDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("sql open: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("db ping: %w", err)
	}
	return db, nil
}

func (r *DocumentRepository) EnsureSchema(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// Serialize bootstrap DDL across api/worker startups.
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, int64(2026030401)); err != nil {
		return fmt.Errorf("acquire schema lock: %w", err)
	}

	const query = `
CREATE TABLE IF NOT EXISTS documents (
	id TEXT PRIMARY KEY,
	filename TEXT NOT NULL,
	mime_type TEXT NOT NULL,
	storage_path TEXT NOT NULL,
	document_type TEXT,
	confidence DOUBLE PRECISION NOT NULL DEFAULT 0,
	page_count INTEGER NOT NULL DEFAULT 0,
	classification_messages JSONB NOT NULL DEFAULT '[]'::jsonb,
	status TEXT NOT NULL,
	error_message TEXT,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_documents_status ON documents(status);
CREATE INDEX IF NOT EXISTS idx_documents_created_at ON documents(created_at DESC);

CREATE TABLE IF NOT EXISTS extracted_fields (
	id BIGSERIAL PRIMARY KEY,
	document_id TEXT NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
	name TEXT NOT NULL,
	value TEXT NOT NULL,
	confidence DOUBLE PRECISION NOT NULL DEFAULT 0,
	source TEXT NOT NULL DEFAULT '',
	page INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_extracted_fields_document ON extracted_fields(document_id);
`
	if _, err := tx.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("execute schema ddl: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema tx: %w", err)
	}
	return nil
}

func (r *DocumentRepository) Create(ctx context.Context, doc *domain.Document) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO documents (
	id, filename, mime_type, storage_path, document_type, confidence, page_count, status, error_message, created_at, updated_at
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
`,
		doc.ID, doc.Filename, doc.MimeType, doc.StoragePath, string(doc.Type),
		doc.Confidence, doc.PageCount, string(doc.Status), doc.Error, doc.CreatedAt, doc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

func (r *DocumentRepository) GetByID(ctx context.Context, id string) (*domain.Document, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, filename, mime_type, storage_path, document_type, confidence, page_count, status, error_message, created_at, updated_at
FROM documents
WHERE id = $1
`, id)

	var doc domain.Document
	var docType, status string

	err := row.Scan(
		&doc.ID, &doc.Filename, &doc.MimeType, &doc.StoragePath, &docType,
		&doc.Confidence, &doc.PageCount, &status, &doc.Error, &doc.CreatedAt, &doc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.WrapError(domain.ErrDocumentNotFound, "get document", fmt.Errorf("id %s", id))
		}
		return nil, fmt.Errorf("scan document: %w", err)
	}

	doc.Type = domain.DocumentType(docType)
	doc.Status = domain.DocumentStatus(status)
	return &doc, nil
}

func (r *DocumentRepository) UpdateStatus(ctx context.Context, id string, status domain.DocumentStatus, errMessage string) error {
	result, err := r.db.ExecContext(ctx, `
UPDATE documents
SET status = $2, error_message = $3, updated_at = $4
WHERE id = $1
`, id, string(status), errMessage, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("update document status: %w", err)
	}
	return requireRow(result, "update document status", id)
}

func (r *DocumentRepository) SaveClassification(ctx context.Context, id string, cls domain.ClassificationResult) error {
	messagesJSON, err := json.Marshal(cls.Messages)
	if err != nil {
		return fmt.Errorf("marshal classification messages: %w", err)
	}
	result, err := r.db.ExecContext(ctx, `
UPDATE documents
SET document_type = $2, confidence = $3, classification_messages = $4, updated_at = $5
WHERE id = $1
`, id, string(cls.Type), cls.Confidence, messagesJSON, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save classification: %w", err)
	}
	return requireRow(result, "save classification", id)
}

func (r *DocumentRepository) SaveProcessingOutcome(ctx context.Context, id string, outcome domain.ProcessingResult) error {
	result, err := r.db.ExecContext(ctx, `
UPDATE documents
SET document_type = $2, confidence = $3, page_count = $4, status = $5, error_message = '', updated_at = $6
WHERE id = $1
`, id, string(outcome.Type), outcome.OverallConfidence, outcome.PagesProcessed, string(outcome.Status), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save processing outcome: %w", err)
	}
	return requireRow(result, "save processing outcome", id)
}

func requireRow(result sql.Result, operation, id string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s rows affected: %w", operation, err)
	}
	if affected == 0 {
		return domain.WrapError(domain.ErrDocumentNotFound, operation, fmt.Errorf("id %s", id))
	}
	return nil
}
