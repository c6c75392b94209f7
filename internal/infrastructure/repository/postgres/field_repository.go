package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/karimbakr/docufield/internal/core/domain"
)

type FieldRepository struct {
	db *sql.DB
}

func NewFieldRepository(db *sql.DB) *FieldRepository {
	return &FieldRepository{db: db}
}

// ReplaceForDocument swaps the full field set for a document in one
// transaction. Reprocessing a document must never leave stale rows
// from an earlier run.
func (r *FieldRepository) ReplaceForDocument(ctx context.Context, documentID string, fields []domain.ExtractedField) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin fields tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM extracted_fields WHERE document_id = $1`, documentID); err != nil {
		return fmt.Errorf("delete stale fields: %w", err)
	}

	for _, f := range fields {
		_, err := tx.ExecContext(ctx, `
INSERT INTO extracted_fields (document_id, name, value, confidence, source, page)
VALUES ($1,$2,$3,$4,$5,$6)
`, documentID, f.Name, f.Value, f.Confidence, f.Source, f.Page)
		if err != nil {
			return fmt.Errorf("insert field %s: %w", f.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit fields tx: %w", err)
	}
	return nil
}

func (r *FieldRepository) ListByDocument(ctx context.Context, documentID string) ([]domain.ExtractedField, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT name, value, confidence, source, page
FROM extracted_fields
WHERE document_id = $1
ORDER BY page, id
`, documentID)
	if err != nil {
		return nil, fmt.Errorf("query fields: %w", err)
	}
	defer rows.Close()

	var fields []domain.ExtractedField
	for rows.Next() {
		var f domain.ExtractedField
		if err := rows.Scan(&f.Name, &f.Value, &f.Confidence, &f.Source, &f.Page); err != nil {
			return nil, fmt.Errorf("scan field: %w", err)
		}
		fields = append(fields, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate fields: %w", err)
	}
	return fields, nil
}
