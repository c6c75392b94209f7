// Package excel renders a processed document's extracted fields as an
// xlsx workbook for download.
package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/karimbakr/docufield/internal/core/domain"
)

const (
	documentSheet = "Document"
	fieldsSheet   = "Fields"
)

type Exporter struct{}

func NewExporter() *Exporter {
	return &Exporter{}
}

func (e *Exporter) Export(doc *domain.Document, fields []domain.ExtractedField) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", documentSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(fieldsSheet); err != nil {
		return nil, fmt.Errorf("create fields sheet: %w", err)
	}

	if err := writeDocumentSheet(f, doc); err != nil {
		return nil, err
	}
	if err := writeFieldsSheet(f, fields); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeDocumentSheet(f *excelize.File, doc *domain.Document) error {
	rows := [][]any{
		{"Document ID", doc.ID},
		{"Filename", doc.Filename},
		{"Document Type", string(doc.Type)},
		{"Status", string(doc.Status)},
		{"Confidence", doc.Confidence},
		{"Pages", doc.PageCount},
		{"Uploaded At", doc.CreatedAt.Format("2006-01-02 15:04:05")},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("document sheet cell: %w", err)
		}
		if err := f.SetSheetRow(documentSheet, cell, &row); err != nil {
			return fmt.Errorf("write document row: %w", err)
		}
	}
	return nil
}

func writeFieldsSheet(f *excelize.File, fields []domain.ExtractedField) error {
	header := []any{"Field", "Value", "Confidence", "Source", "Page"}
	if err := f.SetSheetRow(fieldsSheet, "A1", &header); err != nil {
		return fmt.Errorf("write fields header: %w", err)
	}
	for i, field := range fields {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("fields sheet cell: %w", err)
		}
		row := []any{field.Name, field.Value, field.Confidence, field.Source, field.Page}
		if err := f.SetSheetRow(fieldsSheet, cell, &row); err != nil {
			return fmt.Errorf("write field row: %w", err)
		}
	}
	return nil
}
