package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/karimbakr/docufield/internal/core/domain"
)

func TestExportWritesFieldsSheet(t *testing.T) {
	doc := &domain.Document{
		ID:         "doc-1",
		Filename:   "passport.pdf",
		Type:       domain.TypePassport,
		Status:     domain.StatusCompleted,
		Confidence: 88.5,
		PageCount:  2,
		CreatedAt:  time.Date(2026, 3, 4, 10, 30, 0, 0, time.UTC),
	}
	fields := []domain.ExtractedField{
		{Name: "passport_number", Value: "W1403565", Confidence: 99, Source: "MRZ_LINE2", Page: 1},
		{Name: "issue_place", Value: "Mumbai", Confidence: 75, Source: "PAGE_TEXT", Page: 2},
	}

	raw, err := NewExporter().Export(doc, fields)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	workbook, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer workbook.Close()

	rows, err := workbook.GetRows("Fields")
	if err != nil {
		t.Fatalf("read fields sheet: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "Field" || rows[0][4] != "Page" {
		t.Fatalf("unexpected header %v", rows[0])
	}
	if rows[1][0] != "passport_number" || rows[1][1] != "W1403565" {
		t.Fatalf("unexpected first row %v", rows[1])
	}
	if rows[2][3] != "PAGE_TEXT" {
		t.Fatalf("unexpected second row %v", rows[2])
	}

	docRows, err := workbook.GetRows("Document")
	if err != nil {
		t.Fatalf("read document sheet: %v", err)
	}
	if docRows[0][1] != "doc-1" {
		t.Fatalf("unexpected document id row %v", docRows[0])
	}
	if docRows[2][1] != "PASSPORT" {
		t.Fatalf("unexpected type row %v", docRows[2])
	}
}

func TestExportEmptyFieldListStillHasHeader(t *testing.T) {
	raw, err := NewExporter().Export(&domain.Document{ID: "doc-2"}, nil)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	workbook, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer workbook.Close()

	rows, err := workbook.GetRows("Fields")
	if err != nil {
		t.Fatalf("read fields sheet: %v", err)
	}
	if len(rows) != 1 || rows[0][0] != "Field" {
		t.Fatalf("expected lone header row, got %v", rows)
	}
}
