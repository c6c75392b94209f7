package domain

import "time"

type DocumentStatus string

const (
	StatusUploaded   DocumentStatus = "uploaded"
	StatusProcessing DocumentStatus = "processing"
	StatusCompleted  DocumentStatus = "completed"
	StatusPartial    DocumentStatus = "partial"
	StatusFailed     DocumentStatus = "failed"
)

// DocumentType is one of the configured template keys or TypeUnknown.
type DocumentType string

const (
	TypePassport       DocumentType = "PASSPORT"
	TypeLaborCard      DocumentType = "LABOR_CARD"
	TypeResidenceVisa  DocumentType = "RESIDENCE_VISA"
	TypeEmiratesID     DocumentType = "EMIRATES_ID"
	TypeHomeCountryID  DocumentType = "HOME_COUNTRY_ID"
	TypeVisitVisa      DocumentType = "VISIT_VISA"
	TypeInvoice        DocumentType = "INVOICE"
	TypePurchaseOrder  DocumentType = "PURCHASE_ORDER"
	TypeCompanyLicense DocumentType = "COMPANY_LICENSE"
	TypeVATCertificate DocumentType = "COMPANY_VAT_CERTIFICATE"
	TypeCancellation   DocumentType = "VISA_CANCELLATION"
	TypeEntryPermit    DocumentType = "ENTRY_PERMIT"
	TypeUnknown        DocumentType = "UNKNOWN"
)

type Document struct {
	ID          string         `json:"id"`
	Filename    string         `json:"filename"`
	MimeType    string         `json:"mime_type"`
	StoragePath string         `json:"storage_path"`
	Type        DocumentType   `json:"document_type,omitempty"`
	Confidence  float64        `json:"confidence,omitempty"`
	PageCount   int            `json:"page_count,omitempty"`
	Status      DocumentStatus `json:"status"`
	Error       string         `json:"error,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// Page is one page of OCR output: text lines joined with newlines plus
// the engine's averaged recognition confidence for that page.
type Page struct {
	Number     int     `json:"number"`
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}
