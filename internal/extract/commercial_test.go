package extract

import (
	"strings"
	"testing"
)

func TestExtractInvoice(t *testing.T) {
	text := strings.Join([]string{
		"TAX INVOICE",
		"GULF SUPPLIES TRADING",
		"Invoice No: INV-2024-001",
		"Date: 15/03/2024",
		"Phone: +971 4 123 4567",
		"Email: sales@gulfsupplies.ae",
		"VAT: 100123456789",
		"BILL TO",
		"AL NOOR CONTRACTING LLC",
		"Phone: +971 2 765 4321",
		"Email: accounts@alnoor.ae",
		"VAT: 100987654321",
		"Description Qty Price Amount",
		"Steel pipes 10 50.00 500.00",
		"Cement bags 20 25.00 500.00",
		"Subtotal: 1000.00",
		"Tax Amount: 50.00",
		"VAT Rate: 5%",
		"Grand Total: AED 1050.00",
		"Payment Terms: Net 30",
		"Notes: Deliver to site before noon",
	}, "\n")

	fields := fieldMap(extractInvoice(text))

	requireField(t, fields, "invoice_number", "INV-2024-001")
	requireField(t, fields, "invoice_date", "15/03/2024")
	requireField(t, fields, "invoice_type", "Tax Invoice")
	requireField(t, fields, "supplier_name", "GULF SUPPLIES TRADING")
	requireField(t, fields, "customer_name", "AL NOOR CONTRACTING LLC")
	requireField(t, fields, "supplier_email", "sales@gulfsupplies.ae")
	requireField(t, fields, "customer_email", "accounts@alnoor.ae")
	requireField(t, fields, "supplier_tax_id", "100123456789")
	requireField(t, fields, "customer_tax_id", "100987654321")
	requireField(t, fields, "currency", "AED")
	requireField(t, fields, "subtotal", "1000.00")
	requireField(t, fields, "tax_amount", "50.00")
	requireField(t, fields, "tax_rate", "5%")
	requireField(t, fields, "grand_total", "1050.00")
	requireField(t, fields, "payment_terms", "Net 30")
	requireField(t, fields, "notes", "Deliver to site before noon")
	requireField(t, fields, "line_items", "2 items")
}

func TestExtractInvoiceBankDetails(t *testing.T) {
	text := strings.Join([]string{
		"INVOICE",
		"IBAN: AE070331234567890123456",
		"SWIFT: EBILAEAD",
		"Account Number: 1234567890",
	}, "\n")

	fields := fieldMap(extractInvoice(text))

	bank := requireField(t, fields, "bank_details",
		`{"account_number":"1234567890","iban":"AE070331234567890123456","swift":"EBILAEAD"}`)
	if bank.Confidence != 85 {
		t.Fatalf("bank_details confidence: got %v", bank.Confidence)
	}
}

func TestExtractPurchaseOrder(t *testing.T) {
	text := strings.Join([]string{
		"PURCHASE ORDER",
		"PO Number: PO-2024-789",
		"Order Date: 10/02/2024",
		"Delivery Date: 25/02/2024",
		"ACME BUILDING MATERIALS",
		"VENDOR",
		"GULF STEEL INDUSTRIES",
		"Currency: USD",
		"Subtotal: 5000.00",
		"Discount: 250.00",
		"Grand Total: 4750.00",
		"Payment Terms: Net 45",
	}, "\n")

	fields := fieldMap(extractPurchaseOrder(text))

	requireField(t, fields, "po_number", "PO-2024-789")
	requireField(t, fields, "po_date", "10/02/2024")
	requireField(t, fields, "delivery_date", "25/02/2024")
	requireField(t, fields, "buyer_name", "ACME BUILDING MATERIALS")
	requireField(t, fields, "supplier_name", "GULF STEEL INDUSTRIES")
	requireField(t, fields, "currency", "USD")
	requireField(t, fields, "subtotal", "5000.00")
	requireField(t, fields, "discount", "250.00")
	requireField(t, fields, "grand_total", "4750.00")
	requireField(t, fields, "payment_terms", "Net 45")
}

func TestExtractCompanyLicense(t *testing.T) {
	text := strings.Join([]string{
		"COMMERCIAL LICENSE",
		"License No: CN-1234567",
		"Company Name: DESERT ROSE TRADING L.L.C",
		"Trade Name: DESERT ROSE",
		"Legal Type: Limited Liability Company",
		"Issue Date: 01/01/2024",
		"Expiry Date: 31/12/2024",
		"Activities: General Trading",
		"P.O. Box: 12345",
		"1  AHMED SAEED ALI     United Arab Emirates   Partner  51 %",
		"2  JOHN PETER          India                  Partner  49 %",
	}, "\n")

	fields := fieldMap(extractCompanyLicense(text))

	requireField(t, fields, "license_type", "Commercial License")
	requireField(t, fields, "license_no", "CN-1234567")
	requireField(t, fields, "company_name", "DESERT ROSE TRADING L.L.C")
	requireField(t, fields, "business_name", "DESERT ROSE")
	requireField(t, fields, "legal_type", "Limited Liability Company")
	requireField(t, fields, "issue_date", "01/01/2024")
	requireField(t, fields, "expiry_date", "31/12/2024")
	requireField(t, fields, "license_activities", "General Trading")
	requireField(t, fields, "po_box", "12345")
	requireField(t, fields, "license_members",
		"AHMED SAEED ALI (United Arab Emirates, Partner, 51 %); JOHN PETER (India, Partner, 49 %)")
	requireField(t, fields, "partners", "AHMED SAEED ALI; JOHN PETER")
}

func TestExtractVATCertificate(t *testing.T) {
	text := strings.Join([]string{
		"FEDERAL TAX AUTHORITY",
		"Tax Registration Certificate",
		"TRN: 100123456789012",
		"Certificate No: 1010101",
		"Legal Name: GULF STAR TRADING LLC شركة نجمة الخليج",
		"Registered Address: Office 501, Business Bay, Dubai",
		"Effective Registration Date: 1 January 2024",
		"Date of Issue: 05/01/2024",
		"First VAT Return Period: Jan - Mar 2024",
		"VAT Return Due Date: 28 April 2024",
		"Tax Period: Quarterly",
	}, "\n")

	fields := fieldMap(extractVATCertificate(text))

	requireField(t, fields, "registration_number", "100123456789012")
	requireField(t, fields, "certificate_number", "1010101")
	requireField(t, fields, "legal_name_english", "GULF STAR TRADING LLC")
	requireField(t, fields, "legal_name_arabic", "شركة نجمة الخليج")
	requireField(t, fields, "registered_address", "Office 501, Business Bay, Dubai")
	requireField(t, fields, "effective_registration_date", "1 January 2024")
	requireField(t, fields, "date_of_issue", "05/01/2024")
	requireField(t, fields, "first_vat_return_period", "Jan - Mar 2024")
	requireField(t, fields, "vat_return_due_date", "28 April 2024")
	requireField(t, fields, "tax_period_start_end", "Quarterly")
}
