package extract

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/karimbakr/docufield/internal/core/domain"
)

var (
	invNumber  = regexp.MustCompile(`(?i)(?:invoice\s*(?:number|no|#)|inv\s*(?:no|#))[:\s]*([A-Z0-9\-/]+)`)
	invDate    = regexp.MustCompile(`(?i)(?:invoice\s*date|dated?)[:\s]*(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4})`)
	invDueDate = regexp.MustCompile(`(?i)due\s*date[:\s]*(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4})`)
	invType    = regexp.MustCompile(`(?i)(tax\s*invoice|proforma\s*invoice|credit\s*note|debit\s*note|commercial\s*invoice)`)
	invTaxID   = regexp.MustCompile(`(?i)(?:GST|VAT|TIN|TAX\s*ID)[:\s]*([A-Z0-9]{8,15})`)
	invEmail   = regexp.MustCompile(`([A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,})`)
	invPhone   = regexp.MustCompile(`(?i)(?:phone|tel|mobile|contact)[:\s]*([+\d\s\-()]{10,20})`)
	invCcy     = regexp.MustCompile(`\b(USD|EUR|GBP|INR|AUD|CAD|SGD|JPY|CNY|AED)\b`)

	invSubtotal  = regexp.MustCompile(`(?i)sub\s*total[:\s]*(?:[A-Z]{3}\s*)?([\d,]+\.?\d*)`)
	invTaxAmount = regexp.MustCompile(`(?i)(?:tax|vat|gst)\s*(?:amount)?[:\s]*(?:[A-Z]{3}\s*)?([\d,]+\.\d{1,2})`)
	invTaxRate   = regexp.MustCompile(`(?i)(?:tax|vat|gst).*?(\d+(?:\.\d+)?)\s*%`)

	// Priority order: the specific total labels beat the bare word, which
	// would otherwise hit "Sub Total" first.
	invGrandTotal = []*regexp.Regexp{
		regexp.MustCompile(`(?i)grand\s*total[:\s]*(?:[A-Z]{3}\s*)?([\d,]+\.?\d*)`),
		regexp.MustCompile(`(?i)total\s*amount[:\s]*(?:[A-Z]{3}\s*)?([\d,]+\.?\d*)`),
		regexp.MustCompile(`(?i)net\s*total[:\s]*(?:[A-Z]{3}\s*)?([\d,]+\.?\d*)`),
		regexp.MustCompile(`(?i)\btotal[:\s]*(?:[A-Z]{3}\s*)?([\d,]+\.?\d*)`),
	}

	invPayTerms = regexp.MustCompile(`(?i)(?:payment\s*terms?)[:\s]*([^\n]{3,60})`)
	invPONumber = regexp.MustCompile(`(?i)(?:PO|purchase\s*order)[:\s#]*([A-Z0-9\-/]+)`)
	invNotes    = regexp.MustCompile(`(?i)(?:notes?|remarks?|comments?)[:\s]*([^\n]{10,200})`)

	invIBAN    = regexp.MustCompile(`(?i)IBAN[:\s]*([A-Z0-9]{15,34})`)
	invSWIFT   = regexp.MustCompile(`(?i)SWIFT[:\s]*([A-Z0-9]{8,11})`)
	invAccount = regexp.MustCompile(`(?i)(?:account|acc)(?:\s*no|\s*number)[:\s]*(\d{8,18})`)

	invAddressLine = regexp.MustCompile(`(?i)\d+|,|street|road|avenue|city|state|zip|pincode`)
)

var (
	customerSectionMarkers = []string{"BILL TO", "CUSTOMER", "CLIENT", "BUYER", "BILLED TO"}
	supplierSectionMarkers = []string{"SELLER", "VENDOR", "FROM", "SUPPLIER", "INVOICE FROM"}
)

// extractInvoice pulls the commercial headline fields, then splits the page
// into supplier and customer sections to attribute names, addresses and
// contact details to the right party.
func extractInvoice(text string) []domain.ExtractedField {
	set := newFieldSet()

	addFirst := func(name string, re *regexp.Regexp, conf float64) {
		if m := re.FindStringSubmatch(text); m != nil {
			set.add(name, strings.TrimSpace(m[1]), conf, domain.SourcePattern)
		}
	}

	addFirst("invoice_number", invNumber, 90)
	addFirst("invoice_date", invDate, 88)
	addFirst("due_date", invDueDate, 88)
	if m := invType.FindStringSubmatch(text); m != nil {
		set.add("invoice_type", titleCase(m[1]), 92, domain.SourcePattern)
	}

	addPair(set, text, invTaxID, "supplier_tax_id", "customer_tax_id", 85)
	addPair(set, text, invEmail, "supplier_email", "customer_email", 90)
	addPair(set, text, invPhone, "supplier_phone", "customer_phone", 85)

	addFirst("currency", invCcy, 95)
	addFirst("subtotal", invSubtotal, 88)
	addFirst("tax_amount", invTaxAmount, 88)
	if m := invTaxRate.FindStringSubmatch(text); m != nil {
		set.add("tax_rate", m[1]+"%", 90, domain.SourcePattern)
	}
	if v := firstMatch(text, invGrandTotal...); v != "" {
		set.add("grand_total", v, 90, domain.SourcePattern)
	}
	addFirst("payment_terms", invPayTerms, 80)
	addFirst("po_number", invPONumber, 88)
	addFirst("notes", invNotes, 75)

	extractParties(text, set, customerSectionMarkers, supplierSectionMarkers,
		"supplier_name", "supplier_address", "customer_name", "customer_address")
	extractBankDetails(text, set)
	extractLineItemCount(text, set)

	return set.list()
}

// addPair attributes the first occurrence to the supplier side and the
// second to the customer side, the order the two blocks print in.
func addPair(set *fieldSet, text string, re *regexp.Regexp, first, second string, conf float64) {
	matches := re.FindAllStringSubmatch(text, 2)
	if len(matches) > 0 {
		set.add(first, strings.TrimSpace(matches[0][1]), conf, domain.SourcePattern)
	}
	if len(matches) > 1 {
		set.add(second, strings.TrimSpace(matches[1][1]), conf, domain.SourcePattern)
	}
}

// extractParties splits the page at the section markers and reads a company
// name and address out of each side.
func extractParties(
	text string,
	set *fieldSet,
	customerMarkers, supplierMarkers []string,
	supplierName, supplierAddr, customerName, customerAddr string,
) {
	var supplierLines, customerLines []string
	inCustomer := false
	for _, line := range splitLines(text) {
		switch {
		case containsAny(line, customerMarkers...):
			inCustomer = true
			continue
		case containsAny(line, supplierMarkers...):
			inCustomer = false
			continue
		}
		if inCustomer {
			customerLines = append(customerLines, line)
		} else {
			supplierLines = append(supplierLines, line)
		}
	}

	if name := sectionCompanyName(supplierLines); name != "" {
		set.add(supplierName, name, 80, domain.SourceLabelWindow)
	}
	if addr := sectionAddress(supplierLines); addr != "" {
		set.add(supplierAddr, addr, 75, domain.SourceLabelWindow)
	}
	if name := sectionCompanyName(customerLines); name != "" {
		set.add(customerName, name, 80, domain.SourceLabelWindow)
	}
	if addr := sectionAddress(customerLines); addr != "" {
		set.add(customerAddr, addr, 75, domain.SourceLabelWindow)
	}
}

// sectionCompanyName prefers the first prominent line: all caps or title
// case, long enough to be a name and not a labeled detail line.
func sectionCompanyName(lines []string) string {
	limit := len(lines)
	if limit > 10 {
		limit = 10
	}
	for _, line := range lines[:limit] {
		if len(line) <= 3 {
			continue
		}
		if containsAny(line, "PHONE", "EMAIL", "ADDRESS", "TAX", "GST", "VAT",
			"INVOICE", "ORDER", "DATE", "TOTAL") {
			continue
		}
		if isUpper(line) || isTitle(line) {
			return line
		}
	}
	if limit > 0 {
		return lines[0]
	}
	return ""
}

func sectionAddress(lines []string) string {
	var parts []string
	for _, line := range lines {
		if invAddressLine.MatchString(line) {
			parts = append(parts, line)
		}
		if len(parts) == 3 {
			break
		}
	}
	return strings.Join(parts, ", ")
}

func extractBankDetails(text string, set *fieldSet) {
	details := make(map[string]string)
	if m := invIBAN.FindStringSubmatch(text); m != nil {
		details["iban"] = m[1]
	}
	if m := invSWIFT.FindStringSubmatch(text); m != nil {
		details["swift"] = m[1]
	}
	if m := invAccount.FindStringSubmatch(text); m != nil {
		details["account_number"] = m[1]
	}
	if len(details) == 0 {
		return
	}
	encoded, err := json.Marshal(details)
	if err != nil {
		return
	}
	set.add("bank_details", string(encoded), 85, domain.SourcePattern)
}

// extractLineItemCount finds the item table header and counts the rows that
// carry numbers, stopping at the totals block.
func extractLineItemCount(text string, set *fieldSet) {
	lines := splitLines(text)
	start := -1
	for i, line := range lines {
		if containsAny(line, "DESCRIPTION", "ITEM") &&
			containsAny(line, "QUANTITY", "QTY") &&
			containsAny(line, "PRICE", "RATE", "AMOUNT") {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return
	}

	count := 0
	for _, line := range lines[start:] {
		if containsAny(line, "SUBTOTAL", "TOTAL", "TAX", "DISCOUNT", "GRAND") {
			break
		}
		if hasDigit(line) {
			count++
		}
	}
	if count > 0 {
		set.add("line_items", fmt.Sprintf("%d items", count), 70, domain.SourcePattern)
	}
}

func isUpper(s string) bool {
	hasLetter := false
	for _, c := range s {
		if c >= 'a' && c <= 'z' {
			return false
		}
		if c >= 'A' && c <= 'Z' {
			hasLetter = true
		}
	}
	return hasLetter
}

func isTitle(s string) bool {
	words := strings.Fields(s)
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		leading := true
		for _, c := range w {
			isLower := c >= 'a' && c <= 'z'
			isUpperC := c >= 'A' && c <= 'Z'
			if !isLower && !isUpperC {
				continue
			}
			if leading && isLower {
				return false
			}
			if !leading && isUpperC {
				return false
			}
			leading = false
		}
	}
	return true
}
