package extract

import (
	"regexp"
	"strings"

	"github.com/karimbakr/docufield/internal/core/domain"
)

var (
	poNumber   = regexp.MustCompile(`(?i)(?:purchase\s*order|p\.?o\.?)\s*(?:number|no|#)?[:\s#]*([A-Z0-9\-/]{3,20})`)
	poDate     = regexp.MustCompile(`(?i)(?:order\s*date|po\s*date|dated?)[:\s]*(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4})`)
	poDelivery = regexp.MustCompile(`(?i)delivery\s*date[:\s]*(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4})`)
	poExpiry   = regexp.MustCompile(`(?i)(?:expiry|valid\s*until)[:\s]*(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4})`)
	poType     = regexp.MustCompile(`(?i)(blanket\s*order|standard\s*order|service\s*order|framework\s*order)`)

	poDiscount  = regexp.MustCompile(`(?i)discount[:\s]*(?:[A-Z]{3}\s*)?([\d,]+\.?\d*)`)
	poPayMethod = regexp.MustCompile(`(?i)payment\s*method[:\s]*([^\n]{3,40})`)
	poShipVia   = regexp.MustCompile(`(?i)(?:ship\s*via|shipping\s*method)[:\s]*([^\n]{3,40})`)
	poShipCost  = regexp.MustCompile(`(?i)(?:shipping|freight)\s*(?:charges?|cost)?[:\s]*(?:[A-Z]{3}\s*)?([\d,]+\.?\d*)`)
	poContract  = regexp.MustCompile(`(?i)contract\s*(?:no|number)[:\s]*([A-Z0-9\-/]+)`)
	poQuotation = regexp.MustCompile(`(?i)quotation\s*(?:no|number|ref)[:\s]*([A-Z0-9\-/]+)`)
	poDeliverTo = regexp.MustCompile(`(?i)(?:deliver\s*to|delivery\s*address)[:\s]*([^\n]{5,120})`)
	poRemarks   = regexp.MustCompile(`(?i)(?:remarks?|special\s*instructions?)[:\s]*([^\n]{5,200})`)
)

var (
	poSupplierMarkers = []string{"VENDOR", "SUPPLIER", "SELLER", "TO:"}
	poBuyerMarkers    = []string{"BUYER", "BILL TO", "ORDERED BY", "PURCHASER"}
)

// extractPurchaseOrder mirrors the invoice reading but with the parties
// reversed: the buyer issues the document, the supplier receives it.
func extractPurchaseOrder(text string) []domain.ExtractedField {
	set := newFieldSet()

	addFirst := func(name string, re *regexp.Regexp, conf float64) {
		if m := re.FindStringSubmatch(text); m != nil {
			set.add(name, strings.TrimSpace(m[1]), conf, domain.SourcePattern)
		}
	}

	addFirst("po_number", poNumber, 90)
	addFirst("po_date", poDate, 88)
	addFirst("delivery_date", poDelivery, 88)
	addFirst("expiry_date", poExpiry, 85)
	if m := poType.FindStringSubmatch(text); m != nil {
		set.add("po_type", titleCase(m[1]), 92, domain.SourcePattern)
	}

	addPair(set, text, invTaxID, "buyer_tax_id", "supplier_tax_id", 85)
	addPair(set, text, invEmail, "buyer_email", "supplier_email", 90)
	addPair(set, text, invPhone, "buyer_phone", "supplier_phone", 85)

	addFirst("currency", invCcy, 95)
	addFirst("subtotal", invSubtotal, 88)
	addFirst("tax_amount", invTaxAmount, 88)
	addFirst("discount", poDiscount, 88)
	if v := firstMatch(text, invGrandTotal...); v != "" {
		set.add("grand_total", v, 90, domain.SourcePattern)
	}
	addFirst("payment_terms", invPayTerms, 80)
	addFirst("payment_method", poPayMethod, 80)
	addFirst("shipping_method", poShipVia, 80)
	addFirst("shipping_charges", poShipCost, 80)
	addFirst("contract_number", poContract, 88)
	addFirst("quotation_number", poQuotation, 88)
	addFirst("delivery_address", poDeliverTo, 78)
	addFirst("remarks", poRemarks, 75)

	extractParties(text, set, poSupplierMarkers, poBuyerMarkers,
		"buyer_name", "buyer_address", "supplier_name", "supplier_address")
	extractLineItemCount(text, set)

	return set.list()
}
