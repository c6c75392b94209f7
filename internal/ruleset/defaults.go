package ruleset

import "github.com/karimbakr/docufield/internal/core/domain"

// defaultRules carries the hand-tuned detection tables. Pattern order is part
// of the observable contract and must not be reordered.
func defaultRules() []Rule {
	return []Rule{
		{
			Key: domain.TypePassport,
			Mandatory: []string{
				`P<[A-Z]{3}`,
			},
			Exclusions: []string{
				`residence\s*visa`,
				`visit\s*visa`,
				`labor\s*card`,
				`emirates\s*id`,
				`entry\s*permit\s*no`,
				`visa\s*type`,
				`sponsor`,
			},
			Strong: []string{
				`passport`,
				`passeport`,
				`passaporte`,
				`reisepass`,
				`[A-Z]{1}\d{7,9}`,
				`nationality`,
				`place\s*of\s*birth`,
				`date\s*of\s*birth`,
				`sex.*[MF]`,
			},
			Weak: []string{
				`surname`,
				`given\s*names?`,
			},
			Weight:        1.0,
			RequiredScore: 35,
		},
		{
			Key: domain.TypeVisitVisa,
			Mandatory: []string{
				`(?:visit|tourist|visitor)\s*visa`,
				`entry\s*permit`,
			},
			Exclusions: []string{
				`residence\s*permit`,
				`P<[A-Z]{3}`,
				`labor\s*card`,
			},
			Strong: []string{
				`u\.?i\.?d\s*(?:no|number)`,
				`visa\s*type`,
				`entry\s*type`,
				`sponsor`,
				`visa\s*number`,
				`visa\s*status`,
			},
			Weak: []string{
				`passport\s*(?:no|number)`,
				`duration`,
				`valid\s*until`,
			},
			Weight:        1.0,
			RequiredScore: 30,
		},
		{
			Key: domain.TypeResidenceVisa,
			Mandatory: []string{
				`residence`,
				`r\s*e\s*s\s*i\s*d\s*e\s*n\s*c\s*e`,
				`resident\s*(?:permit|visa)`,
				`united\s*arab\s*emirates`,
				`state\s*of\s*united\s*arab\s*emirates`,
			},
			Exclusions: []string{
				`passeport`,
				`P<[A-Z]{3}`,
				`visit\s*visa`,
				`tourist`,
			},
			Strong: []string{
				`permit\s*(?:no|number)`,
				`file\s*(?:no|number)`,
				`u\.?i\.?d\s*(?:no|number)`,
				`sponsor`,
				`profession`,
				`place\s*of\s*issue`,
				`valid\s*until`,
			},
			Weak: []string{
				`passport\s*(?:no|number)`,
				`nationality`,
			},
			Weight:        1.0,
			RequiredScore: 25,
		},
		{
			Key: domain.TypeLaborCard,
			Mandatory: []string{
				`labor\s*card`,
				`work\s*permit`,
				`mol`,
			},
			Exclusions: []string{
				`visit\s*visa`,
				`residence\s*visa`,
			},
			Strong: []string{
				`ministry\s*of\s*(?:labor|labour)`,
				`ministry\s*of\s*human\s*resources`,
				`mohre`,
				`employer`,
				`occupation`,
				`card\s*(?:no|number)`,
			},
			Weak: []string{
				`validity`,
				`issue\s*date`,
			},
			Weight:        1.0,
			RequiredScore: 25,
		},
		{
			Key: domain.TypeEmiratesID,
			Mandatory: []string{
				`emirates\s*id`,
				`784-\d{4}-\d{7}-\d{1}`,
			},
			Exclusions: []string{
				`passport`,
				`visa`,
				`labor`,
			},
			Strong: []string{
				`identity\s*card`,
				`idn`,
				`card\s*(?:no|number)`,
				`united\s*arab\s*emirates`,
			},
			Weak: []string{
				`nationality`,
				`expiry`,
			},
			Weight:        1.0,
			RequiredScore: 30,
		},
		{
			Key: domain.TypeHomeCountryID,
			Mandatory: []string{
				`aadhaa?r`,
				`uidai`,
			},
			Exclusions: []string{
				`passport`,
				`visa`,
				`emirates`,
			},
			Strong: []string{
				`\d{4}\s*\d{4}\s*\d{4}`,
				`unique\s*identification`,
				`government\s*of\s*india`,
			},
			Weak: []string{
				`dob`,
				`address`,
			},
			Weight:        1.0,
			RequiredScore: 25,
		},
		{
			Key: domain.TypeInvoice,
			Mandatory: []string{
				`invoice`,
			},
			Exclusions: []string{
				`passport`,
				`visa`,
				`purchase\s*order`,
			},
			Strong: []string{
				`tax\s*invoice`,
				`invoice\s*(?:no|number|#)`,
				`bill\s*to`,
				`(?:sub)?total`,
				`amount`,
				`quantity`,
			},
			Weak: []string{
				`date`,
				`customer`,
			},
			Weight:        0.9,
			RequiredScore: 20,
		},
		{
			Key: domain.TypePurchaseOrder,
			Mandatory: []string{
				`purchase\s*order`,
				`p\.?o\.?\s*(?:no|number)`,
			},
			Exclusions: []string{
				`passport`,
				`visa`,
				`invoice`,
			},
			Strong: []string{
				`vendor`,
				`buyer`,
				`ship\s*to`,
				`order\s*date`,
			},
			Weak: []string{
				`quantity`,
				`price`,
			},
			Weight:        0.9,
			RequiredScore: 20,
		},
		{
			Key: domain.TypeCompanyLicense,
			Mandatory: []string{
				`(?:commercial|business|trade|professional)\s*licen[cs]e`,
				`license\s*type`,
			},
			Exclusions: []string{
				`passport`,
				`visa`,
				`invoice`,
			},
			Strong: []string{
				`licen[cs]e\s*(?:no|number)`,
				`main\s*license\s*(?:no|number)`,
				`dcci\s*no`,
				`chamber\s*of\s*commerce`,
				`legal\s*(?:form|type)`,
			},
			Weak: []string{
				`issue\s*date`,
				`expiry\s*date`,
				`activity`,
			},
			Weight:        1.0,
			RequiredScore: 25,
		},
		{
			Key: domain.TypeCancellation,
			Mandatory: []string{
				`(?:visa|residence)\s*cancellation`,
				`application\s*for\s*cancellation`,
			},
			Strong: []string{
				`cancellation\s*transaction`,
				`cancellation\s*date`,
				`establishment\s*(?:no|number)`,
				`sponsor`,
				`application\s*(?:no|number)`,
			},
			Weak: []string{
				`passport`,
				`nationality`,
				`profession`,
			},
			Weight:        1.0,
			RequiredScore: 25,
		},
		{
			Key: domain.TypeVATCertificate,
			Mandatory: []string{
				`federal\s*tax\s*authority`,
				`tax\s*registration\s*certificate`,
			},
			Strong: []string{
				`vat\s*number`,
				`trn`,
				`registration\s*number`,
				`certificate\s*number`,
				`legal\s*name`,
			},
			Weak: []string{
				`address`,
				`issue\s*date`,
				`tax\s*period`,
			},
			Weight:        1.0,
			RequiredScore: 30,
		},
		{
			Key: domain.TypeEntryPermit,
			Mandatory: []string{
				`entry\s*permit`,
				`permit\s*no`,
			},
			Strong: []string{
				`permit\s*number`,
				`visa\s*number`,
				`uid\s*number`,
				`file\s*number`,
				`application\s*number`,
				`place\s*of\s*issue`,
			},
			Weak: []string{
				`nationality`,
				`passport`,
				`profession`,
			},
			Weight:        1.0,
			RequiredScore: 30,
		},
	}
}

// defaultTemplates lists one canonical template per type. Where the upstream
// tables carried conflicting duplicates, the set matching the extractor
// vocabulary was kept; duplicates in override files are a load error.
func defaultTemplates() []Template {
	return []Template{
		{
			Key:  domain.TypePassport,
			Name: "Passport",
			Fields: []string{
				"surname", "given_name", "full_name", "date_of_birth",
				"place_of_birth", "gender", "nationality", "passport_number",
				"issue_date", "expiry_date", "issue_place", "country_code",
			},
			FieldPatterns: map[string][]string{
				"passport_number": {
					`([A-Z][0-9]{7,8})`,
					`passport.*?([A-Z0-9]{6,12})`,
					`no\.?\s*([A-Z0-9]{6,12})`,
				},
				"surname": {
					`surname[:\s]*([A-Z][A-Z\s]+)`,
					`P<<([A-Z]+)<<`,
					`([A-Z]{5,})`,
				},
				"given_name": {
					`given.*?name[:\s]*([A-Z][A-Za-z\s]{2,30})`,
					`<<([A-Z]+)<`,
					`([A-Z][a-z]+\s+[A-Z])`,
				},
				"full_name": {
					`name[:\s]*([A-Z][A-Z\s]{3,40})`,
				},
				"date_of_birth": {
					`(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{4})`,
					`birth.*?(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{4})`,
				},
				"issue_date": {
					`issue.*?(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{4})`,
					`date.*?issue.*?(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{4})`,
				},
				"expiry_date": {
					`expiry.*?(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{4})`,
					`date.*?expiry.*?(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{4})`,
				},
				"gender": {
					`sex[:\s]*(M|F|MALE|FEMALE)`,
					`(\bM\b|\bF\b)`,
				},
				"nationality": {
					`nationality[:\s]*([A-Z]+)`,
					`national.*?([A-Z]{3,20})`,
				},
				"country_code": {
					`code[:\s]*([A-Z]{3})`,
					`\b(IND|USA|GBR|UAE)\b`,
				},
				"place_of_birth": {
					`([A-Z]{4,},\s*[A-Z]{4,})`,
					`birth[:\s]*([A-Z][A-Za-z\s,]+)`,
				},
				"issue_place": {
					`([A-Z]{5,})`,
					`issue[:\s]*([A-Z][A-Za-z\s]+)`,
				},
			},
		},
		{
			Key:  domain.TypeLaborCard,
			Name: "Labor Card",
			Fields: []string{
				"full_name", "father_name", "date_of_birth", "nationality",
				"gender", "work_permit_number", "issue_date", "expiry_date",
				"file_number", "company_name", "position", "salary",
				"contract_duration", "work_location", "sponsor_name",
				"sponsor_id", "issue_authority", "passport_number",
			},
			FieldPatterns: map[string][]string{
				"full_name":          {`Name\s*:\s*([A-Z][A-Z\s]+)`, `([A-Z]{4,}\s+[A-Z]{4,}\s+[A-Z]{3,})`},
				"work_permit_number": {`Personal\s*NO\s*:\s*([A-Z0-9]{6,15})`, `(\d{9})`},
				"passport_number":    {`Work\s*Permit\s*NO\s*:\s*(\d{10,15})`, `(\d{12,14})`},
				"position":           {`Profession\s*:\s*([A-Za-z\s]{3,50})`},
				"nationality":        {`Nationality\s*:\s*([A-Za-z\s]+)`, `(INDIAN|PAKISTANI|BANGLADESHI|FILIPINO)`},
				"company_name":       {`Establishment\s*:\s*([A-Z][A-Z\s&]+LLC)`, `([A-Z\s]{10,}\s+LLC)`},
				"expiry_date":        {`Expiry\s*Date\s*:\s*(\d{2}/\d{2}/\d{4})`, `(\d{2}/\d{2}/\d{4})`},
				"gender":             {`\b(M|F|MALE|FEMALE)\b`},
			},
		},
		{
			Key:  domain.TypeResidenceVisa,
			Name: "Residence Visa",
			Fields: []string{
				"name_on_visa", "uid_number", "file_number", "profession",
				"sponsor", "place_of_issue", "issue_date", "expiry_date",
			},
		},
		{
			Key:  domain.TypeEmiratesID,
			Name: "Emirates ID",
			Fields: []string{
				"full_name", "id_number", "card_number", "date_of_birth",
				"nationality", "gender", "issue_date", "expiry_date",
				"employer_name", "issue_authority",
			},
			FieldPatterns: map[string][]string{
				"id_number":   {`id\s*no\.?\s*[:\-]?\s*(\d{3}-\d{4}-\d{7}-\d)`, `(\d{3}-\d{4}-\d{7}-\d)`},
				"card_number": {`card\s*no\.?\s*[:\-]?\s*(\d{15})`, `card\s*number\s*[:\-]?\s*(\d{15})`},
			},
		},
		{
			Key:  domain.TypeVisitVisa,
			Name: "Visit Visa",
			Fields: []string{
				"visa_type_duration", "entry_permit_number", "date_place_of_issue",
				"uid_number", "full_name", "nationality", "place_of_birth",
				"date_of_birth", "passport_number", "profession",
			},
		},
		{
			Key:  domain.TypeInvoice,
			Name: "Invoice",
			Fields: []string{
				"invoice_number", "invoice_date", "due_date", "invoice_type",
				"supplier_name", "supplier_address", "supplier_email", "supplier_phone", "supplier_tax_id",
				"customer_name", "customer_address", "customer_email", "customer_phone", "customer_tax_id",
				"line_items", "subtotal", "tax_amount", "tax_rate", "grand_total",
				"payment_terms", "currency", "po_number", "bank_details", "notes",
			},
		},
		{
			Key:  domain.TypePurchaseOrder,
			Name: "Purchase Order",
			Fields: []string{
				"po_number", "po_date", "expiry_date", "delivery_date", "po_type",
				"buyer_name", "buyer_address", "buyer_email", "buyer_phone", "buyer_tax_id",
				"supplier_name", "supplier_address", "supplier_email", "supplier_phone", "supplier_tax_id",
				"line_items", "subtotal", "tax_amount", "discount", "grand_total", "currency",
				"payment_terms", "payment_method",
				"delivery_address", "shipping_method", "shipping_charges",
				"contract_number", "quotation_number", "remarks",
			},
		},
		{
			Key:  domain.TypeCompanyLicense,
			Name: "Company License",
			Fields: []string{
				"license_type", "license_no", "company_name", "business_name", "legal_type",
				"issue_date", "expiry_date", "duns_number", "main_license_no", "register_no", "dcci_no",
				"license_members", "license_activities",
				"full_address", "phone", "fax", "mobile", "po_box", "parcel_id", "email",
				"partners",
			},
		},
		{
			Key:  domain.TypeHomeCountryID,
			Name: "Home Country ID",
			Fields: []string{
				"full_name", "father_name", "mother_name", "date_of_birth",
				"place_of_birth", "gender", "id_number", "aadhaar_number",
				"issue_date", "issue_authority", "permanent_address",
				"district", "state", "pin_code", "mobile_number",
				"biometric_ref", "qr_code_data",
			},
			FieldPatterns: map[string][]string{
				"aadhaar_number": {`(\d{4}\s\d{4}\s\d{4})`, `aadhaar\s*[:\-]?\s*(\d{12})`},
				"id_number":      {`id\s*no\.?\s*[:\-]?\s*([A-Z0-9]{6,15})`},
			},
		},
		{
			Key:  domain.TypeVATCertificate,
			Name: "Company VAT Certificate",
			Fields: []string{
				"registration_number", "certificate_number", "legal_name_english",
				"legal_name_arabic", "registered_address", "contact_number",
				"effective_registration_date", "date_of_issue",
				"first_vat_return_period", "vat_return_due_date", "tax_period_start_end",
			},
		},
		{
			Key:  domain.TypeCancellation,
			Name: "Visa Cancellation",
			Fields: []string{
				"full_name", "passport_number", "nationality", "date_of_birth",
				"visa_type", "visa_number", "issuing_emirate", "profession",
				"sponsor_name", "sponsor_id", "establishment_number",
				"cancellation_date", "cancellation_ref", "application_number",
			},
		},
		{
			Key:  domain.TypeEntryPermit,
			Name: "Entry Permit",
			Fields: []string{
				"permit_number", "visa_number", "file_number", "uid_number",
				"application_number", "reference_number", "full_name", "nationality",
				"gender", "date_of_birth", "passport_number", "passport_issue_date",
				"passport_expiry_date", "passport_issue_place", "permit_type",
				"permit_category", "entry_type", "number_of_entries", "duration",
				"issue_date", "expiry_date", "valid_from", "valid_until",
				"port_of_entry", "purpose_of_visit", "sponsor_name", "sponsor_id",
				"employer_name", "job_title", "email", "phone", "address",
				"status", "approval_status", "issued_by", "issuing_office",
				"qr_code", "barcode_number",
			},
		},
	}
}
