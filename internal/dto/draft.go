package dto

// FieldChangeRequest mutates one field of the active draft. Value is the
// raw JSON value: string for text fields, bool for include_tax, number for
// tax_rate.
type FieldChangeRequest struct {
	Field string `json:"field" binding:"required"`
	Value any    `json:"value"`
}

// SetVariantRequest switches the active transaction variant.
type SetVariantRequest struct {
	Variant string `json:"variant" binding:"required"`
}

// SalesLookupStatus reports the cache state for the draft's current sales
// date.
type SalesLookupStatus struct {
	Loading bool   `json:"loading"`
	Total   string `json:"total,omitempty"` // decimal string, absent until resolved
	Error   string `json:"error,omitempty"`
}

// PayoutPreview is the read-only commission preview for the broker variant.
// Malformed amounts degrade to zero here instead of erroring.
type PayoutPreview struct {
	PaynowAmount  string `json:"paynow_amount"`
	AutopayAmount string `json:"autopay_amount"`
	PayoutTotal   string `json:"payout_total"`
	SalesTotal    string `json:"sales_total,omitempty"`
	Remainder     string `json:"remainder,omitempty"`
}

// DraftResponse is the merged view of a draft session.
type DraftResponse struct {
	DraftID         string             `json:"draft_id"`
	TransactionType string             `json:"transaction_type"`
	Fields          map[string]any     `json:"fields"`
	Errors          map[string]string  `json:"errors,omitempty"`
	Submitting      bool               `json:"submitting"`
	SalesLookup     *SalesLookupStatus `json:"sales_lookup,omitempty"`
	PayoutPreview   *PayoutPreview     `json:"payout_preview,omitempty"`
}

// SubmitResponse reports the outcome of a submission attempt.
type SubmitResponse struct {
	Submitted bool              `json:"submitted"`
	Errors    map[string]string `json:"errors,omitempty"`
	Message   string            `json:"message,omitempty"`
	Draft     *DraftResponse    `json:"draft,omitempty"`
}
