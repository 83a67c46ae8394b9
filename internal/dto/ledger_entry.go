package dto

// LedgerEntry is the normalized request body POSTed to the backend ledger.
// The backend treats absent fields differently from empty ones, so every
// optional field is omitempty and emptied strings are never emitted.
type LedgerEntry struct {
	TransactionType   string   `json:"transaction_type"`
	EventType         string   `json:"event_type"`
	Account           string   `json:"account,omitempty"`
	CategoryGroup     string   `json:"category_group,omitempty"`
	Category          string   `json:"category,omitempty"`
	GrossAmount       string   `json:"gross_amount,omitempty"` // normalized decimal, dot separator
	BusinessTimestamp string   `json:"business_timestamp,omitempty"`
	BusinessReference string   `json:"business_reference,omitempty"`
	Item              string   `json:"item,omitempty"`
	Note              string   `json:"note,omitempty"`
	IncludeTax        *bool    `json:"include_tax,omitempty"`
	TaxRate           *float64 `json:"tax_rate,omitempty"`
	ToAccount         string   `json:"to_account,omitempty"`       // transfer only
	PaynowTransfer    string   `json:"paynow_transfer,omitempty"`  // broker only
	AutopayTransfer   string   `json:"autopay_transfer,omitempty"` // broker only
	TransferDate      string   `json:"transfer_date,omitempty"`    // broker only
	SalesDate         string   `json:"sales_date,omitempty"`       // broker only
}
