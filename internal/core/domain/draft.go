package domain

import "time"

// Field names used across the shared and private slices. Handlers address
// fields by these names; the store routes them to the owning slice.
const (
	FieldGrossAmount         = "gross_amount"
	FieldBusinessReference   = "business_reference"
	FieldItem                = "item"
	FieldNote                = "note"
	FieldBusinessTimestamp   = "business_timestamp"
	FieldAccount             = "account"
	FieldToAccount           = "to_account"
	FieldCategoryGroup       = "category_group"
	FieldCategory            = "category"
	FieldCustomCategoryGroup = "custom_category_group"
	FieldCustomCategory      = "custom_category"
	FieldIncludeTax          = "include_tax"
	FieldTaxRate             = "tax_rate"
	FieldTransferDate        = "transfer_date"
	FieldSalesDate           = "sales_date"
	FieldPaynowTransfer      = "paynow_transfer"
	FieldAutopayTransfer     = "autopay_transfer"
)

// SharedFields are present and independently edited regardless of variant.
// GrossAmount is kept as the raw locale-formatted string the user typed;
// normalization happens at validation/payload time.
type SharedFields struct {
	GrossAmount       string `json:"gross_amount"`
	BusinessReference string `json:"business_reference"`
	Item              string `json:"item"`
	Note              string `json:"note"`
	BusinessTimestamp string `json:"business_timestamp"` // YYYY-MM-DD
}

// PrivateFields is the variant-scoped slice of the draft. Exactly one
// implementation exists per variant shape; the store keeps one instance per
// visited variant so switching back restores the last edited values.
type PrivateFields interface {
	Variant() TransactionVariant
	Clone() PrivateFields
}

// CategorizedPrivate is the private slice for simple_expense and
// simple_income, which share a shape but are remembered separately.
type CategorizedPrivate struct {
	Kind                TransactionVariant `json:"kind"`
	Account             string             `json:"account"`
	CategoryGroup       string             `json:"category_group"`
	Category            string             `json:"category"`
	CustomCategoryGroup string             `json:"custom_category_group"`
	CustomCategory      string             `json:"custom_category"`
	IncludeTax          bool               `json:"include_tax"`
	TaxRate             float64            `json:"tax_rate"`
}

func (p *CategorizedPrivate) Variant() TransactionVariant { return p.Kind }

func (p *CategorizedPrivate) Clone() PrivateFields {
	c := *p
	return &c
}

// TransferPrivate is the private slice for simple_transfer.
type TransferPrivate struct {
	Account   string `json:"account"`
	ToAccount string `json:"to_account"`
}

func (p *TransferPrivate) Variant() TransactionVariant { return VariantSimpleTransfer }

func (p *TransferPrivate) Clone() PrivateFields {
	c := *p
	return &c
}

// Broker settlement constants. The broker variant posts against a fixed
// account pair and category.
const (
	BrokerAccount       = "paynow"
	BrokerToAccount     = "bank_main"
	BrokerCategoryGroup = "payment_broker_transfer"
	BrokerCategory      = "paynow_payout"
)

// Fixed categorization emitted for plain internal transfers.
const (
	TransferCategoryGroup = "internal_transfer"
	TransferCategory      = "outgoing_transfer"
)

// BrokerPrivate is the private slice for payment_broker_transfer. Account
// and ToAccount are forced constants but carried so the merged draft view is
// uniform.
type BrokerPrivate struct {
	Account         string `json:"account"`
	ToAccount       string `json:"to_account"`
	TransferDate    string `json:"transfer_date"` // YYYY-MM-DD
	SalesDate       string `json:"sales_date"`    // YYYY-MM-DD
	PaynowTransfer  string `json:"paynow_transfer"`
	AutopayTransfer string `json:"autopay_transfer"`
}

func (p *BrokerPrivate) Variant() TransactionVariant { return VariantBrokerTransfer }

func (p *BrokerPrivate) Clone() PrivateFields {
	c := *p
	return &c
}

// Draft is the merged view of a session: the active variant, the shared
// slice, and the active variant's private slice.
type Draft struct {
	TransactionType TransactionVariant
	Shared          SharedFields
	Private         PrivateFields
}

// ValidationErrors maps field name to a human message. An empty map means
// the draft is eligible for submission.
type ValidationErrors map[string]string

// DraftSession is the server-held state behind one entry form. Private
// slices are lazily initialized per variant on first visit and retained
// across switches.
type DraftSession struct {
	DraftID       string
	Current       TransactionVariant
	Shared        SharedFields
	Private       map[TransactionVariant]PrivateFields
	Errors        ValidationErrors
	Submitting    bool
	CreatedAt     time.Time
	LastUpdatedAt time.Time
}

// Merged returns the draft view for the currently active variant.
func (s *DraftSession) Merged() Draft {
	return Draft{
		TransactionType: s.Current,
		Shared:          s.Shared,
		Private:         s.Private[s.Current],
	}
}

// Clone deep-copies the session so repositories can hand out snapshots
// without aliasing the live private slices.
func (s *DraftSession) Clone() *DraftSession {
	c := *s
	c.Private = make(map[TransactionVariant]PrivateFields, len(s.Private))
	for v, p := range s.Private {
		c.Private[v] = p.Clone()
	}
	c.Errors = make(ValidationErrors, len(s.Errors))
	for f, m := range s.Errors {
		c.Errors[f] = m
	}
	return &c
}
