package domain

import "fmt"

// TransactionVariant identifies one of the supported bookkeeping event kinds.
// Each variant carries its own private field set and its own validation and
// payload rules.
type TransactionVariant string

const (
	VariantSimpleExpense  TransactionVariant = "simple_expense"
	VariantSimpleIncome   TransactionVariant = "simple_income"
	VariantSimpleTransfer TransactionVariant = "simple_transfer"
	VariantBrokerTransfer TransactionVariant = "payment_broker_transfer"
)

// AllVariants lists every supported variant in display order.
var AllVariants = []TransactionVariant{
	VariantSimpleExpense,
	VariantSimpleIncome,
	VariantSimpleTransfer,
	VariantBrokerTransfer,
}

// ParseVariant converts a raw string into a TransactionVariant.
func ParseVariant(s string) (TransactionVariant, error) {
	v := TransactionVariant(s)
	if !v.Valid() {
		return "", fmt.Errorf("unknown transaction variant: %q", s)
	}
	return v, nil
}

// Valid reports whether v is one of the supported variants.
func (v TransactionVariant) Valid() bool {
	switch v {
	case VariantSimpleExpense, VariantSimpleIncome, VariantSimpleTransfer, VariantBrokerTransfer:
		return true
	}
	return false
}

// EventType is the normalized event kind emitted to the backend ledger.
type EventType string

const (
	EventCostPaid       EventType = "cost_paid"
	EventIncomeReceived EventType = "income_received"
	EventTransfer       EventType = "transfer"
)

// EventTypeFor maps a variant to the event type it emits on the wire.
func EventTypeFor(v TransactionVariant) EventType {
	switch v {
	case VariantSimpleExpense:
		return EventCostPaid
	case VariantSimpleIncome:
		return EventIncomeReceived
	default:
		return EventTransfer
	}
}
