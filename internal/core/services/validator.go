package services

import (
	"strings"

	"github.com/SscSPs/ledger_entry_app/internal/core/domain"
	"github.com/SscSPs/ledger_entry_app/internal/utils/amountlocale"
	"github.com/SscSPs/ledger_entry_app/internal/utils/dateutil"
	"github.com/shopspring/decimal"
)

// Validation messages keyed to their fields.
const (
	MsgSelectAccount       = "Select account"
	MsgSelectToAccount     = "Select target account"
	MsgAccountsMustDiffer  = "From and To accounts must differ"
	MsgSelectCategoryGroup = "Select category group"
	MsgSelectCategory      = "Select category"
	MsgEnterDate           = "Enter date"
	MsgDateGapViolated     = "transfer_date must be at least 1 day after sales_date"
	MsgEnterTransferAmount = "Enter at least one transfer amount"
	MsgExceedsSalesTotal   = "amount exceeds sales total"
)

// ValidateDraft runs the variant's rule set against the merged draft.
// salesTotal is the cached sales total for the draft's sales date when
// known, nil otherwise. An empty result means the draft may be submitted.
func ValidateDraft(d domain.Draft, salesTotal *decimal.Decimal) domain.ValidationErrors {
	spec, ok := variantRegistry[d.TransactionType]
	if !ok {
		// Unknown variants can only come from a programming error.
		panic("ledger_entry: no validator registered for variant " + string(d.TransactionType))
	}
	return spec.validate(d, salesTotal)
}

func validateCategorized(d domain.Draft, _ *decimal.Decimal) domain.ValidationErrors {
	p := d.Private.(*domain.CategorizedPrivate)
	errs := domain.ValidationErrors{}

	if p.Account == "" {
		errs[domain.FieldAccount] = MsgSelectAccount
	}

	// The wildcard group substitutes the custom free-text pair.
	if p.CategoryGroup == "" {
		errs[domain.FieldCategoryGroup] = MsgSelectCategoryGroup
	} else if p.CategoryGroup == domain.GroupOther {
		if strings.TrimSpace(p.CustomCategoryGroup) == "" {
			errs[domain.FieldCustomCategoryGroup] = MsgSelectCategoryGroup
		}
		if strings.TrimSpace(p.CustomCategory) == "" {
			errs[domain.FieldCustomCategory] = MsgSelectCategory
		}
	} else if p.Category == "" {
		errs[domain.FieldCategory] = MsgSelectCategory
	}

	if d.Shared.BusinessTimestamp == "" {
		errs[domain.FieldBusinessTimestamp] = MsgEnterDate
	}
	if msg := amountlocale.Validate(d.Shared.GrossAmount); msg != "" {
		errs[domain.FieldGrossAmount] = msg
	}
	return errs
}

func validateTransfer(d domain.Draft, _ *decimal.Decimal) domain.ValidationErrors {
	p := d.Private.(*domain.TransferPrivate)
	errs := domain.ValidationErrors{}

	if p.Account == "" {
		errs[domain.FieldAccount] = MsgSelectAccount
	}
	if p.ToAccount == "" {
		errs[domain.FieldToAccount] = MsgSelectToAccount
	}
	if p.Account != "" && p.Account == p.ToAccount {
		errs[domain.FieldToAccount] = MsgAccountsMustDiffer
	}

	if d.Shared.BusinessTimestamp == "" {
		errs[domain.FieldBusinessTimestamp] = MsgEnterDate
	}
	if msg := amountlocale.Validate(d.Shared.GrossAmount); msg != "" {
		errs[domain.FieldGrossAmount] = msg
	}
	return errs
}

// isWellFormedDay reports whether s is a parseable YYYY-MM-DD date.
func isWellFormedDay(s string) bool {
	if s == "" {
		return false
	}
	_, err := dateutil.ParseDay(s)
	return err == nil
}

func validateBroker(d domain.Draft, salesTotal *decimal.Decimal) domain.ValidationErrors {
	p := d.Private.(*domain.BrokerPrivate)
	errs := domain.ValidationErrors{}

	if !isWellFormedDay(p.TransferDate) {
		errs[domain.FieldTransferDate] = MsgEnterDate
	}
	if !isWellFormedDay(p.SalesDate) {
		errs[domain.FieldSalesDate] = MsgEnterDate
	}
	// The gap rule is re-checked here because programmatic updates may not
	// have run the corrective pass.
	if gap, ok := dateutil.DaysBetween(p.SalesDate, p.TransferDate); ok && gap < minSettlementGapDays {
		errs[domain.FieldTransferDate] = MsgDateGapViolated
	}

	paynow := strings.TrimSpace(p.PaynowTransfer)
	autopay := strings.TrimSpace(p.AutopayTransfer)
	if paynow == "" && autopay == "" {
		errs[domain.FieldPaynowTransfer] = MsgEnterTransferAmount
		errs[domain.FieldAutopayTransfer] = MsgEnterTransferAmount
		return errs
	}
	if paynow != "" {
		if msg := amountlocale.Validate(paynow); msg != "" {
			errs[domain.FieldPaynowTransfer] = msg
		}
	}
	if autopay != "" {
		if msg := amountlocale.Validate(autopay); msg != "" {
			errs[domain.FieldAutopayTransfer] = msg
		}
	}

	// The payout pair must not exceed the recorded sales for that day,
	// when the total is known.
	if salesTotal != nil {
		sum := amountlocale.ParseOrZero(paynow).Add(amountlocale.ParseOrZero(autopay))
		if sum.GreaterThan(*salesTotal) {
			errs[domain.FieldPaynowTransfer] = MsgExceedsSalesTotal
			errs[domain.FieldAutopayTransfer] = MsgExceedsSalesTotal
		}
	}
	return errs
}
