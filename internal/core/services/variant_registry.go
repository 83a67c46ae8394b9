package services

import (
	"github.com/SscSPs/ledger_entry_app/internal/core/domain"
	"github.com/SscSPs/ledger_entry_app/internal/dto"
	"github.com/SscSPs/ledger_entry_app/internal/utils/dateutil"
	"github.com/shopspring/decimal"
)

// Defaults seeds freshly initialized variant slices.
type Defaults struct {
	Account       string
	CategoryGroup string
	TaxRate       float64
}

// DefaultDefaults is used when no configuration overrides are supplied.
var DefaultDefaults = Defaults{
	Account:       "cash",
	CategoryGroup: "operating_cost",
	TaxRate:       9,
}

// variantSpec bundles the per-variant behaviors: how a private slice is
// born, how the merged draft is validated and how it is turned into the
// wire payload. Dispatching through this registry instead of on raw strings
// keeps the four variants exhaustively covered in one place.
type variantSpec struct {
	newDefaults func(today string, def Defaults) domain.PrivateFields
	validate    func(d domain.Draft, salesTotal *decimal.Decimal) domain.ValidationErrors
	build       func(d domain.Draft) dto.LedgerEntry
}

var variantRegistry = map[domain.TransactionVariant]variantSpec{
	domain.VariantSimpleExpense: {
		newDefaults: func(today string, def Defaults) domain.PrivateFields {
			return newCategorizedDefaults(domain.VariantSimpleExpense, def)
		},
		validate: validateCategorized,
		build:    buildCategorizedEntry,
	},
	domain.VariantSimpleIncome: {
		newDefaults: func(today string, def Defaults) domain.PrivateFields {
			return newCategorizedDefaults(domain.VariantSimpleIncome, def)
		},
		validate: validateCategorized,
		build:    buildCategorizedEntry,
	},
	domain.VariantSimpleTransfer: {
		newDefaults: func(today string, def Defaults) domain.PrivateFields {
			return &domain.TransferPrivate{Account: def.Account}
		},
		validate: validateTransfer,
		build:    buildTransferEntry,
	},
	domain.VariantBrokerTransfer: {
		newDefaults: func(today string, def Defaults) domain.PrivateFields {
			return &domain.BrokerPrivate{
				Account:      domain.BrokerAccount,
				ToAccount:    domain.BrokerToAccount,
				TransferDate: today,
				SalesDate:    dateutil.AddDays(today, -1),
			}
		},
		validate: validateBroker,
		build:    buildBrokerEntry,
	},
}

func newCategorizedDefaults(kind domain.TransactionVariant, def Defaults) *domain.CategorizedPrivate {
	return &domain.CategorizedPrivate{
		Kind:          kind,
		Account:       def.Account,
		CategoryGroup: def.CategoryGroup,
		TaxRate:       def.TaxRate,
	}
}

func newSharedDefaults(today string) domain.SharedFields {
	return domain.SharedFields{BusinessTimestamp: today}
}
