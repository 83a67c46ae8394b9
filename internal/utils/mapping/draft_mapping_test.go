package mapping_test

import (
	"testing"

	"github.com/SscSPs/ledger_entry_app/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_entry_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_entry_app/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDraftResponse_Expense(t *testing.T) {
	sess := &domain.DraftSession{
		DraftID: "d1",
		Current: domain.VariantSimpleExpense,
		Shared: domain.SharedFields{
			GrossAmount:       "100,50",
			BusinessTimestamp: "2024-04-02",
		},
		Private: map[domain.TransactionVariant]domain.PrivateFields{
			domain.VariantSimpleExpense: &domain.CategorizedPrivate{
				Kind:          domain.VariantSimpleExpense,
				Account:       "cash",
				CategoryGroup: "cost_of_goods",
				Category:      "ingredients",
				IncludeTax:    true,
				TaxRate:       9,
			},
		},
		Errors: domain.ValidationErrors{},
	}

	resp := mapping.ToDraftResponse(sess, portssvc.SalesSnapshot{})

	assert.Equal(t, "d1", resp.DraftID)
	assert.Equal(t, "simple_expense", resp.TransactionType)
	assert.Equal(t, "100,50", resp.Fields[domain.FieldGrossAmount])
	assert.Equal(t, "ingredients", resp.Fields[domain.FieldCategory])
	assert.Equal(t, true, resp.Fields[domain.FieldIncludeTax])
	assert.Equal(t, 9.0, resp.Fields[domain.FieldTaxRate])
	assert.Nil(t, resp.Errors, "empty error map omitted")
	assert.Nil(t, resp.SalesLookup)
	assert.Nil(t, resp.PayoutPreview)
}

func TestToDraftResponse_OnlyActiveVariantFieldsExposed(t *testing.T) {
	sess := &domain.DraftSession{
		DraftID: "d1",
		Current: domain.VariantSimpleTransfer,
		Private: map[domain.TransactionVariant]domain.PrivateFields{
			domain.VariantSimpleExpense: &domain.CategorizedPrivate{
				Kind:     domain.VariantSimpleExpense,
				Category: "ingredients",
			},
			domain.VariantSimpleTransfer: &domain.TransferPrivate{
				Account:   "cash",
				ToAccount: "bank_main",
			},
		},
		Errors: domain.ValidationErrors{},
	}

	resp := mapping.ToDraftResponse(sess, portssvc.SalesSnapshot{})

	assert.Equal(t, "bank_main", resp.Fields[domain.FieldToAccount])
	assert.NotContains(t, resp.Fields, domain.FieldCategory,
		"inactive variant's private slice stays hidden")
}

func TestToDraftResponse_BrokerCarriesLookupState(t *testing.T) {
	total := decimal.NewFromInt(150)
	sess := &domain.DraftSession{
		DraftID: "d1",
		Current: domain.VariantBrokerTransfer,
		Private: map[domain.TransactionVariant]domain.PrivateFields{
			domain.VariantBrokerTransfer: &domain.BrokerPrivate{
				Account:        domain.BrokerAccount,
				ToAccount:      domain.BrokerToAccount,
				TransferDate:   "2024-04-02",
				SalesDate:      "2024-04-01",
				PaynowTransfer: "100,00",
			},
		},
		Errors: domain.ValidationErrors{"paynow_transfer": "amount exceeds sales total"},
	}

	resp := mapping.ToDraftResponse(sess, portssvc.SalesSnapshot{Total: &total})

	require.NotNil(t, resp.SalesLookup)
	assert.Equal(t, "150", resp.SalesLookup.Total)
	assert.False(t, resp.SalesLookup.Loading)

	require.NotNil(t, resp.PayoutPreview)
	assert.Equal(t, "50", resp.PayoutPreview.Remainder)

	assert.Equal(t, "amount exceeds sales total", resp.Errors["paynow_transfer"])
}

func TestToDraftResponse_LoadingState(t *testing.T) {
	sess := &domain.DraftSession{
		DraftID: "d1",
		Current: domain.VariantBrokerTransfer,
		Private: map[domain.TransactionVariant]domain.PrivateFields{
			domain.VariantBrokerTransfer: &domain.BrokerPrivate{SalesDate: "2024-04-01"},
		},
		Errors: domain.ValidationErrors{},
	}

	resp := mapping.ToDraftResponse(sess, portssvc.SalesSnapshot{Loading: true})

	require.NotNil(t, resp.SalesLookup)
	assert.True(t, resp.SalesLookup.Loading)
	assert.Empty(t, resp.SalesLookup.Total)
}
