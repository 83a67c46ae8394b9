package services_test

import (
	"testing"

	"github.com/SscSPs/ledger_entry_app/internal/core/domain"
	"github.com/SscSPs/ledger_entry_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func categorizedDraft(p *domain.CategorizedPrivate) domain.Draft {
	return domain.Draft{
		TransactionType: p.Kind,
		Private:         p,
	}
}

func TestSyncCategoryFields_GroupFollowsCategory(t *testing.T) {
	d := categorizedDraft(&domain.CategorizedPrivate{
		Kind:          domain.VariantSimpleExpense,
		CategoryGroup: "operating_cost",
		Category:      "ingredients",
	})

	synced := services.SyncCategoryFields(d, domain.FieldCategory)

	p := synced.Private.(*domain.CategorizedPrivate)
	assert.Equal(t, "cost_of_goods", p.CategoryGroup)
	assert.Equal(t, "ingredients", p.Category)
}

func TestSyncCategoryFields_UnknownCategoryLeavesGroup(t *testing.T) {
	d := categorizedDraft(&domain.CategorizedPrivate{
		Kind:          domain.VariantSimpleExpense,
		CategoryGroup: "operating_cost",
		Category:      "mystery",
	})

	synced := services.SyncCategoryFields(d, domain.FieldCategory)

	p := synced.Private.(*domain.CategorizedPrivate)
	assert.Equal(t, "operating_cost", p.CategoryGroup)
	assert.Equal(t, "mystery", p.Category)
}

func TestSyncCategoryFields_GroupChangeClearsStaleCategory(t *testing.T) {
	d := categorizedDraft(&domain.CategorizedPrivate{
		Kind:          domain.VariantSimpleExpense,
		CategoryGroup: "staff_cost",
		Category:      "rent",
	})

	synced := services.SyncCategoryFields(d, domain.FieldCategoryGroup)

	p := synced.Private.(*domain.CategorizedPrivate)
	assert.Equal(t, "staff_cost", p.CategoryGroup)
	assert.Equal(t, "", p.Category)
}

func TestSyncCategoryFields_GroupChangeKeepsMatchingCategory(t *testing.T) {
	d := categorizedDraft(&domain.CategorizedPrivate{
		Kind:          domain.VariantSimpleExpense,
		CategoryGroup: "operating_cost",
		Category:      "rent",
	})

	synced := services.SyncCategoryFields(d, domain.FieldCategoryGroup)

	p := synced.Private.(*domain.CategorizedPrivate)
	assert.Equal(t, "rent", p.Category)
}

func TestSyncCategoryFields_OtherGroupPreservesCategory(t *testing.T) {
	// The wildcard group hands over to the custom free-text fields; the
	// plain category is left alone so switching back loses nothing.
	d := categorizedDraft(&domain.CategorizedPrivate{
		Kind:          domain.VariantSimpleIncome,
		CategoryGroup: domain.GroupOther,
		Category:      "daily_sales",
	})

	synced := services.SyncCategoryFields(d, domain.FieldCategoryGroup)

	p := synced.Private.(*domain.CategorizedPrivate)
	assert.Equal(t, domain.GroupOther, p.CategoryGroup)
	assert.Equal(t, "daily_sales", p.Category)
}

func TestSyncCategoryFields_Idempotent(t *testing.T) {
	d := categorizedDraft(&domain.CategorizedPrivate{
		Kind:     domain.VariantSimpleExpense,
		Category: "wages",
	})

	once := services.SyncCategoryFields(d, domain.FieldCategory)
	twice := services.SyncCategoryFields(once, domain.FieldCategory)

	assert.Equal(t, once.Private, twice.Private)
}

func TestSyncCategoryFields_DoesNotMutateInput(t *testing.T) {
	p := &domain.CategorizedPrivate{
		Kind:          domain.VariantSimpleExpense,
		CategoryGroup: "staff_cost",
		Category:      "rent",
	}
	d := categorizedDraft(p)

	_ = services.SyncCategoryFields(d, domain.FieldCategoryGroup)

	assert.Equal(t, "rent", p.Category)
}

func TestSyncCategoryFields_NonCategorizedPassThrough(t *testing.T) {
	p := &domain.TransferPrivate{Account: "cash"}
	d := domain.Draft{TransactionType: domain.VariantSimpleTransfer, Private: p}

	synced := services.SyncCategoryFields(d, domain.FieldCategory)

	require.Same(t, domain.PrivateFields(p), synced.Private)
}
