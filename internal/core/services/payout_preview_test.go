package services_test

import (
	"testing"

	"github.com/SscSPs/ledger_entry_app/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_entry_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_entry_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPayoutPreview_SumsComponents(t *testing.T) {
	d := validBrokerDraft()
	p := d.Private.(*domain.BrokerPrivate)
	p.PaynowTransfer = "100,00"
	p.AutopayTransfer = "60,50"

	preview := services.BuildPayoutPreview(d, portssvc.SalesSnapshot{})

	require.NotNil(t, preview)
	assert.Equal(t, "100", preview.PaynowAmount)
	assert.Equal(t, "60.5", preview.AutopayAmount)
	assert.Equal(t, "160.5", preview.PayoutTotal)
	assert.Empty(t, preview.SalesTotal)
	assert.Empty(t, preview.Remainder)
}

func TestBuildPayoutPreview_RemainderAgainstSalesTotal(t *testing.T) {
	d := validBrokerDraft()
	p := d.Private.(*domain.BrokerPrivate)
	p.PaynowTransfer = "100,00"
	p.AutopayTransfer = "20,00"

	total := decimal.NewFromInt(150)
	preview := services.BuildPayoutPreview(d, portssvc.SalesSnapshot{Total: &total})

	require.NotNil(t, preview)
	assert.Equal(t, "150", preview.SalesTotal)
	assert.Equal(t, "30", preview.Remainder)
}

func TestBuildPayoutPreview_MalformedAmountsDegradeToZero(t *testing.T) {
	d := validBrokerDraft()
	p := d.Private.(*domain.BrokerPrivate)
	p.PaynowTransfer = "abc"
	p.AutopayTransfer = ""

	preview := services.BuildPayoutPreview(d, portssvc.SalesSnapshot{})

	require.NotNil(t, preview)
	assert.Equal(t, "0", preview.PaynowAmount)
	assert.Equal(t, "0", preview.AutopayAmount)
	assert.Equal(t, "0", preview.PayoutTotal)
}

func TestBuildPayoutPreview_NegativeRemainderAllowed(t *testing.T) {
	// The preview reports overdraw; blocking it is the validator's job.
	d := validBrokerDraft()
	p := d.Private.(*domain.BrokerPrivate)
	p.PaynowTransfer = "200,00"

	total := decimal.NewFromInt(150)
	preview := services.BuildPayoutPreview(d, portssvc.SalesSnapshot{Total: &total})

	require.NotNil(t, preview)
	assert.Equal(t, "-50", preview.Remainder)
}

func TestBuildPayoutPreview_NonBrokerNil(t *testing.T) {
	assert.Nil(t, services.BuildPayoutPreview(validExpenseDraft(), portssvc.SalesSnapshot{}))
	assert.Nil(t, services.BuildPayoutPreview(validTransferDraft(), portssvc.SalesSnapshot{}))
}
