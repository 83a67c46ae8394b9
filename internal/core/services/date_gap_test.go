package services_test

import (
	"testing"

	"github.com/SscSPs/ledger_entry_app/internal/core/domain"
	"github.com/SscSPs/ledger_entry_app/internal/core/services"
	"github.com/stretchr/testify/assert"
)

func brokerDraft(p *domain.BrokerPrivate) domain.Draft {
	return domain.Draft{TransactionType: domain.VariantBrokerTransfer, Private: p}
}

func TestEnforceDateGap(t *testing.T) {
	testCases := []struct {
		name          string
		transferDate  string
		salesDate     string
		expectedSales string
	}{
		{
			name:          "valid gap untouched",
			transferDate:  "2024-04-02",
			salesDate:     "2024-04-01",
			expectedSales: "2024-04-01",
		},
		{
			name:          "wide gap untouched",
			transferDate:  "2024-04-10",
			salesDate:     "2024-04-01",
			expectedSales: "2024-04-01",
		},
		{
			name:          "same day pulls sales back",
			transferDate:  "2024-04-02",
			salesDate:     "2024-04-02",
			expectedSales: "2024-04-01",
		},
		{
			name:          "sales after transfer pulls sales back",
			transferDate:  "2024-04-02",
			salesDate:     "2024-04-05",
			expectedSales: "2024-04-01",
		},
		{
			name:          "correction across month boundary",
			transferDate:  "2024-03-01",
			salesDate:     "2024-03-01",
			expectedSales: "2024-02-29",
		},
		{
			name:          "correction across DST transition stays one whole day",
			transferDate:  "2024-03-31",
			salesDate:     "2024-03-31",
			expectedSales: "2024-03-30",
		},
		{
			name:          "unparseable sales date untouched",
			transferDate:  "2024-04-02",
			salesDate:     "soon",
			expectedSales: "soon",
		},
		{
			name:          "unparseable transfer date untouched",
			transferDate:  "",
			salesDate:     "2024-04-02",
			expectedSales: "2024-04-02",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := services.EnforceDateGap(brokerDraft(&domain.BrokerPrivate{
				TransferDate: tc.transferDate,
				SalesDate:    tc.salesDate,
			}))
			p := d.Private.(*domain.BrokerPrivate)
			assert.Equal(t, tc.expectedSales, p.SalesDate)
			assert.Equal(t, tc.transferDate, p.TransferDate, "transfer date is authoritative")
		})
	}
}

func TestEnforceDateGap_DoesNotMutateInput(t *testing.T) {
	p := &domain.BrokerPrivate{TransferDate: "2024-04-02", SalesDate: "2024-04-02"}

	_ = services.EnforceDateGap(brokerDraft(p))

	assert.Equal(t, "2024-04-02", p.SalesDate)
}

func TestEnforceDateGap_NonBrokerPassThrough(t *testing.T) {
	d := domain.Draft{
		TransactionType: domain.VariantSimpleExpense,
		Private:         &domain.CategorizedPrivate{Kind: domain.VariantSimpleExpense},
	}

	assert.Equal(t, d, services.EnforceDateGap(d))
}
