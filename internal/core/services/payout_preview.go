package services

import (
	"github.com/SscSPs/ledger_entry_app/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_entry_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_entry_app/internal/dto"
	"github.com/SscSPs/ledger_entry_app/internal/utils/amountlocale"
)

// BuildPayoutPreview computes the read-only payout preview for a broker
// draft: the two component amounts, their sum, and the remainder against
// the cached sales total when one is resolved. Malformed amounts degrade to
// zero; the preview never raises. Returns nil for variants without a payout
// pair.
func BuildPayoutPreview(d domain.Draft, snap portssvc.SalesSnapshot) *dto.PayoutPreview {
	p, ok := d.Private.(*domain.BrokerPrivate)
	if !ok {
		return nil
	}

	paynow := amountlocale.ParseOrZero(p.PaynowTransfer)
	autopay := amountlocale.ParseOrZero(p.AutopayTransfer)
	total := paynow.Add(autopay)

	preview := &dto.PayoutPreview{
		PaynowAmount:  paynow.String(),
		AutopayAmount: autopay.String(),
		PayoutTotal:   total.String(),
	}
	if snap.Total != nil {
		preview.SalesTotal = snap.Total.String()
		preview.Remainder = snap.Total.Sub(total).String()
	}
	return preview
}
