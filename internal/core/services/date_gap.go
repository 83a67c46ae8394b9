package services

import (
	"github.com/SscSPs/ledger_entry_app/internal/core/domain"
	"github.com/SscSPs/ledger_entry_app/internal/utils/dateutil"
)

// minSettlementGapDays is the minimum number of whole calendar days the
// settlement transfer date must trail the sales date by.
const minSettlementGapDays = 1

// enforceDateGap maintains transfer_date >= sales_date + 1 day on a broker
// slice. The transfer date is authoritative; when the gap is too small the
// sales date is silently pulled backward. Day arithmetic is integral and in
// UTC, so DST never produces an off-by-one. Returns true when the sales
// date was corrected. Unparseable dates are left for validation to report.
func enforceDateGap(p *domain.BrokerPrivate) bool {
	gap, ok := dateutil.DaysBetween(p.SalesDate, p.TransferDate)
	if !ok {
		return false
	}
	if gap >= minSettlementGapDays {
		return false
	}
	p.SalesDate = dateutil.AddDays(p.TransferDate, -minSettlementGapDays)
	return true
}

// EnforceDateGap is the pure draft-level form of enforceDateGap. Drafts of
// variants without the two ordered dates pass through unchanged.
func EnforceDateGap(d domain.Draft) domain.Draft {
	p, ok := d.Private.(*domain.BrokerPrivate)
	if !ok {
		return d
	}
	c := p.Clone().(*domain.BrokerPrivate)
	enforceDateGap(c)
	d.Private = c
	return d
}
