package services

import (
	"github.com/SscSPs/ledger_entry_app/internal/core/domain"
	"github.com/SscSPs/ledger_entry_app/internal/dto"
	"github.com/SscSPs/ledger_entry_app/internal/utils/amountlocale"
)

// BuildLedgerEntry transforms a validated merged draft into the wire
// payload for the backend ledger. Empty optional fields are left zero so
// json omitempty strips them; the backend treats absent differently from
// empty.
func BuildLedgerEntry(d domain.Draft) dto.LedgerEntry {
	spec, ok := variantRegistry[d.TransactionType]
	if !ok {
		panic("ledger_entry: no payload builder registered for variant " + string(d.TransactionType))
	}
	return spec.build(d)
}

// canonicalAmount renders a locale-formatted amount as a dot-decimal
// string. Callers run this after validation, so parse failures collapse to
// "" and get stripped from the payload.
func canonicalAmount(raw string) string {
	d, ok := amountlocale.Parse(raw)
	if !ok {
		return ""
	}
	return d.String()
}

func baseEntry(d domain.Draft) dto.LedgerEntry {
	return dto.LedgerEntry{
		TransactionType:   string(d.TransactionType),
		EventType:         string(domain.EventTypeFor(d.TransactionType)),
		BusinessTimestamp: d.Shared.BusinessTimestamp,
		BusinessReference: d.Shared.BusinessReference,
		Item:              d.Shared.Item,
		Note:              d.Shared.Note,
	}
}

func buildCategorizedEntry(d domain.Draft) dto.LedgerEntry {
	p := d.Private.(*domain.CategorizedPrivate)
	entry := baseEntry(d)
	entry.Account = p.Account
	entry.GrossAmount = canonicalAmount(d.Shared.GrossAmount)

	// Resolve the wildcard placeholders to their free-text values.
	if p.CategoryGroup == domain.GroupOther {
		entry.CategoryGroup = p.CustomCategoryGroup
		entry.Category = p.CustomCategory
	} else {
		entry.CategoryGroup = p.CategoryGroup
		entry.Category = p.Category
	}

	includeTax := p.IncludeTax
	entry.IncludeTax = &includeTax
	if includeTax {
		taxRate := p.TaxRate
		entry.TaxRate = &taxRate
	}
	return entry
}

func buildTransferEntry(d domain.Draft) dto.LedgerEntry {
	p := d.Private.(*domain.TransferPrivate)
	entry := baseEntry(d)
	entry.Account = p.Account
	entry.ToAccount = p.ToAccount
	entry.CategoryGroup = domain.TransferCategoryGroup
	entry.Category = domain.TransferCategory
	entry.GrossAmount = canonicalAmount(d.Shared.GrossAmount)
	return entry
}

func buildBrokerEntry(d domain.Draft) dto.LedgerEntry {
	p := d.Private.(*domain.BrokerPrivate)
	entry := baseEntry(d)
	entry.Account = domain.BrokerAccount
	entry.CategoryGroup = domain.BrokerCategoryGroup
	entry.Category = domain.BrokerCategory

	// The gross amount is the payout sum; the components are carried
	// alongside so the ledger can reconcile them individually.
	sum := amountlocale.ParseOrZero(p.PaynowTransfer).Add(amountlocale.ParseOrZero(p.AutopayTransfer))
	entry.GrossAmount = sum.String()
	if p.PaynowTransfer != "" {
		entry.PaynowTransfer = canonicalAmount(p.PaynowTransfer)
	}
	if p.AutopayTransfer != "" {
		entry.AutopayTransfer = canonicalAmount(p.AutopayTransfer)
	}
	entry.TransferDate = p.TransferDate
	entry.SalesDate = p.SalesDate

	// Settlement entries book on the transfer date, whatever the shared
	// timestamp says.
	entry.BusinessTimestamp = p.TransferDate
	return entry
}
