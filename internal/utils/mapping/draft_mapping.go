package mapping

import (
	"github.com/SscSPs/ledger_entry_app/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_entry_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_entry_app/internal/core/services"
	"github.com/SscSPs/ledger_entry_app/internal/dto"
)

// ToDraftResponse converts a draft session plus the sales cache state for
// its current sales date into the API view. The merged field map carries
// the shared slice and the active variant's private slice, flattened the
// way the form surface consumes it.
func ToDraftResponse(sess *domain.DraftSession, snap portssvc.SalesSnapshot) dto.DraftResponse {
	draft := sess.Merged()
	resp := dto.DraftResponse{
		DraftID:         sess.DraftID,
		TransactionType: string(sess.Current),
		Fields:          mergedFields(draft),
		Submitting:      sess.Submitting,
		PayoutPreview:   services.BuildPayoutPreview(draft, snap),
	}
	if len(sess.Errors) > 0 {
		resp.Errors = sess.Errors
	}
	if _, broker := draft.Private.(*domain.BrokerPrivate); broker {
		resp.SalesLookup = toSalesLookupStatus(snap)
	}
	return resp
}

func toSalesLookupStatus(snap portssvc.SalesSnapshot) *dto.SalesLookupStatus {
	status := &dto.SalesLookupStatus{Loading: snap.Loading, Error: snap.Error}
	if snap.Total != nil {
		status.Total = snap.Total.String()
	}
	return status
}

func mergedFields(d domain.Draft) map[string]any {
	fields := map[string]any{
		domain.FieldGrossAmount:       d.Shared.GrossAmount,
		domain.FieldBusinessReference: d.Shared.BusinessReference,
		domain.FieldItem:              d.Shared.Item,
		domain.FieldNote:              d.Shared.Note,
		domain.FieldBusinessTimestamp: d.Shared.BusinessTimestamp,
	}
	switch p := d.Private.(type) {
	case *domain.CategorizedPrivate:
		fields[domain.FieldAccount] = p.Account
		fields[domain.FieldCategoryGroup] = p.CategoryGroup
		fields[domain.FieldCategory] = p.Category
		fields[domain.FieldCustomCategoryGroup] = p.CustomCategoryGroup
		fields[domain.FieldCustomCategory] = p.CustomCategory
		fields[domain.FieldIncludeTax] = p.IncludeTax
		fields[domain.FieldTaxRate] = p.TaxRate
	case *domain.TransferPrivate:
		fields[domain.FieldAccount] = p.Account
		fields[domain.FieldToAccount] = p.ToAccount
	case *domain.BrokerPrivate:
		fields[domain.FieldAccount] = p.Account
		fields[domain.FieldToAccount] = p.ToAccount
		fields[domain.FieldTransferDate] = p.TransferDate
		fields[domain.FieldSalesDate] = p.SalesDate
		fields[domain.FieldPaynowTransfer] = p.PaynowTransfer
		fields[domain.FieldAutopayTransfer] = p.AutopayTransfer
	}
	return fields
}
