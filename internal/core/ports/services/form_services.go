package services

import (
	"context"

	"github.com/SscSPs/ledger_entry_app/internal/core/domain"
	"github.com/SscSPs/ledger_entry_app/internal/dto"
	"github.com/shopspring/decimal"
)

// SalesLookupSvc fetches the externally recorded sales total for one
// calendar date. Injected into the sales cache so tests can substitute a
// fake without module-level mutable state.
type SalesLookupSvc interface {
	FetchSalesTotal(ctx context.Context, date string) (decimal.Decimal, error)
}

// LedgerSvc submits a normalized ledger entry to the backend ledger.
type LedgerSvc interface {
	SubmitEntry(ctx context.Context, entry dto.LedgerEntry) error
}

// SalesSnapshot is the cache's view for one date: at most one of Total and
// Error is set while Loading is false.
type SalesSnapshot struct {
	Loading bool
	Total   *decimal.Decimal
	Error   string
}

// FormSvcFacade is the draft-session entry point used by the handlers.
type FormSvcFacade interface {
	// CreateDraft opens a new session with variant simple_expense and
	// default values.
	CreateDraft(ctx context.Context) (*domain.DraftSession, error)

	// GetDraft returns a snapshot of the session.
	GetDraft(ctx context.Context, draftID string) (*domain.DraftSession, error)

	// ChangeField mutates one field and runs the reactive passes
	// (category sync, date-gap fix, sales-fetch trigger) to completion.
	ChangeField(ctx context.Context, draftID string, field string, value any) (*domain.DraftSession, error)

	// SetVariant switches the active variant, lazily initializing its
	// private slice on first visit.
	SetVariant(ctx context.Context, draftID string, variant domain.TransactionVariant) (*domain.DraftSession, error)

	// ResetDraft restores every variant slice to its defaults.
	ResetDraft(ctx context.Context, draftID string) (*domain.DraftSession, error)

	// RetrySalesLookup clears a failed cache marker for the session's
	// current sales date and re-triggers the fetch.
	RetrySalesLookup(ctx context.Context, draftID string) (*domain.DraftSession, error)

	// Submit validates the merged draft and, when clean, posts it to the
	// backend ledger. Field errors come back on the session, not as a Go
	// error; transport failures wrap apperrors.ErrSubmissionRejected.
	Submit(ctx context.Context, draftID string) (*domain.DraftSession, error)

	// SalesLookupStatus reports the cache state for the session's current
	// sales date.
	SalesLookupStatus(ctx context.Context, draftID string) (SalesSnapshot, error)
}
