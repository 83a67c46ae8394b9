package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_entry_app/internal/core/domain"
)

// DraftRepositoryFacade persists in-progress draft sessions. Implementations
// are plain timestamped caches; expiry is driven by LastUpdatedAt.
type DraftRepositoryFacade interface {
	// SaveDraft inserts or replaces a session snapshot.
	SaveDraft(ctx context.Context, session domain.DraftSession) error

	// FindDraftByID retrieves a session, returning apperrors.ErrNotFound
	// when it does not exist or has expired.
	FindDraftByID(ctx context.Context, draftID string) (*domain.DraftSession, error)

	// DeleteDraft removes a session.
	DeleteDraft(ctx context.Context, draftID string) error

	// DeleteExpired removes sessions not touched since the cutoff and
	// returns how many were removed.
	DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error)
}

// RepositoryProvider holds all repository interfaces needed by services.
type RepositoryProvider struct {
	DraftRepo DraftRepositoryFacade
}
