// Package memory provides the in-memory draft session store used when no
// database is configured. Sessions are plain timestamped cache entries; a
// janitor goroutine sweeps expired ones.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/ledger_entry_app/internal/apperrors"
	"github.com/SscSPs/ledger_entry_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_entry_app/internal/core/ports/repositories"
)

type draftRepository struct {
	mu     sync.RWMutex
	drafts map[string]*domain.DraftSession
}

// NewDraftRepository creates an in-memory draft repository.
func NewDraftRepository() portsrepo.DraftRepositoryFacade {
	return &draftRepository{drafts: make(map[string]*domain.DraftSession)}
}

var _ portsrepo.DraftRepositoryFacade = (*draftRepository)(nil)

func (r *draftRepository) SaveDraft(_ context.Context, session domain.DraftSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drafts[session.DraftID] = session.Clone()
	return nil
}

func (r *draftRepository) FindDraftByID(_ context.Context, draftID string) (*domain.DraftSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sess, ok := r.drafts[draftID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	// Hand out a copy so callers never alias the stored slices.
	return sess.Clone(), nil
}

func (r *draftRepository) DeleteDraft(_ context.Context, draftID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.drafts[draftID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.drafts, draftID)
	return nil
}

func (r *draftRepository) DeleteExpired(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var removed int64
	for id, sess := range r.drafts {
		if sess.LastUpdatedAt.Before(cutoff) {
			delete(r.drafts, id)
			removed++
		}
	}
	return removed, nil
}

// StartJanitor sweeps expired sessions every interval until ctx is done.
func StartJanitor(ctx context.Context, repo portsrepo.DraftRepositoryFacade, ttl, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				_, _ = repo.DeleteExpired(ctx, now.Add(-ttl))
			}
		}
	}()
}
