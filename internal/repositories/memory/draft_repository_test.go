package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/ledger_entry_app/internal/apperrors"
	"github.com/SscSPs/ledger_entry_app/internal/core/domain"
	"github.com/SscSPs/ledger_entry_app/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSession(draftID string, lastUpdated time.Time) domain.DraftSession {
	return domain.DraftSession{
		DraftID: draftID,
		Current: domain.VariantSimpleExpense,
		Private: map[domain.TransactionVariant]domain.PrivateFields{
			domain.VariantSimpleExpense: &domain.CategorizedPrivate{
				Kind:    domain.VariantSimpleExpense,
				Account: "cash",
			},
		},
		Errors:        domain.ValidationErrors{},
		LastUpdatedAt: lastUpdated,
	}
}

func TestSaveAndFindDraft(t *testing.T) {
	repo := memory.NewDraftRepository()
	ctx := context.Background()

	require.NoError(t, repo.SaveDraft(ctx, sampleSession("d1", time.Now())))

	found, err := repo.FindDraftByID(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, "d1", found.DraftID)
	assert.Equal(t, "cash", found.Private[domain.VariantSimpleExpense].(*domain.CategorizedPrivate).Account)
}

func TestFindDraft_NotFound(t *testing.T) {
	repo := memory.NewDraftRepository()

	_, err := repo.FindDraftByID(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestFindDraft_ReturnsIsolatedCopy(t *testing.T) {
	repo := memory.NewDraftRepository()
	ctx := context.Background()
	require.NoError(t, repo.SaveDraft(ctx, sampleSession("d1", time.Now())))

	first, err := repo.FindDraftByID(ctx, "d1")
	require.NoError(t, err)
	first.Private[domain.VariantSimpleExpense].(*domain.CategorizedPrivate).Account = "bank_main"

	second, err := repo.FindDraftByID(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, "cash", second.Private[domain.VariantSimpleExpense].(*domain.CategorizedPrivate).Account,
		"mutating a returned snapshot must not touch the stored session")
}

func TestDeleteDraft(t *testing.T) {
	repo := memory.NewDraftRepository()
	ctx := context.Background()
	require.NoError(t, repo.SaveDraft(ctx, sampleSession("d1", time.Now())))

	require.NoError(t, repo.DeleteDraft(ctx, "d1"))
	_, err := repo.FindDraftByID(ctx, "d1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	assert.ErrorIs(t, repo.DeleteDraft(ctx, "d1"), apperrors.ErrNotFound)
}

func TestDeleteExpired(t *testing.T) {
	repo := memory.NewDraftRepository()
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, repo.SaveDraft(ctx, sampleSession("stale", now.Add(-48*time.Hour))))
	require.NoError(t, repo.SaveDraft(ctx, sampleSession("fresh", now)))

	removed, err := repo.DeleteExpired(ctx, now.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	_, err = repo.FindDraftByID(ctx, "stale")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = repo.FindDraftByID(ctx, "fresh")
	assert.NoError(t, err)
}
