package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/ledger_entry_app/internal/apperrors"
	"github.com/SscSPs/ledger_entry_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_entry_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type draftRepository struct {
	pool *pgxpool.Pool
}

// NewDraftRepository creates a Postgres-backed draft repository. Draft
// state is stored as one JSONB document per session; the table is a plain
// timestamped cache, not ledger storage.
func NewDraftRepository(pool *pgxpool.Pool) portsrepo.DraftRepositoryFacade {
	return &draftRepository{pool: pool}
}

var _ portsrepo.DraftRepositoryFacade = (*draftRepository)(nil)

// draftState is the persisted shape of a session. The private slices are
// flattened into concrete typed fields because domain.PrivateFields is an
// interface and cannot round-trip through JSON on its own.
type draftState struct {
	Shared   domain.SharedFields        `json:"shared"`
	Expense  *domain.CategorizedPrivate `json:"expense,omitempty"`
	Income   *domain.CategorizedPrivate `json:"income,omitempty"`
	Transfer *domain.TransferPrivate    `json:"transfer,omitempty"`
	Broker   *domain.BrokerPrivate      `json:"broker,omitempty"`
	Errors   domain.ValidationErrors    `json:"errors,omitempty"`
}

func toDraftState(sess domain.DraftSession) draftState {
	st := draftState{Shared: sess.Shared, Errors: sess.Errors}
	for variant, p := range sess.Private {
		switch v := p.(type) {
		case *domain.CategorizedPrivate:
			if variant == domain.VariantSimpleExpense {
				st.Expense = v
			} else {
				st.Income = v
			}
		case *domain.TransferPrivate:
			st.Transfer = v
		case *domain.BrokerPrivate:
			st.Broker = v
		}
	}
	return st
}

func (st draftState) toSession(draftID, current string, createdAt, updatedAt time.Time) *domain.DraftSession {
	sess := &domain.DraftSession{
		DraftID:       draftID,
		Current:       domain.TransactionVariant(current),
		Shared:        st.Shared,
		Private:       make(map[domain.TransactionVariant]domain.PrivateFields),
		Errors:        st.Errors,
		CreatedAt:     createdAt,
		LastUpdatedAt: updatedAt,
	}
	if sess.Errors == nil {
		sess.Errors = domain.ValidationErrors{}
	}
	if st.Expense != nil {
		sess.Private[domain.VariantSimpleExpense] = st.Expense
	}
	if st.Income != nil {
		sess.Private[domain.VariantSimpleIncome] = st.Income
	}
	if st.Transfer != nil {
		sess.Private[domain.VariantSimpleTransfer] = st.Transfer
	}
	if st.Broker != nil {
		sess.Private[domain.VariantBrokerTransfer] = st.Broker
	}
	return sess
}

func (r *draftRepository) SaveDraft(ctx context.Context, session domain.DraftSession) error {
	state, err := json.Marshal(toDraftState(session))
	if err != nil {
		return fmt.Errorf("failed to marshal draft %s: %w", session.DraftID, err)
	}

	query := `
		INSERT INTO draft_sessions (draft_id, current_variant, state, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (draft_id) DO UPDATE
		SET current_variant = EXCLUDED.current_variant,
		    state = EXCLUDED.state,
		    last_updated_at = EXCLUDED.last_updated_at;
	`
	_, err = r.pool.Exec(ctx, query,
		session.DraftID,
		string(session.Current),
		state,
		session.CreatedAt.UTC(),
		session.LastUpdatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to save draft %s: %w", session.DraftID, err)
	}
	return nil
}

func (r *draftRepository) FindDraftByID(ctx context.Context, draftID string) (*domain.DraftSession, error) {
	query := `
		SELECT current_variant, state, created_at, last_updated_at
		FROM draft_sessions
		WHERE draft_id = $1;
	`
	var (
		current   string
		raw       []byte
		createdAt time.Time
		updatedAt time.Time
	)
	err := r.pool.QueryRow(ctx, query, draftID).Scan(&current, &raw, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find draft %s: %w", draftID, err)
	}

	var state draftState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft %s: %w", draftID, err)
	}
	return state.toSession(draftID, current, createdAt, updatedAt), nil
}

func (r *draftRepository) DeleteDraft(ctx context.Context, draftID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM draft_sessions WHERE draft_id = $1;`, draftID)
	if err != nil {
		return fmt.Errorf("failed to delete draft %s: %w", draftID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *draftRepository) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM draft_sessions WHERE last_updated_at < $1;`, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired drafts: %w", err)
	}
	return tag.RowsAffected(), nil
}
