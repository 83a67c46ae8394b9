package ledger_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/ledger_entry_app/internal/adapters/ledger"
	"github.com/SscSPs/ledger_entry_app/internal/apperrors"
	"github.com/SscSPs/ledger_entry_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitEntry_Success(t *testing.T) {
	var received dto.LedgerEntry
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/transactions", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := ledger.NewClient(server.URL)
	err := client.SubmitEntry(context.Background(), dto.LedgerEntry{
		TransactionType: "simple_expense",
		EventType:       "cost_paid",
		GrossAmount:     "100.5",
	})

	require.NoError(t, err)
	assert.Equal(t, "simple_expense", received.TransactionType)
	assert.Equal(t, "100.5", received.GrossAmount)
}

func TestSubmitEntry_RejectionWithJSONMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "duplicate business_reference"})
	}))
	defer server.Close()

	err := ledger.NewClient(server.URL).SubmitEntry(context.Background(), dto.LedgerEntry{})

	require.ErrorIs(t, err, apperrors.ErrSubmissionRejected)
	assert.Contains(t, err.Error(), "duplicate business_reference")
}

func TestSubmitEntry_RejectionWithPlainTextBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "ledger unavailable", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	err := ledger.NewClient(server.URL).SubmitEntry(context.Background(), dto.LedgerEntry{})

	require.ErrorIs(t, err, apperrors.ErrSubmissionRejected)
	assert.Contains(t, err.Error(), "ledger unavailable")
}

func TestSubmitEntry_ConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	err := ledger.NewClient(server.URL).SubmitEntry(context.Background(), dto.LedgerEntry{})

	require.ErrorIs(t, err, apperrors.ErrSubmissionRejected)
}
