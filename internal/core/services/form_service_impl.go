package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/ledger_entry_app/internal/apperrors"
	"github.com/SscSPs/ledger_entry_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_entry_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_entry_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_entry_app/internal/utils/dateutil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// formServiceImpl implements the FormSvcFacade interface. It owns the
// variant field store semantics: one shared slice plus lazily initialized
// per-variant private slices, with a fixed order of reactive passes
// (category sync, date-gap fix, sales-fetch trigger) after every committed
// field write.
//
// All mutation of one draft is serialized through a per-draft mutex, which
// stands in for the single-threaded UI loop the engine was designed
// against. The sales fetch and the ledger POST are the only operations that
// run outside that lock.
type formServiceImpl struct {
	BaseService
	draftRepo   portsrepo.DraftRepositoryFacade
	ledger      portssvc.LedgerSvc
	salesLookup portssvc.SalesLookupSvc

	defaults             Defaults
	retainAccountOnReset bool
	now                  func() time.Time

	mu     sync.Mutex
	locks  map[string]*sync.Mutex
	caches map[string]*SalesLookupCache
}

// FormServiceOption is a functional option for configuring the form service
type FormServiceOption func(*formServiceImpl)

// WithDefaults overrides the seed values for fresh variant slices
func WithDefaults(def Defaults) FormServiceOption {
	return func(s *formServiceImpl) {
		s.defaults = def
	}
}

// WithRetainAccountOnReset controls whether the selected account survives a
// post-submission reset
func WithRetainAccountOnReset(retain bool) FormServiceOption {
	return func(s *formServiceImpl) {
		s.retainAccountOnReset = retain
	}
}

// WithClock overrides the time source, used by tests to pin "today"
func WithClock(now func() time.Time) FormServiceOption {
	return func(s *formServiceImpl) {
		s.now = now
	}
}

// NewFormService creates a new form service with the provided collaborators
func NewFormService(
	draftRepo portsrepo.DraftRepositoryFacade,
	ledger portssvc.LedgerSvc,
	salesLookup portssvc.SalesLookupSvc,
	options ...FormServiceOption,
) portssvc.FormSvcFacade {
	svc := &formServiceImpl{
		draftRepo:            draftRepo,
		ledger:               ledger,
		salesLookup:          salesLookup,
		defaults:             DefaultDefaults,
		retainAccountOnReset: true,
		now:                  time.Now,
		locks:                make(map[string]*sync.Mutex),
		caches:               make(map[string]*SalesLookupCache),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure formServiceImpl implements the FormSvcFacade interface
var _ portssvc.FormSvcFacade = (*formServiceImpl)(nil)

func (s *formServiceImpl) today() string {
	return dateutil.FormatDay(s.now())
}

// lockFor returns the mutex serializing one draft's mutations.
func (s *formServiceImpl) lockFor(draftID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.locks[draftID]
	if !ok {
		m = &sync.Mutex{}
		s.locks[draftID] = m
	}
	return m
}

// cacheFor returns the session-scoped sales cache. One cache per draft
// keeps the memoization "one round trip per distinct date" for the life of
// the form, independent of other sessions.
func (s *formServiceImpl) cacheFor(draftID string) *SalesLookupCache {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.caches[draftID]
	if !ok {
		c = NewSalesLookupCache(s.salesLookup)
		s.caches[draftID] = c
	}
	return c
}

func (s *formServiceImpl) CreateDraft(ctx context.Context) (*domain.DraftSession, error) {
	now := s.now()
	today := s.today()
	sess := &domain.DraftSession{
		DraftID: uuid.NewString(),
		Current: domain.VariantSimpleExpense,
		Shared:  newSharedDefaults(today),
		Private: map[domain.TransactionVariant]domain.PrivateFields{
			domain.VariantSimpleExpense: variantRegistry[domain.VariantSimpleExpense].newDefaults(today, s.defaults),
		},
		Errors:        domain.ValidationErrors{},
		CreatedAt:     now,
		LastUpdatedAt: now,
	}
	if err := s.draftRepo.SaveDraft(ctx, *sess); err != nil {
		s.LogError(ctx, err, "Failed to save new draft")
		return nil, fmt.Errorf("failed to create draft: %w", err)
	}
	s.LogInfo(ctx, "Draft created", slog.String("draft_id", sess.DraftID))
	return sess, nil
}

func (s *formServiceImpl) GetDraft(ctx context.Context, draftID string) (*domain.DraftSession, error) {
	return s.draftRepo.FindDraftByID(ctx, draftID)
}

func (s *formServiceImpl) ChangeField(ctx context.Context, draftID string, field string, value any) (*domain.DraftSession, error) {
	lock := s.lockFor(draftID)
	lock.Lock()
	defer lock.Unlock()

	sess, err := s.draftRepo.FindDraftByID(ctx, draftID)
	if err != nil {
		return nil, err
	}

	if err := s.applyFieldChange(sess, field, value); err != nil {
		return nil, err
	}

	// The changed field's stale validation error is cleared; the rest are
	// left for the next submit attempt.
	delete(sess.Errors, field)

	// Reactive pass: the date-gap fix runs after the write, never
	// interleaved with it, and the (possibly corrected) sales date feeds
	// the cache trigger.
	if p, ok := sess.Private[sess.Current].(*domain.BrokerPrivate); ok {
		if field == domain.FieldTransferDate || field == domain.FieldSalesDate {
			if enforceDateGap(p) {
				delete(sess.Errors, domain.FieldSalesDate)
			}
			s.cacheFor(draftID).Observe(ctx, p.SalesDate)
		}
	}

	sess.LastUpdatedAt = s.now()
	if err := s.draftRepo.SaveDraft(ctx, *sess); err != nil {
		s.LogError(ctx, err, "Failed to save draft after field change", slog.String("draft_id", draftID))
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}
	return sess, nil
}

// applyFieldChange routes a field write to the shared slice or the active
// variant's private slice, running the category synchronizer inline for
// category-related edits.
func (s *formServiceImpl) applyFieldChange(sess *domain.DraftSession, field string, value any) error {
	switch field {
	case domain.FieldGrossAmount, domain.FieldBusinessReference, domain.FieldItem,
		domain.FieldNote, domain.FieldBusinessTimestamp:
		str, err := stringValue(field, value)
		if err != nil {
			return err
		}
		switch field {
		case domain.FieldGrossAmount:
			sess.Shared.GrossAmount = str
		case domain.FieldBusinessReference:
			sess.Shared.BusinessReference = str
		case domain.FieldItem:
			sess.Shared.Item = str
		case domain.FieldNote:
			sess.Shared.Note = str
		case domain.FieldBusinessTimestamp:
			sess.Shared.BusinessTimestamp = str
		}
		return nil
	}

	switch p := sess.Private[sess.Current].(type) {
	case *domain.CategorizedPrivate:
		return applyCategorizedChange(p, field, value)
	case *domain.TransferPrivate:
		return applyTransferChange(p, field, value)
	case *domain.BrokerPrivate:
		return applyBrokerChange(p, field, value)
	default:
		panic("ledger_entry: draft session has no private slice for active variant")
	}
}

func applyCategorizedChange(p *domain.CategorizedPrivate, field string, value any) error {
	switch field {
	case domain.FieldIncludeTax:
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("%w: field %q expects a boolean", apperrors.ErrValidation, field)
		}
		p.IncludeTax = b
		return nil
	case domain.FieldTaxRate:
		f, ok := value.(float64)
		if !ok {
			return fmt.Errorf("%w: field %q expects a number", apperrors.ErrValidation, field)
		}
		p.TaxRate = f
		return nil
	}

	str, err := stringValue(field, value)
	if err != nil {
		return err
	}
	switch field {
	case domain.FieldAccount:
		p.Account = str
	case domain.FieldCategory:
		p.Category = str
	case domain.FieldCategoryGroup:
		p.CategoryGroup = str
	case domain.FieldCustomCategoryGroup:
		p.CustomCategoryGroup = str
	case domain.FieldCustomCategory:
		p.CustomCategory = str
	default:
		return unknownField(field, p.Kind)
	}
	syncCategories(p, field)
	return nil
}

func applyTransferChange(p *domain.TransferPrivate, field string, value any) error {
	str, err := stringValue(field, value)
	if err != nil {
		return err
	}
	switch field {
	case domain.FieldAccount:
		p.Account = str
	case domain.FieldToAccount:
		p.ToAccount = str
	default:
		return unknownField(field, domain.VariantSimpleTransfer)
	}
	return nil
}

func applyBrokerChange(p *domain.BrokerPrivate, field string, value any) error {
	str, err := stringValue(field, value)
	if err != nil {
		return err
	}
	switch field {
	case domain.FieldTransferDate:
		p.TransferDate = str
	case domain.FieldSalesDate:
		p.SalesDate = str
	case domain.FieldPaynowTransfer:
		p.PaynowTransfer = str
	case domain.FieldAutopayTransfer:
		p.AutopayTransfer = str
	default:
		return unknownField(field, domain.VariantBrokerTransfer)
	}
	return nil
}

func stringValue(field string, value any) (string, error) {
	if value == nil {
		return "", nil
	}
	str, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: field %q expects a string", apperrors.ErrValidation, field)
	}
	return str, nil
}

func unknownField(field string, v domain.TransactionVariant) error {
	return fmt.Errorf("%w: field %q does not exist for variant %s", apperrors.ErrValidation, field, v)
}

func (s *formServiceImpl) SetVariant(ctx context.Context, draftID string, variant domain.TransactionVariant) (*domain.DraftSession, error) {
	if !variant.Valid() {
		return nil, fmt.Errorf("%w: unknown variant %q", apperrors.ErrValidation, variant)
	}

	lock := s.lockFor(draftID)
	lock.Lock()
	defer lock.Unlock()

	sess, err := s.draftRepo.FindDraftByID(ctx, draftID)
	if err != nil {
		return nil, err
	}

	sess.Current = variant
	if _, visited := sess.Private[variant]; !visited {
		sess.Private[variant] = variantRegistry[variant].newDefaults(s.today(), s.defaults)
	}

	// Entering the broker variant activates its sales date.
	if p, ok := sess.Private[variant].(*domain.BrokerPrivate); ok {
		s.cacheFor(draftID).Observe(ctx, p.SalesDate)
	}

	sess.LastUpdatedAt = s.now()
	if err := s.draftRepo.SaveDraft(ctx, *sess); err != nil {
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}
	return sess, nil
}

func (s *formServiceImpl) ResetDraft(ctx context.Context, draftID string) (*domain.DraftSession, error) {
	lock := s.lockFor(draftID)
	lock.Lock()
	defer lock.Unlock()

	sess, err := s.draftRepo.FindDraftByID(ctx, draftID)
	if err != nil {
		return nil, err
	}

	s.resetSession(sess, false)

	if err := s.draftRepo.SaveDraft(ctx, *sess); err != nil {
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}
	return sess, nil
}

// resetSession restores defaults across all variants. Unvisited variants go
// back to lazy initialization; the active one is rebuilt immediately. When
// keepAccount is set, the account chosen on the active slice carries over.
func (s *formServiceImpl) resetSession(sess *domain.DraftSession, keepAccount bool) {
	today := s.today()
	account := activeAccount(sess)

	sess.Shared = newSharedDefaults(today)
	sess.Private = map[domain.TransactionVariant]domain.PrivateFields{
		sess.Current: variantRegistry[sess.Current].newDefaults(today, s.defaults),
	}
	sess.Errors = domain.ValidationErrors{}
	sess.LastUpdatedAt = s.now()

	if keepAccount && account != "" {
		switch p := sess.Private[sess.Current].(type) {
		case *domain.CategorizedPrivate:
			p.Account = account
		case *domain.TransferPrivate:
			p.Account = account
		}
	}
}

func activeAccount(sess *domain.DraftSession) string {
	switch p := sess.Private[sess.Current].(type) {
	case *domain.CategorizedPrivate:
		return p.Account
	case *domain.TransferPrivate:
		return p.Account
	default:
		return ""
	}
}

func (s *formServiceImpl) RetrySalesLookup(ctx context.Context, draftID string) (*domain.DraftSession, error) {
	lock := s.lockFor(draftID)
	lock.Lock()
	defer lock.Unlock()

	sess, err := s.draftRepo.FindDraftByID(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if p, ok := sess.Private[sess.Current].(*domain.BrokerPrivate); ok {
		s.cacheFor(draftID).Retry(ctx, p.SalesDate)
	}
	return sess, nil
}

func (s *formServiceImpl) SalesLookupStatus(ctx context.Context, draftID string) (portssvc.SalesSnapshot, error) {
	sess, err := s.draftRepo.FindDraftByID(ctx, draftID)
	if err != nil {
		return portssvc.SalesSnapshot{}, err
	}
	if p, ok := sess.Private[sess.Current].(*domain.BrokerPrivate); ok {
		return s.cacheFor(draftID).Snapshot(p.SalesDate), nil
	}
	return portssvc.SalesSnapshot{}, nil
}

// Submit runs validate -> build -> POST -> reset. Validation failures stay
// on the session and never reach the network; transport failures preserve
// the draft and wrap apperrors.ErrSubmissionRejected.
func (s *formServiceImpl) Submit(ctx context.Context, draftID string) (*domain.DraftSession, error) {
	lock := s.lockFor(draftID)
	lock.Lock()
	defer lock.Unlock()

	sess, err := s.draftRepo.FindDraftByID(ctx, draftID)
	if err != nil {
		return nil, err
	}

	draft := sess.Merged()
	errs := ValidateDraft(draft, s.cachedSalesTotal(draftID, draft))
	if len(errs) > 0 {
		sess.Errors = errs
		sess.LastUpdatedAt = s.now()
		if err := s.draftRepo.SaveDraft(ctx, *sess); err != nil {
			return nil, fmt.Errorf("failed to save draft: %w", err)
		}
		s.LogInfo(ctx, "Submission blocked by validation",
			slog.String("draft_id", draftID), slog.Int("error_count", len(errs)))
		return sess, nil
	}

	sess.Errors = domain.ValidationErrors{}
	sess.Submitting = true
	defer func() {
		sess.Submitting = false
		if err := s.draftRepo.SaveDraft(ctx, *sess); err != nil {
			s.LogError(ctx, err, "Failed to save draft after submission", slog.String("draft_id", draftID))
		}
	}()

	entry := BuildLedgerEntry(draft)
	if err := s.ledger.SubmitEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Ledger submission failed", slog.String("draft_id", draftID))
		return nil, err
	}

	s.resetSession(sess, s.retainAccountOnReset)
	s.LogInfo(ctx, "Draft submitted",
		slog.String("draft_id", draftID),
		slog.String("transaction_type", string(draft.TransactionType)))
	return sess, nil
}

// cachedSalesTotal returns the resolved sales total for a broker draft's
// sales date, nil when unknown or not applicable.
func (s *formServiceImpl) cachedSalesTotal(draftID string, d domain.Draft) *decimal.Decimal {
	p, ok := d.Private.(*domain.BrokerPrivate)
	if !ok {
		return nil
	}
	total, ok := s.cacheFor(draftID).ResolvedTotal(p.SalesDate)
	if !ok {
		return nil
	}
	return &total
}
