package services

import (
	portsrepo "github.com/SscSPs/ledger_entry_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_entry_app/internal/core/ports/services"
)

// NewServiceContainer creates the service container with properly
// initialized dependencies. Outbound collaborators (ledger, sales lookup)
// are injected so tests and alternative transports can substitute them.
func NewServiceContainer(
	repos *portsrepo.RepositoryProvider,
	ledger portssvc.LedgerSvc,
	salesLookup portssvc.SalesLookupSvc,
	formOptions ...FormServiceOption,
) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Form: NewFormService(repos.DraftRepo, ledger, salesLookup, formOptions...),
	}
}
