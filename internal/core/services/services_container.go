package services

import (
	"github.com/MeiyanW/inner_court_app/internal/core/domain"
	portsrepo "github.com/MeiyanW/inner_court_app/internal/core/ports/repositories"
	portssvc "github.com/MeiyanW/inner_court_app/internal/core/ports/services"
	"github.com/MeiyanW/inner_court_app/internal/platform/config"
)

// NewServiceContainer wires all services with their dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Ledger first: balance derivation feeds the transfer and member services.
	container.Ledger = NewLedgerService(repos.TransactionRepo)

	container.Transfer = NewTransferService(
		repos.TransactionRepo,
		repos.MemberRepo,
		container.Ledger,
		domain.DefaultStipendSchedule(),
	)

	container.Member = NewMemberService(
		repos.MemberRepo,
		container.Ledger,
		container.Transfer,
	)

	container.Item = NewItemService(repos.ItemRepo, repos.MemberRepo)
	container.Auth = NewTokenService(cfg, repos.MemberRepo)

	return container
}
