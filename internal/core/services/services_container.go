package services

import (
	portsrepo "github.com/protecfeu/erp_backend/internal/core/ports/repositories"
	portssvc "github.com/protecfeu/erp_backend/internal/core/ports/services"
	"github.com/protecfeu/erp_backend/internal/platform/config"
)

// NewServiceContainer creates a service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo)
	container.Ledger = NewLedgerService(repos.LedgerRepo, repos.AccountRepo, repos.ReferenceRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo, cfg.DefaultCurrency)
	container.CashBox = NewCashBoxService(
		repos.CashBoxRepo,
		repos.LedgerRepo,
		repos.ProjectRepo,
		repos.AccountRepo,
		repos.ReferenceRepo,
		cfg.CashFundingAccountID,
		cfg.DefaultCurrency,
	)
	container.Inventory = NewInventoryService(repos.ProductRepo, repos.StockRepo, repos.ReferenceRepo)
	container.Project = NewProjectService(repos.ProjectRepo)
	container.Delivery = NewDeliveryService(repos.DeliveryRepo, repos.StockRepo, repos.ReferenceRepo)
	container.Reference = NewReferenceService(repos.ReferenceRepo, repos.AccountRepo)

	return container
}
