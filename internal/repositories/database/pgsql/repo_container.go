package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/protecfeu/erp_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every PostgreSQL repository over one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:   newPgxAccountRepository(dbPool),
		LedgerRepo:    newPgxLedgerRepository(dbPool),
		CashBoxRepo:   newPgxCashBoxRepository(dbPool),
		ReportingRepo: newPgxReportingRepository(dbPool),
		ProductRepo:   newPgxProductRepository(dbPool),
		StockRepo:     newPgxStockRepository(dbPool),
		ProjectRepo:   newPgxProjectRepository(dbPool),
		DeliveryRepo:  newPgxDeliveryRepository(dbPool),
		ReferenceRepo: newPgxReferenceRepository(dbPool),
	}
}
