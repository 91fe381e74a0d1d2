package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/oficinasys/service_order_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	clientRepo := newPgxClientRepository(dbPool)
	supplierRepo := newPgxSupplierRepository(dbPool)
	productRepo := newPgxProductRepository(dbPool)
	orderRepo := newPgxOrderRepository(dbPool, productRepo)
	stockEntryRepo := newPgxStockEntryRepository(dbPool, productRepo)
	invoiceRepo := newPgxInvoiceRepository(dbPool)
	payableRepo := newPgxPayableRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)

	return portsrepo.RepositoryProvider{
		ClientRepo:     clientRepo,
		SupplierRepo:   supplierRepo,
		ProductRepo:    productRepo,
		OrderRepo:      orderRepo,
		StockEntryRepo: stockEntryRepo,
		InvoiceRepo:    invoiceRepo,
		PayableRepo:    payableRepo,
		ReportingRepo:  reportingRepo,
		UserRepo:       userRepo,
	}
}
