package services

import (
	portsrepo "github.com/oficinasys/service_order_app/internal/core/ports/repositories"
	portssvc "github.com/oficinasys/service_order_app/internal/core/ports/services"
	"github.com/oficinasys/service_order_app/internal/platform/brasilapi"
	"github.com/oficinasys/service_order_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Client = NewClientService(repos.ClientRepo)
	container.Supplier = NewSupplierService(repos.SupplierRepo)
	container.Product = NewProductService(repos.ProductRepo)
	container.Order = NewOrderService(repos.OrderRepo, repos.ProductRepo, repos.ClientRepo)
	container.StockEntry = NewStockEntryService(repos.StockEntryRepo, repos.ProductRepo, repos.SupplierRepo)
	container.Invoice = NewInvoiceService(repos.InvoiceRepo, repos.OrderRepo)
	container.Payable = NewPayableService(repos.PayableRepo, repos.SupplierRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo, repos.InvoiceRepo, repos.PayableRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Auth = NewAuthService(cfg)
	container.Lookup = NewLookupService(brasilapi.NewClient(cfg.BrasilAPIBaseURL, cfg.LookupTimeout))

	return container
}
