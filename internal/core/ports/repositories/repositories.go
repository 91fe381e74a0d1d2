package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	ClientRepo     ClientRepositoryFacade
	SupplierRepo   SupplierRepositoryFacade
	ProductRepo    ProductRepositoryFacade
	OrderRepo      OrderRepositoryFacade
	StockEntryRepo StockEntryRepositoryFacade
	InvoiceRepo    InvoiceRepositoryFacade
	PayableRepo    PayableRepositoryFacade
	ReportingRepo  ReportingRepository
	UserRepo       UserRepositoryFacade
}
