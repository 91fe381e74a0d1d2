package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/oficinasys/service_order_app/internal/core/domain"
	portsrepo "github.com/oficinasys/service_order_app/internal/core/ports/repositories"
)

// --- Mock ClientRepository ---

type MockClientRepository struct {
	mock.Mock
}

var _ portsrepo.ClientRepositoryFacade = (*MockClientRepository)(nil)

func (m *MockClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) ListClients(ctx context.Context, limit int, offset int) ([]domain.Client, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientRepository) HasServiceOrders(ctx context.Context, clientID string) (bool, error) {
	args := m.Called(ctx, clientID)
	return args.Bool(0), args.Error(1)
}

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) DeleteClient(ctx context.Context, clientID string) error {
	args := m.Called(ctx, clientID)
	return args.Error(0)
}

// --- Mock SupplierRepository ---

type MockSupplierRepository struct {
	mock.Mock
}

var _ portsrepo.SupplierRepositoryFacade = (*MockSupplierRepository)(nil)

func (m *MockSupplierRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	args := m.Called(ctx, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) ListSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) DeleteSupplier(ctx context.Context, supplierID string) error {
	args := m.Called(ctx, supplierID)
	return args.Error(0)
}

// --- Mock ProductRepository ---

type MockProductRepository struct {
	mock.Mock
}

var _ portsrepo.ProductRepositoryFacade = (*MockProductRepository)(nil)

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error) {
	args := m.Called(ctx, productIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context, limit int, offset int) ([]domain.Product, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) HasMovements(ctx context.Context, productID string) (bool, error) {
	args := m.Called(ctx, productID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

func (m *MockProductRepository) NextSKUNumber(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) SetStockQuantity(ctx context.Context, productID string, quantity int64, userID string, now time.Time) error {
	args := m.Called(ctx, productID, quantity, userID, now)
	return args.Error(0)
}

func (m *MockProductRepository) ReserveStockInTx(ctx context.Context, tx pgx.Tx, productID string, qty int64, userID string, now time.Time) error {
	args := m.Called(ctx, tx, productID, qty, userID, now)
	return args.Error(0)
}

func (m *MockProductRepository) ReleaseStockInTx(ctx context.Context, tx pgx.Tx, productID string, qty int64, userID string, now time.Time) error {
	args := m.Called(ctx, tx, productID, qty, userID, now)
	return args.Error(0)
}

func (m *MockProductRepository) ReceiveStockInTx(ctx context.Context, tx pgx.Tx, productID string, qty int64, unitCost decimal.Decimal, userID string, now time.Time) error {
	args := m.Called(ctx, tx, productID, qty, unitCost, userID, now)
	return args.Error(0)
}

// --- Mock OrderRepository ---

type MockOrderRepository struct {
	mock.Mock
}

var _ portsrepo.OrderRepositoryFacade = (*MockOrderRepository)(nil)

func (m *MockOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.ServiceOrder, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceOrder), args.Error(1)
}

func (m *MockOrderRepository) FindOrdersByIDs(ctx context.Context, orderIDs []string) ([]domain.ServiceOrder, error) {
	args := m.Called(ctx, orderIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServiceOrder), args.Error(1)
}

func (m *MockOrderRepository) ListOrders(ctx context.Context, filter portsrepo.ListOrdersFilter, limit int, nextToken string) ([]domain.ServiceOrder, string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).([]domain.ServiceOrder), args.String(1), args.Error(2)
}

func (m *MockOrderRepository) FindPartLineByID(ctx context.Context, lineID string) (*domain.PartLine, error) {
	args := m.Called(ctx, lineID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PartLine), args.Error(1)
}

func (m *MockOrderRepository) SaveOrder(ctx context.Context, order domain.ServiceOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateOrder(ctx context.Context, order domain.ServiceOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus, closedAt *time.Time, userID string, now time.Time) error {
	args := m.Called(ctx, orderID, status, closedAt, userID, now)
	return args.Error(0)
}

func (m *MockOrderRepository) DeleteOrder(ctx context.Context, orderID string, userID string, now time.Time) error {
	args := m.Called(ctx, orderID, userID, now)
	return args.Error(0)
}

func (m *MockOrderRepository) AddPartLine(ctx context.Context, orderID string, line domain.PartLine) error {
	args := m.Called(ctx, orderID, line)
	return args.Error(0)
}

func (m *MockOrderRepository) RemovePartLine(ctx context.Context, lineID string, userID string, now time.Time) error {
	args := m.Called(ctx, lineID, userID, now)
	return args.Error(0)
}

// --- Mock StockEntryRepository ---

type MockStockEntryRepository struct {
	mock.Mock
}

var _ portsrepo.StockEntryRepositoryFacade = (*MockStockEntryRepository)(nil)

func (m *MockStockEntryRepository) FindStockEntryByID(ctx context.Context, entryID string) (*domain.StockEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockEntry), args.Error(1)
}

func (m *MockStockEntryRepository) ListStockEntries(ctx context.Context, limit int, offset int) ([]domain.StockEntry, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockEntry), args.Error(1)
}

func (m *MockStockEntryRepository) SaveStockEntry(ctx context.Context, entry domain.StockEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// --- Mock InvoiceRepository ---

type MockInvoiceRepository struct {
	mock.Mock
}

var _ portsrepo.InvoiceRepositoryFacade = (*MockInvoiceRepository)(nil)

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoices(ctx context.Context, clientID string, limit int, offset int) ([]domain.Invoice, error) {
	args := m.Called(ctx, clientID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockInvoiceRepository) ListPendingPayments(ctx context.Context, from time.Time, to time.Time) ([]domain.Payment, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string, userID string, now time.Time) error {
	args := m.Called(ctx, invoiceID, userID, now)
	return args.Error(0)
}

func (m *MockInvoiceRepository) UpdatePaymentStatus(ctx context.Context, paymentID string, status domain.PaymentStatus, userID string, now time.Time) error {
	args := m.Called(ctx, paymentID, status, userID, now)
	return args.Error(0)
}

// --- Mock PayableRepository ---

type MockPayableRepository struct {
	mock.Mock
}

var _ portsrepo.PayableRepositoryFacade = (*MockPayableRepository)(nil)

func (m *MockPayableRepository) FindPayableByID(ctx context.Context, payableID string) (*domain.PayableAccount, error) {
	args := m.Called(ctx, payableID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayableAccount), args.Error(1)
}

func (m *MockPayableRepository) ListPayables(ctx context.Context, filter portsrepo.ListPayablesFilter, limit int, offset int) ([]domain.PayableAccount, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PayableAccount), args.Error(1)
}

func (m *MockPayableRepository) ListPendingPayables(ctx context.Context, from time.Time, to time.Time) ([]domain.PayableAccount, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PayableAccount), args.Error(1)
}

func (m *MockPayableRepository) SavePayables(ctx context.Context, payables []domain.PayableAccount) error {
	args := m.Called(ctx, payables)
	return args.Error(0)
}

func (m *MockPayableRepository) UpdatePayable(ctx context.Context, payable domain.PayableAccount) error {
	args := m.Called(ctx, payable)
	return args.Error(0)
}

func (m *MockPayableRepository) UpdatePayableStatus(ctx context.Context, payableID string, status domain.PayableStatus, paidAt *time.Time, userID string, now time.Time) error {
	args := m.Called(ctx, payableID, status, paidAt, userID, now)
	return args.Error(0)
}

func (m *MockPayableRepository) DeletePayable(ctx context.Context, payableID string) error {
	args := m.Called(ctx, payableID)
	return args.Error(0)
}

// --- Mock ReportingRepository ---

type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) GetRevenueBetween(ctx context.Context, from time.Time, to time.Time) (domain.BillingSummary, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(domain.BillingSummary), args.Error(1)
}

func (m *MockReportingRepository) GetRevenueByMonth(ctx context.Context, from time.Time, to time.Time) ([]domain.MonthlyRevenuePoint, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyRevenuePoint), args.Error(1)
}

func (m *MockReportingRepository) CountOrdersByStatus(ctx context.Context, status domain.OrderStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportingRepository) GetBillingByClient(ctx context.Context, from time.Time, to time.Time) ([]domain.ClientBillingRow, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClientBillingRow), args.Error(1)
}

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
