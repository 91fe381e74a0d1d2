package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/oficinasys/service_order_app/internal/apperrors"
	"github.com/oficinasys/service_order_app/internal/core/domain"
	portsrepo "github.com/oficinasys/service_order_app/internal/core/ports/repositories"
	portssvc "github.com/oficinasys/service_order_app/internal/core/ports/services"
	"github.com/oficinasys/service_order_app/internal/dto"
	"github.com/oficinasys/service_order_app/internal/middleware"
)

// orderService provides service order lifecycle and part line operations.
type orderService struct {
	orderRepo   portsrepo.OrderRepositoryFacade
	productRepo portsrepo.ProductRepositoryFacade
	clientRepo  portsrepo.ClientRepositoryFacade
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo portsrepo.OrderRepositoryFacade, productRepo portsrepo.ProductRepositoryFacade, clientRepo portsrepo.ClientRepositoryFacade) portssvc.OrderSvcFacade {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		clientRepo:  clientRepo,
	}
}

var _ portssvc.OrderSvcFacade = (*orderService)(nil)

// buildPartLines snapshots product descriptions and sale prices into part
// lines. Quantities must be positive and every product must exist.
func (s *orderService) buildPartLines(ctx context.Context, orderID string, reqs []dto.CreatePartLineRequest, userID string, now time.Time) ([]domain.PartLine, error) {
	if len(reqs) == 0 {
		return nil, nil
	}

	productIDs := make([]string, 0, len(reqs))
	for _, r := range reqs {
		if r.Quantity <= 0 {
			return nil, fmt.Errorf("%w: part quantity must be positive for product %s", apperrors.ErrValidation, r.ProductID)
		}
		productIDs = append(productIDs, r.ProductID)
	}

	productsMap, err := s.productRepo.FindProductsByIDs(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products for part lines: %w", err)
	}

	lines := make([]domain.PartLine, len(reqs))
	for i, r := range reqs {
		product, found := productsMap[r.ProductID]
		if !found {
			return nil, fmt.Errorf("%w: product %s", apperrors.ErrNotFound, r.ProductID)
		}
		lines[i] = domain.PartLine{
			PartLineID:  uuid.NewString(),
			OrderID:     orderID,
			ProductID:   product.ProductID,
			Description: product.Description,
			Quantity:    r.Quantity,
			UnitPrice:   product.SalePrice,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
	}
	return lines, nil
}

// CreateOrder opens a new order. Initial part lines snapshot product prices
// and reserve stock atomically with the order insert.
func (s *orderService) CreateOrder(ctx context.Context, req dto.CreateOrderRequest, userID string) (*domain.ServiceOrder, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.ServiceValue.IsNegative() {
		return nil, fmt.Errorf("%w: service value must not be negative", apperrors.ErrValidation)
	}

	if _, err := s.clientRepo.FindClientByID(ctx, req.ClientID); err != nil {
		return nil, fmt.Errorf("failed to find client for order: %w", err)
	}

	now := time.Now().UTC()
	openedAt := now
	if req.OpenedAt != nil {
		openedAt = req.OpenedAt.UTC()
	}

	orderID := uuid.NewString()
	lines, err := s.buildPartLines(ctx, orderID, req.PartLines, userID, now)
	if err != nil {
		return nil, err
	}

	order := domain.ServiceOrder{
		OrderID:            orderID,
		ClientID:           req.ClientID,
		ProblemDescription: req.ProblemDescription,
		Status:             domain.OrderOpen,
		ServiceValue:       req.ServiceValue,
		OpenedAt:           openedAt,
		PartLines:          lines,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.orderRepo.SaveOrder(ctx, order); err != nil {
		logger.Error("Failed to save order", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	logger.Info("Order created", slog.String("order_id", order.OrderID), slog.String("client_id", order.ClientID))
	return &order, nil
}

// GetOrderByID retrieves an order with its part lines.
func (s *orderService) GetOrderByID(ctx context.Context, orderID string) (*domain.ServiceOrder, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to find order by ID %s: %w", orderID, err)
	}
	return order, nil
}

// ListOrders retrieves orders matching the filter with token pagination.
func (s *orderService) ListOrders(ctx context.Context, filter portsrepo.ListOrdersFilter, limit int, nextToken string) ([]domain.ServiceOrder, string, error) {
	if limit <= 0 {
		limit = 20
	}
	orders, token, err := s.orderRepo.ListOrders(ctx, filter, limit, nextToken)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, token, nil
}

// UpdateOrder updates the header of an open order.
func (s *orderService) UpdateOrder(ctx context.Context, orderID string, req dto.UpdateOrderRequest, userID string) (*domain.ServiceOrder, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to find order for update: %w", err)
	}
	if !order.Editable() {
		return nil, fmt.Errorf("%w: order %s is %s", apperrors.ErrOrderLocked, orderID, order.Status)
	}

	if req.ClientID != nil {
		if _, err := s.clientRepo.FindClientByID(ctx, *req.ClientID); err != nil {
			return nil, fmt.Errorf("failed to find client for order update: %w", err)
		}
		order.ClientID = *req.ClientID
	}
	if req.ProblemDescription != nil {
		order.ProblemDescription = *req.ProblemDescription
	}
	if req.ServiceValue != nil {
		if req.ServiceValue.IsNegative() {
			return nil, fmt.Errorf("%w: service value must not be negative", apperrors.ErrValidation)
		}
		order.ServiceValue = *req.ServiceValue
	}

	order.LastUpdatedAt = time.Now().UTC()
	order.LastUpdatedBy = userID

	if err := s.orderRepo.UpdateOrder(ctx, *order); err != nil {
		logger.Error("Failed to update order", slog.String("error", err.Error()), slog.String("order_id", orderID))
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	return order, nil
}

// CloseOrder moves an open order to CLOSED.
func (s *orderService) CloseOrder(ctx context.Context, orderID string, userID string) (*domain.ServiceOrder, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to find order for close: %w", err)
	}
	if order.Status != domain.OrderOpen {
		return nil, fmt.Errorf("%w: cannot close order in status %s", apperrors.ErrInvalidTransition, order.Status)
	}

	now := time.Now().UTC()
	if err := s.orderRepo.UpdateOrderStatus(ctx, orderID, domain.OrderClosed, &now, userID, now); err != nil {
		logger.Error("Failed to close order", slog.String("error", err.Error()), slog.String("order_id", orderID))
		return nil, fmt.Errorf("failed to close order: %w", err)
	}

	logger.Info("Order closed", slog.String("order_id", orderID))

	order.Status = domain.OrderClosed
	order.ClosedAt = &now
	order.LastUpdatedAt = now
	order.LastUpdatedBy = userID
	return order, nil
}

// ReopenOrder moves a closed order back to OPEN. Invoiced orders stay locked
// until their invoice is cancelled.
func (s *orderService) ReopenOrder(ctx context.Context, orderID string, userID string) (*domain.ServiceOrder, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to find order for reopen: %w", err)
	}
	if order.Status != domain.OrderClosed {
		return nil, fmt.Errorf("%w: cannot reopen order in status %s", apperrors.ErrInvalidTransition, order.Status)
	}

	now := time.Now().UTC()
	if err := s.orderRepo.UpdateOrderStatus(ctx, orderID, domain.OrderOpen, nil, userID, now); err != nil {
		logger.Error("Failed to reopen order", slog.String("error", err.Error()), slog.String("order_id", orderID))
		return nil, fmt.Errorf("failed to reopen order: %w", err)
	}

	logger.Info("Order reopened", slog.String("order_id", orderID))

	order.Status = domain.OrderOpen
	order.ClosedAt = nil
	order.LastUpdatedAt = now
	order.LastUpdatedBy = userID
	return order, nil
}

// DeleteOrder removes a non-invoiced order, releasing any reserved stock.
func (s *orderService) DeleteOrder(ctx context.Context, orderID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("failed to find order for deletion: %w", err)
	}
	if !order.Deletable() {
		return fmt.Errorf("%w: order %s is invoiced", apperrors.ErrOrderLocked, orderID)
	}

	now := time.Now().UTC()
	if err := s.orderRepo.DeleteOrder(ctx, orderID, userID, now); err != nil {
		logger.Error("Failed to delete order", slog.String("error", err.Error()), slog.String("order_id", orderID))
		return fmt.Errorf("failed to delete order: %w", err)
	}

	logger.Info("Order deleted", slog.String("order_id", orderID))
	return nil
}

// AddPartLine appends a part to an open order, snapshotting price and
// description and reserving stock atomically.
func (s *orderService) AddPartLine(ctx context.Context, orderID string, req dto.CreatePartLineRequest, userID string) (*domain.ServiceOrder, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to find order for part line: %w", err)
	}
	if !order.Editable() {
		return nil, fmt.Errorf("%w: order %s is %s", apperrors.ErrOrderLocked, orderID, order.Status)
	}

	now := time.Now().UTC()
	lines, err := s.buildPartLines(ctx, orderID, []dto.CreatePartLineRequest{req}, userID, now)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.AddPartLine(ctx, orderID, lines[0]); err != nil {
		logger.Error("Failed to add part line", slog.String("error", err.Error()), slog.String("order_id", orderID), slog.String("product_id", req.ProductID))
		return nil, fmt.Errorf("failed to add part line: %w", err)
	}

	logger.Info("Part line added", slog.String("order_id", orderID), slog.String("product_id", req.ProductID), slog.Int64("quantity", req.Quantity))
	return s.orderRepo.FindOrderByID(ctx, orderID)
}

// RemovePartLine removes a part from an open order, releasing its stock.
func (s *orderService) RemovePartLine(ctx context.Context, orderID string, lineID string, userID string) (*domain.ServiceOrder, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to find order for part removal: %w", err)
	}
	if !order.Editable() {
		return nil, fmt.Errorf("%w: order %s is %s", apperrors.ErrOrderLocked, orderID, order.Status)
	}

	line, err := s.orderRepo.FindPartLineByID(ctx, lineID)
	if err != nil {
		return nil, fmt.Errorf("failed to find part line %s: %w", lineID, err)
	}
	if line.OrderID != orderID {
		return nil, fmt.Errorf("%w: part line %s does not belong to order %s", apperrors.ErrNotFound, lineID, orderID)
	}

	now := time.Now().UTC()
	if err := s.orderRepo.RemovePartLine(ctx, lineID, userID, now); err != nil {
		logger.Error("Failed to remove part line", slog.String("error", err.Error()), slog.String("order_id", orderID), slog.String("line_id", lineID))
		return nil, fmt.Errorf("failed to remove part line: %w", err)
	}

	logger.Info("Part line removed", slog.String("order_id", orderID), slog.String("line_id", lineID))
	return s.orderRepo.FindOrderByID(ctx, orderID)
}
