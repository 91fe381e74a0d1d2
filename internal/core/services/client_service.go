package services

import (
	"context"
	"errors"
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
	"github.com/oficinasys/service_order_app/internal/utils"
)

var (
	ErrClientHasOrders = errors.New("client has service orders and cannot be deleted")
	ErrInvalidCPF      = errors.New("invalid CPF")
	ErrInvalidCNPJ     = errors.New("invalid CNPJ")
)

// clientService provides client registry operations.
type clientService struct {
	clientRepo portsrepo.ClientRepositoryFacade
}

// NewClientService creates a new ClientService.
func NewClientService(clientRepo portsrepo.ClientRepositoryFacade) portssvc.ClientSvcFacade {
	return &clientService{clientRepo: clientRepo}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

// CreateClient registers a new client after document validation.
func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest, userID string) (*domain.Client, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	client := domain.Client{
		ClientID:          uuid.NewString(),
		Kind:              req.Kind,
		StateRegistration: req.StateRegistration,
		Email:             req.Email,
		Phone:             utils.OnlyDigits(req.Phone),
		CEP:               utils.OnlyDigits(req.CEP),
		Street:            req.Street,
		Number:            req.Number,
		District:          req.District,
		City:              req.City,
		State:             req.State,
	}

	switch req.Kind {
	case domain.Individual:
		cpf := utils.OnlyDigits(req.CPF)
		if !utils.IsValidCPF(cpf) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidCPF, req.CPF)
		}
		client.Name = req.Name
		client.CPF = cpf
	case domain.Organization:
		cnpj := utils.OnlyDigits(req.CNPJ)
		if !utils.IsValidCNPJ(cnpj) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidCNPJ, req.CNPJ)
		}
		client.LegalName = req.LegalName
		client.CNPJ = cnpj
	default:
		return nil, fmt.Errorf("%w: unknown client kind %q", apperrors.ErrValidation, req.Kind)
	}

	now := time.Now().UTC()
	client.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		logger.Error("Failed to save client", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save client: %w", err)
	}

	logger.Info("Client created", slog.String("client_id", client.ClientID))
	return &client, nil
}

// GetClientByID retrieves a specific client.
func (s *clientService) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to find client by ID %s: %w", clientID, err)
	}
	return client, nil
}

// ListClients retrieves a paginated list of clients.
func (s *clientService) ListClients(ctx context.Context, limit int, offset int) ([]domain.Client, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	clients, err := s.clientRepo.ListClients(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

// UpdateClient applies the provided changes to an existing client.
func (s *clientService) UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, userID string) (*domain.Client, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to find client for update: %w", err)
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.LegalName != nil {
		client.LegalName = *req.LegalName
	}
	if req.StateRegistration != nil {
		client.StateRegistration = *req.StateRegistration
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.Phone != nil {
		client.Phone = utils.OnlyDigits(*req.Phone)
	}
	if req.CEP != nil {
		client.CEP = utils.OnlyDigits(*req.CEP)
	}
	if req.Street != nil {
		client.Street = *req.Street
	}
	if req.Number != nil {
		client.Number = *req.Number
	}
	if req.District != nil {
		client.District = *req.District
	}
	if req.City != nil {
		client.City = *req.City
	}
	if req.State != nil {
		client.State = *req.State
	}

	client.LastUpdatedAt = time.Now().UTC()
	client.LastUpdatedBy = userID

	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		logger.Error("Failed to update client", slog.String("error", err.Error()), slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	return client, nil
}

// DeleteClient removes a client that has no service orders.
func (s *clientService) DeleteClient(ctx context.Context, clientID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.clientRepo.FindClientByID(ctx, clientID); err != nil {
		return fmt.Errorf("failed to find client for deletion: %w", err)
	}

	hasOrders, err := s.clientRepo.HasServiceOrders(ctx, clientID)
	if err != nil {
		return fmt.Errorf("failed to check client orders: %w", err)
	}
	if hasOrders {
		return ErrClientHasOrders
	}

	if err := s.clientRepo.DeleteClient(ctx, clientID); err != nil {
		logger.Error("Failed to delete client", slog.String("error", err.Error()), slog.String("client_id", clientID))
		return fmt.Errorf("failed to delete client: %w", err)
	}

	logger.Info("Client deleted", slog.String("client_id", clientID))
	return nil
}
