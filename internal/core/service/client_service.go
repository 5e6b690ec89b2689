package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/backoffice-labs/sales-api/internal/core/domain"
	"github.com/backoffice-labs/sales-api/internal/core/ports"
)

// ClientService implements client record management.
type ClientService struct {
	clients ports.ClientRepository
	logger  zerolog.Logger
}

func NewClientService(clients ports.ClientRepository, logger zerolog.Logger) *ClientService {
	return &ClientService{clients: clients, logger: logger}
}

func (s *ClientService) Create(ctx context.Context, input ports.ClientInput) (*domain.Client, error) {
	now := time.Now().UTC()
	client := &domain.Client{
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Address:   input.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.clients.Create(ctx, client); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("client_id", client.ID).Msg("client created")
	return client, nil
}

func (s *ClientService) Get(ctx context.Context, id int64) (*domain.Client, error) {
	return s.clients.FindByID(ctx, id)
}

func (s *ClientService) List(ctx context.Context) ([]*domain.Client, error) {
	return s.clients.List(ctx)
}

func (s *ClientService) Update(ctx context.Context, id int64, input ports.ClientInput) (*domain.Client, error) {
	client, err := s.clients.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Name != "" {
		client.Name = input.Name
	}
	if input.Email != "" {
		client.Email = input.Email
	}
	if input.Phone != "" {
		client.Phone = input.Phone
	}
	if input.Address != "" {
		client.Address = input.Address
	}
	client.UpdatedAt = time.Now().UTC()

	if err := s.clients.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *ClientService) Delete(ctx context.Context, id int64) error {
	return s.clients.Delete(ctx, id)
}
