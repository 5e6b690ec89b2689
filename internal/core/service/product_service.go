package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/backoffice-labs/sales-api/internal/core/domain"
	"github.com/backoffice-labs/sales-api/internal/core/ports"
)

// ProductService implements product record management. It enforces the
// product invariants on the management path: price and stock never negative.
type ProductService struct {
	products ports.ProductRepository
	logger   zerolog.Logger
}

func NewProductService(products ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{products: products, logger: logger}
}

func (s *ProductService) Create(ctx context.Context, input ports.ProductInput) (*domain.Product, error) {
	if input.Price.IsNegative() {
		return nil, domain.ErrNegativePrice
	}
	if input.Stock < 0 {
		return nil, domain.ErrNegativeStock
	}

	now := time.Now().UTC()
	product := &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("product_id", product.ID).Str("price", product.Price.String()).Msg("product created")
	return product, nil
}

func (s *ProductService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	return s.products.FindByID(ctx, id)
}

func (s *ProductService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.products.List(ctx)
}

func (s *ProductService) Update(ctx context.Context, id int64, input ports.ProductInput) (*domain.Product, error) {
	if input.Price.IsNegative() {
		return nil, domain.ErrNegativePrice
	}
	if input.Stock < 0 {
		return nil, domain.ErrNegativeStock
	}

	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Name != "" {
		product.Name = input.Name
	}
	if input.Description != "" {
		product.Description = input.Description
	}
	product.Price = input.Price
	product.Stock = input.Stock
	product.UpdatedAt = time.Now().UTC()

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id int64) error {
	return s.products.Delete(ctx, id)
}
