package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/backoffice-labs/sales-api/internal/core/domain"
	"github.com/backoffice-labs/sales-api/internal/core/ports"
)

// IdempotencyStore abstracts the replay-protection store (Redis). Lookup
// returns the sale id previously stored under key, if any.
type IdempotencyStore interface {
	Lookup(ctx context.Context, key string) (int64, bool, error)
	Store(ctx context.Context, key string, saleID int64) error
}

// RestockNotifier receives low-stock signals after a committed sale.
type RestockNotifier interface {
	LowStock(alert domain.RestockAlert)
}

// SaleService commits multi-line sales while keeping inventory and the
// financial ledger consistent: every requested line is validated against
// current stock before any write, and the sale record, stock decrements, and
// ledger credit apply as one all-or-nothing unit.
type SaleService struct {
	sales    ports.SaleRepository
	products ports.ProductRepository
	clients  ports.ClientRepository
	ledger   ports.LedgerRepository
	idem     IdempotencyStore
	notifier RestockNotifier
	// restockThreshold: a post-sale stock below this raises a restock alert.
	restockThreshold int64
	logger           zerolog.Logger
}

func NewSaleService(
	sales ports.SaleRepository,
	products ports.ProductRepository,
	clients ports.ClientRepository,
	ledger ports.LedgerRepository,
	idem IdempotencyStore,
	notifier RestockNotifier,
	restockThreshold int64,
	logger zerolog.Logger,
) *SaleService {
	return &SaleService{
		sales:            sales,
		products:         products,
		clients:          clients,
		ledger:           ledger,
		idem:             idem,
		notifier:         notifier,
		restockThreshold: restockThreshold,
		logger:           logger,
	}
}

// CreateSale validates every requested line, then commits the sale.
//
// Validation runs to completion for all lines before the first write, so a
// failure on any line leaves nothing committed. Duplicate product references
// within one request are checked against a running balance: two lines whose
// combined quantity exceeds current stock fail even when each line alone
// would pass.
//
// The commit decrements stock with an atomic conditional decrement per
// product, in ascending product-id order. A decrement that reports
// insufficient availability (a concurrent sale won the stock) rolls back the
// decrements already applied for this sale and surfaces
// domain.ErrInsufficientStock. Sale creation and ledger posting failures
// unwind the same way, so no partial sale is ever observable.
func (s *SaleService) CreateSale(ctx context.Context, input ports.CreateSaleInput) (*ports.SaleResult, error) {
	if input.IdempotencyKey != "" && s.idem != nil {
		if result, ok := s.replay(ctx, input.IdempotencyKey); ok {
			return result, nil
		}
	}

	if len(input.Items) == 0 {
		return nil, domain.ErrEmptyOrder
	}
	if _, err := s.clients.FindByID(ctx, input.ClientID); err != nil {
		return nil, err
	}

	// Phase 1: validate all lines, accumulating the total and the combined
	// quantity needed per product.
	total := decimal.Zero
	needed := make(map[int64]int64, len(input.Items))
	for _, line := range input.Items {
		if line.Quantity <= 0 {
			return nil, domain.ErrInvalidQuantity
		}
		if line.UnitPrice.IsNegative() {
			return nil, domain.ErrNegativePrice
		}
		product, err := s.products.FindByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		needed[product.ID] += line.Quantity
		if needed[product.ID] > product.Stock {
			return nil, domain.ErrInsufficientStock
		}
		// The caller-supplied price is the sale-time snapshot; the product's
		// current price is deliberately not consulted.
		total = total.Add(line.UnitPrice.Mul(decimal.NewFromInt(line.Quantity)))
	}

	// Phase 2: conditional decrements in ascending product-id order, so
	// concurrent multi-product sales never interleave into a deadlock-shaped
	// wait and rollbacks are deterministic.
	productIDs := make([]int64, 0, len(needed))
	for id := range needed {
		productIDs = append(productIDs, id)
	}
	sort.Slice(productIDs, func(i, j int) bool { return productIDs[i] < productIDs[j] })

	remaining := make(map[int64]int64, len(productIDs))
	decremented := make([]int64, 0, len(productIDs))
	for _, id := range productIDs {
		left, ok, err := s.products.TryDecrementStock(ctx, id, needed[id])
		if err != nil {
			s.restock(ctx, decremented, needed)
			return nil, fmt.Errorf("decrement stock for product %d: %w", id, err)
		}
		if !ok {
			// A concurrent sale consumed the stock between validation and
			// commit. Undo this sale's decrements and reject the whole request.
			s.restock(ctx, decremented, needed)
			return nil, domain.ErrInsufficientStock
		}
		decremented = append(decremented, id)
		remaining[id] = left
	}

	now := time.Now().UTC()
	sale := &domain.Sale{
		ClientID:  input.ClientID,
		Total:     total,
		CreatedAt: now,
	}
	for _, line := range input.Items {
		sale.Items = append(sale.Items, domain.SaleItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}
	if err := s.sales.Create(ctx, sale); err != nil {
		s.restock(ctx, decremented, needed)
		return nil, fmt.Errorf("create sale: %w", err)
	}

	entry := &domain.FinancialEntry{
		Kind:        domain.EntryCredit,
		Amount:      total,
		Description: fmt.Sprintf("sale #%d", sale.ID),
		CreatedAt:   now,
	}
	if err := s.ledger.Append(ctx, entry); err != nil {
		// Unwind the sale so no committed sale exists without its credit.
		if delErr := s.sales.Delete(ctx, sale.ID); delErr != nil {
			s.logger.Error().Err(delErr).Int64("sale_id", sale.ID).Msg("failed to unwind sale after ledger error")
		}
		s.restock(ctx, decremented, needed)
		return nil, fmt.Errorf("post ledger entry: %w", err)
	}

	if input.IdempotencyKey != "" && s.idem != nil {
		if err := s.idem.Store(ctx, input.IdempotencyKey, sale.ID); err != nil {
			s.logger.Warn().Err(err).Str("idempotency_key", input.IdempotencyKey).Msg("failed to store idempotency key")
		}
	}

	if s.notifier != nil {
		for _, id := range productIDs {
			if remaining[id] < s.restockThreshold {
				s.notifier.LowStock(domain.RestockAlert{ProductID: id, Remaining: remaining[id]})
			}
		}
	}

	s.logger.Info().
		Int64("sale_id", sale.ID).
		Int64("client_id", sale.ClientID).
		Str("total", total.String()).
		Int("items", len(sale.Items)).
		Msg("sale committed")

	return &ports.SaleResult{
		ID:        sale.ID,
		ClientID:  sale.ClientID,
		Total:     sale.Total,
		Items:     sale.Items,
		CreatedAt: sale.CreatedAt,
	}, nil
}

// GetSale returns a sale with its items.
func (s *SaleService) GetSale(ctx context.Context, id int64) (*domain.Sale, error) {
	return s.sales.FindByID(ctx, id)
}

// ListSales returns sales, optionally scoped to one client.
func (s *SaleService) ListSales(ctx context.Context, filter ports.ListSalesFilter) ([]*domain.Sale, error) {
	return s.sales.List(ctx, filter)
}

// replay resolves an idempotency key to its previously committed sale.
// Store errors degrade to a cache miss: the request is processed normally.
func (s *SaleService) replay(ctx context.Context, key string) (*ports.SaleResult, bool) {
	saleID, found, err := s.idem.Lookup(ctx, key)
	if err != nil {
		s.logger.Warn().Err(err).Str("idempotency_key", key).Msg("idempotency lookup failed, processing anyway")
		return nil, false
	}
	if !found {
		return nil, false
	}
	sale, err := s.sales.FindByID(ctx, saleID)
	if err != nil {
		s.logger.Warn().Err(err).Int64("sale_id", saleID).Msg("idempotency key points at missing sale, processing anyway")
		return nil, false
	}
	s.logger.Info().Str("idempotency_key", key).Int64("sale_id", sale.ID).Msg("idempotent replay")
	return &ports.SaleResult{
		ID:             sale.ID,
		ClientID:       sale.ClientID,
		Total:          sale.Total,
		Items:          sale.Items,
		CreatedAt:      sale.CreatedAt,
		AlreadyExisted: true,
	}, true
}

// restock reverses the decrements applied so far for an aborted commit.
func (s *SaleService) restock(ctx context.Context, productIDs []int64, needed map[int64]int64) {
	for _, id := range productIDs {
		if err := s.products.RestoreStock(ctx, id, needed[id]); err != nil {
			s.logger.Error().Err(err).Int64("product_id", id).Int64("qty", needed[id]).Msg("failed to restore stock")
		}
	}
}
