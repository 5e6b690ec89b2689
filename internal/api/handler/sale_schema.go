package handler

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/backoffice-labs/sales-api/internal/core/domain"
)

// --- Request / Response types ---

// saleLineRequest is one requested line item. Price is the unit price the
// caller captures at sale time; it is decimal so money never rides a float.
type saleLineRequest struct {
	ProductID int64           `json:"productId" validate:"required,gt=0"`
	Quantity  int64           `json:"quantity"  validate:"required,gt=0"`
	Price     decimal.Decimal `json:"price"`
}

// createSaleRequest intentionally has no min=1 tag on Items: an empty list
// must reach the sale processor so it is rejected as an empty order, not as
// a generic shape error.
type createSaleRequest struct {
	ClientID int64             `json:"clientId" validate:"required,gt=0"`
	Items    []saleLineRequest `json:"items"    validate:"dive"`
}

type saleItemResponse struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"productId"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type saleResponse struct {
	ID        int64              `json:"id"`
	ClientID  int64              `json:"clientId"`
	Total     decimal.Decimal    `json:"total"`
	Timestamp time.Time          `json:"timestamp"`
	Items     []saleItemResponse `json:"items"`
}

func toSaleResponse(id, clientID int64, total decimal.Decimal, createdAt time.Time, items []domain.SaleItem) saleResponse {
	resp := saleResponse{
		ID:        id,
		ClientID:  clientID,
		Total:     total,
		Timestamp: createdAt,
	}
	for _, item := range items {
		resp.Items = append(resp.Items, saleItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.UnitPrice,
		})
	}
	return resp
}
