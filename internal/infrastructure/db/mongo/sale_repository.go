package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/backoffice-labs/sales-api/internal/core/domain"
	"github.com/backoffice-labs/sales-api/internal/core/ports"
)

const collectionSales = "sales"

type SaleRepository struct {
	col *mongo.Collection
	db  *mongo.Database
}

func NewSaleRepository(db *mongo.Database) *SaleRepository {
	return &SaleRepository{col: db.Collection(collectionSales), db: db}
}

// saleDoc embeds its line items: a sale and its items are one document, so
// they are written and removed together and no reader can ever observe a sale
// without its items. Amounts are stored as exact decimal strings.
type saleDoc struct {
	ID        int64         `bson:"_id"`
	ClientID  int64         `bson:"client_id"`
	Total     string        `bson:"total"`
	Items     []saleItemDoc `bson:"items"`
	CreatedAt time.Time     `bson:"created_at"`
}

type saleItemDoc struct {
	ID        int64  `bson:"id"`
	ProductID int64  `bson:"product_id"`
	Quantity  int64  `bson:"quantity"`
	UnitPrice string `bson:"unit_price"`
}

func (d saleDoc) toDomain() (*domain.Sale, error) {
	total, err := decimal.NewFromString(d.Total)
	if err != nil {
		return nil, fmt.Errorf("sale %d: bad stored total %q: %w", d.ID, d.Total, err)
	}
	sale := &domain.Sale{
		ID:        d.ID,
		ClientID:  d.ClientID,
		Total:     total,
		CreatedAt: d.CreatedAt,
	}
	for _, item := range d.Items {
		price, err := decimal.NewFromString(item.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("sale %d item %d: bad stored price %q: %w", d.ID, item.ID, item.UnitPrice, err)
		}
		sale.Items = append(sale.Items, domain.SaleItem{
			ID:        item.ID,
			SaleID:    d.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: price,
		})
	}
	return sale, nil
}

// Create inserts the sale with its items as a single document, assigning the
// sale id and one id per item from the counters collection.
func (r *SaleRepository) Create(ctx context.Context, s *domain.Sale) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	saleID, err := nextID(ctx, r.db, "sales")
	if err != nil {
		return err
	}
	firstItemID, err := nextIDBlock(ctx, r.db, "sale_items", int64(len(s.Items)))
	if err != nil {
		return err
	}

	doc := saleDoc{
		ID:        saleID,
		ClientID:  s.ClientID,
		Total:     s.Total.String(),
		CreatedAt: s.CreatedAt,
	}
	for i := range s.Items {
		s.Items[i].ID = firstItemID + int64(i)
		s.Items[i].SaleID = saleID
		doc.Items = append(doc.Items, saleItemDoc{
			ID:        s.Items[i].ID,
			ProductID: s.Items[i].ProductID,
			Quantity:  s.Items[i].Quantity,
			UnitPrice: s.Items[i].UnitPrice.String(),
		})
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	s.ID = saleID
	return nil
}

func (r *SaleRepository) FindByID(ctx context.Context, id int64) (*domain.Sale, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc saleDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSaleNotFound
		}
		return nil, fmt.Errorf("find sale: %w", err)
	}
	return doc.toDomain()
}

func (r *SaleRepository) List(ctx context.Context, filter ports.ListSalesFilter) ([]*domain.Sale, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.ClientID != 0 {
		query["client_id"] = filter.ClientID
	}

	cur, err := r.col.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer cur.Close(ctx)

	var sales []*domain.Sale
	for cur.Next(ctx) {
		var doc saleDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode sale: %w", err)
		}
		s, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, cur.Err()
}

// Delete removes a sale document (and with it the embedded items). Only the
// sale processor calls this, to unwind a commit whose ledger posting failed.
func (r *SaleRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrSaleNotFound
	}
	return nil
}

// EnsureIndexes creates the client index used by sale listings.
func (r *SaleRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "client_id", Value: 1}},
	})
	return err
}
