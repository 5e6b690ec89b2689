package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/backoffice-labs/sales-api/internal/core/domain"
)

const collectionLedger = "ledger_entries"

// LedgerRepository is the append-only financial entry store. There is
// deliberately no update or delete: entries are immutable once written.
type LedgerRepository struct {
	col *mongo.Collection
	db  *mongo.Database
}

func NewLedgerRepository(db *mongo.Database) *LedgerRepository {
	return &LedgerRepository{col: db.Collection(collectionLedger), db: db}
}

type ledgerDoc struct {
	ID          int64     `bson:"_id"`
	Kind        string    `bson:"kind"`
	Amount      string    `bson:"amount"`
	Description string    `bson:"description"`
	CreatedAt   time.Time `bson:"created_at"`
}

func (d ledgerDoc) toDomain() (*domain.FinancialEntry, error) {
	amount, err := decimal.NewFromString(d.Amount)
	if err != nil {
		return nil, fmt.Errorf("ledger entry %d: bad stored amount %q: %w", d.ID, d.Amount, err)
	}
	return &domain.FinancialEntry{
		ID:          d.ID,
		Kind:        domain.EntryKind(d.Kind),
		Amount:      amount,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
	}, nil
}

func (r *LedgerRepository) Append(ctx context.Context, e *domain.FinancialEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, "ledger_entries")
	if err != nil {
		return err
	}

	doc := ledgerDoc{
		ID:          id,
		Kind:        string(e.Kind),
		Amount:      e.Amount.String(),
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("append ledger entry: %w", err)
	}
	e.ID = id
	return nil
}

func (r *LedgerRepository) List(ctx context.Context, kind domain.EntryKind) ([]*domain.FinancialEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if kind != "" {
		query["kind"] = string(kind)
	}

	cur, err := r.col.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer cur.Close(ctx)

	var entries []*domain.FinancialEntry
	for cur.Next(ctx) {
		var doc ledgerDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode ledger entry: %w", err)
		}
		e, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, cur.Err()
}
