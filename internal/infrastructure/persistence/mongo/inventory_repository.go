package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"backoffice/internal/domain/inventory"
)

const (
	itemsCollection    = "inventory_items"
	countersCollection = "counters"
)

type itemDocument struct {
	SKU      string `bson:"sku"`
	Name     string `bson:"name"`
	Category string `bson:"category"`
	Stock    int    `bson:"stock"`
	Price    string `bson:"price"`
	Seq      int64  `bson:"seq"`
}

func (d itemDocument) toItem() (inventory.Item, error) {
	price, err := decimal.NewFromString(d.Price)
	if err != nil {
		return inventory.Item{}, fmt.Errorf("parse price of %s: %w", d.SKU, err)
	}
	return inventory.Item{
		SKU:      d.SKU,
		Name:     d.Name,
		Category: d.Category,
		Stock:    d.Stock,
		Price:    price,
	}, nil
}

// InventoryRepository uses a unique index on sku and a per-collection
// counter so List can return the newest insert first.
type InventoryRepository struct {
	items    *mongo.Collection
	counters *mongo.Collection
}

func NewInventoryRepository(ctx context.Context, db *mongo.Database) (*InventoryRepository, error) {
	r := &InventoryRepository{
		items:    db.Collection(itemsCollection),
		counters: db.Collection(countersCollection),
	}

	_, err := r.items.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "sku", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("create sku index: %w", err)
	}
	return r, nil
}

func (r *InventoryRepository) nextSeq(ctx context.Context) (int64, error) {
	var counter struct {
		Value int64 `bson:"value"`
	}
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": itemsCollection},
		bson.M{"$inc": bson.M{"value": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("next seq: %w", err)
	}
	return counter.Value, nil
}

func (r *InventoryRepository) Insert(ctx context.Context, item *inventory.Item) error {
	seq, err := r.nextSeq(ctx)
	if err != nil {
		return err
	}

	_, err = r.items.InsertOne(ctx, itemDocument{
		SKU:      item.SKU,
		Name:     item.Name,
		Category: item.Category,
		Stock:    item.Stock,
		Price:    item.Price.String(),
		Seq:      seq,
	})
	if mongo.IsDuplicateKeyError(err) {
		return inventory.ErrDuplicateSKU
	}
	if err != nil {
		return fmt.Errorf("insert item %s: %w", item.SKU, err)
	}
	return nil
}

func (r *InventoryRepository) Delete(ctx context.Context, sku string) error {
	if _, err := r.items.DeleteOne(ctx, bson.M{"sku": sku}); err != nil {
		return fmt.Errorf("delete item %s: %w", sku, err)
	}
	return nil
}

func (r *InventoryRepository) FindBySKU(ctx context.Context, sku string) (*inventory.Item, error) {
	var doc itemDocument
	err := r.items.FindOne(ctx, bson.M{"sku": sku}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find item %s: %w", sku, err)
	}

	item, err := doc.toItem()
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *InventoryRepository) List(ctx context.Context) ([]inventory.Item, error) {
	cursor, err := r.items.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "seq", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find items: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []itemDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}

	out := make([]inventory.Item, 0, len(docs))
	for _, d := range docs {
		item, err := d.toItem()
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

// AdjustStock applies delta only when the result stays non-negative; the
// guard lives in the filter so concurrent decrements cannot oversell.
func (r *InventoryRepository) AdjustStock(ctx context.Context, sku string, delta int) error {
	res, err := r.items.UpdateOne(ctx,
		bson.M{"sku": sku, "stock": bson.M{"$gte": -delta}},
		bson.M{"$inc": bson.M{"stock": delta}},
	)
	if err != nil {
		return fmt.Errorf("adjust stock %s: %w", sku, err)
	}
	if res.MatchedCount == 1 {
		return nil
	}

	n, err := r.items.CountDocuments(ctx, bson.M{"sku": sku})
	if err != nil {
		return fmt.Errorf("count item %s: %w", sku, err)
	}
	if n == 0 {
		return inventory.ErrNotFound
	}
	return inventory.ErrInsufficientStock
}
