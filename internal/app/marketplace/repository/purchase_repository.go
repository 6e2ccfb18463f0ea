package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lapakpedia/internal/app/marketplace/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type purchaseRepository struct {
	collection *mongo.Collection
}

// NewPurchaseRepository создает новый репозиторий позиций заказа.
// Индекс по order ускоряет выборку строк одного заказа.
func NewPurchaseRepository(db *mongo.Database) PurchaseRepository {
	collection := db.Collection("purchases")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "order", Value: 1}},
		Options: options.Index().SetName("order_idx"),
	}

	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		fmt.Printf("Warning: failed to create index on order: %v\n", err)
	}

	return &purchaseRepository{collection: collection}
}

func (r *purchaseRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	purchase.CreatedAt = time.Now()
	purchase.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, purchase)
	if err != nil {
		return fmt.Errorf("failed to create purchase: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		purchase.ID = oid
	}

	return nil
}

func (r *purchaseRepository) GetByID(ctx context.Context, id string) (*entity.Purchase, error) {
	objectID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var purchase entity.Purchase
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&purchase)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get purchase: %w", err)
	}

	return &purchase, nil
}

func (r *purchaseRepository) List(ctx context.Context, q entity.PurchaseListQuery) ([]entity.Purchase, error) {
	filter := bson.M{}

	if q.OrderID != "" {
		filter["order"] = q.OrderID
	}
	if q.ProductID != "" {
		filter["product"] = q.ProductID
	}

	return findPage[entity.Purchase](ctx, r.collection, filter, q.PageQuery, "createdAt")
}

func (r *purchaseRepository) Update(ctx context.Context, id string, fields map[string]interface{}) (*entity.Purchase, error) {
	objectID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	fields["updatedAt"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var purchase entity.Purchase
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, bson.M{"$set": fields}, opts).Decode(&purchase)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update purchase: %w", err)
	}

	return &purchase, nil
}

func (r *purchaseRepository) Delete(ctx context.Context, id string) error {
	objectID, err := parseID(id)
	if err != nil {
		return err
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("failed to delete purchase: %w", err)
	}

	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}
