package repository

import (
	"context"
	"fmt"
	"time"

	"lapakpedia/internal/app/marketplace/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type favouriteRepository struct {
	collection *mongo.Collection
}

// NewFavouriteRepository создает новый репозиторий избранного.
// Уникальность пары (member, product) сознательно не гарантируется.
func NewFavouriteRepository(db *mongo.Database) FavouriteRepository {
	return &favouriteRepository{collection: db.Collection("favourites")}
}

func (r *favouriteRepository) Create(ctx context.Context, favourite *entity.Favourite) error {
	favourite.CreatedAt = time.Now()
	favourite.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, favourite)
	if err != nil {
		return fmt.Errorf("failed to create favourite: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		favourite.ID = oid
	}

	return nil
}

func (r *favouriteRepository) List(ctx context.Context, q entity.FavouriteListQuery) ([]entity.Favourite, error) {
	filter := bson.M{}

	if q.MemberID != "" {
		filter["member"] = q.MemberID
	}
	if q.ProductID != "" {
		filter["product"] = q.ProductID
	}

	return findPage[entity.Favourite](ctx, r.collection, filter, q.PageQuery, "createdAt")
}

func (r *favouriteRepository) Delete(ctx context.Context, id string) error {
	objectID, err := parseID(id)
	if err != nil {
		return err
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("failed to delete favourite: %w", err)
	}

	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}
