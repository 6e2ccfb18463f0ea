package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"lapakpedia/internal/app/marketplace/entity"
	"lapakpedia/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const serviceName = "marketplace"

// buildFindOptions переводит общие параметры листинга в опции запроса.
// Сортировка нисходящая только при sortBy == "desc", любое другое значение
// даёт восходящий порядок. Take == 0 означает выборку без лимита.
// Отрицательный skip - ошибка запроса, а не повод привести его к нулю.
func buildFindOptions(q entity.PageQuery, defaultSort string) (*options.FindOptions, error) {
	if q.Skip < 0 {
		return nil, ErrInvalidQuery
	}

	field := q.Sortable
	if field == "" {
		field = defaultSort
	}

	direction := 1
	if q.SortBy == "desc" {
		direction = -1
	}

	opts := options.Find().
		SetSort(bson.D{{Key: field, Value: direction}}).
		SetSkip(q.Skip)

	if q.Take > 0 {
		opts.SetLimit(q.Take)
	}

	return opts, nil
}

// findPage выполняет общий конвейер листинга: фильтр, сортировка, пагинация.
// Каждый репозиторий передаёт сюда свой фильтр и поле сортировки по умолчанию.
func findPage[T any](ctx context.Context, collection *mongo.Collection, filter bson.M, page entity.PageQuery, defaultSort string) ([]T, error) {
	opts, err := buildFindOptions(page, defaultSort)
	if err != nil {
		return nil, err
	}

	timer := metrics.NewMongoTimer(serviceName, metrics.MongoOpFind, collection.Name())
	defer timer.ObserveDuration()

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		metrics.RecordMongoError(serviceName, metrics.MongoOpFind, collection.Name())
		return nil, fmt.Errorf("failed to find %s: %w", collection.Name(), err)
	}
	defer cursor.Close(ctx)

	docs := make([]T, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", collection.Name(), err)
	}

	return docs, nil
}

// nameFilter - регистронезависимое вхождение подстроки
func nameFilter(name string) primitive.Regex {
	return primitive.Regex{Pattern: name, Options: "i"}
}

// priceFilter разбирает диапазон "min,max"; обе границы включительно
func priceFilter(raw string) (bson.M, error) {
	parts := strings.SplitN(raw, ",", 2)
	if len(parts) != 2 {
		return nil, ErrInvalidQuery
	}

	min, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil, ErrInvalidQuery
	}

	max, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil, ErrInvalidQuery
	}

	return bson.M{"$gte": min, "$lte": max}, nil
}

// parseID переводит hex-строку в ObjectID. Некорректный идентификатор
// неотличим от отсутствующего документа: оба дают ErrNotFound.
func parseID(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrNotFound
	}
	return objectID, nil
}
