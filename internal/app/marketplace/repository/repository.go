package repository

import (
	"context"
	"errors"

	"lapakpedia/internal/app/marketplace/entity"
)

var (
	// Стандартные ошибки репозитория для обработки в service layer
	ErrNotFound     = errors.New("not found")
	ErrInvalidQuery = errors.New("invalid list query")
	ErrDuplicateKey = errors.New("duplicate key")
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context, q entity.UserListQuery) ([]entity.User, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*entity.User, error)
	Delete(ctx context.Context, id string) error
}

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	List(ctx context.Context, q entity.CategoryListQuery) ([]entity.Category, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*entity.Category, error)
	Delete(ctx context.Context, id string) error
}

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, q entity.ProductListQuery) ([]entity.Product, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*entity.Product, error)
	Delete(ctx context.Context, id string) error
}

type FavouriteRepository interface {
	Create(ctx context.Context, favourite *entity.Favourite) error
	List(ctx context.Context, q entity.FavouriteListQuery) ([]entity.Favourite, error)
	Delete(ctx context.Context, id string) error
}

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	List(ctx context.Context, q entity.OrderListQuery) ([]entity.Order, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*entity.Order, error)
	Delete(ctx context.Context, id string) error
}

type PurchaseRepository interface {
	Create(ctx context.Context, purchase *entity.Purchase) error
	GetByID(ctx context.Context, id string) (*entity.Purchase, error)
	List(ctx context.Context, q entity.PurchaseListQuery) ([]entity.Purchase, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*entity.Purchase, error)
	Delete(ctx context.Context, id string) error
}
