package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"lapakpedia/internal/app/marketplace/entity"
	"lapakpedia/internal/app/marketplace/repository"
	"lapakpedia/internal/app/marketplace/util"
	"lapakpedia/pkg/logger"
	"lapakpedia/pkg/metrics"
)

const productPhotoDir = "products"

const categoriesCacheTTL = time.Hour

// CatalogService обрабатывает бизнес-логику каталога: категории и товары.
// Список категорий по умолчанию кешируется в Redis; кеш опционален
// и его отказ никогда не влияет на ответ.
type CatalogService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	cache        *util.RedisClient
	photos       *util.PhotoStore
}

func NewCatalogService(
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	cache *util.RedisClient,
	photos *util.PhotoStore,
) *CatalogService {
	return &CatalogService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		cache:        cache,
		photos:       photos,
	}
}

// Категории

// ListCategories выполняет конвейер листинга. Запрос без параметров
// обслуживается из кеша, если тот доступен.
func (s *CatalogService) ListCategories(ctx context.Context, q entity.CategoryListQuery) ([]entity.Category, error) {
	defaultQuery := q.PageQuery == entity.PageQuery{}

	if s.cache != nil && defaultQuery {
		cached, err := s.cache.GetCategories(ctx)
		if err == nil && cached != nil {
			return cached, nil
		}
	}

	categories, err := s.categoryRepo.List(ctx, q)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidQuery) {
			return nil, ErrInvalidQuery
		}
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	if s.cache != nil && defaultQuery {
		if err := s.cache.SetCategories(ctx, categories, categoriesCacheTTL); err != nil {
			logger.Warn().Err(err).Msg("Failed to cache categories")
		}
	}

	return categories, nil
}

func (s *CatalogService) GetCategory(ctx context.Context, id string) (*entity.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return category, nil
}

func (s *CatalogService) CreateCategory(ctx context.Context, req *entity.CreateCategoryRequest) (*entity.Category, error) {
	category := &entity.Category{Name: req.Name}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrValidation
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.invalidateCategories(ctx)

	return category, nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id string, req *entity.UpdateCategoryRequest) (*entity.Category, error) {
	if req.Name == nil {
		return s.GetCategory(ctx, id)
	}

	category, err := s.categoryRepo.Update(ctx, id, map[string]interface{}{"name": *req.Name})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	s.invalidateCategories(ctx)

	return category, nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}

	s.invalidateCategories(ctx)

	return nil
}

func (s *CatalogService) invalidateCategories(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteCategories(ctx); err != nil {
		logger.Warn().Err(err).Msg("Failed to invalidate categories cache")
	}
}

// Товары

func (s *CatalogService) ListProducts(ctx context.Context, q entity.ProductListQuery) ([]entity.Product, error) {
	products, err := s.productRepo.List(ctx, q)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidQuery) {
			return nil, ErrInvalidQuery
		}
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return product, nil
}

// CreateProduct создает товар. Фото обязательно и сохраняется
// под сгенерированным именем до записи документа.
func (s *CatalogService) CreateProduct(ctx context.Context, req *entity.CreateProductRequest, photo *multipart.FileHeader) (*entity.Product, error) {
	if photo == nil {
		return nil, ErrValidation
	}

	filename, err := s.photos.Save(photo, productPhotoDir)
	if err != nil {
		return nil, fmt.Errorf("failed to save photo: %w", err)
	}
	metrics.PhotoUploads.WithLabelValues(productPhotoDir).Inc()

	product := &entity.Product{
		Name:        req.Name,
		Category:    req.Category,
		Seller:      req.Seller,
		Price:       *req.Price,
		Stock:       *req.Stock,
		Photo:       filename,
		Description: req.Description,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

// UpdateProduct применяет частичное обновление. Новое фото записывается
// до обновления документа, старое удаляется только после успеха.
func (s *CatalogService) UpdateProduct(ctx context.Context, id string, req *entity.UpdateProductRequest, photo *multipart.FileHeader) (*entity.Product, error) {
	prior, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.Seller != nil {
		fields["seller"] = *req.Seller
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.Stock != nil {
		fields["stock"] = *req.Stock
	}
	if req.TotalViews != nil {
		fields["totalViews"] = *req.TotalViews
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}

	var newPhoto string
	if photo != nil {
		newPhoto, err = s.photos.Save(photo, productPhotoDir)
		if err != nil {
			return nil, fmt.Errorf("failed to save photo: %w", err)
		}
		fields["photo"] = newPhoto
		metrics.PhotoUploads.WithLabelValues(productPhotoDir).Inc()
	}

	product, err := s.productRepo.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	if newPhoto != "" && prior.Photo != "" && prior.Photo != newPhoto {
		if err := s.photos.Remove(productPhotoDir, prior.Photo); err != nil {
			logger.Warn().Err(err).Str("photo", prior.Photo).Msg("Failed to remove replaced product photo")
		}
	}

	return product, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("failed to get product: %w", err)
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if err := s.photos.Remove(productPhotoDir, product.Photo); err != nil {
		logger.Warn().Err(err).Str("photo", product.Photo).Msg("Failed to remove product photo")
	}

	return nil
}
