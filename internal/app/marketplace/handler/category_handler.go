package handler

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"

	"lapakpedia/internal/app/marketplace/entity"
	"lapakpedia/internal/app/marketplace/service"
	"lapakpedia/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// CatalogServiceInterface объединяет категории и товары: один сервис,
// один обработчик, методы разнесены по файлам.
type CatalogServiceInterface interface {
	ListCategories(ctx context.Context, q entity.CategoryListQuery) ([]entity.Category, error)
	GetCategory(ctx context.Context, id string) (*entity.Category, error)
	CreateCategory(ctx context.Context, req *entity.CreateCategoryRequest) (*entity.Category, error)
	UpdateCategory(ctx context.Context, id string, req *entity.UpdateCategoryRequest) (*entity.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	ListProducts(ctx context.Context, q entity.ProductListQuery) ([]entity.Product, error)
	GetProduct(ctx context.Context, id string) (*entity.Product, error)
	CreateProduct(ctx context.Context, req *entity.CreateProductRequest, photo *multipart.FileHeader) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id string, req *entity.UpdateProductRequest, photo *multipart.FileHeader) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type CatalogHandler struct {
	catalogService CatalogServiceInterface
	validator      *validator.Validate
}

func NewCatalogHandler(catalogService CatalogServiceInterface) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		validator:      validator.New(),
	}
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	page, err := parsePageQuery(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error occurred while retrieving categories"})
		return
	}

	categories, err := h.catalogService.ListCategories(c.Request.Context(), entity.CategoryListQuery{PageQuery: page})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error occurred while retrieving categories"})
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (h *CatalogHandler) GetCategory(c *gin.Context) {
	category, err := h.catalogService.GetCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving category"})
		return
	}

	c.JSON(http.StatusOK, category)
}

func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req entity.CreateCategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error occurred while creating category"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		logger.Warn().Str("reason", formatValidationError(err)).Msg("Category payload rejected")
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error occurred while creating category"})
		return
	}

	category, err := h.catalogService.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error occurred while creating category"})
		return
	}

	c.JSON(http.StatusOK, category)
}

func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	var req entity.UpdateCategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error finding category"})
		return
	}

	category, err := h.catalogService.UpdateCategory(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error finding category"})
		return
	}

	c.JSON(http.StatusOK, category)
}

func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	if err := h.catalogService.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Couldn't delete category"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully!"})
}
