package handler

import (
	"errors"
	"net/http"

	"lapakpedia/internal/app/marketplace/entity"
	"lapakpedia/internal/app/marketplace/service"
	"lapakpedia/pkg/logger"

	"github.com/gin-gonic/gin"
)

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	page, err := parsePageQuery(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error occurred while retrieving products"})
		return
	}

	q := entity.ProductListQuery{
		PageQuery:  page,
		Name:       c.Query("name"),
		CategoryID: c.Query("categoryID"),
		SellerID:   c.Query("sellerID"),
		Price:      c.Query("price"),
	}

	products, err := h.catalogService.ListProducts(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error occurred while retrieving products"})
		return
	}

	c.JSON(http.StatusOK, products)
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.catalogService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// CreateProduct принимает multipart form; файл photo обязателен
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req entity.CreateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error occurred while creating product"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		logger.Warn().Str("reason", formatValidationError(err)).Msg("Product payload rejected")
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error occurred while creating product"})
		return
	}

	product, err := h.catalogService.CreateProduct(c.Request.Context(), &req, formPhoto(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error occurred while creating product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	var req entity.UpdateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error finding product"})
		return
	}

	product, err := h.catalogService.UpdateProduct(c.Request.Context(), c.Param("id"), &req, formPhoto(c))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error finding product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	if err := h.catalogService.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Couldn't delete product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully!"})
}
