package handler

import (
	"errors"
	"net/http"

	"lapakpedia/internal/app/marketplace/entity"
	"lapakpedia/internal/app/marketplace/service"
	"lapakpedia/pkg/logger"

	"github.com/gin-gonic/gin"
)

func (h *OrderHandler) ListPurchases(c *gin.Context) {
	page, err := parsePageQuery(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error occurred while retrieving purchases"})
		return
	}

	q := entity.PurchaseListQuery{
		PageQuery: page,
		OrderID:   c.Query("orderID"),
		ProductID: c.Query("productID"),
	}

	purchases, err := h.orderService.ListPurchases(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error occurred while retrieving purchases"})
		return
	}

	c.JSON(http.StatusOK, purchases)
}

func (h *OrderHandler) GetPurchase(c *gin.Context) {
	purchase, err := h.orderService.GetPurchase(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrPurchaseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Purchase not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving purchase"})
		return
	}

	c.JSON(http.StatusOK, purchase)
}

func (h *OrderHandler) CreatePurchase(c *gin.Context) {
	var req entity.CreatePurchaseRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error occurred while creating purchase"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		logger.Warn().Str("reason", formatValidationError(err)).Msg("Purchase payload rejected")
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error occurred while creating purchase"})
		return
	}

	purchase, err := h.orderService.CreatePurchase(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error occurred while creating purchase"})
		return
	}

	c.JSON(http.StatusOK, purchase)
}

func (h *OrderHandler) UpdatePurchase(c *gin.Context) {
	var req entity.UpdatePurchaseRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error finding purchase"})
		return
	}

	purchase, err := h.orderService.UpdatePurchase(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrPurchaseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Purchase not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error finding purchase"})
		return
	}

	c.JSON(http.StatusOK, purchase)
}

func (h *OrderHandler) DeletePurchase(c *gin.Context) {
	if err := h.orderService.DeletePurchase(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrPurchaseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Purchase not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Couldn't delete purchase"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Purchase deleted successfully!"})
}
