package handler

import (
	"context"
	"errors"
	"net/http"

	"lapakpedia/internal/app/marketplace/entity"
	"lapakpedia/internal/app/marketplace/service"
	"lapakpedia/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// OrderServiceInterface покрывает заказы и их позиции: один сервис,
// один обработчик, методы разнесены по файлам.
type OrderServiceInterface interface {
	ListOrders(ctx context.Context, q entity.OrderListQuery) ([]entity.Order, error)
	GetOrder(ctx context.Context, id string) (*entity.Order, error)
	CreateOrder(ctx context.Context, req *entity.CreateOrderRequest) (*entity.Order, error)
	UpdateOrder(ctx context.Context, id string, req *entity.UpdateOrderRequest) (*entity.Order, error)
	DeleteOrder(ctx context.Context, id string) error

	ListPurchases(ctx context.Context, q entity.PurchaseListQuery) ([]entity.Purchase, error)
	GetPurchase(ctx context.Context, id string) (*entity.Purchase, error)
	CreatePurchase(ctx context.Context, req *entity.CreatePurchaseRequest) (*entity.Purchase, error)
	UpdatePurchase(ctx context.Context, id string, req *entity.UpdatePurchaseRequest) (*entity.Purchase, error)
	DeletePurchase(ctx context.Context, id string) error
}

type OrderHandler struct {
	orderService OrderServiceInterface
	validator    *validator.Validate
}

func NewOrderHandler(orderService OrderServiceInterface) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		validator:    validator.New(),
	}
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	page, err := parsePageQuery(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error occurred while retrieving orders"})
		return
	}

	q := entity.OrderListQuery{
		PageQuery: page,
		MemberID:  c.Query("memberID"),
	}

	orders, err := h.orderService.ListOrders(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error occurred while retrieving orders"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.orderService.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving order"})
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req entity.CreateOrderRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error occurred while creating order"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		logger.Warn().Str("reason", formatValidationError(err)).Msg("Order payload rejected")
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error occurred while creating order"})
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error occurred while creating order"})
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	var req entity.UpdateOrderRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error finding order"})
		return
	}

	order, err := h.orderService.UpdateOrder(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error finding order"})
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	if err := h.orderService.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Couldn't delete order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully!"})
}
