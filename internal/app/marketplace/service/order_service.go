package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"lapakpedia/internal/app/marketplace/entity"
	"lapakpedia/internal/app/marketplace/messaging"
	"lapakpedia/internal/app/marketplace/repository"
	"lapakpedia/pkg/logger"
	"lapakpedia/pkg/metrics"
)

// OrderService обрабатывает заказы и их позиции. После успешного
// создания публикует доменное событие; ошибка публикации не влияет
// на ответ клиенту.
type OrderService struct {
	orderRepo    repository.OrderRepository
	purchaseRepo repository.PurchaseRepository
	publisher    messaging.MessagePublisher
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	purchaseRepo repository.PurchaseRepository,
	publisher messaging.MessagePublisher,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		purchaseRepo: purchaseRepo,
		publisher:    publisher,
	}
}

// Заказы

func (s *OrderService) ListOrders(ctx context.Context, q entity.OrderListQuery) ([]entity.Order, error) {
	orders, err := s.orderRepo.List(ctx, q)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidQuery) {
			return nil, ErrInvalidQuery
		}
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id string) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return order, nil
}

func (s *OrderService) CreateOrder(ctx context.Context, req *entity.CreateOrderRequest) (*entity.Order, error) {
	order := &entity.Order{
		Member:      req.Member,
		BankName:    req.BankName,
		BankAccount: req.BankAccount,
		BankPerson:  req.BankPerson,
		Address:     req.Address,
		Zip:         req.Zip,
		Phone:       req.Phone,
		Status:      req.Status,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	metrics.OrdersCreated.Inc()

	s.publishEvent(ctx, entity.OrderEvent{
		EventType: "ORDER_CREATED",
		OrderID:   order.ID.Hex(),
		MemberID:  order.Member,
		Timestamp: time.Now(),
	})

	return order, nil
}

func (s *OrderService) UpdateOrder(ctx context.Context, id string, req *entity.UpdateOrderRequest) (*entity.Order, error) {
	fields := map[string]interface{}{}
	if req.Member != nil {
		fields["member"] = *req.Member
	}
	if req.BankName != nil {
		fields["bankName"] = *req.BankName
	}
	if req.BankAccount != nil {
		fields["bankAccount"] = *req.BankAccount
	}
	if req.BankPerson != nil {
		fields["bankPerson"] = *req.BankPerson
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.Zip != nil {
		fields["zip"] = *req.Zip
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Status != nil {
		// Статус не проверяется по enum: переходы ничем не ограничены
		fields["status"] = *req.Status
	}

	order, err := s.orderRepo.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	return order, nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, id string) error {
	if err := s.orderRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("failed to delete order: %w", err)
	}

	return nil
}

// Позиции заказа

func (s *OrderService) ListPurchases(ctx context.Context, q entity.PurchaseListQuery) ([]entity.Purchase, error) {
	purchases, err := s.purchaseRepo.List(ctx, q)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidQuery) {
			return nil, ErrInvalidQuery
		}
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}

	return purchases, nil
}

func (s *OrderService) GetPurchase(ctx context.Context, id string) (*entity.Purchase, error) {
	purchase, err := s.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPurchaseNotFound
		}
		return nil, fmt.Errorf("failed to get purchase: %w", err)
	}

	return purchase, nil
}

func (s *OrderService) CreatePurchase(ctx context.Context, req *entity.CreatePurchaseRequest) (*entity.Purchase, error) {
	purchase := &entity.Purchase{
		Order:       req.Order,
		Product:     req.Product,
		Quantity:    *req.Quantity,
		TotalPrices: *req.TotalPrices,
	}
	if req.Rate != nil {
		purchase.Rate = *req.Rate
	}
	if req.Review != nil {
		purchase.Review = *req.Review
	}

	if err := s.purchaseRepo.Create(ctx, purchase); err != nil {
		return nil, fmt.Errorf("failed to create purchase: %w", err)
	}

	metrics.PurchasesCreated.Inc()

	s.publishEvent(ctx, entity.OrderEvent{
		EventType: "PURCHASE_CREATED",
		OrderID:   purchase.Order,
		ProductID: purchase.Product,
		Timestamp: time.Now(),
	})

	return purchase, nil
}

func (s *OrderService) UpdatePurchase(ctx context.Context, id string, req *entity.UpdatePurchaseRequest) (*entity.Purchase, error) {
	fields := map[string]interface{}{}
	if req.Order != nil {
		fields["order"] = *req.Order
	}
	if req.Product != nil {
		fields["product"] = *req.Product
	}
	if req.Quantity != nil {
		fields["quantity"] = *req.Quantity
	}
	if req.TotalPrices != nil {
		fields["totalPrices"] = *req.TotalPrices
	}
	if req.Rate != nil {
		fields["rate"] = *req.Rate
	}
	if req.Review != nil {
		fields["review"] = *req.Review
	}

	purchase, err := s.purchaseRepo.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPurchaseNotFound
		}
		return nil, fmt.Errorf("failed to update purchase: %w", err)
	}

	return purchase, nil
}

func (s *OrderService) DeletePurchase(ctx context.Context, id string) error {
	if err := s.purchaseRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPurchaseNotFound
		}
		return fmt.Errorf("failed to delete purchase: %w", err)
	}

	return nil
}

func (s *OrderService) publishEvent(ctx context.Context, event entity.OrderEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to marshal order event")
		return
	}

	if err := s.publisher.PublishMessage(ctx, event.OrderID, data); err != nil {
		logger.Warn().Err(err).Str("event_type", event.EventType).Msg("Failed to publish order event")
	}
}
