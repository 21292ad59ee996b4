package orders

import (
	"context"
	"errors"

	"dabbaMarket/business/menu"
	"dabbaMarket/domain"
	"dabbaMarket/pkg/logger"
)

type OrdersRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id uint) (domain.Order, error)
	FindByUser(ctx context.Context, userID uint) ([]domain.Order, error)
	FindRecentByUser(ctx context.Context, userID uint, limit int) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	IncrementOrderCount(ctx context.Context, mealID string, delta int) error
}

const (
	StatusPending   = "PENDING"
	StatusConfirmed = "CONFIRMED"
	StatusDelivered = "DELIVERED"
	StatusCancelled = "CANCELLED"
)

var validTransitions = map[string][]string{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusDelivered, StatusCancelled},
}

type ordersService struct {
	orderRepo OrdersRepository
	menuRepo  menu.MenuRepository
}

func NewOrdersService(orderRepo OrdersRepository, menuRepo menu.MenuRepository) *ordersService {
	return &ordersService{
		orderRepo: orderRepo,
		menuRepo:  menuRepo,
	}
}

// CreateOrder prices the order from the current menu item and bumps the
// item's order count, which feeds the popularity ranking.
func (s *ordersService) CreateOrder(ctx context.Context, order *domain.Order) (domain.Order, error) {
	if order.MealID == "" {
		logger.Error("invalid order: meal id is required")
		return domain.Order{}, errors.New("meal id is required")
	}
	if order.Quantity <= 0 {
		logger.Error("invalid order: quantity must be greater than 0")
		return domain.Order{}, errors.New("quantity must be greater than 0")
	}

	item, err := s.menuRepo.FindByID(ctx, order.MealID)
	if err != nil {
		logger.Error("meal not found for order", err)
		return domain.Order{}, errors.New("meal not found")
	}
	if !item.IsAvailable {
		logger.Error("meal not available for order")
		return domain.Order{}, errors.New("meal not available")
	}

	order.ProviderID = item.ProviderID
	order.PriceEach = item.Price
	order.Subtotal = item.Price * float64(order.Quantity)
	order.OrderStatus = StatusPending
	if order.MealTime == "" {
		order.MealTime = item.MealTime
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		logger.Error("failed to create order", err)
		return domain.Order{}, err
	}

	if err := s.orderRepo.IncrementOrderCount(ctx, order.MealID, order.Quantity); err != nil {
		// ranking signal only, the order itself is already committed
		logger.Warn("failed to bump meal order count", "meal_id", order.MealID, "error", err)
	}

	logger.Info("order created", "order_id", order.ID, "user_id", order.UserID)

	return *order, nil
}

func (s *ordersService) GetOrder(ctx context.Context, id uint) (domain.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("failed to find order", err)
		return domain.Order{}, err
	}
	return order, nil
}

func (s *ordersService) GetUserOrders(ctx context.Context, userID uint) ([]domain.Order, error) {
	orders, err := s.orderRepo.FindByUser(ctx, userID)
	if err != nil {
		logger.Error("failed to find user orders", err)
		return nil, err
	}
	return orders, nil
}

// GetRecentOrders returns the user's latest orders, newest first. Consumed
// by the personalized recommendation path as order-history context.
func (s *ordersService) GetRecentOrders(ctx context.Context, userID uint, limit int) ([]domain.Order, error) {
	if limit <= 0 {
		limit = 10
	}

	orders, err := s.orderRepo.FindRecentByUser(ctx, userID, limit)
	if err != nil {
		logger.Error("failed to find recent orders", err)
		return nil, err
	}
	return orders, nil
}

func (s *ordersService) UpdateOrderStatus(ctx context.Context, id uint, status string) error {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("order not found for status update", err)
		return errors.New("order not found")
	}

	allowed := false
	for _, next := range validTransitions[order.OrderStatus] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		logger.Error("invalid order status transition")
		return errors.New("invalid status transition")
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		logger.Error("failed to update order status", err)
		return err
	}

	logger.Info("order status updated", "order_id", id, "status", status)
	return nil
}
