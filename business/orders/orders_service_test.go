package orders

import (
	"context"
	"errors"
	"testing"

	"dabbaMarket/business/menu"
	"dabbaMarket/domain"
)

type fakeOrdersRepo struct {
	orders     map[uint]domain.Order
	nextID     uint
	orderCount map[string]int
}

func newFakeOrdersRepo() *fakeOrdersRepo {
	return &fakeOrdersRepo{
		orders:     make(map[uint]domain.Order),
		nextID:     1,
		orderCount: make(map[string]int),
	}
}

func (f *fakeOrdersRepo) Create(ctx context.Context, order *domain.Order) error {
	order.ID = f.nextID
	f.nextID++
	f.orders[order.ID] = *order
	return nil
}

func (f *fakeOrdersRepo) FindByID(ctx context.Context, id uint) (domain.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return domain.Order{}, errors.New("order not found")
	}
	return order, nil
}

func (f *fakeOrdersRepo) FindByUser(ctx context.Context, userID uint) ([]domain.Order, error) {
	var out []domain.Order
	for _, order := range f.orders {
		if order.UserID == userID {
			out = append(out, order)
		}
	}
	return out, nil
}

func (f *fakeOrdersRepo) FindRecentByUser(ctx context.Context, userID uint, limit int) ([]domain.Order, error) {
	orders, _ := f.FindByUser(ctx, userID)
	if len(orders) > limit {
		orders = orders[:limit]
	}
	return orders, nil
}

func (f *fakeOrdersRepo) UpdateStatus(ctx context.Context, id uint, status string) error {
	order, ok := f.orders[id]
	if !ok {
		return errors.New("order not found")
	}
	order.OrderStatus = status
	f.orders[id] = order
	return nil
}

func (f *fakeOrdersRepo) IncrementOrderCount(ctx context.Context, mealID string, delta int) error {
	f.orderCount[mealID] += delta
	return nil
}

type fakeMenuRepo struct {
	items map[string]domain.MenuItem
}

var _ menu.MenuRepository = (*fakeMenuRepo)(nil)

func (f *fakeMenuRepo) Create(ctx context.Context, item *domain.MenuItem) error { return nil }

func (f *fakeMenuRepo) FindByID(ctx context.Context, id string) (domain.MenuItem, error) {
	item, ok := f.items[id]
	if !ok {
		return domain.MenuItem{}, errors.New("menu item not found")
	}
	return item, nil
}

func (f *fakeMenuRepo) FindAll(ctx context.Context) ([]domain.MenuItem, error) { return nil, nil }

func (f *fakeMenuRepo) FindByProvider(ctx context.Context, providerID string) ([]domain.MenuItem, error) {
	return nil, nil
}

func (f *fakeMenuRepo) Update(ctx context.Context, item *domain.MenuItem) error { return nil }

func (f *fakeMenuRepo) SetAvailability(ctx context.Context, id string, available bool) error {
	return nil
}

func (f *fakeMenuRepo) Delete(ctx context.Context, id string) error { return nil }

func testService() (*ordersService, *fakeOrdersRepo) {
	ordersRepo := newFakeOrdersRepo()
	menuRepo := &fakeMenuRepo{items: map[string]domain.MenuItem{
		"MEAL-1": {ID: "MEAL-1", ProviderID: "PRV-7", Name: "Hyderabadi Biryani", Price: 250, MealTime: "lunch", IsAvailable: true},
		"MEAL-2": {ID: "MEAL-2", ProviderID: "PRV-7", Name: "Paneer Tikka", Price: 180, IsAvailable: false},
	}}
	return NewOrdersService(ordersRepo, menuRepo), ordersRepo
}

func TestCreateOrder_PricesFromMenuItem(t *testing.T) {
	svc, repo := testService()

	order, err := svc.CreateOrder(context.Background(), &domain.Order{
		UserID:   42,
		MealID:   "MEAL-1",
		Quantity: 3,
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	if order.PriceEach != 250 {
		t.Errorf("expected price 250 from the menu item, got %v", order.PriceEach)
	}
	if order.Subtotal != 750 {
		t.Errorf("expected subtotal 750, got %v", order.Subtotal)
	}
	if order.OrderStatus != StatusPending {
		t.Errorf("new orders must be PENDING, got %q", order.OrderStatus)
	}
	if order.ProviderID != "PRV-7" {
		t.Errorf("expected provider from menu item, got %q", order.ProviderID)
	}
	if order.MealTime != "lunch" {
		t.Errorf("expected meal time inherited from item, got %q", order.MealTime)
	}
	if repo.orderCount["MEAL-1"] != 3 {
		t.Errorf("expected order count bumped by quantity, got %d", repo.orderCount["MEAL-1"])
	}
}

func TestCreateOrder_RejectsUnavailableItem(t *testing.T) {
	svc, _ := testService()

	_, err := svc.CreateOrder(context.Background(), &domain.Order{
		UserID: 42, MealID: "MEAL-2", Quantity: 1,
	})
	if err == nil || err.Error() != "meal not available" {
		t.Errorf("expected meal not available, got %v", err)
	}
}

func TestCreateOrder_UnknownMeal(t *testing.T) {
	svc, _ := testService()

	_, err := svc.CreateOrder(context.Background(), &domain.Order{
		UserID: 42, MealID: "MEAL-missing", Quantity: 1,
	})
	if err == nil || err.Error() != "meal not found" {
		t.Errorf("expected meal not found, got %v", err)
	}
}

func TestCreateOrder_Validation(t *testing.T) {
	svc, _ := testService()

	if _, err := svc.CreateOrder(context.Background(), &domain.Order{UserID: 42, Quantity: 1}); err == nil {
		t.Error("expected error for missing meal id")
	}
	if _, err := svc.CreateOrder(context.Background(), &domain.Order{UserID: 42, MealID: "MEAL-1"}); err == nil {
		t.Error("expected error for zero quantity")
	}
}

func TestUpdateOrderStatus_Transitions(t *testing.T) {
	svc, _ := testService()
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, &domain.Order{UserID: 42, MealID: "MEAL-1", Quantity: 1})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	// PENDING -> DELIVERED skips CONFIRMED and must be rejected.
	if err := svc.UpdateOrderStatus(ctx, order.ID, StatusDelivered); err == nil {
		t.Error("expected invalid transition PENDING->DELIVERED to be rejected")
	}

	if err := svc.UpdateOrderStatus(ctx, order.ID, StatusConfirmed); err != nil {
		t.Fatalf("PENDING->CONFIRMED: %v", err)
	}
	if err := svc.UpdateOrderStatus(ctx, order.ID, StatusDelivered); err != nil {
		t.Fatalf("CONFIRMED->DELIVERED: %v", err)
	}

	// Delivered is terminal.
	if err := svc.UpdateOrderStatus(ctx, order.ID, StatusCancelled); err == nil {
		t.Error("expected transition out of DELIVERED to be rejected")
	}
}

func TestGetRecentOrders_DefaultLimit(t *testing.T) {
	svc, _ := testService()
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		if _, err := svc.CreateOrder(ctx, &domain.Order{UserID: 42, MealID: "MEAL-1", Quantity: 1}); err != nil {
			t.Fatalf("CreateOrder: %v", err)
		}
	}

	orders, err := svc.GetRecentOrders(ctx, 42, 0)
	if err != nil {
		t.Fatalf("GetRecentOrders: %v", err)
	}
	if len(orders) != 10 {
		t.Errorf("expected default limit of 10, got %d", len(orders))
	}
}
