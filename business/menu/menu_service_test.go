package menu

import (
	"context"
	"errors"
	"strings"
	"testing"

	"dabbaMarket/domain"
)

type fakeMenuRepo struct {
	items map[string]domain.MenuItem
}

func newFakeMenuRepo() *fakeMenuRepo {
	return &fakeMenuRepo{items: make(map[string]domain.MenuItem)}
}

func (f *fakeMenuRepo) Create(ctx context.Context, item *domain.MenuItem) error {
	f.items[item.ID] = *item
	return nil
}

func (f *fakeMenuRepo) FindByID(ctx context.Context, id string) (domain.MenuItem, error) {
	item, ok := f.items[id]
	if !ok {
		return domain.MenuItem{}, errors.New("menu item not found")
	}
	return item, nil
}

func (f *fakeMenuRepo) FindAll(ctx context.Context) ([]domain.MenuItem, error) {
	out := make([]domain.MenuItem, 0, len(f.items))
	for _, item := range f.items {
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeMenuRepo) FindByProvider(ctx context.Context, providerID string) ([]domain.MenuItem, error) {
	var out []domain.MenuItem
	for _, item := range f.items {
		if item.ProviderID == providerID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeMenuRepo) Update(ctx context.Context, item *domain.MenuItem) error {
	if _, ok := f.items[item.ID]; !ok {
		return errors.New("menu item not found")
	}
	f.items[item.ID] = *item
	return nil
}

func (f *fakeMenuRepo) SetAvailability(ctx context.Context, id string, available bool) error {
	item, ok := f.items[id]
	if !ok {
		return errors.New("menu item not found")
	}
	item.IsAvailable = available
	f.items[id] = item
	return nil
}

func (f *fakeMenuRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.items[id]; !ok {
		return errors.New("menu item not found")
	}
	delete(f.items, id)
	return nil
}

func TestCreateItem_GeneratesIDAndNormalizes(t *testing.T) {
	repo := newFakeMenuRepo()
	svc := NewMenuService(repo)

	created, err := svc.CreateItem(context.Background(), &domain.MenuItem{
		ProviderID: "PRV-1",
		Name:       "Misal Pav",
		Cuisine:    "Maharashtrian",
		Price:      80,
		City:       "Pune",
	})
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}

	if !strings.HasPrefix(created.ID, "MEAL-") {
		t.Errorf("expected generated MEAL- id, got %q", created.ID)
	}
	if created.City != "pune" {
		t.Errorf("expected lowercased city, got %q", created.City)
	}
	if !created.IsAvailable {
		t.Error("new items must start available")
	}
}

func TestCreateItem_Validation(t *testing.T) {
	svc := NewMenuService(newFakeMenuRepo())

	cases := []struct {
		name    string
		item    domain.MenuItem
		wantErr string
	}{
		{"missing name", domain.MenuItem{Cuisine: "South Indian", Price: 50}, "name is required"},
		{"missing cuisine", domain.MenuItem{Name: "Dosa", Price: 50}, "cuisine is required"},
		{"zero price", domain.MenuItem{Name: "Dosa", Cuisine: "South Indian"}, "price must be greater than 0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateItem(context.Background(), &tc.item)
			if err == nil || err.Error() != tc.wantErr {
				t.Errorf("expected %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestUpdateItem_UnknownID(t *testing.T) {
	svc := NewMenuService(newFakeMenuRepo())

	_, err := svc.UpdateItem(context.Background(), &domain.MenuItem{
		ID:      "MEAL-missing",
		Name:    "Thali",
		Cuisine: "North Indian",
		Price:   120,
	})
	if err == nil || err.Error() != "menu item not found" {
		t.Errorf("expected menu item not found, got %v", err)
	}
}

func TestSetAvailability_Toggles(t *testing.T) {
	repo := newFakeMenuRepo()
	svc := NewMenuService(repo)

	created, err := svc.CreateItem(context.Background(), &domain.MenuItem{
		Name: "Poha", Cuisine: "Maharashtrian", Price: 40,
	})
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}

	if err := svc.SetAvailability(context.Background(), created.ID, false); err != nil {
		t.Fatalf("SetAvailability: %v", err)
	}

	got, err := svc.GetItemByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetItemByID: %v", err)
	}
	if got.IsAvailable {
		t.Error("expected item to be unavailable after toggle")
	}
}

func TestDeleteItem_UnknownID(t *testing.T) {
	svc := NewMenuService(newFakeMenuRepo())

	if err := svc.DeleteItem(context.Background(), "MEAL-missing"); err == nil {
		t.Error("expected error deleting unknown item")
	}
}
