package order

import (
	"context"
	"errors"
	"testing"

	domain "github.com/leafload/leafload-api/internal/domain/order"
	"github.com/leafload/leafload-api/internal/httperr"
	"github.com/leafload/leafload-api/internal/models"
	"github.com/leafload/leafload-api/internal/notify"
)

// stubRepo serves a fixed restaurant and menu, and records what gets
// created.
type stubRepo struct {
	restaurant *models.Restaurant
	menuItems  []models.MenuItem
	created    *models.Order
}

func (s *stubRepo) GetRestaurantByID(_ context.Context, id uint) (*models.Restaurant, error) {
	if s.restaurant == nil || s.restaurant.ID != id {
		return nil, errors.New("record not found")
	}
	return s.restaurant, nil
}

func (s *stubRepo) GetMenuItemsForRestaurant(_ context.Context, restaurantID uint, itemIDs []uint) ([]models.MenuItem, error) {
	var out []models.MenuItem
	for _, mi := range s.menuItems {
		if mi.RestaurantID != restaurantID {
			continue
		}
		for _, id := range itemIDs {
			if mi.ID == id {
				out = append(out, mi)
			}
		}
	}
	return out, nil
}

func (s *stubRepo) CreateOrderWithItems(_ context.Context, o *models.Order) error {
	o.ID = 1
	s.created = o
	return nil
}

func (s *stubRepo) GetOrder(_ context.Context, orderID uint) (*models.Order, error) {
	if s.created == nil || s.created.ID != orderID {
		return nil, errors.New("record not found")
	}
	return s.created, nil
}

func (s *stubRepo) UpdateOrderStatus(_ context.Context, orderID uint, status domain.Status) error {
	if s.created != nil && s.created.ID == orderID {
		s.created.Status = string(status)
	}
	return nil
}

func (s *stubRepo) GetOrderDetail(_ context.Context, orderID uint) (*models.Order, error) {
	return s.GetOrder(nil, orderID)
}

func (s *stubRepo) ListOrdersForRestaurant(_ context.Context, restaurantID uint) ([]models.Order, error) {
	return nil, nil
}

func (s *stubRepo) ListOrdersForUser(_ context.Context, userID uint) ([]models.Order, error) {
	return nil, nil
}

var _ domain.Repository = (*stubRepo)(nil)

type noopSender struct{}

func (noopSender) SendOrderNotification(notify.OrderSummary) error { return nil }

func newStubRepo() *stubRepo {
	return &stubRepo{
		restaurant: &models.Restaurant{ID: 10, Name: "Testwirt", OwnerID: 5},
		menuItems: []models.MenuItem{
			{ID: 100, RestaurantID: 10, Title: "Bowl", Price: 9.5},
			{ID: 101, RestaurantID: 10, Title: "Soda", Price: 2.5},
		},
	}
}

func TestCreateOrderComputesTotal(t *testing.T) {
	repo := newStubRepo()
	uc := NewCreateOrder(repo, notify.NewDispatcher(noopSender{}))

	out, err := uc.Execute(context.Background(), CreateOrderInput{
		UserID:       7,
		RestaurantID: 10,
		Items: []CreateOrderItemInput{
			{MenuItemID: 100, Quantity: 2},
			{MenuItemID: 101, Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if out.Total != 21.5 {
		t.Errorf("Total = %v, want 21.5", out.Total)
	}
	if out.Status != "PENDING" {
		t.Errorf("Status = %q, want PENDING", out.Status)
	}
	if repo.created == nil || len(repo.created.Items) != 2 {
		t.Fatalf("created order = %+v", repo.created)
	}
	if repo.created.Items[0].UnitPrice != 9.5 {
		t.Errorf("UnitPrice = %v, want the menu price snapshot", repo.created.Items[0].UnitPrice)
	}
}

func TestCreateOrderBusinessErrors(t *testing.T) {
	cases := []struct {
		name     string
		input    CreateOrderInput
		wantCode string
	}{
		{
			name:     "no items",
			input:    CreateOrderInput{UserID: 7, RestaurantID: 10},
			wantCode: "empty_order",
		},
		{
			name: "zero quantity",
			input: CreateOrderInput{
				UserID: 7, RestaurantID: 10,
				Items: []CreateOrderItemInput{{MenuItemID: 100, Quantity: 0}},
			},
			wantCode: "invalid_quantity",
		},
		{
			name: "unknown restaurant",
			input: CreateOrderInput{
				UserID: 7, RestaurantID: 99,
				Items: []CreateOrderItemInput{{MenuItemID: 100, Quantity: 1}},
			},
			wantCode: "restaurant_not_found",
		},
		{
			name: "foreign menu item",
			input: CreateOrderInput{
				UserID: 7, RestaurantID: 10,
				Items: []CreateOrderItemInput{{MenuItemID: 999, Quantity: 1}},
			},
			wantCode: "menu_item_not_found",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newStubRepo()
			uc := NewCreateOrder(repo, notify.NewDispatcher(noopSender{}))

			_, err := uc.Execute(context.Background(), tc.input)
			if !httperr.IsBusiness(err, tc.wantCode) {
				t.Errorf("err = %v, want business code %s", err, tc.wantCode)
			}
			if repo.created != nil {
				t.Error("a rejected order must not be persisted")
			}
		})
	}
}

func TestUpdateStatusOwnership(t *testing.T) {
	repo := newStubRepo()
	repo.created = &models.Order{ID: 1, RestaurantID: 10, Status: "PENDING"}

	uc := NewUpdateStatus(repo)

	if _, err := uc.Execute(context.Background(), 999, 1, domain.StatusPreparing); !httperr.IsBusiness(err, "forbidden") {
		t.Errorf("stranger: err = %v, want forbidden", err)
	}

	out, err := uc.Execute(context.Background(), 5, 1, domain.StatusPreparing)
	if err != nil {
		t.Fatalf("owner: %v", err)
	}
	if out.Status != "PREPARING" {
		t.Errorf("Status = %q, want PREPARING", out.Status)
	}

	if _, err := uc.Execute(context.Background(), 5, 2, domain.StatusPreparing); !httperr.IsBusiness(err, "order_not_found") {
		t.Errorf("missing order: err = %v, want order_not_found", err)
	}
}
