package order

import (
	"context"

	domain "github.com/leafload/leafload-api/internal/domain/order"
	"github.com/leafload/leafload-api/internal/dto"
	"github.com/leafload/leafload-api/internal/httperr"
	"github.com/leafload/leafload-api/internal/models"
	"github.com/leafload/leafload-api/internal/notify"
)

// ======================================================
// INPUT
// ======================================================

type CreateOrderItemInput struct {
	MenuItemID uint
	Quantity   int
}

type CreateOrderInput struct {
	UserID       uint
	RestaurantID uint
	Items        []CreateOrderItemInput
}

// ======================================================
// USE CASE
// ======================================================

type CreateOrder struct {
	repo   domain.Repository
	notify *notify.Dispatcher
}

func NewCreateOrder(
	repo domain.Repository,
	notify *notify.Dispatcher,
) *CreateOrder {
	return &CreateOrder{
		repo:   repo,
		notify: notify,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateOrder) Execute(
	ctx context.Context,
	in CreateOrderInput,
) (*dto.OrderCreatedDTO, error) {

	if len(in.Items) == 0 {
		return nil, httperr.ErrBusiness("empty_order")
	}

	for _, it := range in.Items {
		if it.Quantity < 1 {
			return nil, httperr.ErrBusiness("invalid_quantity")
		}
	}

	if _, err := uc.repo.GetRestaurantByID(ctx, in.RestaurantID); err != nil {
		return nil, httperr.ErrBusiness("restaurant_not_found")
	}

	itemIDs := make([]uint, 0, len(in.Items))
	for _, it := range in.Items {
		itemIDs = append(itemIDs, it.MenuItemID)
	}

	menuItems, err := uc.repo.GetMenuItemsForRestaurant(ctx, in.RestaurantID, itemIDs)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]models.MenuItem, len(menuItems))
	for _, mi := range menuItems {
		byID[mi.ID] = mi
	}

	o := models.Order{
		UserID:       in.UserID,
		RestaurantID: in.RestaurantID,
		Status:       string(domain.InitialStatus()),
	}

	for _, it := range in.Items {
		mi, ok := byID[it.MenuItemID]
		if !ok {
			return nil, httperr.ErrBusiness("menu_item_not_found")
		}

		o.Items = append(o.Items, models.OrderItem{
			MenuItemID: mi.ID,
			Quantity:   it.Quantity,
			UnitPrice:  mi.Price,
		})
	}

	// Order and items land in one transaction; the notification is only
	// dispatched once that commit has happened.
	if err := uc.repo.CreateOrderWithItems(ctx, &o); err != nil {
		return nil, err
	}

	out := &dto.OrderCreatedDTO{
		ID:           o.ID,
		Status:       o.Status,
		CreatedAt:    o.CreatedAt,
		RestaurantID: o.RestaurantID,
	}
	for _, item := range o.Items {
		mi := byID[item.MenuItemID]
		out.Items = append(out.Items, dto.OrderItemDTO{
			Title:     mi.Title,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
		out.Total += item.UnitPrice * float64(item.Quantity)
	}

	uc.dispatchNotification(ctx, o.ID)

	return out, nil
}

// dispatchNotification resolves the full order summary and hands it to the
// fire-and-forget dispatcher. Any failure here is logged by the dispatcher
// side; it never affects the created order.
func (uc *CreateOrder) dispatchNotification(ctx context.Context, orderID uint) {
	o, err := uc.repo.GetOrderDetail(ctx, orderID)
	if err != nil {
		return
	}

	summary := notify.OrderSummary{
		OrderID:   o.ID,
		OrderDate: o.CreatedAt,

		RestaurantName: o.Restaurant.Name,
		OwnerEmail:     o.Restaurant.Owner.Email,

		CustomerName:    o.User.Name,
		CustomerAddress: o.User.Address,

		DeliveryTimeMin: o.Restaurant.DeliveryTimeMin,
	}
	if o.User.Region != nil {
		summary.CustomerRegion = o.User.Region.Name
	}

	for _, item := range o.Items {
		summary.Items = append(summary.Items, notify.OrderLine{
			Title:     item.MenuItem.Title,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	uc.notify.Dispatch(summary)
}
