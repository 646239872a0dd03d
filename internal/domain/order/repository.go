package order

import (
	"context"

	"github.com/leafload/leafload-api/internal/models"
)

type Repository interface {
	// -------- Restaurant --------
	GetRestaurantByID(
		ctx context.Context,
		id uint,
	) (*models.Restaurant, error)

	// -------- Menu items --------
	GetMenuItemsForRestaurant(
		ctx context.Context,
		restaurantID uint,
		itemIDs []uint,
	) ([]models.MenuItem, error)

	// -------- Order (create) --------
	CreateOrderWithItems(
		ctx context.Context,
		o *models.Order,
	) error

	// -------- Order (status change) --------
	GetOrder(
		ctx context.Context,
		orderID uint,
	) (*models.Order, error)

	UpdateOrderStatus(
		ctx context.Context,
		orderID uint,
		status Status,
	) error

	// -------- Read side --------
	GetOrderDetail(
		ctx context.Context,
		orderID uint,
	) (*models.Order, error)

	ListOrdersForRestaurant(
		ctx context.Context,
		restaurantID uint,
	) ([]models.Order, error)

	ListOrdersForUser(
		ctx context.Context,
		userID uint,
	) ([]models.Order, error)
}
