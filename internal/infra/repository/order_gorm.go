package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/leafload/leafload-api/internal/domain/order"
	"github.com/leafload/leafload-api/internal/models"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

// --------------------------------------------------
// Restaurant
// --------------------------------------------------

func (r *OrderGormRepository) GetRestaurantByID(
	ctx context.Context,
	id uint,
) (*models.Restaurant, error) {

	var restaurant models.Restaurant
	if err := r.db.WithContext(ctx).First(&restaurant, id).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// --------------------------------------------------
// Menu items
// --------------------------------------------------

// GetMenuItemsForRestaurant only returns items that actually belong to the
// restaurant; the caller compares counts to detect foreign items.
func (r *OrderGormRepository) GetMenuItemsForRestaurant(
	ctx context.Context,
	restaurantID uint,
	itemIDs []uint,
) ([]models.MenuItem, error) {

	var items []models.MenuItem
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND id IN ?", restaurantID, itemIDs).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// --------------------------------------------------
// Order (create)
// --------------------------------------------------

// CreateOrderWithItems inserts the order row and all its items as one
// transaction. A partial order is never observable.
func (r *OrderGormRepository) CreateOrderWithItems(
	ctx context.Context,
	o *models.Order,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items := o.Items
		o.Items = nil

		if err := tx.Create(o).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].OrderID = o.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}

		o.Items = items
		return nil
	})
}

// --------------------------------------------------
// Order (status change)
// --------------------------------------------------

func (r *OrderGormRepository) GetOrder(
	ctx context.Context,
	orderID uint,
) (*models.Order, error) {

	var o models.Order
	if err := r.db.WithContext(ctx).First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderGormRepository) UpdateOrderStatus(
	ctx context.Context,
	orderID uint,
	status domain.Status,
) error {

	return r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("status", string(status)).Error
}

// --------------------------------------------------
// Read side
// --------------------------------------------------

func (r *OrderGormRepository) GetOrderDetail(
	ctx context.Context,
	orderID uint,
) (*models.Order, error) {

	var o models.Order
	if err := r.db.WithContext(ctx).
		Preload("Items.MenuItem").
		Preload("User.Region").
		Preload("Restaurant.Owner").
		First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderGormRepository) ListOrdersForRestaurant(
	ctx context.Context,
	restaurantID uint,
) ([]models.Order, error) {

	var orders []models.Order
	if err := r.db.WithContext(ctx).
		Preload("Items.MenuItem").
		Preload("User").
		Preload("Restaurant").
		Where("restaurant_id = ?", restaurantID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderGormRepository) ListOrdersForUser(
	ctx context.Context,
	userID uint,
) ([]models.Order, error) {

	var orders []models.Order
	if err := r.db.WithContext(ctx).
		Preload("Items.MenuItem").
		Preload("User").
		Preload("Restaurant").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Compile-time check
var _ domain.Repository = (*OrderGormRepository)(nil)
