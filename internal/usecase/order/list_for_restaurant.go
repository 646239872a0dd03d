package order

import (
	"context"

	domain "github.com/leafload/leafload-api/internal/domain/order"
	"github.com/leafload/leafload-api/internal/dto"
	"github.com/leafload/leafload-api/internal/httperr"
)

type ListForRestaurant struct {
	repo domain.Repository
}

func NewListForRestaurant(repo domain.Repository) *ListForRestaurant {
	return &ListForRestaurant{repo: repo}
}

type RestaurantOrdersResult struct {
	RestaurantName string             `json:"restaurantName"`
	Orders         []dto.OrderListDTO `json:"orders"`
}

func (uc *ListForRestaurant) Execute(
	ctx context.Context,
	callerID uint,
	restaurantID uint,
) (*RestaurantOrdersResult, error) {

	restaurant, err := uc.repo.GetRestaurantByID(ctx, restaurantID)
	if err != nil {
		return nil, httperr.ErrBusiness("restaurant_not_found")
	}
	if restaurant.OwnerID != callerID {
		return nil, httperr.ErrBusiness("forbidden")
	}

	orders, err := uc.repo.ListOrdersForRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	return &RestaurantOrdersResult{
		RestaurantName: restaurant.Name,
		Orders:         ordersToDTOs(orders),
	}, nil
}
