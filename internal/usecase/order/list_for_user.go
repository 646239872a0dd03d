package order

import (
	"context"

	domain "github.com/leafload/leafload-api/internal/domain/order"
	"github.com/leafload/leafload-api/internal/dto"
	"github.com/leafload/leafload-api/internal/models"
)

type ListForUser struct {
	repo domain.Repository
}

func NewListForUser(repo domain.Repository) *ListForUser {
	return &ListForUser{repo: repo}
}

// Execute only ever lists orders for the verified token subject; a caller
// cannot read another user's history.
func (uc *ListForUser) Execute(
	ctx context.Context,
	userID uint,
) ([]dto.OrderListDTO, error) {

	orders, err := uc.repo.ListOrdersForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return ordersToDTOs(orders), nil
}

// ordersToDTOs is the shared read-side join: customer name and address,
// restaurant name and item titles are resolved per order, most recent
// first (the repository already sorts by created_at DESC).
func ordersToDTOs(orders []models.Order) []dto.OrderListDTO {
	out := make([]dto.OrderListDTO, 0, len(orders))

	for _, o := range orders {
		entry := dto.OrderListDTO{
			ID:             o.ID,
			Status:         o.Status,
			CreatedAt:      o.CreatedAt,
			RestaurantName: o.Restaurant.Name,
			UserName:       o.User.Name,
			UserAddress:    o.User.Address,
			Items:          make([]dto.OrderItemDTO, 0, len(o.Items)),
		}

		for _, item := range o.Items {
			entry.Items = append(entry.Items, dto.OrderItemDTO{
				Title:     item.MenuItem.Title,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
			})
		}

		out = append(out, entry)
	}

	return out
}
