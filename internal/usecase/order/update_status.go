package order

import (
	"context"

	domain "github.com/leafload/leafload-api/internal/domain/order"
	"github.com/leafload/leafload-api/internal/httperr"
)

type UpdateStatus struct {
	repo domain.Repository
}

func NewUpdateStatus(repo domain.Repository) *UpdateStatus {
	return &UpdateStatus{repo: repo}
}

type UpdateStatusResult struct {
	ID     uint   `json:"id"`
	Status string `json:"status"`
}

// Execute applies one step of the fulfillment state machine. Only the
// owner of the order's restaurant may move it.
func (uc *UpdateStatus) Execute(
	ctx context.Context,
	callerID uint,
	orderID uint,
	newStatus domain.Status,
) (*UpdateStatusResult, error) {

	o, err := uc.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, httperr.ErrBusiness("order_not_found")
	}

	restaurant, err := uc.repo.GetRestaurantByID(ctx, o.RestaurantID)
	if err != nil {
		return nil, err
	}
	if restaurant.OwnerID != callerID {
		return nil, httperr.ErrBusiness("forbidden")
	}

	if !domain.IsValidStatus(newStatus) {
		return nil, httperr.ErrBusiness("invalid_transition")
	}

	if err := domain.CanTransition(domain.Status(o.Status), newStatus); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateOrderStatus(ctx, o.ID, newStatus); err != nil {
		return nil, err
	}

	return &UpdateStatusResult{
		ID:     o.ID,
		Status: string(newStatus),
	}, nil
}
