package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/leafload/leafload-api/internal/domain/order"
	"github.com/leafload/leafload-api/internal/httperr"
	"github.com/leafload/leafload-api/internal/middleware"
	usecase "github.com/leafload/leafload-api/internal/usecase/order"
)

type OrderHandler struct {
	create            *usecase.CreateOrder
	updateStatus      *usecase.UpdateStatus
	listForRestaurant *usecase.ListForRestaurant
	listForUser       *usecase.ListForUser
}

func NewOrderHandler(
	create *usecase.CreateOrder,
	updateStatus *usecase.UpdateStatus,
	listForRestaurant *usecase.ListForRestaurant,
	listForUser *usecase.ListForUser,
) *OrderHandler {
	return &OrderHandler{
		create:            create,
		updateStatus:      updateStatus,
		listForRestaurant: listForRestaurant,
		listForUser:       listForUser,
	}
}

type createOrderItemRequest struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required"`
}

type createOrderRequest struct {
	RestaurantID uint                     `json:"restaurantId" binding:"required"`
	Items        []createOrderItemRequest `json:"items"`
}

// Create places an order for the token subject. The body cannot name a
// different customer.
func (h *OrderHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	in := usecase.CreateOrderInput{
		UserID:       userID,
		RestaurantID: req.RestaurantID,
	}
	for _, item := range req.Items {
		in.Items = append(in.Items, usecase.CreateOrderItemInput{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
		})
	}

	out, err := h.create.Execute(c.Request.Context(), in)
	if err != nil {
		switch httperr.BusinessCode(err) {
		case "empty_order":
			httperr.BadRequest(c, "empty_order", "Order must contain at least one item")
		case "invalid_quantity":
			httperr.BadRequest(c, "invalid_quantity", "Quantity must be at least 1")
		case "restaurant_not_found":
			httperr.NotFound(c, "restaurant_not_found", "Restaurant not found")
		case "menu_item_not_found":
			httperr.BadRequest(c, "menu_item_not_found", "Menu item does not belong to this restaurant")
		default:
			httperr.Internal(c, "failed_to_create_order", "Could not create order.")
		}
		return
	}

	c.JSON(http.StatusCreated, out)
}

// ListMine returns the order history of the token subject, most recent
// first.
func (h *OrderHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	orders, err := h.listForUser.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_orders", "Could not list orders.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// ListForRestaurant returns the incoming orders of a restaurant. Owner
// only.
func (h *OrderHandler) ListForRestaurant(c *gin.Context) {
	callerID := c.MustGet(middleware.ContextUserID).(uint)

	restaurantID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid restaurant id.")
		return
	}

	out, err := h.listForRestaurant.Execute(c.Request.Context(), callerID, uint(restaurantID))
	if err != nil {
		switch httperr.BusinessCode(err) {
		case "restaurant_not_found":
			httperr.NotFound(c, "restaurant_not_found", "Restaurant not found")
		case "forbidden":
			httperr.Forbidden(c, "forbidden", "You do not own this restaurant")
		default:
			httperr.Internal(c, "failed_to_list_orders", "Could not list orders.")
		}
		return
	}

	c.JSON(http.StatusOK, out)
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus moves an order one step along its fulfillment chain.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	callerID := c.MustGet(middleware.ContextUserID).(uint)

	orderID, err := strconv.ParseUint(c.Param("orderId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid order id.")
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	out, err := h.updateStatus.Execute(c.Request.Context(), callerID, uint(orderID), domain.Status(req.Status))
	if err != nil {
		switch httperr.BusinessCode(err) {
		case "order_not_found":
			httperr.NotFound(c, "order_not_found", "Order not found")
		case "forbidden":
			httperr.Forbidden(c, "forbidden", "You do not own this restaurant")
		case "invalid_transition":
			httperr.BadRequest(c, "invalid_transition", "Invalid status transition")
		default:
			httperr.Internal(c, "failed_to_update_order", "Could not update order.")
		}
		return
	}

	c.JSON(http.StatusOK, out)
}
