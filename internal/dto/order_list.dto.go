package dto

import "time"

type OrderItemDTO struct {
	Title     string  `json:"title"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

type OrderListDTO struct {
	ID             uint           `json:"id"`
	Status         string         `json:"status"`
	CreatedAt      time.Time      `json:"createdAt"`
	RestaurantName string         `json:"restaurantName"`
	UserName       string         `json:"userName"`
	UserAddress    string         `json:"userAddress"`
	Items          []OrderItemDTO `json:"items"`
}

type OrderCreatedDTO struct {
	ID           uint           `json:"id"`
	Status       string         `json:"status"`
	CreatedAt    time.Time      `json:"createdAt"`
	RestaurantID uint           `json:"restaurantId"`
	Total        float64        `json:"total"`
	Items        []OrderItemDTO `json:"items"`
}
