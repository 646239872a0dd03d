package models

import "time"

type Order struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"not null;index" json:"userId"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	RestaurantID uint       `gorm:"not null;index" json:"restaurantId"`
	Restaurant   Restaurant `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Status string `gorm:"size:20;default:'PENDING'" json:"status"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type OrderItem struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OrderID uint `gorm:"not null;index" json:"orderId"`

	MenuItemID uint     `gorm:"not null" json:"menuItemId"`
	MenuItem   MenuItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"menuItem,omitempty"`

	Quantity int `gorm:"not null" json:"quantity"`

	// Frozen at order creation so later menu edits never rewrite history.
	UnitPrice float64 `gorm:"not null" json:"unitPrice"`
}
