package models

import "time"

type Restaurant struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:500" json:"description"`
	ImageUrl    string `gorm:"size:255" json:"imageUrl"`
	Address     string `gorm:"size:255" json:"address"`

	// Estimated delivery time in minutes, shown in the order notification.
	DeliveryTimeMin *int `json:"deliveryTimeMin"`

	OwnerID uint `json:"ownerId"`
	Owner   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"owner,omitempty"`

	RegionID *uint   `json:"regionId"`
	Region   *Region `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"region,omitempty"`

	Categories []Category `gorm:"foreignKey:RestaurantID" json:"categories,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
