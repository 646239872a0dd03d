package models

import "time"

type Category struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	RestaurantID uint   `gorm:"not null" json:"restaurantId"`

	MenuItems []MenuItem `gorm:"foreignKey:CategoryID" json:"menuItems,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
