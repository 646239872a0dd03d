package models

import "time"

type MenuItem struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title       string  `gorm:"size:100;not null" json:"title"`
	Description string  `gorm:"size:500" json:"description"`
	ImageUrl    string  `gorm:"size:255" json:"imageUrl"`
	Price       float64 `gorm:"not null" json:"price"`

	// Nullable on purpose: items without a category land in the "Other" bucket.
	CategoryID *uint     `json:"categoryId"`
	Category   *Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"category,omitempty"`

	RestaurantID uint       `gorm:"not null" json:"restaurantId"`
	Restaurant   Restaurant `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
