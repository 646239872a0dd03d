package models

import "time"

// Reviews are append-only; the restaurant rating is the mean over all of
// them, computed on read.
type Review struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RestaurantID uint `gorm:"not null;index" json:"restaurantId"`
	Rating       int  `gorm:"not null" json:"rating"`

	CreatedAt time.Time `json:"created_at"`
}
