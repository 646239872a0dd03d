package models

// Static delivery regions, seeded at startup and never mutated by the API.
type Region struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`
}
