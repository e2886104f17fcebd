package models

import "time"

// Shop is a merchant storefront. Each owner has at most one shop — the
// create-edit endpoint upserts on OwnerID rather than inserting duplicates.
type Shop struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	OwnerID   string    `json:"owner" gorm:"uniqueIndex;not null"`
	Name      string    `json:"name" gorm:"not null"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Address   string    `json:"address"`
	Image     string    `json:"image"`
	Items     []Item    `json:"items" gorm:"foreignKey:ShopID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
