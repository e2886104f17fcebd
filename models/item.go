package models

import (
	"errors"
	"math"
	"time"
)

// Rating is the running aggregate of user-submitted scores for an item.
type Rating struct {
	Average float64 `json:"average" gorm:"default:0"`
	Count   int     `json:"count" gorm:"default:0"`
}

type Item struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ShopID    uint      `json:"shop_id" gorm:"not null"`
	Shop      *Shop     `json:"shop,omitempty" gorm:"foreignKey:ShopID"`
	Name      string    `json:"name" gorm:"not null"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	FoodType  string    `json:"foodType"`
	Image     string    `json:"image"`
	Rating    Rating    `json:"rating" gorm:"embedded;embeddedPrefix:rating_"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ErrInvalidRating is returned for scores outside [1,5].
var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// ApplyRating folds a new score into the running mean, rounded to two
// decimals. Count only ever grows.
func (i *Item) ApplyRating(score float64) error {
	if score < 1 || score > 5 {
		return ErrInvalidRating
	}
	newCount := i.Rating.Count + 1
	sum := i.Rating.Average*float64(i.Rating.Count) + score
	i.Rating.Average = math.Round(sum/float64(newCount)*100) / 100
	i.Rating.Count = newCount
	return nil
}
