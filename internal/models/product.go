package models

import (
	"time"

	"github.com/gocql/gocql"
)

// Categories shown on the storefront. "All" only ever displays these two.
const (
	CategoryDrinks     = "Drinks"
	CategoryAdditional = "Additional"
)

type Product struct {
	ID          gocql.UUID `json:"_id" db:"product_id"`
	Name        string     `json:"name" db:"name"`
	Price       float64    `json:"price" db:"price"`
	Description string     `json:"description" db:"description"`
	Category    string     `json:"category" db:"category"`
	ImageURL    string     `json:"imageUrl,omitempty" db:"image_url"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}

func ValidCategory(c string) bool {
	return c == CategoryDrinks || c == CategoryAdditional
}
