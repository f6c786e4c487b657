package domain

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a purchasable item in the catalog. Products are
// seeded once at startup and never edited by end users; removal is a
// soft-deactivation, never a delete.
type Product struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Price       float64   `json:"price" db:"price"`
	PhotoURL    string    `json:"photo_url" db:"photo_url"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
