package catalog

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a book is not found.
var ErrNotFound = errors.New("book not found")

// ErrTitleRequired is returned when a book is added without a title.
var ErrTitleRequired = errors.New("book title is required")

// Book represents a catalog entry and its available stock.
// Stock counts copies currently on the shelf; lending transactions are the
// only writers of this field after creation.
type Book struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author,omitempty"`
	Genre     string    `json:"genre,omitempty"`
	Price     float64   `json:"price"`
	Stock     int       `json:"stock"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Filter narrows a catalog listing.
type Filter struct {
	AvailableOnly bool
}
