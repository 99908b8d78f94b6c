package catalog

import (
	"context"
)

// Repository defines the contract for catalog storage.
type Repository interface {
	Create(ctx context.Context, b *Book) error
	GetByID(ctx context.Context, id string) (Book, error)
	List(ctx context.Context, f Filter) ([]Book, error)
}
