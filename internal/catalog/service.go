package catalog

import (
	"context"
	"strings"
)

// Service provides catalog business logic.
type Service struct {
	repo Repository
}

// NewService creates a new catalog service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// AddBookParams holds the fields supplied when adding a book.
type AddBookParams struct {
	Title  string
	Author string
	Genre  string
	Price  float64
	Stock  int
}

// AddBook creates a new catalog entry. The title must be non-empty after
// trimming; price and stock are range-checked at the HTTP boundary and by
// the schema.
func (s *Service) AddBook(ctx context.Context, p AddBookParams) (Book, error) {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return Book{}, ErrTitleRequired
	}

	b := Book{
		Title:  title,
		Author: strings.TrimSpace(p.Author),
		Genre:  strings.TrimSpace(p.Genre),
		Price:  p.Price,
		Stock:  p.Stock,
	}
	if err := s.repo.Create(ctx, &b); err != nil {
		return Book{}, err
	}
	return b, nil
}

// GetBook returns a single book by ID.
func (s *Service) GetBook(ctx context.Context, id string) (Book, error) {
	return s.repo.GetByID(ctx, id)
}

// ListBooks returns books matching the filter.
func (s *Service) ListBooks(ctx context.Context, f Filter) ([]Book, error) {
	return s.repo.List(ctx, f)
}
