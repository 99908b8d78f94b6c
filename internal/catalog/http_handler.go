package catalog

import (
	"encoding/json"
	"errors"
	"net/http"

	"bookstore/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type addBookRequest struct {
	Title  string  `json:"title" validate:"required,max=500"`
	Author string  `json:"author" validate:"max=500"`
	Genre  string  `json:"genre" validate:"max=100"`
	Price  float64 `json:"price" validate:"gte=0"`
	Stock  int     `json:"stock" validate:"gte=0"`
}

// Add handles POST /v1/books
func (h *HTTPHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", nil)
		return
	}

	if details := httpx.ValidateStruct(req); details != nil {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request", details)
		return
	}

	book, err := h.service.AddBook(r.Context(), AddBookParams{
		Title:  req.Title,
		Author: req.Author,
		Genre:  req.Genre,
		Price:  req.Price,
		Stock:  req.Stock,
	})
	if err != nil {
		if errors.Is(err, ErrTitleRequired) {
			httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Title is required", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccessCreated(w, book)
}

// List handles GET /v1/books
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	f := Filter{
		AvailableOnly: r.URL.Query().Get("available") == "true",
	}

	books, err := h.service.ListBooks(r.Context(), f)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, books, map[string]any{
		"count": len(books),
	})
}

// Get handles GET /v1/books/{id}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		http.NotFound(w, r)
		return
	}

	book, err := h.service.GetBook(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, book, nil)
}
