package lending

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"bookstore/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type issueRequest struct {
	BookID       string `json:"book_id" validate:"required"`
	CustomerName string `json:"customer_name" validate:"required,max=200"`
	IssueDate    string `json:"issue_date" validate:"omitempty,datetime=2006-01-02"`
}

// Issue handles POST /v1/loans
func (h *HTTPHandler) Issue(w http.ResponseWriter, r *http.Request) {
	var req issueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", nil)
		return
	}

	if details := httpx.ValidateStruct(req); details != nil {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request", details)
		return
	}

	var issueDate time.Time
	if req.IssueDate != "" {
		issueDate, _ = time.Parse("2006-01-02", req.IssueDate)
	}

	loan, err := h.service.Issue(r.Context(), req.BookID, req.CustomerName, issueDate)
	if err != nil {
		writeError(w, err)
		return
	}

	httpx.JSONSuccessCreated(w, loan)
}

// Return handles POST /v1/loans/{id}/return
func (h *HTTPHandler) Return(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		http.NotFound(w, r)
		return
	}

	loan, err := h.service.Return(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	httpx.JSONSuccess(w, loan, nil)
}

// ListIssued handles GET /v1/loans
func (h *HTTPHandler) ListIssued(w http.ResponseWriter, r *http.Request) {
	loans, err := h.service.ListIssued(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, loans, map[string]any{
		"count": len(loans),
	})
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrCustomerRequired):
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Customer name is required", nil)
	case errors.Is(err, ErrOutOfStock):
		httpx.JSONError(w, http.StatusConflict, "OUT_OF_STOCK", "Book is out of stock", nil)
	case errors.Is(err, ErrLoanNotFound):
		httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Loan not found", nil)
	case errors.Is(err, ErrAlreadyReturned):
		httpx.JSONError(w, http.StatusConflict, "ALREADY_RETURNED", "Book already returned", nil)
	case errors.Is(err, ErrTxFailed):
		httpx.JSONError(w, http.StatusServiceUnavailable, "TRANSACTION_FAILED", "Could not complete the transaction, please retry", nil)
	default:
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}
