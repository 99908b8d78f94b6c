package lending

import (
	"context"
	"strings"
	"time"
)

// Service validates lending requests before handing them to the ledger.
// All consistency guarantees live below, in the ledger's transactions;
// validation failures here never touch storage.
type Service struct {
	ledger Ledger
}

// NewService creates a new lending service.
func NewService(ledger Ledger) *Service {
	return &Service{ledger: ledger}
}

// Issue lends one copy of a book to a customer. The customer name must be
// non-empty after trimming; a zero issue date defaults to today.
func (s *Service) Issue(ctx context.Context, bookID, customerName string, issueDate time.Time) (Loan, error) {
	name := strings.TrimSpace(customerName)
	if name == "" {
		return Loan{}, ErrCustomerRequired
	}
	if issueDate.IsZero() {
		issueDate = today()
	}

	return s.ledger.Issue(ctx, IssueParams{
		BookID:       bookID,
		CustomerName: name,
		IssueDate:    issueDate,
	})
}

// Return closes an outstanding loan and puts the copy back in stock.
func (s *Service) Return(ctx context.Context, loanID string) (Loan, error) {
	if strings.TrimSpace(loanID) == "" {
		return Loan{}, ErrLoanNotFound
	}
	return s.ledger.Return(ctx, loanID)
}

// ListIssued returns all loans, newest issue first, with book titles.
func (s *Service) ListIssued(ctx context.Context) ([]IssuedLoan, error) {
	return s.ledger.ListIssued(ctx)
}

func today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
