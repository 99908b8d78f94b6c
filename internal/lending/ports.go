package lending

import (
	"context"
)

// Ledger defines the transactional lending surface backed by storage.
//
// Implementations must apply each operation atomically: the stock movement
// and the loan record change both commit or neither does, and two
// concurrent issues on a book with one copy left must resolve to exactly
// one success and one ErrOutOfStock.
type Ledger interface {
	Issue(ctx context.Context, p IssueParams) (Loan, error)
	Return(ctx context.Context, loanID string) (Loan, error)
	ListIssued(ctx context.Context) ([]IssuedLoan, error)
}
