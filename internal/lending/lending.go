package lending

import (
	"errors"
	"time"
)

var (
	// ErrOutOfStock is returned when an issue finds no copies left. A book
	// that does not exist reads the same way to callers: nothing to lend.
	ErrOutOfStock = errors.New("book out of stock")

	// ErrLoanNotFound is returned when a loan is not found.
	ErrLoanNotFound = errors.New("loan not found")

	// ErrAlreadyReturned guards against returning the same loan twice.
	ErrAlreadyReturned = errors.New("book already returned")

	// ErrCustomerRequired is returned when an issue has no customer name.
	ErrCustomerRequired = errors.New("customer name is required")

	// ErrTxFailed wraps storage failures inside a lending transaction. The
	// transaction is rolled back; callers may retry.
	ErrTxFailed = errors.New("lending transaction failed")
)

// Loan records one copy of a book lent to a customer. ReturnDate is nil
// while the loan is outstanding and is set exactly once on return.
type Loan struct {
	ID           string     `json:"id"`
	BookID       string     `json:"book_id"`
	CustomerName string     `json:"customer_name"`
	IssueDate    time.Time  `json:"issue_date"`
	ReturnDate   *time.Time `json:"return_date,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// IssuedLoan is a loan joined with its book title for display.
type IssuedLoan struct {
	Loan
	BookTitle string `json:"book_title"`
}

// IssueParams holds the validated inputs of an issue operation.
type IssueParams struct {
	BookID       string
	CustomerName string
	IssueDate    time.Time
}
