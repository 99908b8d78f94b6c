package lending

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresLedger implements Ledger on top of the books and issued_books
// tables. Each operation runs in its own transaction on a pooled
// connection; the book row (and on return, the loan row) is locked
// FOR UPDATE so the availability check and the stock movement form one
// serialized unit.
type PostgresLedger struct {
	db *pgxpool.Pool
}

func NewPostgresLedger(db *pgxpool.Pool) *PostgresLedger {
	return &PostgresLedger{db: db}
}

func txFailed(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, ErrTxFailed, err)
}

func (l *PostgresLedger) Issue(ctx context.Context, p IssueParams) (Loan, error) {
	tx, err := l.db.Begin(ctx)
	if err != nil {
		return Loan{}, txFailed("begin issue", err)
	}
	defer tx.Rollback(ctx)

	stock, err := l.stockForUpdate(ctx, tx, p.BookID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Loan{}, ErrOutOfStock
		}
		return Loan{}, txFailed("lock book row", err)
	}
	if stock <= 0 {
		return Loan{}, ErrOutOfStock
	}

	loan, err := l.insertLoan(ctx, tx, p)
	if err != nil {
		return Loan{}, txFailed("insert loan", err)
	}
	if err := l.adjustStock(ctx, tx, p.BookID, -1); err != nil {
		return Loan{}, txFailed("decrement stock", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return Loan{}, txFailed("commit issue", err)
	}
	return loan, nil
}

func (l *PostgresLedger) Return(ctx context.Context, loanID string) (Loan, error) {
	tx, err := l.db.Begin(ctx)
	if err != nil {
		return Loan{}, txFailed("begin return", err)
	}
	defer tx.Rollback(ctx)

	// The loan row is locked with the same discipline Issue applies to the
	// book row, so two concurrent returns serialize here and the loser sees
	// the return date already set.
	loan, err := l.loanForUpdate(ctx, tx, loanID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Loan{}, ErrLoanNotFound
		}
		return Loan{}, txFailed("lock loan row", err)
	}
	if loan.ReturnDate != nil {
		return Loan{}, ErrAlreadyReturned
	}

	returnedOn := today()
	if err := l.markReturned(ctx, tx, loanID, returnedOn); err != nil {
		return Loan{}, txFailed("set return date", err)
	}
	if err := l.adjustStock(ctx, tx, loan.BookID, +1); err != nil {
		return Loan{}, txFailed("increment stock", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return Loan{}, txFailed("commit return", err)
	}

	loan.ReturnDate = &returnedOn
	return loan, nil
}

func (l *PostgresLedger) ListIssued(ctx context.Context) ([]IssuedLoan, error) {
	const query = `
		SELECT ib.id, ib.book_id, ib.customer_name, ib.issue_date, ib.return_date, ib.created_at, b.title
		FROM issued_books ib
		JOIN books b ON b.id = ib.book_id
		ORDER BY ib.issue_date DESC, ib.created_at DESC`

	rows, err := l.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []IssuedLoan
	for rows.Next() {
		var il IssuedLoan
		if err := rows.Scan(
			&il.ID, &il.BookID, &il.CustomerName, &il.IssueDate, &il.ReturnDate, &il.CreatedAt, &il.BookTitle,
		); err != nil {
			return nil, err
		}
		out = append(out, il)
	}
	return out, rows.Err()
}

// stockForUpdate reads the book's stock and holds a row lock until the
// surrounding transaction ends.
func (l *PostgresLedger) stockForUpdate(ctx context.Context, tx pgx.Tx, bookID string) (int, error) {
	var stock int
	err := tx.QueryRow(ctx, `SELECT stock FROM books WHERE id = $1 FOR UPDATE`, bookID).Scan(&stock)
	return stock, err
}

func (l *PostgresLedger) adjustStock(ctx context.Context, tx pgx.Tx, bookID string, delta int) error {
	_, err := tx.Exec(ctx, `UPDATE books SET stock = stock + $1, updated_at = now() WHERE id = $2`, delta, bookID)
	return err
}

func (l *PostgresLedger) insertLoan(ctx context.Context, tx pgx.Tx, p IssueParams) (Loan, error) {
	loan := Loan{
		ID:           uuid.NewString(),
		BookID:       p.BookID,
		CustomerName: p.CustomerName,
		IssueDate:    p.IssueDate,
		CreatedAt:    time.Now(),
	}

	const sql = `
		INSERT INTO issued_books (id, book_id, customer_name, issue_date, return_date, created_at)
		VALUES ($1, $2, $3, $4, NULL, $5)`

	if _, err := tx.Exec(ctx, sql, loan.ID, loan.BookID, loan.CustomerName, loan.IssueDate, loan.CreatedAt); err != nil {
		return Loan{}, err
	}
	return loan, nil
}

func (l *PostgresLedger) loanForUpdate(ctx context.Context, tx pgx.Tx, loanID string) (Loan, error) {
	const query = `
		SELECT id, book_id, customer_name, issue_date, return_date, created_at
		FROM issued_books
		WHERE id = $1
		FOR UPDATE`

	var loan Loan
	err := tx.QueryRow(ctx, query, loanID).Scan(
		&loan.ID, &loan.BookID, &loan.CustomerName, &loan.IssueDate, &loan.ReturnDate, &loan.CreatedAt,
	)
	return loan, err
}

func (l *PostgresLedger) markReturned(ctx context.Context, tx pgx.Tx, loanID string, returnedOn time.Time) error {
	_, err := tx.Exec(ctx, `UPDATE issued_books SET return_date = $1 WHERE id = $2`, returnedOn, loanID)
	return err
}
