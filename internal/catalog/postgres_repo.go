package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) Create(ctx context.Context, b *Book) error {
	b.ID = uuid.NewString()
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now

	const sql = `
		INSERT INTO books (id, title, author, genre, price, stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, sql, b.ID, b.Title, b.Author, b.Genre, b.Price, b.Stock, b.CreatedAt, b.UpdatedAt)
	return err
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (Book, error) {
	const query = `
		SELECT id, title, author, genre, price, stock, created_at, updated_at
		FROM books
		WHERE id = $1`

	var b Book
	err := r.db.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Title, &b.Author, &b.Genre, &b.Price, &b.Stock, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

func (r *PostgresRepo) List(ctx context.Context, f Filter) ([]Book, error) {
	query := `
		SELECT id, title, author, genre, price, stock, created_at, updated_at
		FROM books`
	if f.AvailableOnly {
		query += `
		WHERE stock > 0`
	}
	query += `
		ORDER BY title ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(
			&b.ID, &b.Title, &b.Author, &b.Genre, &b.Price, &b.Stock, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
