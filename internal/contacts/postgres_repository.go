package contacts

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxPool is the subset of pgxpool.Pool the repository needs. pgxmock
// satisfies it in tests.
type PgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresRepository stores submissions in the contacts table.
type PostgresRepository struct {
	pool PgxPool
}

// NewPostgresRepository initializes a repo backed by pgxpool.
func NewPostgresRepository(pool PgxPool) *PostgresRepository {
	if pool == nil {
		panic("contacts: pgx pool required")
	}
	return &PostgresRepository{pool: pool}
}

// Create inserts a new row with a generated id.
func (r *PostgresRepository) Create(ctx context.Context, req *CreateContactRequest) (*ContactSubmission, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sub := newSubmission(req)
	id, err := uuid.Parse(sub.ID)
	if err != nil {
		return nil, fmt.Errorf("contacts: bad generated id: %w", err)
	}

	query := `
		INSERT INTO contacts (id, name, email, subject, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	var createdAt time.Time
	if err := r.pool.QueryRow(ctx, query,
		id,
		sub.Name,
		sub.Email,
		sub.Subject,
		sub.Message,
	).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("contacts: insert failed: %w", err)
	}

	sub.CreatedAt = createdAt
	return sub, nil
}

// ListAll returns every stored submission, oldest first.
func (r *PostgresRepository) ListAll(ctx context.Context) ([]*ContactSubmission, error) {
	query := `
		SELECT id, name, email, subject, message, created_at
		FROM contacts
		ORDER BY created_at ASC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("contacts: select failed: %w", err)
	}
	defer rows.Close()

	var out []*ContactSubmission
	for rows.Next() {
		var sub ContactSubmission
		if err := rows.Scan(
			&sub.ID,
			&sub.Name,
			&sub.Email,
			&sub.Subject,
			&sub.Message,
			&sub.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("contacts: scan failed: %w", err)
		}
		out = append(out, &sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("contacts: rows failed: %w", err)
	}
	return out, nil
}

var _ Repository = (*PostgresRepository)(nil)
