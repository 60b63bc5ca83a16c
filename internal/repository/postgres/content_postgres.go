package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"

	"backendservice/internal/model"
	"backendservice/internal/repository"
)

// ContentPostgres is a PostgreSQL implementation of repository.ContentRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type ContentPostgres struct {
	db *sql.DB
}

// NewContentPostgres creates a new ContentPostgres repository.
func NewContentPostgres(db *sql.DB) *ContentPostgres {
	return &ContentPostgres{db: db}
}

var _ repository.ContentRepository = (*ContentPostgres)(nil)

// Create inserts a new content row and returns the stored record.
// The primary key settles concurrent inserts of the same id in a single statement.
func (r *ContentPostgres) Create(ctx context.Context, c *model.Content) (*model.Content, error) {
	const q = `
		INSERT INTO contents (id, data, created_at, updated_at)
		VALUES ($1, $2, now(), now())
		RETURNING id, data, created_at, updated_at
	`
	id := c.ID
	if id == "" {
		id = uuid.NewString()
	}
	row := r.db.QueryRowContext(ctx, q, id, textArg(c.Data))
	out, err := scanContent(row)
	if err != nil {
		return nil, mapInsertError(err)
	}
	return out, nil
}

// FindByID fetches a single content row by its ID.
func (r *ContentPostgres) FindByID(ctx context.Context, id string) (*model.Content, error) {
	const q = `
		SELECT id, data, created_at, updated_at
		FROM contents
		WHERE id = $1
	`
	return scanContent(r.db.QueryRowContext(ctx, q, id))
}

// Update replaces the document of an existing row.
func (r *ContentPostgres) Update(ctx context.Context, id string, data json.RawMessage) error {
	const q = `UPDATE contents SET data = $2, updated_at = now() WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id, textArg(data))
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// Delete removes a content row by ID.
func (r *ContentPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM contents WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// List returns every content row in insertion order.
func (r *ContentPostgres) List(ctx context.Context) ([]model.Content, error) {
	const q = `
		SELECT id, data, created_at, updated_at
		FROM contents
		ORDER BY seq
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Content, 0)
	for rows.Next() {
		c, err := scanContent(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanContent(s scanner) (*model.Content, error) {
	var (
		c    model.Content
		data []byte
	)
	if err := s.Scan(&c.ID, &data, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.Data = rawOrNil(data)
	return &c, nil
}
