package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"backendservice/internal/model"
	"backendservice/internal/repository"
)

// TransferPostgres is a PostgreSQL implementation of repository.TransferRepository.
type TransferPostgres struct {
	db *sql.DB
}

// NewTransferPostgres creates a new TransferPostgres repository.
func NewTransferPostgres(db *sql.DB) *TransferPostgres {
	return &TransferPostgres{db: db}
}

var _ repository.TransferRepository = (*TransferPostgres)(nil)

const transferColumns = `id, document, asset, contents, created_at, updated_at`

// maxSequenceAttempts bounds how many sequence values Create skips over when callers
// have already taken them as their own ids.
const maxSequenceAttempts = 32

// Create inserts a transfer. Without a caller id the next free transfers_id_seq value is used;
// only a caller-supplied id can fail with repository.ErrDuplicateID.
func (r *TransferPostgres) Create(ctx context.Context, t *model.Transfer) (*model.Transfer, error) {
	if t.ID != "" {
		return r.insert(ctx, t)
	}
	for attempt := 1; ; attempt++ {
		out, err := r.insert(ctx, t)
		if !errors.Is(err, repository.ErrDuplicateID) || attempt == maxSequenceAttempts {
			return out, err
		}
	}
}

func (r *TransferPostgres) insert(ctx context.Context, t *model.Transfer) (*model.Transfer, error) {
	const q = `
		INSERT INTO transfers (id, document, asset, contents, created_at, updated_at)
		VALUES (COALESCE(NULLIF($1::text, ''), nextval('transfers_id_seq')::text), $2, $3, $4, now(), now())
		RETURNING ` + transferColumns
	row := r.db.QueryRowContext(ctx, q,
		t.ID,
		textArg(t.Document),
		textArg(t.Asset),
		textArg(t.Contents),
	)
	out, err := scanTransfer(row)
	if err != nil {
		return nil, mapInsertError(err)
	}
	return out, nil
}

// FindByID fetches a single transfer by its ID.
func (r *TransferPostgres) FindByID(ctx context.Context, id string) (*model.Transfer, error) {
	const q = `SELECT ` + transferColumns + ` FROM transfers WHERE id = $1`
	return scanTransfer(r.db.QueryRowContext(ctx, q, id))
}

// UpdateAsset overwrites the resolved asset of a transfer.
func (r *TransferPostgres) UpdateAsset(ctx context.Context, id string, asset json.RawMessage) error {
	const q = `UPDATE transfers SET asset = $2, updated_at = now() WHERE id = $1`
	return r.exec(ctx, q, id, textArg(asset))
}

// UpdateContents overwrites the contents of a transfer.
func (r *TransferPostgres) UpdateContents(ctx context.Context, id string, contents json.RawMessage) error {
	const q = `UPDATE transfers SET contents = $2, updated_at = now() WHERE id = $1`
	return r.exec(ctx, q, id, textArg(contents))
}

// Delete removes a transfer by ID.
func (r *TransferPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM transfers WHERE id = $1`
	return r.exec(ctx, q, id)
}

// List returns every transfer in insertion order.
func (r *TransferPostgres) List(ctx context.Context) ([]model.Transfer, error) {
	const q = `SELECT ` + transferColumns + ` FROM transfers ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Transfer, 0)
	for rows.Next() {
		t, err := scanTransfer(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *TransferPostgres) exec(ctx context.Context, q string, args ...any) error {
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func scanTransfer(s scanner) (*model.Transfer, error) {
	var (
		t                         model.Transfer
		document, asset, contents []byte
	)
	if err := s.Scan(&t.ID, &document, &asset, &contents, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	t.Document = rawOrNil(document)
	t.Asset = rawOrNil(asset)
	t.Contents = rawOrNil(contents)
	return &t, nil
}

func rawOrNil(b []byte) json.RawMessage {
	if b == nil {
		return nil
	}
	return json.RawMessage(b)
}
