package repository

import (
	"context"
	"encoding/json"

	"backendservice/internal/model"
)

// TransferRepository defines data access for transfers.
type TransferRepository interface {
	// Create inserts a new transfer. An empty ID gets the next value of the transfer sequence.
	// Returns ErrDuplicateID if the given ID already exists.
	Create(ctx context.Context, t *model.Transfer) (*model.Transfer, error)

	FindByID(ctx context.Context, id string) (*model.Transfer, error)

	// UpdateAsset and UpdateContents overwrite a single field (last writer wins).
	UpdateAsset(ctx context.Context, id string, asset json.RawMessage) error
	UpdateContents(ctx context.Context, id string, contents json.RawMessage) error

	Delete(ctx context.Context, id string) error

	// List returns all transfers in insertion order. Never nil.
	List(ctx context.Context) ([]model.Transfer, error)
}
