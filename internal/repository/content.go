package repository

import (
	"context"
	"encoding/json"

	"backendservice/internal/model"
)

// ContentRepository defines data access for contents. Documents are stored verbatim.
type ContentRepository interface {
	// Create inserts a new content row. An empty ID asks the store to assign one.
	// Returns ErrDuplicateID if the given ID already exists.
	Create(ctx context.Context, c *model.Content) (*model.Content, error)

	// FindByID returns a content row by its ID.
	FindByID(ctx context.Context, id string) (*model.Content, error)

	// Update replaces the stored document and refreshes UpdatedAt.
	Update(ctx context.Context, id string, data json.RawMessage) error

	// Delete removes a content row. Deleting a missing row is sql.ErrNoRows.
	Delete(ctx context.Context, id string) error

	// List returns all contents in insertion order. Never nil.
	List(ctx context.Context) ([]model.Content, error)
}
