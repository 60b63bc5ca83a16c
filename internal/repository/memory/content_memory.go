package memory

import (
	"context"
	"database/sql"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"backendservice/internal/model"
	"backendservice/internal/repository"
)

// ContentMemory is an in-memory implementation of repository.ContentRepository.
// It is safe for concurrent use and keeps insertion order for List.
type ContentMemory struct {
	mu    sync.RWMutex
	byID  map[string]*model.Content
	order []string
	now   func() time.Time
}

// NewContentMemory creates an empty in-memory content store.
func NewContentMemory() *ContentMemory {
	return &ContentMemory{
		byID: make(map[string]*model.Content),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

var _ repository.ContentRepository = (*ContentMemory)(nil)

func (s *ContentMemory) Create(ctx context.Context, c *model.Content) (*model.Content, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := c.ID
	if id == "" {
		id = uuid.NewString()
	}
	if _, exists := s.byID[id]; exists {
		return nil, repository.ErrDuplicateID
	}

	now := s.now()
	stored := &model.Content{
		ID:        id,
		Data:      clone(c.Data),
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.byID[id] = stored
	s.order = append(s.order, id)
	return copyContent(stored), nil
}

func (s *ContentMemory) FindByID(ctx context.Context, id string) (*model.Content, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.byID[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return copyContent(c), nil
}

func (s *ContentMemory) Update(ctx context.Context, id string, data json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.byID[id]
	if !ok {
		return sql.ErrNoRows
	}
	c.Data = clone(data)
	c.UpdatedAt = s.now()
	return nil
}

func (s *ContentMemory) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return sql.ErrNoRows
	}
	delete(s.byID, id)
	s.order = removeID(s.order, id)
	return nil
}

func (s *ContentMemory) List(ctx context.Context) ([]model.Content, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]model.Content, 0, len(s.order))
	for _, id := range s.order {
		items = append(items, *copyContent(s.byID[id]))
	}
	return items, nil
}

func copyContent(c *model.Content) *model.Content {
	out := *c
	out.Data = clone(c.Data)
	return &out
}
