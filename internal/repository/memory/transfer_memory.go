package memory

import (
	"context"
	"database/sql"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"backendservice/internal/model"
	"backendservice/internal/repository"
)

// TransferMemory is an in-memory implementation of repository.TransferRepository.
// Transfers created without an id get the next unused value of an integer counter.
type TransferMemory struct {
	mu    sync.RWMutex
	byID  map[string]*model.Transfer
	order []string
	seq   int64
	now   func() time.Time
}

// NewTransferMemory creates an empty in-memory transfer store.
func NewTransferMemory() *TransferMemory {
	return &TransferMemory{
		byID: make(map[string]*model.Transfer),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

var _ repository.TransferRepository = (*TransferMemory)(nil)

func (s *TransferMemory) Create(ctx context.Context, t *model.Transfer) (*model.Transfer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := t.ID
	if id == "" {
		id = s.nextID()
	} else if _, exists := s.byID[id]; exists {
		return nil, repository.ErrDuplicateID
	}

	now := s.now()
	stored := &model.Transfer{
		ID:        id,
		Document:  clone(t.Document),
		Asset:     clone(t.Asset),
		Contents:  clone(t.Contents),
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.byID[id] = stored
	s.order = append(s.order, id)
	return copyTransfer(stored), nil
}

// nextID advances the counter past ids callers already took. Callers hold s.mu.
func (s *TransferMemory) nextID() string {
	for {
		s.seq++
		id := strconv.FormatInt(s.seq, 10)
		if _, taken := s.byID[id]; !taken {
			return id
		}
	}
}

func (s *TransferMemory) FindByID(ctx context.Context, id string) (*model.Transfer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.byID[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return copyTransfer(t), nil
}

func (s *TransferMemory) UpdateAsset(ctx context.Context, id string, asset json.RawMessage) error {
	return s.update(id, func(t *model.Transfer) { t.Asset = clone(asset) })
}

func (s *TransferMemory) UpdateContents(ctx context.Context, id string, contents json.RawMessage) error {
	return s.update(id, func(t *model.Transfer) { t.Contents = clone(contents) })
}

func (s *TransferMemory) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return sql.ErrNoRows
	}
	delete(s.byID, id)
	s.order = removeID(s.order, id)
	return nil
}

func (s *TransferMemory) List(ctx context.Context) ([]model.Transfer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]model.Transfer, 0, len(s.order))
	for _, id := range s.order {
		items = append(items, *copyTransfer(s.byID[id]))
	}
	return items, nil
}

func (s *TransferMemory) update(id string, apply func(*model.Transfer)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.byID[id]
	if !ok {
		return sql.ErrNoRows
	}
	apply(t)
	t.UpdatedAt = s.now()
	return nil
}

func copyTransfer(t *model.Transfer) *model.Transfer {
	out := *t
	out.Document = clone(t.Document)
	out.Asset = clone(t.Asset)
	out.Contents = clone(t.Contents)
	return &out
}
