package memory

import (
	"context"
	"database/sql"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backendservice/internal/model"
	"backendservice/internal/repository"
)

func TestContentMemory_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewContentMemory()

	in := json.RawMessage(`{ "a" : 1,  "b":[1, 2] }`)
	created, err := repo.Create(ctx, &model.Content{Data: in})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	first, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	second, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, string(in), string(first.Data))
	assert.Equal(t, first, second)

	// mutating a returned record must not reach the store
	first.Data[0] = 'X'
	third, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(in), string(third.Data))
}

func TestContentMemory_UpdateDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewContentMemory()

	c, err := repo.Create(ctx, &model.Content{ID: "x", Data: json.RawMessage(`1`)})
	require.NoError(t, err)

	require.NoError(t, repo.Update(ctx, "x", json.RawMessage(`2`)))
	got, err := repo.FindByID(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, "2", string(got.Data))
	assert.False(t, got.UpdatedAt.Before(c.UpdatedAt))

	assert.ErrorIs(t, repo.Update(ctx, "missing", json.RawMessage(`1`)), sql.ErrNoRows)

	require.NoError(t, repo.Delete(ctx, "x"))
	assert.ErrorIs(t, repo.Delete(ctx, "x"), sql.ErrNoRows)

	_, err = repo.FindByID(ctx, "x")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestContentMemory_ListOrderAndEmpty(t *testing.T) {
	ctx := context.Background()
	repo := NewContentMemory()

	items, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	for _, id := range []string{"c", "a", "b"} {
		_, err := repo.Create(ctx, &model.Content{ID: id, Data: json.RawMessage(`{}`)})
		require.NoError(t, err)
	}
	require.NoError(t, repo.Delete(ctx, "a"))

	items, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "c", items[0].ID)
	assert.Equal(t, "b", items[1].ID)
}

func TestContentMemory_ConcurrentDuplicateID(t *testing.T) {
	ctx := context.Background()
	repo := NewContentMemory()

	const workers = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Create(ctx, &model.Content{ID: "same", Data: json.RawMessage(`{}`)})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				successes++
			} else if assert.ErrorIs(t, err, repository.ErrDuplicateID) {
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, workers-1, conflicts)
}

func TestTransferMemory_SequenceAndCallerIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewTransferMemory()

	a, err := repo.Create(ctx, &model.Transfer{Document: json.RawMessage(`{}`)})
	require.NoError(t, err)
	b, err := repo.Create(ctx, &model.Transfer{Document: json.RawMessage(`{}`)})
	require.NoError(t, err)
	c, err := repo.Create(ctx, &model.Transfer{ID: "t1", Document: json.RawMessage(`{}`)})
	require.NoError(t, err)

	assert.Equal(t, "1", a.ID)
	assert.Equal(t, "2", b.ID)
	assert.Equal(t, "t1", c.ID)

	_, err = repo.Create(ctx, &model.Transfer{ID: "t1"})
	assert.ErrorIs(t, err, repository.ErrDuplicateID)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestTransferMemory_UpdatesAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewTransferMemory()

	_, err := repo.Create(ctx, &model.Transfer{ID: "t1", Asset: json.RawMessage(`"a"`)})
	require.NoError(t, err)

	got, err := repo.FindByID(ctx, "t1")
	require.NoError(t, err)
	assert.Nil(t, got.Contents)

	require.NoError(t, repo.UpdateContents(ctx, "t1", json.RawMessage(`{"k":1}`)))
	require.NoError(t, repo.UpdateAsset(ctx, "t1", json.RawMessage(`"b"`)))

	got, err = repo.FindByID(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, `{"k":1}`, string(got.Contents))
	assert.Equal(t, `"b"`, string(got.Asset))

	assert.ErrorIs(t, repo.UpdateContents(ctx, "nope", nil), sql.ErrNoRows)
	assert.ErrorIs(t, repo.UpdateAsset(ctx, "nope", nil), sql.ErrNoRows)

	require.NoError(t, repo.Delete(ctx, "t1"))
	assert.ErrorIs(t, repo.Delete(ctx, "t1"), sql.ErrNoRows)
}

func TestTransferMemory_AssignedIDSkipsCallerIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewTransferMemory()

	_, err := repo.Create(ctx, &model.Transfer{ID: "1", Document: json.RawMessage(`{}`)})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &model.Transfer{ID: "2", Document: json.RawMessage(`{}`)})
	require.NoError(t, err)

	out, err := repo.Create(ctx, &model.Transfer{Document: json.RawMessage(`{}`)})
	require.NoError(t, err)
	assert.Equal(t, "3", out.ID)

	_, err = repo.Create(ctx, &model.Transfer{ID: "3"})
	assert.ErrorIs(t, err, repository.ErrDuplicateID)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 3)
}
