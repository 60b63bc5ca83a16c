package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backendservice/internal/model"
	"backendservice/internal/repository"
)

var transferCols = []string{"id", "document", "asset", "contents", "created_at", "updated_at"}

func TestTransferPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewTransferPostgres(db)
	ctx := context.Background()
	now := time.Now()

	t.Run("sequence assigned id", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO transfers (.+) nextval\\('transfers_id_seq'\\)").
			WithArgs("", `{"endpoint":"http://x"}`, `"http://resolved"`, nil).
			WillReturnRows(sqlmock.NewRows(transferCols).
				AddRow("1", `{"endpoint":"http://x"}`, `"http://resolved"`, nil, now, now))

		out, err := repo.Create(ctx, &model.Transfer{
			Document: json.RawMessage(`{"endpoint":"http://x"}`),
			Asset:    json.RawMessage(`"http://resolved"`),
		})

		require.NoError(t, err)
		assert.Equal(t, "1", out.ID)
		assert.Equal(t, `"http://resolved"`, string(out.Asset))
		assert.Nil(t, out.Contents)
	})

	t.Run("sequence value taken by a caller id is skipped", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO transfers (.+) nextval\\('transfers_id_seq'\\)").
			WithArgs("", `{}`, `"a"`, nil).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		mock.ExpectQuery("INSERT INTO transfers (.+) nextval\\('transfers_id_seq'\\)").
			WithArgs("", `{}`, `"a"`, nil).
			WillReturnRows(sqlmock.NewRows(transferCols).
				AddRow("3", `{}`, `"a"`, nil, now, now))

		out, err := repo.Create(ctx, &model.Transfer{
			Document: json.RawMessage(`{}`),
			Asset:    json.RawMessage(`"a"`),
		})

		require.NoError(t, err)
		assert.Equal(t, "3", out.ID)
	})

	t.Run("sequence exhausted", func(t *testing.T) {
		for i := 0; i < maxSequenceAttempts; i++ {
			mock.ExpectQuery("INSERT INTO transfers").
				WithArgs("", `{}`, nil, nil).
				WillReturnError(&pgconn.PgError{Code: "23505"})
		}

		out, err := repo.Create(ctx, &model.Transfer{Document: json.RawMessage(`{}`)})

		assert.ErrorIs(t, err, repository.ErrDuplicateID)
		assert.Nil(t, out)
	})

	t.Run("duplicate caller id", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO transfers").
			WithArgs("t1", `{}`, `"a"`, nil).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		out, err := repo.Create(ctx, &model.Transfer{
			ID:       "t1",
			Document: json.RawMessage(`{}`),
			Asset:    json.RawMessage(`"a"`),
		})

		assert.ErrorIs(t, err, repository.ErrDuplicateID)
		assert.Nil(t, out)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransferPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewTransferPostgres(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM transfers WHERE id = ?").
		WithArgs("t1").
		WillReturnRows(sqlmock.NewRows(transferCols).
			AddRow("t1", `{}`, `"http://resolved"`, `{"k":true}`, time.Now(), time.Now()))

	tr, err := repo.FindByID(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, `{"k":true}`, string(tr.Contents))

	mock.ExpectQuery("SELECT (.+) FROM transfers WHERE id = ?").
		WithArgs("nope").
		WillReturnError(sql.ErrNoRows)

	tr, err = repo.FindByID(ctx, "nope")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.Nil(t, tr)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransferPostgres_Updates(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewTransferPostgres(db)
	ctx := context.Background()

	mock.ExpectExec("UPDATE transfers SET contents").
		WithArgs("t1", `{"x":1}`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.UpdateContents(ctx, "t1", json.RawMessage(`{"x":1}`)))

	mock.ExpectExec("UPDATE transfers SET asset").
		WithArgs("t1", `"http://other"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.UpdateAsset(ctx, "t1", json.RawMessage(`"http://other"`)))

	mock.ExpectExec("UPDATE transfers SET contents").
		WithArgs("gone", `{}`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.UpdateContents(ctx, "gone", json.RawMessage(`{}`)), sql.ErrNoRows)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransferPostgres_DeleteAndList(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewTransferPostgres(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM transfers WHERE id = ?").
		WithArgs("t1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(ctx, "t1"), sql.ErrNoRows)

	mock.ExpectQuery("SELECT (.+) FROM transfers ORDER BY seq").
		WillReturnRows(sqlmock.NewRows(transferCols).
			AddRow("1", `{}`, `"a"`, nil, time.Now(), time.Now()).
			AddRow("t2", `{}`, nil, nil, time.Now(), time.Now()))

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "1", items[0].ID)
	assert.Nil(t, items[1].Asset)

	assert.NoError(t, mock.ExpectationsWereMet())
}
