package destination

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsm-gustavo/bucketlist/internal/db"
)

var (
	columns   = []string{"id", "user_id", "destination", "country", "notes", "priority", "visited", "created_at", "updated_at"}
	createdAt = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	listSQL    = regexp.QuoteMeta("SELECT " + destinationColumns + " FROM destinations WHERE user_id = ? ORDER BY created_at DESC, id DESC")
	getSQL     = regexp.QuoteMeta("SELECT " + destinationColumns + " FROM destinations WHERE id = ? AND user_id = ?")
	insertSQL  = regexp.QuoteMeta("INSERT INTO destinations (user_id, destination, country, notes, priority, visited) VALUES (?, ?, ?, ?, ?, ?)")
	visitedSQL = regexp.QuoteMeta("SELECT visited FROM destinations WHERE id = ? AND user_id = ?")
	updateSQL  = regexp.QuoteMeta("UPDATE destinations SET destination = ?, country = ?, notes = ?, priority = ?, visited = ? WHERE id = ? AND user_id = ?")
	toggleSQL  = regexp.QuoteMeta("UPDATE destinations SET visited = ? WHERE id = ? AND user_id = ?")
	deleteSQL  = regexp.QuoteMeta("DELETE FROM destinations WHERE id = ? AND user_id = ?")
)

func newStoreWithMock(t *testing.T) (*MySQLStore, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		conn.Close()
	})
	return NewMySQLStore(conn), mock
}

func row(id int64, visited bool) *sqlmock.Rows {
	return sqlmock.NewRows(columns).
		AddRow(id, int64(7), "Kyoto", "Japan", "", "high", visited, createdAt, createdAt)
}

var kyoto = Input{Destination: "Kyoto", Country: "Japan", Priority: db.PriorityHigh}

func TestList_ScopedToUser(t *testing.T) {
	store, mock := newStoreWithMock(t)

	rows := sqlmock.NewRows(columns).
		AddRow(int64(2), int64(7), "Lima", "Peru", "", "low", false, createdAt, createdAt).
		AddRow(int64(1), int64(7), "Kyoto", "Japan", "notes", "high", true, createdAt, createdAt)
	mock.ExpectQuery(listSQL).WithArgs(int64(7)).WillReturnRows(rows)

	got, err := store.List(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Lima", got[0].Destination)
	assert.Equal(t, db.PriorityLow, got[0].Priority)
	assert.True(t, got[1].Visited)
}

func TestList_EmptyIsNotNil(t *testing.T) {
	store, mock := newStoreWithMock(t)

	mock.ExpectQuery(listSQL).WithArgs(int64(7)).WillReturnRows(sqlmock.NewRows(columns))

	got, err := store.List(context.Background(), 7)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCreate_InsertsThenReads(t *testing.T) {
	store, mock := newStoreWithMock(t)

	mock.ExpectExec(insertSQL).
		WithArgs(int64(7), "Kyoto", "Japan", "", "high", false).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(getSQL).WithArgs(int64(1), int64(7)).WillReturnRows(row(1, false))

	got, err := store.Create(context.Background(), 7, kyoto)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, int64(7), got.UserID)
}

func TestUpdate_NotOwned(t *testing.T) {
	store, mock := newStoreWithMock(t)

	mock.ExpectQuery(visitedSQL).WithArgs(int64(1), int64(8)).WillReturnError(sql.ErrNoRows)

	_, err := store.Update(context.Background(), 8, 1, kyoto)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdate_Owned(t *testing.T) {
	store, mock := newStoreWithMock(t)

	mock.ExpectQuery(visitedSQL).WithArgs(int64(1), int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"visited"}).AddRow(false))
	mock.ExpectExec(updateSQL).
		WithArgs("Kyoto", "Japan", "", "high", false, int64(1), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(getSQL).WithArgs(int64(1), int64(7)).WillReturnRows(row(1, false))

	got, err := store.Update(context.Background(), 7, 1, kyoto)
	require.NoError(t, err)
	assert.Equal(t, "Kyoto", got.Destination)
}

func TestToggleVisited_FlipsStoredValue(t *testing.T) {
	store, mock := newStoreWithMock(t)

	mock.ExpectQuery(visitedSQL).WithArgs(int64(1), int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"visited"}).AddRow(false))
	mock.ExpectExec(toggleSQL).WithArgs(true, int64(1), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(getSQL).WithArgs(int64(1), int64(7)).WillReturnRows(row(1, true))

	got, err := store.ToggleVisited(context.Background(), 7, 1)
	require.NoError(t, err)
	assert.True(t, got.Visited)
}

func TestDelete(t *testing.T) {
	store, mock := newStoreWithMock(t)

	mock.ExpectExec(deleteSQL).WithArgs(int64(1), int64(7)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(deleteSQL).WithArgs(int64(2), int64(7)).WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, store.Delete(context.Background(), 7, 1))
	assert.ErrorIs(t, store.Delete(context.Background(), 7, 2), ErrNotFound)
}

func TestStore_DBErrorsAreWrapped(t *testing.T) {
	store, mock := newStoreWithMock(t)

	mock.ExpectQuery(listSQL).WithArgs(int64(7)).WillReturnError(errors.New("db down"))

	_, err := store.List(context.Background(), 7)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "db down")
}
