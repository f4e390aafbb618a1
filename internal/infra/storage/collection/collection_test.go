package collection

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HeritageService/pkg/dbmetrics"
)

type note struct {
	ID    string
	Title string
	Tags  []string
}

var noteSchema = Schema[note]{
	Table:   "notes",
	Columns: []string{"id", "title", "tags"},
	Values: func(n *note) ([]interface{}, error) {
		return []interface{}{n.ID, n.Title, pq.Array(n.Tags)}, nil
	},
	Scan: func(row RowScanner) (*note, error) {
		var n note
		if err := row.Scan(&n.ID, &n.Title, pq.Array(&n.Tags)); err != nil {
			return nil, err
		}
		return &n, nil
	},
}

func newTestCollection(t *testing.T) (*Collection[note], sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(dbmetrics.Wrap(db, nil), noteSchema), mock
}

func TestCollection_InsertMany(t *testing.T) {
	c, mock := newTestCollection(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO notes (id,title,tags) VALUES ($1,$2,$3),($4,$5,$6)")).
		WithArgs("1", "first", sqlmock.AnyArg(), "2", "second", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := c.InsertMany(context.Background(), []*note{
		{ID: "1", Title: "first", Tags: []string{"a"}},
		{ID: "2", Title: "second"},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollection_InsertMany_Empty(t *testing.T) {
	c, mock := newTestCollection(t)

	n, err := c.InsertMany(context.Background(), nil)

	require.NoError(t, err)
	assert.Zero(t, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollection_InsertOne_ExecError(t *testing.T) {
	c, mock := newTestCollection(t)

	mock.ExpectExec("INSERT INTO notes").WillReturnError(errors.New("duplicate key"))

	err := c.InsertOne(context.Background(), &note{ID: "1", Title: "first"})

	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestCollection_Find(t *testing.T) {
	c, mock := newTestCollection(t)

	rows := sqlmock.NewRows([]string{"id", "title", "tags"}).
		AddRow("1", "Lake walk", "{a,b}").
		AddRow("2", "lakeside", "{}")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, tags FROM notes WHERE title ILIKE $1 ORDER BY title ASC LIMIT 10")).
		WithArgs("%lake%").
		WillReturnRows(rows)

	notes, err := c.Find(context.Background(), Contains("title", "lake"), FindOptions{
		Sort:  []string{"title ASC"},
		Limit: 10,
	})

	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "Lake walk", notes[0].Title)
	assert.Equal(t, []string{"a", "b"}, notes[0].Tags)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollection_Find_NoFilterReturnsEmptySlice(t *testing.T) {
	c, mock := newTestCollection(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, tags FROM notes")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "tags"}))

	notes, err := c.Find(context.Background(), nil, FindOptions{})

	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)
}

func TestCollection_FindOne_NotFound(t *testing.T) {
	c, mock := newTestCollection(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, tags FROM notes WHERE id = $1 LIMIT 1")).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := c.FindOne(context.Background(), Eq("id", "missing"))

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCollection_UpdateOne(t *testing.T) {
	c, mock := newTestCollection(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE notes SET title = $1 WHERE id = $2")).
		WithArgs("renamed", "1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	matched, err := c.UpdateOne(context.Background(), Eq("id", "1"), map[string]interface{}{"title": "renamed"})

	require.NoError(t, err)
	assert.EqualValues(t, 1, matched)
}

func TestCollection_UpdateOne_UnknownField(t *testing.T) {
	c, _ := newTestCollection(t)

	_, err := c.UpdateOne(context.Background(), Eq("id", "1"), map[string]interface{}{"owner": "x"})

	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestCollection_DeleteMany_All(t *testing.T) {
	c, mock := newTestCollection(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM notes")).
		WillReturnResult(sqlmock.NewResult(0, 3))

	deleted, err := c.DeleteMany(context.Background(), nil)

	require.NoError(t, err)
	assert.EqualValues(t, 3, deleted)
}

func TestCollection_Count(t *testing.T) {
	c, mock := newTestCollection(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM notes")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(6))

	count, err := c.Count(context.Background(), nil)

	require.NoError(t, err)
	assert.EqualValues(t, 6, count)
}

func TestCollection_Distinct(t *testing.T) {
	c, mock := newTestCollection(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT title FROM notes WHERE title IS NOT NULL")).
		WillReturnRows(sqlmock.NewRows([]string{"title"}).AddRow("a").AddRow("b"))

	values, err := c.Distinct(context.Background(), "title")

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, values)
}

func TestCollection_Distinct_UnknownField(t *testing.T) {
	c, _ := newTestCollection(t)

	_, err := c.Distinct(context.Background(), "title; DROP TABLE notes")

	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestCollection_UsesTransactionFromContext(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	wrapped := dbmetrics.Wrap(db, nil)
	c := New(wrapped, noteSchema)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM notes").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	tx, err := wrapped.BeginTx(context.Background(), nil)
	require.NoError(t, err)

	ctx := dbmetrics.WithTx(context.Background(), tx)
	_, err = c.DeleteMany(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.NoError(t, mock.ExpectationsWereMet())
}
