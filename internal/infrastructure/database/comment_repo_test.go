package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commentsview/internal/domain/entities"
)

type fakeQuerier struct {
	queryErr error
	execErr  error
	sql      string
	args     []any
}

func (f *fakeQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.sql, f.args = sql, args
	return nil, f.queryErr
}

func (f *fakeQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.sql, f.args = sql, args
	return pgconn.NewCommandTag("INSERT 0 1"), f.execErr
}

func TestCommentRepository_CreateAssignsIDAndTime(t *testing.T) {
	db := &fakeQuerier{}
	repo := NewCommentRepository(db)
	c := &entities.Comment{Message: "hi", Author: entities.CommentAuthor{Username: "bob"}}

	require.NoError(t, repo.Create(context.Background(), "thread-9", c))

	assert.NotEqual(t, uuid.Nil, c.ID)
	assert.False(t, c.CreatedAt.IsZero())
	assert.Equal(t, insertComment, db.sql)
	require.Len(t, db.args, 5)
	assert.Equal(t, pgtype.UUID{Bytes: [16]byte(c.ID), Valid: true}, db.args[0])
	assert.Equal(t, "thread-9", db.args[1])
	assert.Equal(t, "hi", db.args[2])
	assert.Equal(t, "bob", db.args[3])
}

func TestCommentRepository_CreateKeepsGivenValues(t *testing.T) {
	db := &fakeQuerier{}
	id := uuid.New()
	created := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	c := &entities.Comment{ID: id, CreatedAt: created}

	require.NoError(t, NewCommentRepository(db).Create(context.Background(), "t", c))

	assert.Equal(t, id, c.ID)
	assert.Equal(t, created, c.CreatedAt)
}

func TestCommentRepository_Errors(t *testing.T) {
	boom := errors.New("boom")
	repo := NewCommentRepository(&fakeQuerier{queryErr: boom, execErr: boom})

	_, err := repo.FindByThreadID(context.Background(), "t")
	assert.ErrorIs(t, err, boom)

	err = repo.Create(context.Background(), "t", &entities.Comment{})
	assert.ErrorIs(t, err, boom)
}
