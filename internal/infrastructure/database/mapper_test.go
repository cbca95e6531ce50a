package database

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"

	"commentsview/internal/domain/entities"
)

func TestCommentToDomain(t *testing.T) {
	id := uuid.New()
	created := time.Date(2024, 5, 2, 8, 30, 0, 0, time.UTC)

	got := commentToDomain(commentRow{
		ID:             pgtype.UUID{Bytes: [16]byte(id), Valid: true},
		ThreadID:       "thread-1",
		Message:        "hello",
		AuthorUsername: "alice",
		CreatedAt:      pgtype.Timestamptz{Time: created, Valid: true},
	})

	assert.Equal(t, entities.Comment{
		ID:        id,
		Message:   "hello",
		CreatedAt: created,
		Author:    entities.CommentAuthor{Username: "alice"},
	}, got)
}

func TestCommentToDomain_NullColumns(t *testing.T) {
	got := commentToDomain(commentRow{Message: "orphan"})

	assert.Equal(t, uuid.Nil, got.ID)
	assert.True(t, got.CreatedAt.IsZero())
}
