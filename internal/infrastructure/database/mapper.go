package database

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"commentsview/internal/domain/entities"
)

// commentRow mirrors one row of the comments table.
type commentRow struct {
	ID             pgtype.UUID        `db:"id"`
	ThreadID       string             `db:"thread_id"`
	Message        string             `db:"message"`
	AuthorUsername string             `db:"author_username"`
	CreatedAt      pgtype.Timestamptz `db:"created_at"`
}

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

// pgtypeUUIDToUUID returns uuid.Nil when the value is NULL.
func pgtypeUUIDToUUID(id pgtype.UUID) uuid.UUID {
	if !id.Valid {
		return uuid.Nil
	}
	return uuid.UUID(id.Bytes)
}

func commentToDomain(r commentRow) entities.Comment {
	return entities.Comment{
		ID:        pgtypeUUIDToUUID(r.ID),
		Message:   r.Message,
		CreatedAt: pgtypeTimestamptzToTime(r.CreatedAt),
		Author:    entities.CommentAuthor{Username: r.AuthorUsername},
	}
}
