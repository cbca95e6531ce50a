package entities

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a single message posted on a thread.
type Comment struct {
	ID        uuid.UUID
	Message   string
	CreatedAt time.Time
	Author    CommentAuthor
}

// CommentAuthor identifies who wrote a comment.
type CommentAuthor struct {
	Username string
}
