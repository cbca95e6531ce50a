package output

import (
	"context"

	"commentsview/internal/domain/entities"
)

type CommentRepository interface {
	// FindByThreadID returns the comments of a thread, newest first.
	FindByThreadID(ctx context.Context, threadID string) ([]entities.Comment, error)
	Create(ctx context.Context, threadID string, comment *entities.Comment) error
}
