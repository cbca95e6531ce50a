package input

import (
	"context"

	"commentsview/internal/domain/entities"
)

// CommentsLifecycle is driven by whatever loads comments.
type CommentsLifecycle interface {
	DidStartLoadingComments()
	DidFinishLoadingComments(comments []entities.Comment)
	DidFinishLoadingCommentsWithError(err error)
}

type CommentsUseCase interface {
	Load(ctx context.Context, threadID string) error
}
