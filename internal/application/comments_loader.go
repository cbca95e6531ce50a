package application

import (
	"context"
	"fmt"
	"log/slog"

	"commentsview/internal/domain"
	"commentsview/internal/ports/input"
	"commentsview/internal/ports/output"
)

var _ input.CommentsUseCase = (*CommentsService)(nil)

// CommentsService loads a thread's comments and reports the outcome to a
// CommentsLifecycle. It does not retry.
type CommentsService struct {
	commentRepo output.CommentRepository
	lifecycle   input.CommentsLifecycle
}

func NewCommentsService(commentRepo output.CommentRepository, lifecycle input.CommentsLifecycle) *CommentsService {
	return &CommentsService{
		commentRepo: commentRepo,
		lifecycle:   lifecycle,
	}
}

// Load runs one start/finish cycle for threadID. The returned error mirrors
// what was reported to the lifecycle and is wrapped with domain.ErrCommentsLoadFailed.
func (s *CommentsService) Load(ctx context.Context, threadID string) error {
	s.lifecycle.DidStartLoadingComments()

	comments, err := s.commentRepo.FindByThreadID(ctx, threadID)
	if err != nil {
		slog.Warn("loading comments failed", "thread_id", threadID, "error", err)
		s.lifecycle.DidFinishLoadingCommentsWithError(err)
		return fmt.Errorf("%w: thread %s: %w", domain.ErrCommentsLoadFailed, threadID, err)
	}

	slog.Debug("comments loaded", "thread_id", threadID, "count", len(comments))
	s.lifecycle.DidFinishLoadingComments(comments)
	return nil
}
