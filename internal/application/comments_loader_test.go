package application_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commentsview/internal/application"
	"commentsview/internal/domain"
	"commentsview/internal/domain/entities"
)

type stubCommentRepo struct {
	comments  []entities.Comment
	err       error
	requested []string
}

func (r *stubCommentRepo) FindByThreadID(_ context.Context, threadID string) ([]entities.Comment, error) {
	r.requested = append(r.requested, threadID)
	return r.comments, r.err
}

func (r *stubCommentRepo) Create(_ context.Context, _ string, _ *entities.Comment) error {
	return nil
}

func TestCommentsService_LoadSuccess(t *testing.T) {
	presenter, view, _ := makeSUT(t)
	c0 := uniqueComment("hello", "alice", time.Now())
	repo := &stubCommentRepo{comments: []entities.Comment{c0}}
	svc := application.NewCommentsService(repo, presenter)

	err := svc.Load(context.Background(), "thread-1")

	require.NoError(t, err)
	assert.Equal(t, []string{"thread-1"}, repo.requested)
	assert.Equal(t, []message{
		{kind: loadingChanged, isLoading: true},
		{kind: errorChanged},
		{kind: loadingChanged, isLoading: false},
		{kind: commentsShown, comments: []entities.Comment{c0}},
	}, view.messages)
}

func TestCommentsService_LoadFailure(t *testing.T) {
	presenter, view, _ := makeSUT(t)
	repoErr := errors.New("connection refused")
	svc := application.NewCommentsService(&stubCommentRepo{err: repoErr}, presenter)

	err := svc.Load(context.Background(), "thread-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCommentsLoadFailed)
	assert.ErrorIs(t, err, repoErr)
	assert.Equal(t, []message{
		{kind: loadingChanged, isLoading: true},
		{kind: errorChanged},
		{kind: loadingChanged, isLoading: false},
		{kind: errorChanged, errorMessage: strPtr(stubErrorMessage)},
	}, view.messages)
}
