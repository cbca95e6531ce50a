package application

import (
	"commentsview/internal/domain"
	"commentsview/internal/domain/entities"
	"commentsview/internal/ports/input"
	"commentsview/internal/ports/output"
)

// String tables and keys owned by the comments view.
const (
	CommentsTable = "Comments"
	SharedTable   = "Shared"

	CommentsTitleKey   = "COMMENTS_VIEW_TITLE"
	CommentsLoadingKey = "COMMENTS_LOADING"
	CommentsEmptyKey   = "COMMENTS_EMPTY"
	LoadErrorKey       = "GENERIC_CONNECTION_ERROR"
)

var _ input.CommentsLifecycle = (*CommentsPresenter)(nil)

// CommentsTitle resolves the comments view title. It is looked up on every call.
func CommentsTitle(s output.Strings) string {
	return s.Localize(CommentsTable, CommentsTitleKey)
}

// CommentsErrorMessage resolves the message shown when loading comments fails.
func CommentsErrorMessage(s output.Strings) string {
	return s.Localize(SharedTable, LoadErrorKey)
}

// CommentsPresenter turns comment loading events into view-state updates.
// It is synchronous and holds no state besides its collaborators, so callers
// must serialize access if the views are not safe for concurrent use.
type CommentsPresenter struct {
	commentView output.CommentListView
	loadingView output.LoadingStateView
	errorView   output.ErrorStateView
	localizer   output.Strings
}

// NewCommentsPresenter wires the three views and the string provider.
// All collaborators are required.
func NewCommentsPresenter(
	commentView output.CommentListView,
	loadingView output.LoadingStateView,
	errorView output.ErrorStateView,
	localizer output.Strings,
) (*CommentsPresenter, error) {
	if commentView == nil || loadingView == nil || errorView == nil {
		return nil, domain.ErrMissingView
	}
	if localizer == nil {
		return nil, domain.ErrMissingStrings
	}
	return &CommentsPresenter{
		commentView: commentView,
		loadingView: loadingView,
		errorView:   errorView,
		localizer:   localizer,
	}, nil
}

// Title returns the localized view title.
func (p *CommentsPresenter) Title() string {
	return CommentsTitle(p.localizer)
}

// ErrorMessage returns the localized load failure message.
func (p *CommentsPresenter) ErrorMessage() string {
	return CommentsErrorMessage(p.localizer)
}

// DidStartLoadingComments shows the loading indicator and clears any stale error.
func (p *CommentsPresenter) DidStartLoadingComments() {
	p.loadingView.DisplayLoading(output.Loading)
	p.errorView.DisplayError(output.ClearError)
}

// DidFinishLoadingComments hides the loading indicator and shows comments as given.
func (p *CommentsPresenter) DidFinishLoadingComments(comments []entities.Comment) {
	p.loadingView.DisplayLoading(output.Finished)
	p.commentView.DisplayComments(output.CommentsViewModel{Comments: comments})
}

// DidFinishLoadingCommentsWithError hides the loading indicator and shows the
// generic load error. err is not inspected.
func (p *CommentsPresenter) DidFinishLoadingCommentsWithError(err error) {
	p.loadingView.DisplayLoading(output.Finished)
	p.errorView.DisplayError(output.ErrorMessage(p.ErrorMessage()))
}
