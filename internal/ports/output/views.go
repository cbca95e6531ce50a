package output

import "commentsview/internal/domain/entities"

// CommentsViewModel is the ordered list of comments handed to a CommentListView.
type CommentsViewModel struct {
	Comments []entities.Comment
}

// LoadingStateViewModel tells a LoadingStateView whether a load is in flight.
type LoadingStateViewModel struct {
	IsLoading bool
}

// ErrorStateViewModel carries an optional user-facing error message.
// A nil Message means no error is shown.
type ErrorStateViewModel struct {
	Message *string
}

var (
	Loading    = LoadingStateViewModel{IsLoading: true}
	Finished   = LoadingStateViewModel{IsLoading: false}
	ClearError = ErrorStateViewModel{}
)

// ErrorMessage returns an ErrorStateViewModel showing message.
func ErrorMessage(message string) ErrorStateViewModel {
	return ErrorStateViewModel{Message: &message}
}

// HasMessage reports whether an error is to be shown.
func (vm ErrorStateViewModel) HasMessage() bool {
	return vm.Message != nil
}

// Text returns the message, or "" when the error is cleared.
func (vm ErrorStateViewModel) Text() string {
	if vm.Message == nil {
		return ""
	}
	return *vm.Message
}

// CommentListView renders the list of loaded comments.
type CommentListView interface {
	DisplayComments(vm CommentsViewModel)
}

// LoadingStateView renders the loading indicator.
type LoadingStateView interface {
	DisplayLoading(vm LoadingStateViewModel)
}

// ErrorStateView renders or clears the error banner.
type ErrorStateView interface {
	DisplayError(vm ErrorStateViewModel)
}
