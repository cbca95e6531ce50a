// Package text renders the comments view as plain text lines.
package text

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"commentsview/internal/application"
	"commentsview/internal/ports/output"
)

var (
	_ output.CommentListView  = (*View)(nil)
	_ output.LoadingStateView = (*View)(nil)
	_ output.ErrorStateView   = (*View)(nil)
)

// View writes every update to w as it happens.
type View struct {
	w         io.Writer
	localizer output.Strings
	now       func() time.Time
}

func NewView(w io.Writer, localizer output.Strings) *View {
	return &View{w: w, localizer: localizer, now: time.Now}
}

func (v *View) DisplayLoading(vm output.LoadingStateViewModel) {
	if vm.IsLoading {
		fmt.Fprintln(v.w, v.localizer.Localize(application.CommentsTable, application.CommentsLoadingKey))
	}
}

func (v *View) DisplayError(vm output.ErrorStateViewModel) {
	if vm.HasMessage() {
		fmt.Fprintf(v.w, "! %s\n", vm.Text())
	}
}

func (v *View) DisplayComments(vm output.CommentsViewModel) {
	if len(vm.Comments) == 0 {
		fmt.Fprintln(v.w, v.localizer.Localize(application.CommentsTable, application.CommentsEmptyKey))
		return
	}
	now := v.now()
	for _, c := range vm.Comments {
		fmt.Fprintf(v.w, "%s · %s\n  %s\n",
			c.Author.Username,
			humanize.RelTime(c.CreatedAt, now, "ago", "from now"),
			c.Message,
		)
	}
}
