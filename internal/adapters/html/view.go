// Package html keeps the latest comments view state and renders it as an
// HTML fragment.
package html

import (
	"fmt"
	"html/template"
	"io"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	"commentsview/internal/application"
	"commentsview/internal/domain/entities"
	"commentsview/internal/ports/output"
)

var (
	_ output.CommentListView  = (*View)(nil)
	_ output.LoadingStateView = (*View)(nil)
	_ output.ErrorStateView   = (*View)(nil)
)

var fragment = template.Must(template.New("comments").Parse(`<section class="comments">
<h2>{{.Title}}</h2>
{{- if .Loading}}
<p class="comments-loading">{{.LoadingText}}</p>
{{- end}}
{{- if .Error}}
<p class="comments-error" role="alert">{{.Error}}</p>
{{- end}}
{{- if .Shown}}
{{- if .Comments}}
<ul class="comments-list">
{{- range .Comments}}
<li><header><span class="comment-author">{{.Username}}</span> <time datetime="{{.Timestamp}}">{{.Relative}}</time></header><div class="comment-message">{{.MessageHTML}}</div></li>
{{- end}}
</ul>
{{- else}}
<p class="comments-empty">{{.EmptyText}}</p>
{{- end}}
{{- end}}
</section>
`))

// CommentItem is one rendered comment.
type CommentItem struct {
	Username    string
	Timestamp   string
	Relative    string
	MessageHTML template.HTML
}

type page struct {
	Title       string
	Loading     bool
	LoadingText string
	Error       string
	Shown       bool
	Comments    []CommentItem
	EmptyText   string
}

// View is safe for concurrent use: updates and Render may come from
// different goroutines.
type View struct {
	localizer output.Strings
	now       func() time.Time

	mu       sync.Mutex
	loading  bool
	errMsg   string
	shown    bool
	comments []entities.Comment
}

func NewView(localizer output.Strings) *View {
	return &View{localizer: localizer, now: time.Now}
}

func (v *View) DisplayLoading(vm output.LoadingStateViewModel) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = vm.IsLoading
}

func (v *View) DisplayError(vm output.ErrorStateViewModel) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.errMsg = vm.Text()
}

func (v *View) DisplayComments(vm output.CommentsViewModel) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.shown = true
	v.comments = vm.Comments
}

// Render writes the current state to w.
func (v *View) Render(w io.Writer) error {
	v.mu.Lock()
	p := page{
		Title:       application.CommentsTitle(v.localizer),
		Loading:     v.loading,
		LoadingText: v.localizer.Localize(application.CommentsTable, application.CommentsLoadingKey),
		Error:       v.errMsg,
		Shown:       v.shown,
		EmptyText:   v.localizer.Localize(application.CommentsTable, application.CommentsEmptyKey),
	}
	now := v.now()
	for _, c := range v.comments {
		p.Comments = append(p.Comments, CommentItem{
			Username:    c.Author.Username,
			Timestamp:   c.CreatedAt.Format(time.RFC3339),
			Relative:    humanize.RelTime(c.CreatedAt, now, "ago", "from now"),
			MessageHTML: template.HTML(RenderMarkdown(c.Message)), //nolint:gosec // sanitized by bluemonday
		})
	}
	v.mu.Unlock()

	if err := fragment.Execute(w, p); err != nil {
		return fmt.Errorf("render comments: %w", err)
	}
	return nil
}
