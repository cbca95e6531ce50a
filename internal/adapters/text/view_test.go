package text

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"commentsview/internal/domain/entities"
	"commentsview/internal/infrastructure/i18n"
	"commentsview/internal/ports/output"
)

func newTestView(locale string) (*View, *bytes.Buffer, time.Time) {
	var buf bytes.Buffer
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	v := NewView(&buf, i18n.NewTranslator("en").ForLocale(locale))
	v.now = func() time.Time { return now }
	return v, &buf, now
}

func TestView_Loading(t *testing.T) {
	v, buf, _ := newTestView("en")

	v.DisplayLoading(output.Loading)
	v.DisplayLoading(output.Finished)

	assert.Equal(t, "Loading comments…\n", buf.String())
}

func TestView_Error(t *testing.T) {
	v, buf, _ := newTestView("en")

	v.DisplayError(output.ClearError)
	assert.Empty(t, buf.String())

	v.DisplayError(output.ErrorMessage("Couldn't connect to server"))
	assert.Equal(t, "! Couldn't connect to server\n", buf.String())
}

func TestView_Comments(t *testing.T) {
	v, buf, now := newTestView("en")

	v.DisplayComments(output.CommentsViewModel{Comments: []entities.Comment{
		{ID: uuid.New(), Message: "first!", CreatedAt: now.Add(-2 * time.Hour), Author: entities.CommentAuthor{Username: "alice"}},
		{ID: uuid.New(), Message: "second", CreatedAt: now.Add(-3 * 24 * time.Hour), Author: entities.CommentAuthor{Username: "bob"}},
	}})

	assert.Equal(t, "alice · 2 hours ago\n  first!\nbob · 3 days ago\n  second\n", buf.String())
}

func TestView_EmptyCommentsLocalized(t *testing.T) {
	v, buf, _ := newTestView("fr")

	v.DisplayComments(output.CommentsViewModel{})

	assert.Equal(t, "Aucun commentaire pour le moment.\n", buf.String())
}
