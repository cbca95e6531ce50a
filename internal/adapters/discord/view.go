package discord

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/dustin/go-humanize"

	"commentsview/internal/application"
	"commentsview/internal/ports/output"
)

const (
	embedColor = 0x5865F2

	// Discord embed limits.
	maxFields     = 25
	maxFieldValue = 1024
	maxFieldName  = 256
)

var (
	_ output.CommentListView  = (*View)(nil)
	_ output.LoadingStateView = (*View)(nil)
	_ output.ErrorStateView   = (*View)(nil)
)

// messenger is the part of *discordgo.Session the view uses.
type messenger interface {
	ChannelTyping(channelID string, options ...discordgo.RequestOption) error
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// View posts the comments view to a Discord channel. Loading shows the typing
// indicator, comments go out as one embed and errors as a plain message.
// Clearing an error or finishing a load has nothing to send.
type View struct {
	session   messenger
	channelID string
	localizer output.Strings
	now       func() time.Time
}

func NewView(session messenger, channelID string, localizer output.Strings) *View {
	return &View{
		session:   session,
		channelID: channelID,
		localizer: localizer,
		now:       time.Now,
	}
}

func (v *View) DisplayLoading(vm output.LoadingStateViewModel) {
	if !vm.IsLoading {
		return
	}
	if err := v.session.ChannelTyping(v.channelID); err != nil {
		slog.Warn("discord: typing indicator failed", "channel_id", v.channelID, "error", err)
	}
}

func (v *View) DisplayError(vm output.ErrorStateViewModel) {
	if !vm.HasMessage() {
		return
	}
	if _, err := v.session.ChannelMessageSend(v.channelID, "⚠️ "+vm.Text()); err != nil {
		slog.Error("discord: sending error message failed", "channel_id", v.channelID, "error", err)
	}
}

func (v *View) DisplayComments(vm output.CommentsViewModel) {
	embed := v.buildEmbed(vm)
	if _, err := v.session.ChannelMessageSendEmbed(v.channelID, embed); err != nil {
		slog.Error("discord: sending comments embed failed", "channel_id", v.channelID, "error", err)
	}
}

func (v *View) buildEmbed(vm output.CommentsViewModel) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: application.CommentsTitle(v.localizer),
		Color: embedColor,
	}
	if len(vm.Comments) == 0 {
		embed.Description = v.localizer.Localize(application.CommentsTable, application.CommentsEmptyKey)
		return embed
	}

	now := v.now()
	comments := vm.Comments
	if len(comments) > maxFields {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("+%d", len(comments)-maxFields)}
		comments = comments[:maxFields]
	}
	for _, c := range comments {
		name := fmt.Sprintf("%s · %s", c.Author.Username, humanize.RelTime(c.CreatedAt, now, "ago", "from now"))
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  truncate(name, maxFieldName),
			Value: fieldValue(c.Message),
		})
	}
	return embed
}

// truncate cuts s to at most limit runes, ending with an ellipsis when cut.
func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-1]) + "…"
}

// fieldValue fits a message into an embed field; Discord rejects empty values.
func fieldValue(message string) string {
	if message == "" {
		return "\u200b"
	}
	return truncate(message, maxFieldValue)
}
