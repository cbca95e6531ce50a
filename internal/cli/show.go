package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"commentsview/internal/adapters/discord"
	"commentsview/internal/adapters/html"
	"commentsview/internal/adapters/text"
	"commentsview/internal/application"
	"commentsview/internal/infrastructure/database"
	"commentsview/internal/infrastructure/i18n"
	"commentsview/internal/ports/output"
)

// commentsView is a sink that fills all three view roles.
type commentsView interface {
	output.CommentListView
	output.LoadingStateView
	output.ErrorStateView
}

func newShowCmd() *cobra.Command {
	var threadID, format, locale string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Load a thread's comments and render the view",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			strs := i18n.NewTranslator(cfg.Locale).ForLocale(localeOr(locale))

			pool, err := database.NewPool(ctx, cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer pool.Close()

			newDiscordView := func() (commentsView, error) {
				if !cfg.HasDiscord() {
					return nil, fmt.Errorf("discord output needs DISCORD_TOKEN and DISCORD_CHANNEL_ID")
				}
				session, err := discord.NewSession(cfg.DiscordToken)
				if err != nil {
					return nil, err
				}
				return discord.NewView(session, cfg.DiscordChannelID, strs), nil
			}

			repo := database.NewCommentRepository(pool)
			return runShow(ctx, cmd.OutOrStdout(), repo, strs, format, threadID, newDiscordView)
		},
	}

	cmd.Flags().StringVar(&threadID, "thread", "", "thread ID")
	cmd.Flags().StringVar(&format, "format", "text", "output format (text|html|discord)")
	cmd.Flags().StringVar(&locale, "locale", "", "display locale (default: LOCALE)")
	_ = cmd.MarkFlagRequired("thread")

	return cmd
}

// runShow wires repo -> service -> presenter -> view for one load cycle.
func runShow(
	ctx context.Context,
	w io.Writer,
	repo output.CommentRepository,
	strs output.Strings,
	format, threadID string,
	newDiscordView func() (commentsView, error),
) error {
	var (
		view  commentsView
		flush func() error
	)
	switch format {
	case "text":
		view = text.NewView(w, strs)
	case "html":
		hv := html.NewView(strs)
		view = hv
		flush = func() error { return hv.Render(w) }
	case "discord":
		dv, err := newDiscordView()
		if err != nil {
			return err
		}
		view = dv
	default:
		return fmt.Errorf("unknown format %q (text|html|discord)", format)
	}

	presenter, err := application.NewCommentsPresenter(view, view, view, strs)
	if err != nil {
		return err
	}
	if format == "text" {
		fmt.Fprintln(w, presenter.Title())
	}

	loadErr := application.NewCommentsService(repo, presenter).Load(ctx, threadID)
	if flush != nil {
		if err := flush(); err != nil {
			return err
		}
	}
	return loadErr
}
