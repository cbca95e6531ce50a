package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"commentsview/internal/application"
	"commentsview/internal/infrastructure/i18n"
)

// requiredKeys lists the keys the comments view resolves, per table.
var requiredKeys = map[string][]string{
	application.CommentsTable: {
		application.CommentsTitleKey,
		application.CommentsLoadingKey,
		application.CommentsEmptyKey,
	},
	application.SharedTable: {
		application.LoadErrorKey,
	},
}

func newLocalesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "List bundled locales and check every view key is translated",
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkLocales(cmd.OutOrStdout(), i18n.NewTranslator(cfg.Locale))
		},
	}
}

func checkLocales(w io.Writer, tr *i18n.Translator) error {
	var errs []error
	for _, table := range tr.Tables() {
		tags := tr.Locales(table)
		names := make([]string, len(tags))
		for i, tag := range tags {
			names[i] = tag.String()
		}
		fmt.Fprintf(w, "%s: %s\n", table, strings.Join(names, ", "))
	}
	for table, keys := range requiredKeys {
		if err := tr.Verify(table, keys...); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
