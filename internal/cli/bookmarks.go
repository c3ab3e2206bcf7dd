package cli

import (
	"errors"

	"github.com/MKhiriev/go-edu-resources/models"
	"github.com/spf13/cobra"
)

func newBookmarksCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "bookmarks",
		Aliases: []string{"bm"},
		Short:   "Manage bookmarks",
	}
	cmd.AddCommand(
		newBookmarksListCmd(rt),
		newBookmarksCheckCmd(rt),
		newBookmarksAddCmd(rt),
		newBookmarksRemoveCmd(rt),
		newBookmarksToggleCmd(rt),
	)
	return cmd
}

// targetArgs parses "<kind> <id>".
func targetArgs(args []string) (models.ResourceKind, string, error) {
	kind, err := models.ParseResourceKind(args[0])
	if err != nil {
		return "", "", err
	}
	return kind, args[1], nil
}

func newBookmarksListCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List bookmarks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := rt.app.Services.BookmarkService.List(cmd.Context())
			if err != nil {
				return err
			}
			out := rt.printer(cmd)
			return out.result(list, func() {
				rows := make([][]string, 0, len(list))
				for _, b := range list {
					rows = append(rows, []string{b.ID, string(b.ResourceType), b.ResourceID, b.Title, b.Category})
				}
				out.table([]string{"ID", "TYPE", "RESOURCE", "TITLE", "CATEGORY"}, rows)
			})
		},
	}
}

func newBookmarksCheckCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "check <kind> <id>",
		Short: "Report whether a resource is bookmarked",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, id, err := targetArgs(args)
			if err != nil {
				return err
			}
			st, err := rt.app.Services.BookmarkService.Check(cmd.Context(), kind, id)
			if err != nil {
				return err
			}
			out := rt.printer(cmd)
			return out.result(st, func() {
				if st.Bookmarked {
					out.line("bookmarked (%s)", st.BookmarkID)
				} else {
					out.line("not bookmarked")
				}
			})
		},
	}
}

func newBookmarksAddCmd(rt *runtime) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "add <kind> <id>",
		Short: "Bookmark a resource",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, id, err := targetArgs(args)
			if err != nil {
				return err
			}
			b, err := rt.app.Services.BookmarkService.Add(cmd.Context(), kind, id, category)
			if err != nil {
				return err
			}
			out := rt.printer(cmd)
			return out.result(b, func() { out.ok("Bookmarked %s %s in %s", kind, id, b.Category) })
		},
	}
	cmd.Flags().StringVar(&category, "category", models.DefaultBookmarkCategory, "Bookmark category")
	return cmd
}

func newBookmarksRemoveCmd(rt *runtime) *cobra.Command {
	var bookmarkID string

	cmd := &cobra.Command{
		Use:   "remove (<kind> <id> | --id <bookmark-id>)",
		Short: "Remove a bookmark",
		Args: func(_ *cobra.Command, args []string) error {
			switch {
			case bookmarkID == "" && len(args) != 2:
				return errors.New("expected <kind> <id> or --id")
			case bookmarkID != "" && len(args) != 0:
				return errors.New("--id cannot be combined with <kind> <id>")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := rt.app.Services.BookmarkService
			if bookmarkID != "" {
				if err := svc.RemoveByID(cmd.Context(), bookmarkID); err != nil {
					return err
				}
			} else {
				kind, id, err := targetArgs(args)
				if err != nil {
					return err
				}
				if err := svc.Remove(cmd.Context(), kind, id); err != nil {
					return err
				}
			}
			out := rt.printer(cmd)
			return out.result(status{OK: true}, func() { out.ok("Bookmark removed") })
		},
	}
	cmd.Flags().StringVar(&bookmarkID, "id", "", "Bookmark id")
	return cmd
}

func newBookmarksToggleCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <kind> <id>",
		Short: "Add the bookmark when missing, remove it otherwise",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, id, err := targetArgs(args)
			if err != nil {
				return err
			}
			on, err := rt.app.Services.BookmarkService.Toggle(cmd.Context(), kind, id)
			if err != nil {
				return err
			}
			out := rt.printer(cmd)
			return out.result(models.BookmarkStatus{Bookmarked: on}, func() {
				if on {
					out.ok("Bookmarked %s %s", kind, id)
				} else {
					out.ok("Removed bookmark of %s %s", kind, id)
				}
			})
		},
	}
}
