package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/MKhiriev/go-edu-resources/models"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newResourceCmd(rt *runtime, kind models.ResourceKind) *cobra.Command {
	cmd := &cobra.Command{
		Use:   kind.Path(),
		Short: fmt.Sprintf("Browse and manage %s", kindTitle(kind)),
	}
	cmd.AddCommand(
		newResourceListCmd(rt, kind),
		newResourceGetCmd(rt, kind),
		newResourceDownloadCmd(rt, kind),
		newResourceViewCmd(rt, kind),
		newResourceCreateCmd(rt, kind),
		newResourceUpdateCmd(rt, kind),
		newResourceDeleteCmd(rt, kind),
	)
	return cmd
}

func kindTitle(kind models.ResourceKind) string {
	switch kind {
	case models.KindPaper:
		return "question papers"
	case models.KindNote:
		return "notes"
	default:
		return "syllabus documents"
	}
}

func newResourceListCmd(rt *runtime, kind models.ResourceKind) *cobra.Command {
	var page models.Page

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List " + kindTitle(kind),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := rt.app.Services.ResourceService.List(cmd.Context(), kind, page)
			if err != nil {
				return err
			}

			out := rt.printer(cmd)
			return out.result(res.Items, func() {
				rows := make([][]string, 0, len(res.Items))
				for _, r := range res.Items {
					rows = append(rows, []string{r.ID, r.Title, r.CourseCode, r.Year, strconv.Itoa(r.DownloadCount)})
				}
				out.table([]string{"ID", "TITLE", "COURSE", "YEAR", "DOWNLOADS"}, rows)

				p := res.Pagination
				out.line("%d-%d of %d", min(p.Skip+1, p.Total), p.Skip+p.Returned, p.Total)
				if p.HasMore() {
					out.line("next page: --skip %d --limit %d", p.Skip+p.Returned, p.Limit)
				}
			})
		},
	}
	cmd.Flags().IntVar(&page.Skip, "skip", 0, "Number of items to skip")
	cmd.Flags().IntVar(&page.Limit, "limit", 0, "Page size (default 20, at most 100)")
	return cmd
}

func newResourceGetCmd(rt *runtime, kind models.ResourceKind) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := rt.app.Services.ResourceService.Get(cmd.Context(), kind, args[0])
			if err != nil {
				return err
			}
			out := rt.printer(cmd)
			return out.result(res, func() { out.fields(resourceFields(res)...) })
		},
	}
}

func newResourceDownloadCmd(rt *runtime, kind models.ResourceKind) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "download <id>",
		Short: "Download the file into a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				dir = rt.app.Config.App.DownloadDir
			}
			file, err := rt.app.Services.ResourceService.Download(cmd.Context(), kind, args[0], dir)
			if err != nil {
				return err
			}
			out := rt.printer(cmd)
			return out.result(file, func() { out.ok("Saved %s (%d bytes)", file.Path, file.Size) })
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "Target directory (defaults to the configured download directory)")
	return cmd
}

func newResourceViewCmd(rt *runtime, kind models.ResourceKind) *cobra.Command {
	return &cobra.Command{
		Use:   "view <id>",
		Short: "Fetch the file for viewing and print its temporary path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := rt.app.Services.ResourceService.View(cmd.Context(), kind, args[0])
			if err != nil {
				return err
			}
			out := rt.printer(cmd)
			return out.result(file, func() { out.line("%s", file.Path) })
		},
	}
}

// uploadFlags binds the multipart form fields of create and update.
type uploadFlags struct {
	upload models.ResourceUpload
	file   string
}

func (u *uploadFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&u.upload.Title, "title", "", "Title")
	fs.StringVar(&u.upload.Description, "description", "", "Description")
	fs.StringVar(&u.upload.Abstract, "abstract", "", "Abstract")
	fs.StringSliceVar(&u.upload.Authors, "authors", nil, "Comma separated authors")
	fs.StringSliceVar(&u.upload.Tags, "tags", nil, "Comma separated tags")
	fs.StringVar(&u.upload.CourseCode, "course-code", "", "Course code")
	fs.StringVar(&u.upload.Branch, "branch", "", "Branch")
	fs.StringVar(&u.upload.Year, "year", "", "Year")
	fs.StringVarP(&u.file, "file", "f", "", "Path of the document to upload")
}

// open attaches the file to the upload. The returned function closes it.
func (u *uploadFlags) open() (models.ResourceUpload, func(), error) {
	upload := u.upload
	if u.file == "" {
		return upload, func() {}, nil
	}

	f, err := os.Open(u.file)
	if err != nil {
		return upload, nil, fmt.Errorf("failed to open %s: %w", u.file, err)
	}
	upload.File = f
	upload.FileName = filepath.Base(u.file)
	return upload, func() { _ = f.Close() }, nil
}

func newResourceCreateCmd(rt *runtime, kind models.ResourceKind) *cobra.Command {
	var flags uploadFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Upload a new item (administrators only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			upload, done, err := flags.open()
			if err != nil {
				return err
			}
			defer done()

			res, err := rt.app.Services.ResourceService.Create(cmd.Context(), kind, upload)
			if err != nil {
				return err
			}
			out := rt.printer(cmd)
			return out.result(res, func() { out.ok("Created %s %s", kind, res.ID) })
		},
	}
	flags.register(cmd.Flags())
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newResourceUpdateCmd(rt *runtime, kind models.ResourceKind) *cobra.Command {
	var flags uploadFlags

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change an item (administrators only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			upload, done, err := flags.open()
			if err != nil {
				return err
			}
			defer done()

			res, err := rt.app.Services.ResourceService.Update(cmd.Context(), kind, args[0], upload)
			if err != nil {
				return err
			}
			out := rt.printer(cmd)
			return out.result(res, func() { out.ok("Updated %s %s", kind, res.ID) })
		},
	}
	flags.register(cmd.Flags())
	return cmd
}

func newResourceDeleteCmd(rt *runtime, kind models.ResourceKind) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an item (administrators only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rt.app.Services.ResourceService.Delete(cmd.Context(), kind, args[0]); err != nil {
				return err
			}
			out := rt.printer(cmd)
			return out.result(status{OK: true}, func() { out.ok("Deleted %s %s", kind, args[0]) })
		},
	}
}
