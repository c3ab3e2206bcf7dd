package cli

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-edu-resources/internal/tui"
	"github.com/spf13/cobra"
)

func newTUICmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse resources interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := rt.app
			ctx, cancel := context.WithCancel(cmd.Context())

			var wg sync.WaitGroup
			wg.Add(1)
			go func() {
				defer wg.Done()
				app.RunWorkers(ctx)
			}()
			defer func() {
				cancel()
				wg.Wait()
			}()

			return tui.New(tui.Deps{
				Session:     app.Session,
				Auth:        app.Services.AuthService,
				Resources:   app.Services.ResourceService,
				Bookmarks:   app.Services.BookmarkService,
				BuildInfo:   app.BuildInfo,
				DownloadDir: app.Config.App.DownloadDir,
				Logger:      app.Logger,
			}).Run(ctx)
		},
	}
}
