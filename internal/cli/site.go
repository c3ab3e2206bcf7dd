package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

func newAdminCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrator tools",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "dashboard",
		Short: "Show account counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := rt.app.Services.SiteService.Dashboard(cmd.Context())
			if err != nil {
				return err
			}
			out := rt.printer(cmd)
			return out.result(d, func() {
				out.line("%s", d.Message)
				n := strconv.Itoa
				out.table([]string{"USERS", "ADMINS", "STUDENTS"}, [][]string{
					{n(d.Stats.TotalUsers), n(d.Stats.TotalAdmins), n(d.Stats.TotalStudents)},
				})
			})
		},
	})
	return cmd
}

func newNewsCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "news",
		Short: "Show the welcome message, latest news and contact details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := rt.app.Services.SiteService.Content(cmd.Context())
			if err != nil {
				return err
			}
			out := rt.printer(cmd)
			return out.result(c, func() {
				out.line("%s", c.WelcomeMessage)
				rows := make([][]string, 0, len(c.LatestNews))
				for _, item := range c.LatestNews {
					rows = append(rows, []string{item.Title, item.Content})
				}
				out.table([]string{"NEWS", ""}, rows)
				out.fields(
					[2]string{"Email", c.ContactInfo.Email},
					[2]string{"Phone", c.ContactInfo.Phone},
				)
			})
		},
	}
}
