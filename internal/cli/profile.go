package cli

import (
	"github.com/MKhiriev/go-edu-resources/models"
	"github.com/spf13/cobra"
)

func newProfileCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show and edit your profile",
	}
	cmd.AddCommand(
		newProfileShowCmd(rt),
		newProfileUpdateCmd(rt),
		newProfilePhotoCmd(rt),
		newProfilePasswordCmd(rt),
	)
	return cmd
}

func newProfileShowCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Fetch and show the profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := rt.app.Services.ProfileService.Get(cmd.Context())
			if err != nil {
				return err
			}
			out := rt.printer(cmd)
			return out.result(user, func() { out.fields(userFields(user)...) })
		},
	}
}

func newProfileUpdateCmd(rt *runtime) *cobra.Command {
	var update models.ProfileUpdate

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Change profile fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := rt.app.Services.ProfileService.Update(cmd.Context(), update)
			if err != nil {
				return err
			}
			out := rt.printer(cmd)
			return out.result(user, func() { out.fields(userFields(user)...) })
		},
	}
	f := cmd.Flags()
	f.StringVar(&update.Name, "name", "", "Display name")
	f.StringVar(&update.USN, "usn", "", "University seat number")
	f.StringVar(&update.Course, "course", "", "Course")
	f.StringVar(&update.Semester, "semester", "", "Semester")
	return cmd
}

func newProfilePhotoCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "photo <file>",
		Short: "Upload a profile photo (jpeg, png or webp, up to 5 MiB)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := rt.app.Services.ProfileService.UploadPhotoFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := rt.printer(cmd)
			return out.result(resp, func() { out.ok("Photo uploaded: %s", resp.PhotoURL) })
		},
	}
}

func newProfilePasswordCmd(rt *runtime) *cobra.Command {
	var change models.PasswordChange

	cmd := &cobra.Command{
		Use:   "password",
		Short: "Change your password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := newPrompter(cmd)
			var err error
			if change.OldPassword, err = p.secret(change.OldPassword, "", "Current password"); err != nil {
				return err
			}
			if change.NewPassword, err = p.secret(change.NewPassword, "", "New password"); err != nil {
				return err
			}

			if err := rt.app.Services.ProfileService.ChangePassword(cmd.Context(), change); err != nil {
				return err
			}
			out := rt.printer(cmd)
			return out.result(status{OK: true}, func() { out.ok("Password changed") })
		},
	}
	cmd.Flags().StringVar(&change.OldPassword, "old", "", "Current password (prompted when omitted)")
	cmd.Flags().StringVar(&change.NewPassword, "new", "", "New password (prompted when omitted)")
	return cmd
}
