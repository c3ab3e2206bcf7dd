package cli

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-edu-resources/internal/service"
	"github.com/MKhiriev/go-edu-resources/models"
	"github.com/spf13/cobra"
)

func newLoginCmd(rt *runtime) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and remember the session",
		Long: `Sign in to the backend.

The email and password are taken from the flags, then from EDU_EMAIL and
EDU_PASSWORD, and are prompted for otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := newPrompter(cmd)
			var err error
			if email, err = p.value(email, envEmail, "Email"); err != nil {
				return err
			}
			if password, err = p.secret(password, envPassword, "Password"); err != nil {
				return err
			}

			user, err := rt.app.Services.AuthService.Login(cmd.Context(), models.Credentials{Email: email, Password: password})
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			out := rt.printer(cmd)
			return out.result(user, func() {
				out.ok("Signed in as %s <%s>", user.Name, user.Email)
			})
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "Account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Account password (prompted when omitted)")
	return cmd
}

func newRegisterCmd(rt *runtime) *cobra.Command {
	var reg models.Registration

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := newPrompter(cmd)
			var err error
			if reg.Name, err = p.value(reg.Name, "", "Name"); err != nil {
				return err
			}
			if reg.Email, err = p.value(reg.Email, envEmail, "Email"); err != nil {
				return err
			}
			if reg.Password, err = p.secret(reg.Password, envPassword, "Password"); err != nil {
				return err
			}

			res, err := rt.app.Services.AuthService.Register(cmd.Context(), reg)
			if err != nil {
				return fmt.Errorf("registration failed: %w", err)
			}

			out := rt.printer(cmd)
			return out.result(res, func() {
				switch {
				case res.VerificationPending:
					out.ok("Account created. Check %s for the verification link", reg.Email)
				case res.User != nil:
					out.ok("Account created, signed in as %s", res.User.Email)
				default:
					out.ok("%s", res.Message)
				}
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&reg.Name, "name", "", "Display name")
	f.StringVarP(&reg.Email, "email", "e", "", "Account email")
	f.StringVarP(&reg.Password, "password", "p", "", "Password (prompted when omitted)")
	f.StringVar(&reg.USN, "usn", "", "University seat number")
	f.StringVar(&reg.Course, "course", "", "Course")
	f.StringVar(&reg.Semester, "semester", "", "Semester")
	return cmd
}

func newLogoutCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := rt.app.Services.AuthService.Logout(cmd.Context()); err != nil {
				return err
			}
			out := rt.printer(cmd)
			return out.result(status{OK: true}, func() { out.ok("Signed out") })
		},
	}
}

func newWhoamiCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := rt.app.Services.AuthService.CurrentUser()
			if errors.Is(err, service.ErrNotSignedIn) {
				if cause := rt.app.Session.Err(); cause != nil {
					return fmt.Errorf("%w (%v)", err, cause)
				}
			}
			if err != nil {
				return err
			}

			out := rt.printer(cmd)
			return out.result(user, func() {
				out.fields(userFields(user)...)
				out.line("Server: %s", rt.app.Session.Server())
			})
		},
	}
}

func newVerifyCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <token-or-link>",
		Short: "Confirm an email address with the link received by email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rt.app.Services.AccountService.VerifyEmail(cmd.Context(), args[0]); err != nil {
				return err
			}
			out := rt.printer(cmd)
			return out.result(status{OK: true}, func() { out.ok("Email verified, you can log in now") })
		},
	}
}

// emailCmd builds a command that sends one email address to call.
func emailCmd(rt *runtime, use, short string, call func(cmd *cobra.Command, email string) (string, error)) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if email, err = newPrompter(cmd).value(email, envEmail, "Email"); err != nil {
				return err
			}
			msg, err := call(cmd, email)
			if err != nil {
				return err
			}
			out := rt.printer(cmd)
			return out.result(status{OK: true, Message: msg}, func() { out.ok("%s", msg) })
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "Account email")
	return cmd
}

func newResendVerificationCmd(rt *runtime) *cobra.Command {
	return emailCmd(rt, "resend-verification", "Send the verification email again",
		func(cmd *cobra.Command, email string) (string, error) {
			return rt.app.Services.AccountService.ResendVerification(cmd.Context(), email)
		})
}

func newForgotPasswordCmd(rt *runtime) *cobra.Command {
	return emailCmd(rt, "forgot-password", "Request a password reset email",
		func(cmd *cobra.Command, email string) (string, error) {
			return rt.app.Services.AccountService.ForgotPassword(cmd.Context(), email)
		})
}

func newResetPasswordCmd(rt *runtime) *cobra.Command {
	var reset models.PasswordReset

	cmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Set a new password with the token from the reset email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := newPrompter(cmd)
			var err error
			if reset.Token, err = p.value(reset.Token, "", "Reset token"); err != nil {
				return err
			}
			if reset.NewPassword, err = p.secret(reset.NewPassword, "", "New password"); err != nil {
				return err
			}

			msg, err := rt.app.Services.AccountService.ResetPassword(cmd.Context(), reset)
			if err != nil {
				return err
			}
			out := rt.printer(cmd)
			return out.result(status{OK: true, Message: msg}, func() { out.ok("%s", msg) })
		},
	}
	cmd.Flags().StringVar(&reset.Token, "token", "", "Reset token")
	cmd.Flags().StringVar(&reset.NewPassword, "new-password", "", "New password (prompted when omitted)")
	return cmd
}
