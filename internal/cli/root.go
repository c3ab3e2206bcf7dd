// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the edu command line front-end.
//
// Every command except version and help runs on a [client.App] built from the
// persistent configuration flags, the environment and the config file. The
// session is started before the command runs, so a stored token is picked
// up transparently.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-edu-resources/internal/client"
	"github.com/MKhiriev/go-edu-resources/internal/config"
	"github.com/MKhiriev/go-edu-resources/internal/logger"
	"github.com/MKhiriev/go-edu-resources/models"
	"github.com/spf13/cobra"
)

// annotationNoApp marks commands that run without a client.App.
const annotationNoApp = "no-app"

// CLI is the command tree plus the state its commands share.
type CLI struct {
	root *cobra.Command
	rt   *runtime
}

// runtime is what PersistentPreRunE builds for the command being run.
type runtime struct {
	buildInfo models.AppBuildInfo
	flags     *config.Flags
	jsonOut   bool

	app      *client.App
	closeLog func() error
}

// New builds the command tree.
func New(buildInfo models.AppBuildInfo) *CLI {
	rt := &runtime{buildInfo: buildInfo}

	root := &cobra.Command{
		Use:   "edu",
		Short: "EduResources client: question papers, notes and syllabus from the terminal",
		Long: `edu talks to an EduResources backend.

Sign in once with "edu login"; the token is kept in the local token store
and reused by every later command until it expires or you log out.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: rt.prepare,
	}

	rt.flags = config.RegisterFlags(root.PersistentFlags())
	root.PersistentFlags().BoolVar(&rt.jsonOut, "json", false, "Print results as JSON")

	root.AddCommand(
		newVersionCmd(rt),
		newLoginCmd(rt),
		newRegisterCmd(rt),
		newLogoutCmd(rt),
		newWhoamiCmd(rt),
		newVerifyCmd(rt),
		newResendVerificationCmd(rt),
		newForgotPasswordCmd(rt),
		newResetPasswordCmd(rt),
	)
	for _, kind := range models.ResourceKinds {
		root.AddCommand(newResourceCmd(rt, kind))
	}
	root.AddCommand(
		newBookmarksCmd(rt),
		newStatsCmd(rt),
		newAchievementsCmd(rt),
		newGoalsCmd(rt),
		newProfileCmd(rt),
		newNewsCmd(rt),
		newAdminCmd(rt),
		newTUICmd(rt),
	)

	return &CLI{root: root, rt: rt}
}

// SetIO redirects the standard streams of every command.
func (c *CLI) SetIO(in io.Reader, out, errOut io.Writer) {
	c.root.SetIn(in)
	c.root.SetOut(out)
	c.root.SetErr(errOut)
}

// Execute runs the command selected by args and releases what it opened.
func (c *CLI) Execute(ctx context.Context, args []string) error {
	c.root.SetArgs(args)
	defer c.rt.close()

	return c.root.ExecuteContext(ctx)
}

func (rt *runtime) prepare(cmd *cobra.Command, _ []string) error {
	if !needsApp(cmd) {
		return nil
	}

	cfg, err := config.GetClientConfig(rt.flags)
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}

	log, closeLog, err := logger.NewClientLogger("client", cfg.App.LogFile, cfg.App.LogLevel)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v, logging to stderr\n", err)
	}
	rt.closeLog = closeLog

	ctx := cmd.Context()
	app, err := client.NewApp(ctx, cfg, rt.buildInfo, log)
	if err != nil {
		return err
	}
	rt.app = app

	app.Start(ctx)
	return nil
}

// needsApp reports whether cmd talks to the backend. Help and shell
// completion never do.
func needsApp(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if _, ok := c.Annotations[annotationNoApp]; ok {
			return false
		}
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return false
		}
	}
	return true
}

func (rt *runtime) close() {
	if rt.app != nil {
		if err := rt.app.Close(); err != nil {
			rt.app.Logger.Err(err).Msg("error closing token store")
		}
		rt.app = nil
	}
	if rt.closeLog != nil {
		_ = rt.closeLog()
		rt.closeLog = nil
	}
}

// printer returns the output of cmd in the selected format.
func (rt *runtime) printer(cmd *cobra.Command) *printer {
	return &printer{out: cmd.OutOrStdout(), json: rt.jsonOut}
}

// errNonInteractive is returned when a value is neither given nor promptable.
var errNonInteractive = errors.New("required value missing in non-interactive mode")

func newVersionCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print build information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoApp: ""},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), rt.buildInfo.String())
		},
	}
}
