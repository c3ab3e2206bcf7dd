package cli

import (
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-edu-resources/models"
	"github.com/spf13/cobra"
)

func newStatsCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show library and personal statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := rt.app.Services.ProgressService.Stats(cmd.Context())
			if err != nil {
				return err
			}
			out := rt.printer(cmd)
			return out.result(s, func() {
				n := strconv.Itoa
				out.table([]string{"", "LIBRARY", "YOURS"}, [][]string{
					{"Papers", n(s.TotalPapers), n(s.UserPapers)},
					{"Notes", n(s.TotalNotes), n(s.UserNotes)},
					{"Syllabus", n(s.TotalSyllabus), n(s.UserSyllabus)},
					{"Bookmarks", n(s.TotalBookmarks), n(s.UserBookmarks)},
				})
				out.line("This week: %d papers, %d notes", s.RecentActivity.PapersThisWeek, s.RecentActivity.NotesThisWeek)
			})
		},
	}
}

func newAchievementsCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "achievements",
		Short: "List achievements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := rt.app.Services.ProgressService.Achievements(cmd.Context())
			if err != nil {
				return err
			}
			out := rt.printer(cmd)
			return out.result(list, func() {
				rows := make([][]string, 0, len(list))
				for _, a := range list {
					state := fmt.Sprintf("%d/%d", a.Progress, a.Target)
					if a.Unlocked {
						state = "unlocked"
					}
					rows = append(rows, []string{a.Icon + " " + a.Title, a.Description, state})
				}
				out.table([]string{"ACHIEVEMENT", "DESCRIPTION", "STATE"}, rows)
			})
		},
	}
}

func newGoalsCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Manage learning goals",
	}
	cmd.AddCommand(
		newGoalsListCmd(rt),
		newGoalsAddCmd(rt),
		newGoalsUpdateCmd(rt),
		newGoalsDoneCmd(rt),
		newGoalsDeleteCmd(rt),
	)
	return cmd
}

func newGoalsListCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List learning goals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			goals, err := rt.app.Services.ProgressService.Goals(cmd.Context())
			if err != nil {
				return err
			}
			out := rt.printer(cmd)
			return out.result(goals, func() { printGoals(out, goals...) })
		},
	}
}

func printGoals(out *printer, goals ...models.Goal) {
	rows := make([][]string, 0, len(goals))
	for _, g := range goals {
		rows = append(rows, goalRow(g))
	}
	out.table([]string{"ID", "TITLE", "TARGET", "PROGRESS"}, rows)
}

func newGoalsAddCmd(rt *runtime) *cobra.Command {
	var input models.GoalInput

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a learning goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input.Title = args[0]
			goal, err := rt.app.Services.ProgressService.CreateGoal(cmd.Context(), input)
			if err != nil {
				return err
			}
			out := rt.printer(cmd)
			return out.result(goal, func() { out.ok("Goal %s created", goal.ID) })
		},
	}
	cmd.Flags().StringVar(&input.Description, "description", "", "Description")
	cmd.Flags().StringVar(&input.TargetDate, "target", "", "Target date (YYYY-MM-DD)")
	return cmd
}

func newGoalsUpdateCmd(rt *runtime) *cobra.Command {
	var (
		input    models.GoalInput
		progress int
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change a learning goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("progress") {
				input.Progress = &progress
			}
			goal, err := rt.app.Services.ProgressService.UpdateGoal(cmd.Context(), args[0], input)
			if err != nil {
				return err
			}
			out := rt.printer(cmd)
			return out.result(goal, func() { printGoals(out, goal) })
		},
	}
	cmd.Flags().StringVar(&input.Title, "title", "", "Title")
	cmd.Flags().StringVar(&input.Description, "description", "", "Description")
	cmd.Flags().StringVar(&input.TargetDate, "target", "", "Target date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&progress, "progress", 0, "Progress in percent")
	return cmd
}

func newGoalsDoneCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a learning goal completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			goal, err := rt.app.Services.ProgressService.CompleteGoal(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := rt.printer(cmd)
			return out.result(goal, func() { out.ok("Goal %q completed", goal.Title) })
		},
	}
}

func newGoalsDeleteCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a learning goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rt.app.Services.ProgressService.DeleteGoal(cmd.Context(), args[0]); err != nil {
				return err
			}
			out := rt.printer(cmd)
			return out.result(status{OK: true}, func() { out.ok("Goal deleted") })
		},
	}
}
