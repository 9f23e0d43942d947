package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/studyplan/internal/session"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List study plans generated on this machine",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		plans, err := st.PlanRepo().RecentPlans(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("query plans: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(plans) == 0 {
			fmt.Fprintln(out, "No plans generated yet.")
			return nil
		}

		fmt.Fprintf(out, "%-16s  %-16s  %-5s  %-8s  %-16s  %s\n",
			"Plan", "Created", "Days", "Hours", "Style", "Syllabus")
		fmt.Fprintln(out, strings.Repeat("─", 100))
		for _, p := range plans {
			hours := p.TotalHours
			if hours == "" {
				hours = "-"
			}
			fmt.Fprintf(out, "%-16s  %-16s  %-5d  %-8s  %-16s  %s\n",
				session.AbbreviateID(p.PlanID),
				p.CreatedAt.Local().Format("2006-01-02 15:04"),
				p.DurationDays,
				hours,
				p.LearningStyle,
				p.SyllabusExcerpt,
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of plans to show (0 for all)")
}
