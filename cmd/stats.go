package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show backend request statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		recent, _ := cmd.Flags().GetInt("recent")

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		stats, err := st.EventRepo().RequestStats(ctx)
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(stats) == 0 {
			fmt.Fprintln(out, "No requests recorded yet.")
			return nil
		}

		fmt.Fprintf(out, "%-14s  %-6s  %-8s  %s\n", "Operation", "Total", "Failed", "Avg ms")
		fmt.Fprintln(out, strings.Repeat("─", 44))
		for _, s := range stats {
			fmt.Fprintf(out, "%-14s  %-6d  %-8d  %.0f\n", s.Op, s.Total, s.Failures, s.AvgLatencyMs)
		}

		if recent <= 0 {
			return nil
		}
		events, err := st.EventRepo().RecentRequestEvents(ctx, recent)
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		fmt.Fprintln(out)
		fmt.Fprintf(out, "%-19s  %-14s  %-16s  %-6s  %-7s  %s\n", "Timestamp", "Operation", "Plan", "Status", "Ms", "OK")
		fmt.Fprintln(out, strings.Repeat("─", 80))
		for _, e := range events {
			ok := "✓"
			if !e.Success {
				ok = "✗ " + e.ErrorMessage
			}
			plan := e.PlanID
			if plan == "" {
				plan = "-"
			}
			fmt.Fprintf(out, "%-19s  %-14s  %-16s  %-6d  %-7d  %s\n",
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Op,
				plan,
				e.Status,
				e.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("recent", 0, "also list the N most recent requests")
}
