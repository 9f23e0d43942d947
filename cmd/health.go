package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/studyplan/internal/logging"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the backend is reachable",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.NewConsole(cfg.Logging.Level)

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		h, err := newService(st.EventRepo(), logger).Health(cmd.Context())
		if err != nil {
			return fmt.Errorf("backend at %s: %w", cfg.API.BaseURL, err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Backend:  %s\n", cfg.API.BaseURL)
		fmt.Fprintf(out, "Status:   %s\n", h.Status)
		fmt.Fprintf(out, "Service:  %s\n", h.Service)
		fmt.Fprintf(out, "Agents:   %d\n", h.Agents)
		if h.LLM != "" {
			fmt.Fprintf(out, "Model:    %s\n", h.LLM)
		}
		if h.Timestamp != "" {
			fmt.Fprintf(out, "Checked:  %s\n", h.Timestamp)
		}
		return nil
	},
}
