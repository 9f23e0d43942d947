package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/studyplan/internal/logging"
	"github.com/abhisek/studyplan/internal/mockapi"
)

var mockServerCmd = &cobra.Command{
	Use:   "mock-server",
	Short: "Run an offline stand-in for the study plan backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := cfg.Mock.Addr
		if a, _ := cmd.Flags().GetString("addr"); a != "" {
			addr = a
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger := logging.NewConsole(cfg.Logging.Level)
		return mockapi.New(mockapi.WithLogger(logger)).ListenAndServe(ctx, addr)
	},
}

func init() {
	mockServerCmd.Flags().String("addr", "", "listen address (overrides mock.addr)")
}
