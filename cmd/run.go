package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/studyplan/internal/app"
	"github.com/abhisek/studyplan/internal/controller"
	"github.com/abhisek/studyplan/internal/logging"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	logger, closer, err := logging.NewFile(cfg.Logging.File, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closer.Close()

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	logger.Info().Str("api", cfg.API.BaseURL).Msg("starting")

	ctrl := controller.New(controller.Options{
		Service:     newService(st.EventRepo(), logger),
		Plans:       st.PlanRepo(),
		DownloadDir: cfg.Download.Dir,
		Logger:      logger,
	})

	return app.Run(app.Options{
		Controller:          ctrl,
		Logger:              logger,
		NotifyDuration:      cfg.Notify.Duration,
		NotifyErrorDuration: cfg.Notify.ErrorDuration,
	})
}
