package cmd

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/abhisek/studyplan/internal/api"
	"github.com/abhisek/studyplan/internal/config"
	"github.com/abhisek/studyplan/internal/store"
)

var (
	v   = viper.New()
	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "studyplan",
	Short: "Personalized study plans in your terminal",
	Long: `Studyplan turns a pasted syllabus and your learning preferences into a
day-by-day study plan, using the study plan backend.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default is $XDG_CONFIG_HOME/studyplan/config.yaml)")
	pf.String("api-url", "", "backend base URL (overrides api.base_url)")
	pf.String("db", "", "path to SQLite database file (overrides store.path)")

	_ = v.BindPFlag("api.base_url", pf.Lookup("api-url"))
	_ = v.BindPFlag("store.path", pf.Lookup("db"))

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(mockServerCmd)
}

// loadConfig reads .env, the config file and the environment into cfg.
func loadConfig(cmd *cobra.Command) error {
	if _, err := config.LoadDotEnv(); err != nil {
		return err
	}
	cfgFile, _ := cmd.Flags().GetString("config")
	if err := config.Init(v, cfgFile); err != nil {
		return err
	}
	loaded, err := config.Load(v)
	if err != nil {
		return err
	}
	cfg = loaded
	return nil
}

// resolveDBPath returns store.path when set, then STUDYPLAN_DB, then the
// default XDG path.
func resolveDBPath() (string, error) {
	if p := cfg.Store.Path; p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func openStore() (*store.Store, error) {
	dbPath, err := resolveDBPath()
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// newService builds the backend client. Calls are recorded in events when
// it is non-nil.
func newService(events store.EventRepo, logger zerolog.Logger) api.Service {
	client := api.NewClient(cfg.API.BaseURL, api.WithTimeout(cfg.API.Timeout))
	return api.WithRecording(client, events, logger)
}
