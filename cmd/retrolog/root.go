package main

import (
	"fmt"

	"retrolog/internal/client"
	"retrolog/internal/config"
	"retrolog/internal/session"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfg   *config.Config
	store *session.Store
	api   *client.Client
)

var rootCmd = &cobra.Command{
	Use:           "retrolog",
	Short:         "Terminal client for the retrolog blogging platform",
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}

		store = session.NewStore(cfg.SessionFile)
		api = client.New(cfg.APIBaseURL)
		return nil
	},
}

// requireAuth returns an error unless the current session is authenticated.
func requireAuth() error {
	if !store.Current().IsAuthenticated {
		return fmt.Errorf("you must be logged in (run 'retrolog login' first)")
	}
	return nil
}

func init() {
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(postsCmd)
	rootCmd.AddCommand(commentCmd)
}
