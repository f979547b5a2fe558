package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/artpar/offerview/bootstrap"
	"github.com/artpar/offerview/config"
)

var hotReload bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the JSON API server",
	Long: `Start the Offerview API server.

The server will:
  - Load configuration from offerview.yaml (or --config)
  - Or load configuration from OFFERVIEW_* environment variables
  - Seed the module registry and apply persisted overrides
  - Serve category module lists, definition CRUD, and render requests

Environment variables (for Docker deployments):
  OFFERVIEW_SERVER_PORT       - Server port (default: 8080)
  OFFERVIEW_DATABASE_DSN      - SQLite path for overrides (optional)
  OFFERVIEW_ADMIN_TOKEN_HASH  - bcrypt hash of the admin bearer token
  OFFERVIEW_LOG_LEVEL         - Log level: debug, info, warn, error

Examples:
  offerview serve
  offerview serve --config /etc/offerview/config.yaml
  offerview serve --hot-reload=false`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().BoolVar(&hotReload, "hot-reload", true, "enable hot reload of configuration")
}

func runServe(cmd *cobra.Command, args []string) error {
	hasConfigFile := false
	if _, err := os.Stat(cfgFile); err == nil {
		hasConfigFile = true
	}

	var a *bootstrap.App
	var err error

	if hasConfigFile && hotReload {
		a, err = bootstrap.NewWithHotReload(cfgFile)
	} else {
		cfg, loadErr := config.LoadWithFallback(cfgFile)
		if loadErr != nil {
			return loadErr
		}
		a, err = bootstrap.New(cfg)
	}
	if err != nil {
		return err
	}

	return a.Run()
}
