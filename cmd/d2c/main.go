// Package main implements d2c, a command line tool for managing
// Dev2Cloud data-service sandboxes.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	d2c "github.com/dev2cloud/d2c-go"
)

func main() {
	// Pick up D2C_API_KEY / D2C_API_URL from a local .env if present.
	godotenv.Load()

	if err := initLogger(); err == nil {
		logDebug("=== d2c started ===")
	}

	root := &cobra.Command{
		Use:           "d2c",
		Short:         "Manage Dev2Cloud data-service sandboxes",
		Long:          "d2c provisions and manages ephemeral Postgres and Redis sandboxes\non Dev2Cloud and prints their connection credentials.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.CompletionOptions.DisableDefaultCmd = true
	root.AddCommand(listCmd(), createCmd(), getCmd(), deleteCmd(), deleteAllCmd(), configureCmd())

	if err := root.Execute(); err != nil {
		logDebug("command failed: %v", err)
		fmt.Fprintln(os.Stderr, errorStyle.Render("✗ "+err.Error()))
		os.Exit(1)
	}
}

// newClient builds an SDK client from the resolved CLI configuration.
func newClient() (*d2c.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("no API key configured: set D2C_API_KEY or run `d2c configure --api-key <key>`")
	}

	var opts []d2c.ClientOption
	if cfg.APIURL != "" {
		opts = append(opts, d2c.WithBaseURL(cfg.APIURL))
	}

	return d2c.NewClient(cfg.APIKey, opts...), nil
}
