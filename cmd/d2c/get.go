package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dev2cloud/d2c-go/models"
	"github.com/dev2cloud/d2c-go/utils"
)

func getCmd() *cobra.Command {
	var ping bool

	cmd := &cobra.Command{
		Use:   "get <sandbox-id>",
		Short: "Show a sandbox and its credentials",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args[0], ping)
		},
	}

	cmd.Flags().BoolVar(&ping, "ping", false, "verify the data service is reachable with the returned credentials")

	return cmd
}

func runGet(sandboxID string, ping bool) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	sandbox, err := client.Sandbox.Get(context.Background(), sandboxID)
	if err != nil {
		return err
	}

	printSandbox(sandbox)

	if !ping {
		return nil
	}
	if sandbox.Credentials == nil {
		return fmt.Errorf("sandbox %s has no credentials yet (status: %s)", sandbox.ID, formatStatus(sandbox))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch sandbox.Type() {
	case models.SandboxTypeRedis:
		rdb, err := utils.OpenRedis(ctx, sandbox)
		if err != nil {
			return err
		}
		defer rdb.Close()
	default:
		db, err := utils.OpenPostgres(ctx, sandbox)
		if err != nil {
			return err
		}
		defer db.Close()
	}

	fmt.Println(successStyle.Render("✓ " + string(sandbox.Type()) + " is reachable"))
	return nil
}

func printSandbox(sandbox *models.Sandbox) {
	fmt.Printf("%s  %s  %s\n", headerStyle.Render(sandbox.ID), sandbox.Type(), formatStatus(sandbox))
	fmt.Printf("%s %s\n", dimStyle.Render("created:"), sandbox.CreatedAt.Local().Format(time.DateTime))

	if creds := sandbox.Credentials; creds != nil {
		fmt.Printf("%s %s@%s:%d", dimStyle.Render("creds:"), creds.User, creds.Host, creds.Port)
		if creds.Database != "" {
			fmt.Printf("/%s", creds.Database)
		}
		fmt.Println()
		fmt.Printf("%s %s\n", dimStyle.Render("url:"), sandbox.URL())
	}
}
