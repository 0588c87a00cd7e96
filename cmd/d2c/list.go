package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/dev2cloud/d2c-go/models"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all active sandboxes",
		RunE:  runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	sandboxes, err := client.Sandbox.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list sandboxes: %w", err)
	}
	logDebug("listed %d sandboxes", len(sandboxes))

	if len(sandboxes) == 0 {
		fmt.Println(dimStyle.Render("No sandboxes. Create one with: d2c create postgres"))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\tSTATUS\tCREATED")

	for _, sandbox := range sandboxes {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			sandbox.ID,
			sandbox.Type(),
			formatStatus(sandbox),
			sandbox.CreatedAt.Local().Format(time.DateTime),
		)
	}

	return w.Flush()
}

func formatStatus(sandbox *models.Sandbox) string {
	if sandbox.Status == nil {
		return dimStyle.Render("unknown")
	}
	switch *sandbox.Status {
	case models.StatusRunning:
		return statusRunning.Render("✓ running")
	case models.StatusPending:
		return statusPending.Render("… pending")
	case models.StatusFailed:
		return statusFailed.Render("✗ failed")
	default:
		return string(*sandbox.Status)
	}
}
