package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <sandbox-id>",
		Short: "Permanently delete a sandbox",
		Long:  "Permanently delete a sandbox. This is irreversible and revokes\nthe connection credentials immediately.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			if err := client.Sandbox.Delete(context.Background(), args[0]); err != nil {
				return err
			}

			logDebug("deleted sandbox %s", args[0])
			fmt.Println(successStyle.Render("✓ Sandbox " + args[0] + " deleted"))
			return nil
		},
	}
}

func deleteAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-all",
		Short: "Delete every active sandbox (best effort)",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			deleted, err := client.Sandbox.DeleteAll(context.Background())
			for _, id := range deleted {
				fmt.Println(successStyle.Render("✓ " + id))
			}
			if err != nil {
				return fmt.Errorf("aborted after %d deletions: %w", len(deleted), err)
			}

			logDebug("delete-all removed %d sandboxes", len(deleted))
			if len(deleted) == 0 {
				fmt.Println(dimStyle.Render("Nothing to delete."))
			} else {
				fmt.Printf("%s\n", dimStyle.Render(fmt.Sprintf("%d sandbox(es) deleted", len(deleted))))
			}
			return nil
		},
	}
}
