package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"movefunnel/internal/app"
	"movefunnel/internal/funnel"
	"movefunnel/internal/services/session"
	"movefunnel/internal/store"
)

var snapshotKey string

func snapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Inspect stored session snapshots",
	}
	cmd.PersistentFlags().StringVar(&snapshotKey, "key", "", "storage key or session id")
	_ = cmd.MarkPersistentFlagRequired("key")
	cmd.AddCommand(snapshotShowCmd(), snapshotResetCmd())
	return cmd
}

// storageKey accepts a bare session id as shorthand for its snapshot key.
func storageKey(key string) string {
	if key == funnel.StorageKey || strings.Contains(key, ":") {
		return key
	}
	return session.SnapshotKey(key)
}

func snapshotShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print a stored snapshot as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshots, closeFn, err := app.OpenSnapshotStore(cfg.Storage)
			if err != nil {
				return err
			}
			defer closeFn()

			key := storageKey(snapshotKey)
			state, ok, err := store.LoadState(cmd.Context(), snapshots, key)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("no snapshot stored under %q", key)
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(state)
		},
	}
}

func snapshotResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Delete a stored snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshots, closeFn, err := app.OpenSnapshotStore(cfg.Storage)
			if err != nil {
				return err
			}
			defer closeFn()

			key := storageKey(snapshotKey)
			if err := snapshots.DeleteSnapshot(cmd.Context(), key); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Snapshot %s removed.\n", key)
			return nil
		},
	}
}
