package main

import (
	"fmt"
	"log/slog"

	"github.com/nightowl-labs/homedash"
	"github.com/nightowl-labs/homedash/domain/holding"
	"github.com/nightowl-labs/homedash/domain/syncrun"
	"github.com/nightowl-labs/homedash/internal/log"
	"github.com/spf13/cobra"
)

func syncCmd() *cobra.Command {
	var (
		envFile string
		ownerID string
		dbType  string
	)

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Run one sync and exit",
		Long: `Run one sync for an owner and exit.

Syncs every linked database in dependency order, or a single kind when
--db-type is given. The process exit code is non-zero only when every
linked database failed to sync.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd, envFile, ownerID, dbType)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().StringVar(&ownerID, "owner", "", "Owner id to sync (required)")
	cmd.Flags().StringVar(&dbType, "db-type", "", "Restrict the run to one kind: asset, place, or investment")
	_ = cmd.MarkFlagRequired("owner")

	return cmd
}

func runSync(cmd *cobra.Command, envFile, ownerID, dbType string) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}

	logger := log.New(cfg.LogLevel(), log.Format(cfg.LogFormat()))
	slogger := logger.Slog()

	client, err := homedash.NewFromConfig(cfg, slogger)
	if err != nil {
		return fmt.Errorf("create homedash client: %w", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			slogger.Error("failed to close homedash client", slog.Any("error", err))
		}
	}()

	ctx := cmd.Context()

	var run syncrun.Run
	if dbType == "" {
		run, err = client.Sync.SyncAll(ctx, ownerID, syncrun.TriggerCLI)
	} else {
		var kind holding.Kind
		kind, err = holding.ParseKind(dbType)
		if err != nil {
			return err
		}
		run, err = client.Sync.SyncKind(ctx, ownerID, kind, syncrun.TriggerCLI)
	}
	if err != nil {
		return fmt.Errorf("sync: %w", err)
	}

	for kind, result := range run.Results() {
		if result.Success() {
			fmt.Printf("%-12s ok    added=%d removed=%d total=%d\n",
				kind, result.Added(), result.Removed(), result.Total())
		} else {
			fmt.Printf("%-12s error %s\n", kind, result.Err())
		}
	}

	if run.Results().AllFailed() {
		return fmt.Errorf("all linked databases failed to sync")
	}
	return nil
}
