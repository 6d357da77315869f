// Package cli holds the tfsctl commands: schema migrations, backups and quick reports
// against the local store file or the Postgres database.
package cli

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/limbo/twentyfourseven/internal/repository"
	"github.com/limbo/twentyfourseven/pkg/cleanup"
	"github.com/limbo/twentyfourseven/pkg/config"
	"github.com/limbo/twentyfourseven/pkg/logger"
)

// LocalUser owns every key of the local store file.
var LocalUser = uuid.Nil

func NewRootCommand(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "tfsctl",
		Short:         "twentyfourseven maintenance tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		lg, _, err := logger.NewWithWriter(cmd.ErrOrStderr(), cfg.Log.Level, "console")
		if err != nil {
			return err
		}
		slog.SetDefault(lg)
		return nil
	}
	root.PersistentFlags().StringVar(&cfg.LocalStorePath, "store", cfg.LocalStorePath, "local store file")

	root.AddCommand(
		newMigrateCmd(cfg),
		newExportCmd(cfg),
		newImportCmd(cfg),
		newTotalsCmd(cfg),
		newReportCmd(cfg),
	)
	return root
}

func pgConfig(cfg *config.Config) *repository.PGCfg {
	return &repository.PGCfg{
		Address:  cfg.Postgres.Address,
		Username: cfg.Postgres.Username,
		Password: cfg.Postgres.Password,
		DB:       cfg.Postgres.DB,
	}
}

// openStore returns the kv space of user in Postgres, or the local store file when user is empty.
// The returned func releases the store.
func openStore(ctx context.Context, cfg *config.Config, user string) (repository.KVStore, uuid.UUID, func(), error) {
	if user == "" {
		kv, err := repository.NewSQLiteKV(cfg.LocalStorePath)
		if err != nil {
			return nil, uuid.Nil, nil, err
		}
		slog.Debug("using local store", slog.String("path", cfg.LocalStorePath))
		return kv, LocalUser, func() { kv.Close() }, nil
	}
	uid, err := uuid.Parse(user)
	if err != nil {
		return nil, uuid.Nil, nil, errors.New("--user must be a uuid")
	}
	pool, err := repository.NewPool(ctx, pgConfig(cfg))
	if err != nil {
		return nil, uuid.Nil, nil, err
	}
	return repository.NewPgKVWithConn(pool), uid, cleanup.CleanUp, nil
}
