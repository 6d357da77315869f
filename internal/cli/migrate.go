package cli

import (
	"database/sql"
	"errors"
	"log/slog"

	_ "github.com/lib/pq"
	"github.com/pressly/goose"
	"github.com/spf13/cobra"

	"github.com/limbo/twentyfourseven/pkg/config"
)

var migrateCommands = map[string]bool{"up": true, "down": true, "status": true, "version": true, "redo": true}

func newMigrateCmd(cfg *config.Config) *cobra.Command {
	var (
		dir     string
		sslmode string
	)
	cmd := &cobra.Command{
		Use:   "migrate [up|down|status|version|redo]",
		Short: "Apply the Postgres schema migrations",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			command := "up"
			if len(args) == 1 {
				command = args[0]
			}
			if !migrateCommands[command] {
				return errors.New("unknown migrate command: " + command)
			}
			db, err := sql.Open("postgres", pgConfig(cfg).ConnString()+"?sslmode="+sslmode)
			if err != nil {
				return errors.New("opening database error: " + err.Error())
			}
			defer db.Close()
			if err = goose.SetDialect("postgres"); err != nil {
				return err
			}
			slog.Info("running migrations", slog.String("command", command), slog.String("dir", dir))
			return goose.Run(command, db, dir)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", cfg.MigrationsDir, "migrations directory")
	cmd.Flags().StringVar(&sslmode, "sslmode", "disable", "postgres sslmode")
	return cmd
}
