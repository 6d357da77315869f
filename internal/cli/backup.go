package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/limbo/twentyfourseven/internal/service"
	"github.com/limbo/twentyfourseven/pkg/config"
)

func newExportCmd(cfg *config.Config) *cobra.Command {
	var out, user string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every stored key to a backup file",
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, uid, release, err := openStore(cmd.Context(), cfg, user)
			if err != nil {
				return err
			}
			defer release()
			backup, err := service.NewBackupService(kv).Export(cmd.Context(), uid)
			if err != nil {
				return err
			}
			body, err := sonic.ConfigDefault.MarshalIndent(backup, "", "  ")
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if out != "" && out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			if _, err = w.Write(append(body, '\n')); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "exported %d keys\n", len(backup.Data))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "-", "backup file, - for stdout")
	cmd.Flags().StringVar(&user, "user", "", "user id in Postgres, local store when empty")
	return cmd
}

func newImportCmd(cfg *config.Config) *cobra.Command {
	var in, user string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load a backup file, skipping invalid keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if in != "-" {
				f, err := os.Open(in)
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}
			raw, err := io.ReadAll(r)
			if err != nil {
				return err
			}
			data, err := service.DecodeBackup(raw)
			if err != nil {
				return err
			}
			kv, uid, release, err := openStore(cmd.Context(), cfg, user)
			if err != nil {
				return err
			}
			defer release()
			result, err := service.NewBackupService(kv).Import(cmd.Context(), uid, data)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d keys, skipped %d\n", result.Imported, len(result.Skipped))
			for _, key := range result.Skipped {
				fmt.Fprintf(cmd.OutOrStdout(), "  skipped %s\n", key)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&in, "in", "i", "-", "backup file, - for stdin")
	cmd.Flags().StringVar(&user, "user", "", "user id in Postgres, local store when empty")
	return cmd
}
