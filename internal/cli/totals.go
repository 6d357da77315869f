package cli

import (
	"fmt"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/limbo/twentyfourseven/internal/repository"
	"github.com/limbo/twentyfourseven/internal/service"
	"github.com/limbo/twentyfourseven/pkg/config"
)

func newTotalsCmd(cfg *config.Config) *cobra.Command {
	var (
		year, month int
		user        string
	)
	cmd := &cobra.Command{
		Use:   "totals",
		Short: "Hours per category of an activity grid month",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now().In(cfg.Location())
			if year == 0 {
				year = now.Year()
			}
			if month == 0 {
				month = int(now.Month())
			}
			if month < 1 || month > 12 {
				return fmt.Errorf("--month must be within 1-12, got %d", month)
			}
			kv, uid, release, err := openStore(cmd.Context(), cfg, user)
			if err != nil {
				return err
			}
			defer release()

			ref := service.MonthRef{UserID: uid, Year: year, Month: time.Month(month)}
			totals, err := service.NewActivityService(repository.NewActivityStore(kv), cfg.HistoryLimit).
				Totals(cmd.Context(), ref, 0)
			if err != nil {
				return err
			}
			settings, err := service.NewSettingsService(repository.NewSettingsStore(kv)).Get(cmd.Context(), uid)
			if err != nil {
				return err
			}
			names := make(map[string]string, len(settings.Categories))
			for _, c := range settings.Categories {
				names[c.Key] = c.Name
			}
			keys := make([]string, 0, len(totals.AllTime))
			for k := range totals.AllTime {
				keys = append(keys, k)
			}
			sort.Strings(keys)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "%d-%02d\n", year, month)
			fmt.Fprintln(tw, "KEY\tCATEGORY\tMONTH\tALL TIME")
			for _, k := range keys {
				name := names[k]
				if name == "" {
					name = "-"
				}
				fmt.Fprintf(tw, "%s\t%s\t%d\t%d\n", k, name, totals.Month[k], totals.AllTime[k])
			}
			fmt.Fprintf(tw, "\tTOTAL\t%d\t%d\n", totals.Month.Hours(), totals.AllTime.Hours())
			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "year, current by default")
	cmd.Flags().IntVar(&month, "month", 0, "month 1-12, current by default")
	cmd.Flags().StringVar(&user, "user", "", "user id in Postgres, local store when empty")
	return cmd
}
