package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/limbo/twentyfourseven/internal/repository"
	"github.com/limbo/twentyfourseven/internal/service"
	"github.com/limbo/twentyfourseven/pkg/cleanup"
	"github.com/limbo/twentyfourseven/pkg/config"
	"github.com/limbo/twentyfourseven/pkg/entity"
)

func newReportCmd(cfg *config.Config) *cobra.Command {
	var user, from, to string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Tracked time per category of a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			uid, err := uuid.Parse(user)
			if err != nil {
				return errors.New("--user must be a uuid")
			}
			loc := cfg.Location()
			start, err := time.ParseInLocation("2006-01-02", from, loc)
			if err != nil {
				return errors.New("--from must be YYYY-MM-DD")
			}
			end, err := time.ParseInLocation("2006-01-02", to, loc)
			if err != nil {
				return errors.New("--to must be YYYY-MM-DD")
			}
			end = end.AddDate(0, 0, 1).Add(-time.Nanosecond)

			pool, err := repository.NewPool(cmd.Context(), pgConfig(cfg))
			if err != nil {
				return err
			}
			defer cleanup.CleanUp()
			rs := service.NewReportService(
				repository.NewTimeEntriesRepoWithConn(pool),
				repository.NewGoalsRepoWithConn(pool),
				loc, cfg.WeekStartDay(),
			)
			report, err := rs.GetReport(cmd.Context(), uid, start, end)
			if err != nil {
				return err
			}
			return printReport(cmd, report)
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "user id")
	cmd.Flags().StringVar(&from, "from", "", "first day, YYYY-MM-DD")
	cmd.Flags().StringVar(&to, "to", "", "last day, YYYY-MM-DD")
	for _, name := range []string{"user", "from", "to"} {
		cmd.MarkFlagRequired(name)
	}
	return cmd
}

func printReport(cmd *cobra.Command, report *entity.Report) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tTIME\tSHARE\tENTRIES")
	for _, cd := range report.CategoryData {
		name := cd.CategoryID.String()
		if cd.Category != nil {
			name = cd.Category.Name
		}
		fmt.Fprintf(tw, "%s\t%s\t%.2f%%\t%d\n", name, formatDuration(cd.TotalDuration), cd.Percentage, cd.EntryCount)
	}
	fmt.Fprintf(tw, "TOTAL\t%s\t\t%d\n", formatDuration(report.TotalDuration), report.EntryCount)
	if len(report.Goals) > 0 {
		fmt.Fprintln(tw, "\nGOAL\tTARGET\tPROGRESS")
		for _, g := range report.Goals {
			fmt.Fprintf(tw, "%s\t%gh\t%.0f%%\n", g.Title, g.TargetHours, g.Progress)
		}
	}
	return tw.Flush()
}

// formatDuration renders seconds as 1h05m.
func formatDuration(seconds int64) string {
	d := time.Duration(seconds) * time.Second
	return fmt.Sprintf("%dh%02dm", int(d.Hours()), int(d.Minutes())%60)
}
