package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/skillstars/internal/catalog"
	"github.com/abhisek/skillstars/internal/progress"
	"github.com/abhisek/skillstars/internal/weekkey"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show stars earned per skill this week",
	RunE: func(cmd *cobra.Command, args []string) error {
		week, _ := cmd.Flags().GetString("week")
		all, _ := cmd.Flags().GetBool("all")
		if week != "" && all {
			return fmt.Errorf("use --week or --all, not both")
		}
		if week != "" {
			if _, _, err := weekkey.Parse(week); err != nil {
				return err
			}
		} else {
			week = weekkey.Of(time.Now())
		}

		rt, err := openRuntime(cmd.Context(), cmd, false)
		if err != nil {
			return err
		}
		defer rt.Close()

		ledger, err := rt.repo.Load(cmd.Context())
		if err != nil {
			rt.logger.Warn().Err(err).Msg("showing empty progress")
		}

		out := cmd.OutOrStdout()
		if !all {
			printWeek(out, ledger, week)
			return nil
		}

		weeks := progress.Weeks(ledger)
		if len(weeks) == 0 {
			fmt.Fprintln(out, "No stars yet.")
			return nil
		}
		for i, w := range weeks {
			if i > 0 {
				fmt.Fprintln(out)
			}
			printWeek(out, ledger, w)
		}
		return nil
	},
}

// printWeek writes one week's per-skill stars in catalog order.
func printWeek(out io.Writer, l progress.Ledger, week string) {
	fmt.Fprintf(out, "Week %s", week)
	if year, w, err := weekkey.Parse(week); err == nil {
		fmt.Fprintf(out, " (from %s)", weekkey.Monday(year, w).Format("Mon Jan 2, 2006"))
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, strings.Repeat("─", 32))
	for _, a := range catalog.Default().All() {
		fmt.Fprintf(out, "%-20s  ★ %d\n", a.Title, progress.ForSkill(l, week, a.Key))
	}
	fmt.Fprintln(out, strings.Repeat("─", 32))
	fmt.Fprintf(out, "%-20s  ★ %d\n", "Total", progress.TotalForWeek(l, week))
}

func init() {
	progressCmd.Flags().String("week", "", "ISO week to show, e.g. 2024-W10 (default: this week)")
	progressCmd.Flags().Bool("all", false, "Show every week with stars, newest first")
}
