package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/skillstars/internal/catalog"
)

var skillsCmd = &cobra.Command{
	Use:   "skills [key]",
	Short: "List the classroom skills, or show one skill's steps",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		cat := catalog.Default()

		if len(args) == 1 {
			a, err := cat.Get(catalog.SkillKey(args[0]))
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s (%s)\n%s\n\n", a.Title, a.Key, a.Why)
			for i, step := range a.Steps {
				fmt.Fprintf(out, "  %d. %s\n", i+1, step)
			}
			return nil
		}

		fmt.Fprintf(out, "%-16s  %-18s  %s\n", "KEY", "TITLE", "WHY")
		fmt.Fprintln(out, strings.Repeat("─", 80))
		for _, a := range cat.All() {
			fmt.Fprintf(out, "%-16s  %-18s  %s\n", a.Key, a.Title, a.Why)
		}
		fmt.Fprintf(out, "\n%d skills\n", cat.Len())
		return nil
	},
}
