package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/skillstars/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "skillstars",
	Short: "Classroom skill practice for kids",
	Long:  "Skill Stars walks a child through a classroom skill: tutorial, timed practice, a quick quiz and a star reward.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	config.RegisterFlags(rootCmd.PersistentFlags())
	rootCmd.PersistentFlags().Bool("no-splash", false, "Skip the welcome animation")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(skillsCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(versionCmd)
}
