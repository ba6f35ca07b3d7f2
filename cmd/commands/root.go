package commands

import (
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "fitcalc",
	Short: "Fitness calculator service",
	Long: `fitcalc evaluates health and fitness formulas (BMR, BMI, body fat,
ideal body weight, calorie needs, TDEE, macro split, blood alcohol content).

Without a subcommand it starts the HTTP server.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
