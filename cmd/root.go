package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quickmath",
	Short: "Timed arithmetic quiz for the terminal",
	Long: `QuickMath asks multiple-choice arithmetic questions against the clock
and scores you at the end.

Settings come from defaults, an optional YAML or JSON file, QUICKMATH_*
environment variables (or a .env file) and flags, later layers winning.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd, false)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	f := rootCmd.PersistentFlags()
	f.IntP("questions", "n", 0, "Number of questions (env QUICKMATH_NUM_QUESTIONS)")
	f.IntP("options", "o", 0, "Options per question, 2-9 (env QUICKMATH_NUM_OPTIONS)")
	f.Float64P("time", "t", 0, "Time limit in minutes (env QUICKMATH_TIME_LIMIT_MINUTES)")
	f.StringP("difficulty", "d", "", "easy, medium or hard (env QUICKMATH_DIFFICULTY)")
	f.String("config", "", "YAML or JSON settings file (overrides QUICKMATH_CONFIG)")
	f.String("env-file", ".env", "dotenv file to read QUICKMATH_* variables from, if present")
	f.Uint64("seed", 0, "Random seed; 0 picks one")
	f.String("log-file", "", "Append JSON logs to this file (overrides QUICKMATH_LOG_FILE)")
	f.String("log-level", "info", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(versionCmd)
}
