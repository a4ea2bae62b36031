package cmd

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/abhisek/quickmath/internal/console"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a quiz right away",
	Long: `Start a quiz without the home menu.

With --plain the quiz runs as line-oriented text on stdin and stdout:
type the answer (or the option's value) and press enter; q quits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		plain, _ := cmd.Flags().GetBool("plain")
		if !plain {
			return runTUI(cmd, true)
		}
		return runPlain(cmd)
	},
}

func init() {
	playCmd.Flags().Bool("plain", false, "Play in plain text mode without the TUI")
}

func runPlain(cmd *cobra.Command) error {
	s, invalid, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	log, closeLog, err := openLogger(cmd, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()
	logSubstitutions(log, invalid)

	deps, err := quizDeps(cmd, s, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	runner := console.New(console.Config{
		In:          cmd.InOrStdin(),
		Out:         cmd.OutOrStdout(),
		Generator:   deps.Generator,
		Distractors: deps.Distractors,
		Validators:  deps.Validators,
		Logger:      log,
	})
	_, err = runner.Run(ctx, s)
	return err
}
