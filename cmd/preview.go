package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quickmath/internal/logging"
	"github.com/abhisek/quickmath/internal/problemgen"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print generated questions with their options",
	Long: `Generate questions and options without playing them.

Useful with --seed to check what a quiz will ask, and to eyeball the
distractors for a given option count.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Int("count", 5, "Number of questions to generate")
}

func runPreview(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")
	if count < 1 {
		return fmt.Errorf("invalid count %d: must be at least 1", count)
	}

	s, _, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	deps, err := quizDeps(cmd, s, logging.Discard())
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for i := 1; i <= count; i++ {
		q := deps.Generator.Generate()
		if err := problemgen.Validate(q, deps.Validators); err != nil {
			fmt.Fprintf(w, "%2d. %s  rejected: %v\n", i, q.Text(), err)
			continue
		}
		options, err := deps.Distractors.Generate(q.Answer, s.NumOptions)
		if err != nil {
			fmt.Fprintf(w, "%2d. %s = %d  options failed: %v\n", i, q.Text(), q.Answer, err)
			continue
		}
		fmt.Fprintf(w, "%2d. %s = %d  %v\n", i, q.Text(), q.Answer, []int(options))
	}
	return nil
}
