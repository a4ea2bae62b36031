package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Print the effective settings",
	Long: `Print the settings a quiz would use, in settings-file form.

Fields that were rejected or missing and replaced by their default are
listed as comments after the YAML.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, invalid, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		out, err := yaml.Marshal(s)
		if err != nil {
			return fmt.Errorf("encode settings: %w", err)
		}
		w := cmd.OutOrStdout()
		fmt.Fprint(w, string(out))
		for _, e := range invalid {
			if e.Missing {
				continue
			}
			fmt.Fprintf(w, "# %s\n", e.Error())
		}
		return nil
	},
}
