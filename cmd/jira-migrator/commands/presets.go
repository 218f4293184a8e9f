package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/similigh/jira-migrator/internal/core/rules"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the built-in rule presets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		green := color.New(color.FgGreen, color.Bold).SprintFunc()
		w := cmd.OutOrStdout()
		for _, name := range rules.PresetNames() {
			switch {
			case name == cfg.Preset:
				fmt.Fprintf(w, "%s %s\n", green("*"), green(name))
			case name == rules.DefaultPreset:
				fmt.Fprintf(w, "  %s (default)\n", name)
			default:
				fmt.Fprintf(w, "  %s\n", name)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}
