// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-14
// Last Modified: 2026-10-14

package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/similigh/jira-migrator/internal/core/labels"
)

var labelsCmd = &cobra.Command{
	Use:   "labels",
	Short: "List every label the configured rules can produce",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		handler, err := buildEngine(cfg)
		if err != nil {
			return err
		}
		printLabels(cmd.OutOrStdout(), handler.AllLabels())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(labelsCmd)
}

func printLabels(w io.Writer, all []labels.Label) {
	cyan := color.New(color.FgCyan).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()

	for _, l := range all {
		fmt.Fprintf(w, "%s %s\n", gray("#"+l.Color), cyan(l.Name))
	}
	fmt.Fprintf(w, "\n%d labels\n", len(all))
}
