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

	"github.com/similigh/jira-migrator/internal/integrations/jira"
	"github.com/similigh/jira-migrator/internal/report"
)

var assigneesIssuesFile string

var assigneesCmd = &cobra.Command{
	Use:   "assignees",
	Short: "List the Jira users to map to GitHub accounts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		issues, err := jira.LoadIssues(assigneesIssuesFile)
		if err != nil {
			return err
		}
		printAssignees(cmd.OutOrStdout(), report.Assignees(issues))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(assigneesCmd)

	assigneesCmd.Flags().StringVar(&assigneesIssuesFile, "issues", "", "Path to Jira JSON export (required)")
	if err := assigneesCmd.MarkFlagRequired("issues"); err != nil {
		fmt.Printf("Warning: Failed to mark issues flag as required: %v\n", err)
	}
}

func printAssignees(w io.Writer, r *report.AssigneesReport) {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()

	fmt.Fprintln(w, cyan("Assignees"))
	for _, u := range r.Assignees {
		fmt.Fprintf(w, "  %s\n", u)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, cyan("Commenters"))
	for _, u := range r.Commenters {
		fmt.Fprintf(w, "  %s\n", u)
	}
}
