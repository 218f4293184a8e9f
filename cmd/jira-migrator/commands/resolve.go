// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-14
// Last Modified: 2026-10-14

package commands

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/similigh/jira-migrator/internal/integrations/jira"
	"github.com/similigh/jira-migrator/internal/migration"
)

var (
	resolveIssuesFile string
	resolveOutFile    string
	resolveFormat     string
	resolveWorkers    int
)

// ResolveOutput is the JSON document written by the resolve command.
type ResolveOutput struct {
	RunID       string                   `json:"run_id"`
	ProcessedAt time.Time                `json:"processed_at"`
	Preset      string                   `json:"preset"`
	TotalIssues int                      `json:"total_issues"`
	Results     []*migration.ImportIssue `json:"results"`
}

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve the GitHub labels of exported Jira issues",
	Long: `Resolve the GitHub labels, assignee and milestone of every issue in a Jira
JSON export. Nothing is written to GitHub; results are printed as JSON or CSV
in the order of the export.`,
	Args: cobra.NoArgs,
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().StringVar(&resolveIssuesFile, "issues", "", "Path to Jira JSON export (required)")
	resolveCmd.Flags().StringVar(&resolveOutFile, "out-file", "", "Output file path (stdout if not specified)")
	resolveCmd.Flags().StringVar(&resolveFormat, "format", "", "Output format: json or csv (default: from --out-file extension, else json)")
	resolveCmd.Flags().IntVar(&resolveWorkers, "workers", 4, "Number of concurrent workers")

	if err := resolveCmd.MarkFlagRequired("issues"); err != nil {
		fmt.Printf("Warning: Failed to mark issues flag as required: %v\n", err)
	}
}

func runResolve(cmd *cobra.Command, _ []string) error {
	issues, err := jira.LoadIssues(resolveIssuesFile)
	if err != nil {
		return err
	}
	slog.Debug("loaded issues", "path", resolveIssuesFile, "count", len(issues))

	handler, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	results, err := resolveAll(cmd.Context(), newConverter(cfg, handler), issues, resolveWorkers)
	if err != nil {
		return err
	}

	format := outputFormat(resolveFormat, resolveOutFile)
	var data []byte
	switch format {
	case "csv":
		data, err = formatCSV(results)
	case "json":
		data, err = formatJSON(ResolveOutput{
			RunID:       uuid.NewString(),
			ProcessedAt: time.Now().UTC(),
			Preset:      cfg.Preset,
			TotalIssues: len(results),
			Results:     results,
		})
	default:
		return fmt.Errorf("unsupported format: %s (use json or csv)", format)
	}
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	if resolveOutFile == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(resolveOutFile, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	green := color.New(color.FgGreen).SprintFunc()
	fmt.Fprintf(cmd.ErrOrStderr(), "%s Resolved %d issues into %s\n", green("✓"), len(results), resolveOutFile)
	return nil
}

// resolveAll converts every issue using up to workers goroutines. Results
// keep the order of issues.
func resolveAll(ctx context.Context, conv *migration.Converter, issues []jira.Issue, workers int) ([]*migration.ImportIssue, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if workers < 1 {
		workers = 1
	}

	results := make([]*migration.ImportIssue, len(issues))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range issues {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = conv.Convert(&issues[i])
			slog.Debug("resolved issue", "key", issues[i].Key, "labels", results[i].Labels)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to resolve issues: %w", err)
	}
	return results, nil
}

// outputFormat returns the explicit format, else the one implied by the
// output file extension.
func outputFormat(format, outFile string) string {
	if format != "" {
		return strings.ToLower(format)
	}
	if strings.EqualFold(filepath.Ext(outFile), ".csv") {
		return "csv"
	}
	return "json"
}

func formatJSON(out ResolveOutput) ([]byte, error) {
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func formatCSV(results []*migration.ImportIssue) ([]byte, error) {
	var buf strings.Builder
	writer := csv.NewWriter(&buf)

	header := []string{"key", "title", "labels", "assignee", "milestone"}
	if err := writer.Write(header); err != nil {
		return nil, err
	}
	for _, r := range results {
		row := []string{r.Key, r.Title, strings.Join(r.Labels, ";"), r.Assignee, r.Milestone}
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return []byte(buf.String()), nil
}
